package loyalty

import "github.com/shopspring/decimal"

// Config é imutável depois de criado; o ledger recebe uma cópia.
type Config struct {
	pointsPerVisit        int
	pointsPerReferral     int
	pointsToCurrencyRatio decimal.Decimal
}

const (
	DefaultPointsPerVisit    = 10
	DefaultPointsPerReferral = 50
)

// DefaultPointsToCurrencyRatio: 100 pontos = 1 unidade de moeda.
var DefaultPointsToCurrencyRatio = decimal.New(1, -2)

func NewConfig(perVisit, perReferral int, ratio decimal.Decimal) Config {
	return Config{
		pointsPerVisit:        perVisit,
		pointsPerReferral:     perReferral,
		pointsToCurrencyRatio: ratio,
	}
}

func DefaultConfig() Config {
	return NewConfig(DefaultPointsPerVisit, DefaultPointsPerReferral, DefaultPointsToCurrencyRatio)
}

func (c Config) PointsPerVisit() int                    { return c.pointsPerVisit }
func (c Config) PointsPerReferral() int                 { return c.pointsPerReferral }
func (c Config) PointsToCurrencyRatio() decimal.Decimal { return c.pointsToCurrencyRatio }

// currencyPlaces é a precisão monetária usada nos descontos.
const currencyPlaces = 2

// Discount converte pontos em desconto monetário.
func (c Config) Discount(points int) decimal.Decimal {
	return decimal.NewFromInt(int64(points)).
		Mul(c.pointsToCurrencyRatio).
		Round(currencyPlaces)
}
