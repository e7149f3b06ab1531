package dto

import "github.com/shopspring/decimal"

// Money serializa valores de desconto sempre com duas casas ("0.10").
type Money decimal.Decimal

func NewMoney(d decimal.Decimal) Money {
	return Money(d)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + decimal.Decimal(m).StringFixed(2) + `"`), nil
}
