package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-api/internal/httperr"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

// EffectivePrice é o preço cobrado: promocional quando a promoção está
// ativa e definida, senão o preço base.
func EffectivePrice(s *models.Service) decimal.Decimal {
	if s.IsPromotional && s.PromotionalPrice.Valid {
		return s.PromotionalPrice.Decimal
	}
	return s.Price
}

// ValidatePromotion garante que uma promoção ativa tem preço definido e
// estritamente menor que o preço base.
func ValidatePromotion(price decimal.Decimal, isPromotional bool, promo decimal.NullDecimal) error {
	if !isPromotional {
		return nil
	}
	if !promo.Valid {
		return httperr.ErrInvalidArgument(
			httperr.CodeInvalidPromotionalPrice,
			"promotional price is required when the service is promotional",
		)
	}
	if promo.Decimal.GreaterThanOrEqual(price) {
		return httperr.ErrInvalidArgument(
			httperr.CodeInvalidPromotionalPrice,
			"promotional price must be lower than regular price",
		)
	}
	return nil
}

// ApplyPromotion define (ou remove, com nil) o preço promocional.
func ApplyPromotion(s *models.Service, promo *decimal.Decimal) error {
	if promo == nil {
		s.IsPromotional = false
		s.PromotionalPrice = decimal.NullDecimal{}
		return nil
	}

	next := decimal.NewNullDecimal(*promo)
	if err := ValidatePromotion(s.Price, true, next); err != nil {
		return err
	}

	s.IsPromotional = true
	s.PromotionalPrice = next
	return nil
}
