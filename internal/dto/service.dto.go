package dto

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-api/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-api/internal/models"
	ucCatalog "github.com/BruksfildServices01/salon-api/internal/usecase/catalog"
)

type ServiceRequest struct {
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Price            decimal.Decimal  `json:"price"`
	DurationMinutes  int              `json:"duration_minutes"`
	CategoryID       uint             `json:"category_id"`
	IsActive         *bool            `json:"is_active"`
	IsPromotional    *bool            `json:"is_promotional"`
	PromotionalPrice *decimal.Decimal `json:"promotional_price"`
}

func (r ServiceRequest) ToInput() ucCatalog.ServiceInput {
	return ucCatalog.ServiceInput{
		Title:            r.Title,
		Description:      r.Description,
		Price:            r.Price,
		DurationMinutes:  r.DurationMinutes,
		CategoryID:       r.CategoryID,
		IsActive:         r.IsActive,
		IsPromotional:    r.IsPromotional,
		PromotionalPrice: r.PromotionalPrice,
	}
}

// PromotionalPriceRequest: promotional_price null encerra a promoção.
type PromotionalPriceRequest struct {
	PromotionalPrice *decimal.Decimal `json:"promotional_price"`
}

type ServiceDTO struct {
	ID               uint             `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Price            decimal.Decimal  `json:"price"`
	DurationMinutes  int              `json:"duration_minutes"`
	CategoryID       uint             `json:"category_id"`
	CategoryTitle    string           `json:"category_title,omitempty"`
	IsActive         bool             `json:"is_active"`
	IsPromotional    bool             `json:"is_promotional"`
	PromotionalPrice *decimal.Decimal `json:"promotional_price"`
	EffectivePrice   decimal.Decimal  `json:"effective_price"`
}

func NewServiceDTO(s *models.Service) ServiceDTO {
	out := ServiceDTO{
		ID:              s.ID,
		Title:           s.Title,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		CategoryID:      s.CategoryID,
		CategoryTitle:   s.Category.Title,
		IsActive:        s.IsActive,
		IsPromotional:   s.IsPromotional,
		EffectivePrice:  catalog.EffectivePrice(s),
	}
	if s.PromotionalPrice.Valid {
		p := s.PromotionalPrice.Decimal
		out.PromotionalPrice = &p
	}
	return out
}

func NewServiceDTOs(list []models.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(list))
	for i := range list {
		out = append(out, NewServiceDTO(&list[i]))
	}
	return out
}

// ======================================================
// CATEGORIES
// ======================================================

type CategoryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r CategoryRequest) ToInput() ucCatalog.CategoryInput {
	return ucCatalog.CategoryInput{
		Title:       r.Title,
		Description: r.Description,
	}
}

type CategoryDTO struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Services    []ServiceDTO `json:"services,omitempty"`
}

func NewCategoryDTO(c *models.ServiceCategory) CategoryDTO {
	out := CategoryDTO{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
	}
	if len(c.Services) > 0 {
		out.Services = make([]ServiceDTO, 0, len(c.Services))
		for i := range c.Services {
			s := c.Services[i]
			s.Category = models.ServiceCategory{ID: c.ID, Title: c.Title}
			out.Services = append(out.Services, NewServiceDTO(&s))
		}
	}
	return out
}

func NewCategoryDTOs(list []models.ServiceCategory) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(list))
	for i := range list {
		out = append(out, NewCategoryDTO(&list[i]))
	}
	return out
}
