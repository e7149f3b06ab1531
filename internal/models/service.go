package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title           string          `gorm:"size:100;not null" json:"title"`
	Description     string          `gorm:"size:500" json:"description"`
	Price           decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	DurationMinutes int             `gorm:"not null;default:0" json:"duration_minutes"`

	CategoryID uint            `gorm:"index;not null" json:"category_id"`
	Category   ServiceCategory `json:"category"`

	IsActive         bool                `gorm:"not null;default:true" json:"is_active"`
	IsPromotional    bool                `gorm:"not null;default:false" json:"is_promotional"`
	PromotionalPrice decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"promotional_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
