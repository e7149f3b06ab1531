package models

import "time"

// Customer de salão. LoyaltyPoints só é alterado pelo ledger de fidelidade.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName   string `gorm:"size:100;not null" json:"first_name"`
	LastName    string `gorm:"size:100;not null" json:"last_name"`
	Email       string `gorm:"size:255;not null" json:"email"`
	PhoneNumber string `gorm:"size:20;not null" json:"phone_number"`

	LoyaltyPoints int `gorm:"not null;default:0;check:loyalty_points >= 0" json:"loyalty_points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
