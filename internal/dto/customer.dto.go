package dto

import (
	"github.com/BruksfildServices01/salon-api/internal/domain/loyalty"
	"github.com/BruksfildServices01/salon-api/internal/models"
	ucCustomer "github.com/BruksfildServices01/salon-api/internal/usecase/customer"
)

// CustomerRequest aceita loyalty_points para compatibilidade com clientes
// antigos, mas o valor é sempre ignorado.
type CustomerRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	LoyaltyPoints *int   `json:"loyalty_points,omitempty"`
}

func (r CustomerRequest) ToInput() ucCustomer.CustomerInput {
	return ucCustomer.CustomerInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}
}

type CustomerDTO struct {
	ID                uint   `json:"id"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	PhoneNumber       string `json:"phone_number"`
	LoyaltyPoints     int    `json:"loyalty_points"`
	AvailableDiscount Money  `json:"available_discount"`
}

func NewCustomerDTO(c *models.Customer, cfg loyalty.Config) CustomerDTO {
	return CustomerDTO{
		ID:                c.ID,
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		FullName:          c.FullName(),
		Email:             c.Email,
		PhoneNumber:       c.PhoneNumber,
		LoyaltyPoints:     c.LoyaltyPoints,
		AvailableDiscount: NewMoney(cfg.Discount(c.LoyaltyPoints)),
	}
}

func NewCustomerDTOs(list []models.Customer, cfg loyalty.Config) []CustomerDTO {
	out := make([]CustomerDTO, 0, len(list))
	for i := range list {
		out = append(out, NewCustomerDTO(&list[i], cfg))
	}
	return out
}

// ======================================================
// LOYALTY
// ======================================================

type SpendPointsRequest struct {
	PointsToUse int `json:"points_to_use"`
}

type LoyaltyBalanceDTO struct {
	CustomerID    uint `json:"customer_id"`
	LoyaltyPoints int  `json:"loyalty_points"`
}

type LoyaltyDiscountDTO struct {
	CustomerID        uint  `json:"customer_id"`
	AvailableDiscount Money `json:"available_discount"`
}

type SpendPointsDTO struct {
	CustomerID      uint  `json:"customer_id"`
	RemainingPoints int   `json:"remaining_points"`
	DiscountAmount  Money `json:"discount_amount"`
}
