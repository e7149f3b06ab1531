package customer

import (
	"context"

	"github.com/BruksfildServices01/salon-api/internal/models"
)

type Repository interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)
	CountAppointmentsForCustomer(ctx context.Context, customerID uint) (int64, error)

	CreateCustomer(ctx context.Context, c *models.Customer) error

	// UpdateContactInfo grava nome, e-mail e telefone. Nunca toca em
	// loyalty_points.
	UpdateContactInfo(ctx context.Context, c *models.Customer) error
	DeleteCustomer(ctx context.Context, c *models.Customer) error

	Transaction(ctx context.Context, fn func(tx Repository) error) error
}
