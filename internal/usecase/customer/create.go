package customer

import (
	"context"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	domain "github.com/BruksfildServices01/salon-api/internal/domain/customer"
	"github.com/BruksfildServices01/salon-api/internal/models"
	"github.com/BruksfildServices01/salon-api/internal/validators"
)

type CreateCustomer struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateCustomer(repo domain.Repository, audit *audit.Dispatcher) *CreateCustomer {
	return &CreateCustomer{repo: repo, audit: audit}
}

// Execute cria o cliente sempre com saldo zero.
func (uc *CreateCustomer) Execute(ctx context.Context, in CustomerInput) (*models.Customer, error) {
	in = in.normalized()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	c := &models.Customer{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		PhoneNumber:   in.PhoneNumber,
		LoyaltyPoints: 0,
	}

	if err := uc.repo.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "customer_created",
		Entity:   "customer",
		EntityID: audit.EntityID(c.ID),
	})

	return c, nil
}
