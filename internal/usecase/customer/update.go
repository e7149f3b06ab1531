package customer

import (
	"context"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	domain "github.com/BruksfildServices01/salon-api/internal/domain/customer"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
	"github.com/BruksfildServices01/salon-api/internal/models"
	"github.com/BruksfildServices01/salon-api/internal/validators"
)

type UpdateCustomer struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateCustomer(repo domain.Repository, audit *audit.Dispatcher) *UpdateCustomer {
	return &UpdateCustomer{repo: repo, audit: audit}
}

// Execute altera apenas dados de contato; o saldo de pontos permanece o
// que está no banco.
func (uc *UpdateCustomer) Execute(
	ctx context.Context,
	customerID uint,
	in CustomerInput,
) (*models.Customer, error) {

	in = in.normalized()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	c, err := uc.repo.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, httperr.ErrNotFound("customer", customerID)
	}

	c.FirstName = in.FirstName
	c.LastName = in.LastName
	c.Email = in.Email
	c.PhoneNumber = in.PhoneNumber

	if err := uc.repo.UpdateContactInfo(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "customer_updated",
		Entity:   "customer",
		EntityID: audit.EntityID(c.ID),
	})

	return c, nil
}
