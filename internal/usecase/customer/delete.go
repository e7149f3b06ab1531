package customer

import (
	"context"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	domain "github.com/BruksfildServices01/salon-api/internal/domain/customer"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
)

type DeleteCustomer struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteCustomer(repo domain.Repository, audit *audit.Dispatcher) *DeleteCustomer {
	return &DeleteCustomer{repo: repo, audit: audit}
}

func (uc *DeleteCustomer) Execute(ctx context.Context, customerID uint) error {
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		c, err := tx.GetCustomer(ctx, customerID)
		if err != nil {
			return err
		}
		if c == nil {
			return httperr.ErrNotFound("customer", customerID)
		}

		n, err := tx.CountAppointmentsForCustomer(ctx, customerID)
		if err != nil {
			return err
		}
		if n > 0 {
			return httperr.ErrConflict(
				httperr.CodeCustomerHasAppointments,
				"cannot delete customer with existing appointments",
			)
		}

		return tx.DeleteCustomer(ctx, c)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "customer_deleted",
		Entity:   "customer",
		EntityID: audit.EntityID(customerID),
	})

	return nil
}
