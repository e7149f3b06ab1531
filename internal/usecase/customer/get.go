package customer

import (
	"context"

	domain "github.com/BruksfildServices01/salon-api/internal/domain/customer"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

type ListCustomers struct {
	repo domain.Repository
}

func NewListCustomers(repo domain.Repository) *ListCustomers {
	return &ListCustomers{repo: repo}
}

func (uc *ListCustomers) Execute(ctx context.Context) ([]models.Customer, error) {
	return uc.repo.ListCustomers(ctx)
}

type GetCustomer struct {
	repo domain.Repository
}

func NewGetCustomer(repo domain.Repository) *GetCustomer {
	return &GetCustomer{repo: repo}
}

func (uc *GetCustomer) Execute(ctx context.Context, id uint) (*models.Customer, bool, error) {
	c, err := uc.repo.GetCustomer(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return c, c != nil, nil
}
