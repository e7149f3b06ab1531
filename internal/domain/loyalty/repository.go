package loyalty

import (
	"context"

	"github.com/BruksfildServices01/salon-api/internal/models"
)

type Repository interface {
	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)

	// AddPoints incrementa o saldo atomicamente e devolve o novo saldo.
	AddPoints(ctx context.Context, customerID uint, points int) (int, error)

	// DeductPoints debita somente se o saldo cobrir o valor; ok=false
	// quando o saldo é insuficiente.
	DeductPoints(ctx context.Context, customerID uint, points int) (remaining int, ok bool, err error)
}
