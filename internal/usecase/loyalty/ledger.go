package loyalty

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	domain "github.com/BruksfildServices01/salon-api/internal/domain/loyalty"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
)

// Ledger é o único escritor de loyalty_points fora da criação do cliente.
type Ledger struct {
	repo  domain.Repository
	cfg   domain.Config
	audit *audit.Dispatcher
}

func NewLedger(
	repo domain.Repository,
	cfg domain.Config,
	audit *audit.Dispatcher,
) *Ledger {
	return &Ledger{
		repo:  repo,
		cfg:   cfg,
		audit: audit,
	}
}

func (l *Ledger) Config() domain.Config {
	return l.cfg
}

type SpendResult struct {
	RemainingPoints int
	DiscountAmount  decimal.Decimal
}

func (l *Ledger) AddPointsForVisit(ctx context.Context, customerID uint) (int, error) {
	return l.earn(ctx, customerID, l.cfg.PointsPerVisit(), "visit")
}

func (l *Ledger) AddPointsForReferral(ctx context.Context, customerID uint) (int, error) {
	return l.earn(ctx, customerID, l.cfg.PointsPerReferral(), "referral")
}

func (l *Ledger) earn(
	ctx context.Context,
	customerID uint,
	points int,
	reason string,
) (int, error) {

	if err := l.ensureCustomer(ctx, customerID); err != nil {
		return 0, err
	}

	balance, err := l.repo.AddPoints(ctx, customerID, points)
	if err != nil {
		return 0, err
	}

	l.audit.Dispatch(ctx, audit.Event{
		Action:   "loyalty_points_earned",
		Entity:   "customer",
		EntityID: audit.EntityID(customerID),
		Metadata: map[string]any{
			"reason":  reason,
			"points":  points,
			"balance": balance,
		},
	})

	return balance, nil
}

func (l *Ledger) GetAvailableDiscount(ctx context.Context, customerID uint) (decimal.Decimal, error) {
	c, err := l.repo.GetCustomer(ctx, customerID)
	if err != nil {
		return decimal.Zero, err
	}
	if c == nil {
		return decimal.Zero, httperr.ErrNotFound("customer", customerID)
	}
	return l.cfg.Discount(c.LoyaltyPoints), nil
}

// SpendPoints valida na ordem: cliente, pontos > 0, saldo. O débito é
// condicional no banco, então duas chamadas concorrentes nunca deixam o
// saldo negativo.
func (l *Ledger) SpendPoints(
	ctx context.Context,
	customerID uint,
	pointsToUse int,
) (*SpendResult, error) {

	// --------------------------------------------------
	// 1️⃣ Cliente
	// --------------------------------------------------
	c, err := l.repo.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, httperr.ErrNotFound("customer", customerID)
	}

	// --------------------------------------------------
	// 2️⃣ Quantidade
	// --------------------------------------------------
	if pointsToUse <= 0 {
		return nil, httperr.ErrInvalidArgument(
			httperr.CodeInvalidPoints,
			"points to use must be positive",
		)
	}

	// --------------------------------------------------
	// 3️⃣ Saldo
	// --------------------------------------------------
	if pointsToUse > c.LoyaltyPoints {
		return nil, errInsufficientBalance()
	}

	remaining, ok, err := l.repo.DeductPoints(ctx, customerID, pointsToUse)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errInsufficientBalance()
	}

	discount := l.cfg.Discount(pointsToUse)

	l.audit.Dispatch(ctx, audit.Event{
		Action:   "loyalty_points_spent",
		Entity:   "customer",
		EntityID: audit.EntityID(customerID),
		Metadata: map[string]any{
			"points":   pointsToUse,
			"balance":  remaining,
			"discount": discount.StringFixed(2),
		},
	})

	return &SpendResult{
		RemainingPoints: remaining,
		DiscountAmount:  discount,
	}, nil
}

func (l *Ledger) ensureCustomer(ctx context.Context, customerID uint) error {
	c, err := l.repo.GetCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	if c == nil {
		return httperr.ErrNotFound("customer", customerID)
	}
	return nil
}

func errInsufficientBalance() error {
	return httperr.ErrConflict(
		httperr.CodeInsufficientBalance,
		"insufficient loyalty points",
	)
}
