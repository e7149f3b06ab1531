package loyalty

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-api/internal/domain/loyalty"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
	infraRepo "github.com/BruksfildServices01/salon-api/internal/infra/repository"
	"github.com/BruksfildServices01/salon-api/internal/models"
	"github.com/BruksfildServices01/salon-api/internal/testutil"
)

func newLedger(t *testing.T) (*Ledger, *gorm.DB) {
	t.Helper()

	db := testutil.NewDB(t)
	return NewLedger(infraRepo.NewLoyaltyGormRepository(db), domain.DefaultConfig(), nil), db
}

func balanceOf(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()

	var c models.Customer
	require.NoError(t, db.First(&c, id).Error)
	return c.LoyaltyPoints
}

func TestAddPointsForVisit_ThenDiscount(t *testing.T) {
	ledger, db := newLedger(t)
	c := testutil.CreateCustomer(t, db, "Jane", "Doe", 0)

	balance, err := ledger.AddPointsForVisit(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, balance)

	discount, err := ledger.GetAvailableDiscount(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.10", discount.StringFixed(2))
}

func TestAddPointsForReferral(t *testing.T) {
	ledger, db := newLedger(t)
	c := testutil.CreateCustomer(t, db, "Jane", "Doe", 5)

	balance, err := ledger.AddPointsForReferral(context.Background(), c.ID)

	require.NoError(t, err)
	assert.Equal(t, 55, balance)
	assert.Equal(t, 55, balanceOf(t, db, c.ID))
}

func TestLedger_CustomerNotFound(t *testing.T) {
	ledger, _ := newLedger(t)
	ctx := context.Background()

	_, err := ledger.AddPointsForVisit(ctx, 99)
	assert.True(t, httperr.IsBusiness(err, "customer_not_found"))

	_, err = ledger.AddPointsForReferral(ctx, 99)
	assert.True(t, httperr.IsBusiness(err, "customer_not_found"))

	_, err = ledger.GetAvailableDiscount(ctx, 99)
	assert.True(t, httperr.IsBusiness(err, "customer_not_found"))

	_, err = ledger.SpendPoints(ctx, 99, 0)
	assert.True(t, httperr.IsBusiness(err, "customer_not_found"), "customer is checked before points")
}

func TestSpendPoints_Success(t *testing.T) {
	ledger, db := newLedger(t)
	c := testutil.CreateCustomer(t, db, "Jane", "Doe", 150)

	res, err := ledger.SpendPoints(context.Background(), c.ID, 100)

	require.NoError(t, err)
	assert.Equal(t, 50, res.RemainingPoints)
	assert.True(t, decimal.RequireFromString("1.00").Equal(res.DiscountAmount))
	assert.Equal(t, 50, balanceOf(t, db, c.ID))
}

func TestSpendPoints_WholeBalance(t *testing.T) {
	ledger, db := newLedger(t)
	c := testutil.CreateCustomer(t, db, "Jane", "Doe", 30)

	res, err := ledger.SpendPoints(context.Background(), c.ID, 30)

	require.NoError(t, err)
	assert.Equal(t, 0, res.RemainingPoints)
	assert.Equal(t, "0.30", res.DiscountAmount.StringFixed(2))
}

func TestSpendPoints_InvalidPoints(t *testing.T) {
	ledger, db := newLedger(t)
	c := testutil.CreateCustomer(t, db, "Jane", "Doe", 150)

	for _, p := range []int{0, -1, -100} {
		_, err := ledger.SpendPoints(context.Background(), c.ID, p)

		require.Error(t, err)
		assert.Equal(t, httperr.KindInvalidArgument, httperr.KindOf(err))
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidPoints))
	}
	assert.Equal(t, 150, balanceOf(t, db, c.ID))
}

func TestSpendPoints_InsufficientBalance(t *testing.T) {
	ledger, db := newLedger(t)
	c := testutil.CreateCustomer(t, db, "Jane", "Doe", 40)

	_, err := ledger.SpendPoints(context.Background(), c.ID, 41)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInsufficientBalance))
	assert.Equal(t, 40, balanceOf(t, db, c.ID))
}

func TestSpendPoints_ConcurrentNeverNegative(t *testing.T) {
	ledger, db := newLedger(t)
	c := testutil.CreateCustomer(t, db, "Jane", "Doe", 100)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ledger.SpendPoints(context.Background(), c.ID, 40); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, success)
	assert.Equal(t, 20, balanceOf(t, db, c.ID))
}

func TestLedger_CustomConfig(t *testing.T) {
	db := testutil.NewDB(t)
	cfg := domain.NewConfig(3, 7, decimal.RequireFromString("0.5"))
	ledger := NewLedger(infraRepo.NewLoyaltyGormRepository(db), cfg, nil)
	c := testutil.CreateCustomer(t, db, "Jane", "Doe", 0)

	visit, err := ledger.AddPointsForVisit(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, visit)

	referral, err := ledger.AddPointsForReferral(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, referral)

	discount, err := ledger.GetAvailableDiscount(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "5.00", discount.StringFixed(2))
}
