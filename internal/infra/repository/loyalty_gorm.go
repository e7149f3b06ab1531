package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-api/internal/domain/loyalty"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

type LoyaltyGormRepository struct {
	db *gorm.DB
}

func NewLoyaltyGormRepository(db *gorm.DB) *LoyaltyGormRepository {
	return &LoyaltyGormRepository{db: db}
}

func (r *LoyaltyGormRepository) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	return findByID[models.Customer](ctx, r.db, id)
}

func (r *LoyaltyGormRepository) AddPoints(
	ctx context.Context,
	customerID uint,
	points int,
) (int, error) {

	var balance int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Customer{}).
			Where("id = ?", customerID).
			UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", points)).Error; err != nil {
			return err
		}

		var err error
		balance, err = readBalance(tx, customerID)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("add loyalty points to customer %d: %w", customerID, err)
	}
	return balance, nil
}

func (r *LoyaltyGormRepository) DeductPoints(
	ctx context.Context,
	customerID uint,
	points int,
) (int, bool, error) {

	var (
		balance int
		ok      bool
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Customer{}).
			Where("id = ? AND loyalty_points >= ?", customerID, points).
			UpdateColumn("loyalty_points", gorm.Expr("loyalty_points - ?", points))
		if res.Error != nil {
			return res.Error
		}
		ok = res.RowsAffected > 0

		var err error
		balance, err = readBalance(tx, customerID)
		return err
	})
	if err != nil {
		return 0, false, fmt.Errorf("deduct loyalty points from customer %d: %w", customerID, err)
	}
	return balance, ok, nil
}

func readBalance(tx *gorm.DB, customerID uint) (int, error) {
	var c models.Customer
	if err := tx.Select("id", "loyalty_points").First(&c, customerID).Error; err != nil {
		return 0, err
	}
	return c.LoyaltyPoints, nil
}

var _ loyalty.Repository = (*LoyaltyGormRepository)(nil)
