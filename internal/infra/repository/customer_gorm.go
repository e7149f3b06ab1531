package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-api/internal/domain/customer"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).
		Order("last_name ASC").
		Order("first_name ASC").
		Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (r *CustomerGormRepository) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	return findByID[models.Customer](ctx, r.db, id)
}

func (r *CustomerGormRepository) CountAppointmentsForCustomer(ctx context.Context, customerID uint) (int64, error) {
	return count[models.Appointment](ctx, r.db, "customer_id = ?", customerID)
}

func (r *CustomerGormRepository) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerGormRepository) UpdateContactInfo(ctx context.Context, c *models.Customer) error {
	return r.db.WithContext(ctx).
		Model(&models.Customer{ID: c.ID}).
		Select("first_name", "last_name", "email", "phone_number").
		Updates(map[string]any{
			"first_name":   c.FirstName,
			"last_name":    c.LastName,
			"email":        c.Email,
			"phone_number": c.PhoneNumber,
		}).Error
}

func (r *CustomerGormRepository) DeleteCustomer(ctx context.Context, c *models.Customer) error {
	return r.db.WithContext(ctx).Delete(&models.Customer{}, c.ID).Error
}

func (r *CustomerGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CustomerGormRepository{db: tx})
	})
}

var _ domain.Repository = (*CustomerGormRepository)(nil)
