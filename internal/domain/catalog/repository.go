package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-api/internal/models"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]models.ServiceCategory, error)
	GetCategory(ctx context.Context, id uint) (*models.ServiceCategory, error)
	GetCategoryWithServices(ctx context.Context, id uint) (*models.ServiceCategory, error)
	CategoryExists(ctx context.Context, id uint) (bool, error)
	CountServicesInCategory(ctx context.Context, categoryID uint) (int64, error)

	CreateCategory(ctx context.Context, c *models.ServiceCategory) error
	UpdateCategory(ctx context.Context, c *models.ServiceCategory) error
	DeleteCategory(ctx context.Context, c *models.ServiceCategory) error

	Transaction(ctx context.Context, fn func(tx CategoryRepository) error) error
}

type ServiceFilter struct {
	CategoryID  *uint
	ActiveOnly  bool
	Promotional bool
	Search      string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
}

type ServiceRepository interface {
	ListServices(ctx context.Context, f ServiceFilter) ([]models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CategoryExists(ctx context.Context, id uint) (bool, error)
	CountAppointmentsForService(ctx context.Context, serviceID uint) (int64, error)

	CreateService(ctx context.Context, s *models.Service) error
	SaveService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, s *models.Service) error

	Transaction(ctx context.Context, fn func(tx ServiceRepository) error) error
}
