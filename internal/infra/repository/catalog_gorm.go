package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-api/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

// effectivePriceSQL espelha catalog.EffectivePrice.
const effectivePriceSQL = "CASE WHEN services.is_promotional AND services.promotional_price IS NOT NULL " +
	"THEN services.promotional_price ELSE services.price END"

// --------------------------------------------------
// Categories
// --------------------------------------------------

type CategoryGormRepository struct {
	db *gorm.DB
}

func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

func (r *CategoryGormRepository) ListCategories(ctx context.Context) ([]models.ServiceCategory, error) {
	var categories []models.ServiceCategory
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list service categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryGormRepository) GetCategory(ctx context.Context, id uint) (*models.ServiceCategory, error) {
	return findByID[models.ServiceCategory](ctx, r.db, id)
}

func (r *CategoryGormRepository) GetCategoryWithServices(ctx context.Context, id uint) (*models.ServiceCategory, error) {
	var c models.ServiceCategory
	err := r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("services.title ASC")
		}).
		First(&c, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get service category %d: %w", id, err)
	}
	return &c, nil
}

func (r *CategoryGormRepository) CategoryExists(ctx context.Context, id uint) (bool, error) {
	return exists[models.ServiceCategory](ctx, r.db, "id = ?", id)
}

func (r *CategoryGormRepository) CountServicesInCategory(ctx context.Context, categoryID uint) (int64, error) {
	return count[models.Service](ctx, r.db, "category_id = ?", categoryID)
}

func (r *CategoryGormRepository) CreateCategory(ctx context.Context, c *models.ServiceCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CategoryGormRepository) UpdateCategory(ctx context.Context, c *models.ServiceCategory) error {
	return r.db.WithContext(ctx).
		Model(&models.ServiceCategory{ID: c.ID}).
		Select("title", "description").
		Updates(map[string]any{
			"title":       c.Title,
			"description": c.Description,
		}).Error
}

func (r *CategoryGormRepository) DeleteCategory(ctx context.Context, c *models.ServiceCategory) error {
	return r.db.WithContext(ctx).Delete(&models.ServiceCategory{}, c.ID).Error
}

func (r *CategoryGormRepository) Transaction(
	ctx context.Context,
	fn func(tx catalog.CategoryRepository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CategoryGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Services
// --------------------------------------------------

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) ListServices(
	ctx context.Context,
	f catalog.ServiceFilter,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Preload("Category")

	if f.CategoryID != nil {
		q = q.Where("services.category_id = ?", *f.CategoryID)
	}

	if f.ActiveOnly {
		q = q.Where("services.is_active = ?", true)
	}

	if f.Promotional {
		q = q.Where("services.is_promotional = ?", true)
	}

	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		like := "%" + term + "%"
		q = q.
			Joins("JOIN service_categories ON service_categories.id = services.category_id").
			Where(
				"(LOWER(services.title) LIKE ? OR LOWER(services.description) LIKE ? OR LOWER(service_categories.title) LIKE ?)",
				like, like, like,
			)
	}

	byPrice := f.MinPrice != nil || f.MaxPrice != nil
	if f.MinPrice != nil {
		q = q.Where(effectivePriceSQL+" >= CAST(? AS NUMERIC)", f.MinPrice.String())
	}
	if f.MaxPrice != nil {
		q = q.Where(effectivePriceSQL+" <= CAST(? AS NUMERIC)", f.MaxPrice.String())
	}

	if byPrice {
		q = q.Order(effectivePriceSQL + " ASC")
	}
	q = q.Order("services.title ASC")

	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (r *ServiceGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&s, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get service %d: %w", id, err)
	}
	return &s, nil
}

func (r *ServiceGormRepository) CategoryExists(ctx context.Context, id uint) (bool, error) {
	return exists[models.ServiceCategory](ctx, r.db, "id = ?", id)
}

func (r *ServiceGormRepository) CountAppointmentsForService(ctx context.Context, serviceID uint) (int64, error) {
	return count[models.Appointment](ctx, r.db, "service_id = ?", serviceID)
}

func (r *ServiceGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Omit("Category").Create(s).Error
}

// SaveService grava todas as colunas, inclusive valores zero como
// is_active=false.
func (r *ServiceGormRepository) SaveService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Omit("Category").Save(s).Error
}

func (r *ServiceGormRepository) DeleteService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Delete(&models.Service{}, s.ID).Error
}

func (r *ServiceGormRepository) Transaction(
	ctx context.Context,
	fn func(tx catalog.ServiceRepository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ServiceGormRepository{db: tx})
	})
}

var (
	_ catalog.CategoryRepository = (*CategoryGormRepository)(nil)
	_ catalog.ServiceRepository  = (*ServiceGormRepository)(nil)
)
