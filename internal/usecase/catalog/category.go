package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	domain "github.com/BruksfildServices01/salon-api/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
	"github.com/BruksfildServices01/salon-api/internal/models"
	"github.com/BruksfildServices01/salon-api/internal/validators"
)

type CategoryInput struct {
	Title       string `validate:"required,max=100"`
	Description string `validate:"max=500"`
}

func (in CategoryInput) normalized() CategoryInput {
	return CategoryInput{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
	}
}

// Categories agrupa o CRUD de categorias de serviço.
type Categories struct {
	repo  domain.CategoryRepository
	audit *audit.Dispatcher
}

func NewCategories(repo domain.CategoryRepository, audit *audit.Dispatcher) *Categories {
	return &Categories{repo: repo, audit: audit}
}

func (uc *Categories) List(ctx context.Context) ([]models.ServiceCategory, error) {
	return uc.repo.ListCategories(ctx)
}

// Get devolve a categoria com seus serviços.
func (uc *Categories) Get(ctx context.Context, id uint) (*models.ServiceCategory, bool, error) {
	c, err := uc.repo.GetCategoryWithServices(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return c, c != nil, nil
}

func (uc *Categories) Create(ctx context.Context, in CategoryInput) (*models.ServiceCategory, error) {
	in = in.normalized()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	c := &models.ServiceCategory{
		Title:       in.Title,
		Description: in.Description,
	}
	if err := uc.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "service_category_created",
		Entity:   "service_category",
		EntityID: audit.EntityID(c.ID),
	})

	return c, nil
}

func (uc *Categories) Update(
	ctx context.Context,
	id uint,
	in CategoryInput,
) (*models.ServiceCategory, error) {

	in = in.normalized()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	c, err := uc.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, httperr.ErrNotFound("service_category", id)
	}

	c.Title = in.Title
	c.Description = in.Description

	if err := uc.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "service_category_updated",
		Entity:   "service_category",
		EntityID: audit.EntityID(c.ID),
	})

	return c, nil
}

// Delete só remove categorias vazias; checagem e remoção na mesma transação.
func (uc *Categories) Delete(ctx context.Context, id uint) error {
	err := uc.repo.Transaction(ctx, func(tx domain.CategoryRepository) error {
		c, err := tx.GetCategory(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return httperr.ErrNotFound("service_category", id)
		}

		n, err := tx.CountServicesInCategory(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return httperr.ErrConflict(
				httperr.CodeCategoryHasServices,
				"cannot delete category with associated services",
			)
		}

		return tx.DeleteCategory(ctx, c)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "service_category_deleted",
		Entity:   "service_category",
		EntityID: audit.EntityID(id),
	})

	return nil
}
