package catalog

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	domain "github.com/BruksfildServices01/salon-api/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
	"github.com/BruksfildServices01/salon-api/internal/models"
	"github.com/BruksfildServices01/salon-api/internal/validators"
)

// ServiceInput serve para create e update. Em create os campos de
// status e promoção são ignorados.
type ServiceInput struct {
	Title           string          `validate:"required,max=100"`
	Description     string          `validate:"required,max=500"`
	Price           decimal.Decimal `validate:"-"`
	DurationMinutes int             `validate:"gte=0"`
	CategoryID      uint            `validate:"gt=0"`

	IsActive         *bool
	IsPromotional    *bool
	PromotionalPrice *decimal.Decimal
}

func (in ServiceInput) validate() error {
	if err := validators.Struct(in); err != nil {
		return err
	}
	if !in.Price.IsPositive() {
		return httperr.ErrInvalidArgument(httperr.CodeInvalidRequest, "price must be greater than 0")
	}
	return nil
}

type Services struct {
	repo  domain.ServiceRepository
	audit *audit.Dispatcher
}

func NewServices(repo domain.ServiceRepository, audit *audit.Dispatcher) *Services {
	return &Services{repo: repo, audit: audit}
}

// ======================================================
// READ
// ======================================================

func (uc *Services) List(ctx context.Context) ([]models.Service, error) {
	return uc.repo.ListServices(ctx, domain.ServiceFilter{})
}

func (uc *Services) Get(ctx context.Context, id uint) (*models.Service, bool, error) {
	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return s, s != nil, nil
}

func (uc *Services) ByCategory(ctx context.Context, categoryID uint) ([]models.Service, error) {
	return uc.repo.ListServices(ctx, domain.ServiceFilter{
		CategoryID: &categoryID,
		ActiveOnly: true,
	})
}

func (uc *Services) ActivePromotions(ctx context.Context) ([]models.Service, error) {
	return uc.repo.ListServices(ctx, domain.ServiceFilter{
		ActiveOnly:  true,
		Promotional: true,
	})
}

// Search procura em título, descrição e título da categoria, sem
// diferenciar maiúsculas.
func (uc *Services) Search(ctx context.Context, term string) ([]models.Service, error) {
	return uc.repo.ListServices(ctx, domain.ServiceFilter{
		ActiveOnly: true,
		Search:     term,
	})
}

// PriceRange filtra pelo preço efetivo, limites inclusivos.
func (uc *Services) PriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]models.Service, error) {
	if minPrice.GreaterThan(maxPrice) {
		return nil, httperr.ErrInvalidArgument(
			httperr.CodeInvalidRequest,
			"min price cannot be greater than max price",
		)
	}
	return uc.repo.ListServices(ctx, domain.ServiceFilter{
		ActiveOnly: true,
		MinPrice:   &minPrice,
		MaxPrice:   &maxPrice,
	})
}

// ======================================================
// WRITE
// ======================================================

// Create sempre nasce ativo e sem promoção.
func (uc *Services) Create(ctx context.Context, in ServiceInput) (*models.Service, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if err := in.validate(); err != nil {
		return nil, err
	}

	if err := uc.ensureCategory(ctx, uc.repo, in.CategoryID); err != nil {
		return nil, err
	}

	s := &models.Service{
		Title:           in.Title,
		Description:     in.Description,
		Price:           in.Price,
		DurationMinutes: in.DurationMinutes,
		CategoryID:      in.CategoryID,
		IsActive:        true,
		IsPromotional:   false,
	}

	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}

	uc.dispatch(ctx, "service_created", s.ID, nil)
	return uc.reload(ctx, s)
}

// Update sobrescreve todos os campos. IsActive ausente vira true e
// IsPromotional ausente vira false.
func (uc *Services) Update(ctx context.Context, id uint, in ServiceInput) (*models.Service, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if err := in.validate(); err != nil {
		return nil, err
	}

	s, err := uc.mustGet(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}

	if err := uc.ensureCategory(ctx, uc.repo, in.CategoryID); err != nil {
		return nil, err
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	isPromotional := false
	if in.IsPromotional != nil {
		isPromotional = *in.IsPromotional
	}
	var promo decimal.NullDecimal
	if in.PromotionalPrice != nil {
		promo = decimal.NewNullDecimal(*in.PromotionalPrice)
	}

	if err := domain.ValidatePromotion(in.Price, isPromotional, promo); err != nil {
		return nil, err
	}

	s.Title = in.Title
	s.Description = in.Description
	s.Price = in.Price
	s.DurationMinutes = in.DurationMinutes
	s.CategoryID = in.CategoryID
	s.IsActive = isActive
	s.IsPromotional = isPromotional
	s.PromotionalPrice = promo

	if err := uc.repo.SaveService(ctx, s); err != nil {
		return nil, err
	}

	uc.dispatch(ctx, "service_updated", s.ID, nil)
	return uc.reload(ctx, s)
}

// Delete desativa o serviço quando há agendamentos apontando para ele;
// caso contrário remove. deactivated indica qual caminho foi tomado.
func (uc *Services) Delete(ctx context.Context, id uint) (deactivated bool, err error) {
	err = uc.repo.Transaction(ctx, func(tx domain.ServiceRepository) error {
		s, err := uc.mustGet(ctx, tx, id)
		if err != nil {
			return err
		}

		n, err := tx.CountAppointmentsForService(ctx, id)
		if err != nil {
			return err
		}

		if n > 0 {
			deactivated = true
			s.IsActive = false
			return tx.SaveService(ctx, s)
		}
		return tx.DeleteService(ctx, s)
	})
	if err != nil {
		return false, err
	}

	action := "service_deleted"
	if deactivated {
		action = "service_deactivated"
	}
	uc.dispatch(ctx, action, id, nil)

	return deactivated, nil
}

// SetPromotionalPrice com nil encerra a promoção.
func (uc *Services) SetPromotionalPrice(
	ctx context.Context,
	id uint,
	promo *decimal.Decimal,
) (*models.Service, error) {

	s, err := uc.mustGet(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}

	if err := domain.ApplyPromotion(s, promo); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveService(ctx, s); err != nil {
		return nil, err
	}

	var meta map[string]any
	if promo != nil {
		meta = map[string]any{"promotional_price": promo.StringFixed(2)}
	}
	uc.dispatch(ctx, "service_promotion_changed", s.ID, meta)

	return s, nil
}

func (uc *Services) Activate(ctx context.Context, id uint) error {
	return uc.setActive(ctx, id, true)
}

func (uc *Services) Deactivate(ctx context.Context, id uint) error {
	return uc.setActive(ctx, id, false)
}

func (uc *Services) setActive(ctx context.Context, id uint, active bool) error {
	s, err := uc.mustGet(ctx, uc.repo, id)
	if err != nil {
		return err
	}

	s.IsActive = active
	if err := uc.repo.SaveService(ctx, s); err != nil {
		return err
	}

	action := "service_activated"
	if !active {
		action = "service_deactivated"
	}
	uc.dispatch(ctx, action, id, nil)
	return nil
}

// ======================================================
// helpers
// ======================================================

func (uc *Services) mustGet(ctx context.Context, repo domain.ServiceRepository, id uint) (*models.Service, error) {
	s, err := repo.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, httperr.ErrNotFound("service", id)
	}
	return s, nil
}

func (uc *Services) ensureCategory(ctx context.Context, repo domain.ServiceRepository, id uint) error {
	ok, err := repo.CategoryExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrNotFound("service_category", id)
	}
	return nil
}

// reload traz a categoria para o DTO de resposta.
func (uc *Services) reload(ctx context.Context, s *models.Service) (*models.Service, error) {
	fresh, err := uc.repo.GetService(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		return s, nil
	}
	return fresh, nil
}

func (uc *Services) dispatch(ctx context.Context, action string, id uint, meta map[string]any) {
	ev := audit.Event{
		Action:   action,
		Entity:   "service",
		EntityID: audit.EntityID(id),
	}
	if meta != nil {
		ev.Metadata = meta
	}
	uc.audit.Dispatch(ctx, ev)
}
