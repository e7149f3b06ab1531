package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-api/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
	"github.com/BruksfildServices01/salon-api/internal/models"
	"github.com/BruksfildServices01/salon-api/internal/timezone"
	"github.com/BruksfildServices01/salon-api/internal/validators"
)

// ======================================================
// INPUT (compartilhado por create / update)
// ======================================================

type ScheduleInput struct {
	CustomerID uint      `validate:"required"`
	ServiceID  uint      `validate:"required"`
	StartTime  time.Time `validate:"required"`
	Notes      string    `validate:"max=500"`
}

// validate roda antes de qualquer acesso ao banco e devolve o início
// normalizado em UTC.
func (in ScheduleInput) validate(now time.Time) (time.Time, error) {
	if err := validators.Struct(in); err != nil {
		return time.Time{}, err
	}

	start := timezone.Normalize(in.StartTime)
	if !start.After(now) {
		return time.Time{}, httperr.ErrInvalidArgument(
			httperr.CodeStartInPast,
			"appointment time must be in the future",
		)
	}

	// Horários são gravados em segundos inteiros; truncar adiantaria o início.
	if in.StartTime.Nanosecond() != 0 {
		return time.Time{}, httperr.ErrInvalidArgument(
			httperr.CodeInvalidStartTime,
			"start time must not have fractional seconds",
		)
	}
	return start, nil
}

type slot struct {
	customer *models.Customer
	service  *models.Service
	interval domain.Interval
}

// reserve resolve serviço e cliente, deriva o fim e garante que nenhum
// outro agendamento (exceto excludeID) cruza o intervalo.
func reserve(
	ctx context.Context,
	tx domain.Repository,
	in ScheduleInput,
	start time.Time,
	excludeID uint,
) (*slot, error) {

	// --------------------------------------------------
	// 1️⃣ Serviço
	// --------------------------------------------------
	service, err := tx.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, httperr.ErrNotFound("service", in.ServiceID)
	}

	// --------------------------------------------------
	// 2️⃣ Cliente
	// --------------------------------------------------
	customer, err := tx.GetCustomer(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, httperr.ErrNotFound("customer", in.CustomerID)
	}

	// --------------------------------------------------
	// 3️⃣ Fim derivado da duração
	// --------------------------------------------------
	interval := domain.NewInterval(start, service)

	// --------------------------------------------------
	// 4️⃣ Conflito de horário
	// --------------------------------------------------
	conflicts, err := tx.FindOverlapping(ctx, interval, excludeID)
	if err != nil {
		return nil, err
	}
	for i := range conflicts {
		if interval.Overlaps(domain.IntervalOf(&conflicts[i])) {
			return nil, errTimeConflict()
		}
	}

	return &slot{customer: customer, service: service, interval: interval}, nil
}

func errTimeConflict() error {
	return httperr.ErrConflict(
		httperr.CodeTimeConflict,
		"the requested time slot conflicts with an existing appointment",
	)
}

// isTimeConflict cobre a checagem da aplicação e a EXCLUDE constraint do
// Postgres, que pega a corrida entre duas transações.
func isTimeConflict(err error) bool {
	return httperr.IsBusiness(err, httperr.CodeTimeConflict) || httperr.IsExclusionConflict(err)
}
