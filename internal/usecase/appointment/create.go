package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	domain "github.com/BruksfildServices01/salon-api/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-api/internal/models"
	"github.com/BruksfildServices01/salon-api/internal/timezone"
)

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in ScheduleInput,
) (*models.Appointment, error) {

	start, err := in.validate(uc.now())
	if err != nil {
		return nil, err
	}

	var created *models.Appointment

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		s, err := reserve(ctx, tx, in, start, 0)
		if err != nil {
			return err
		}

		ap := &models.Appointment{
			CustomerID: s.customer.ID,
			ServiceID:  s.service.ID,
			StartTime:  s.interval.Start,
			EndTime:    s.interval.End,
			Status:     string(domain.InitialStatus()),
			Notes:      in.Notes,
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		ap.Customer = *s.customer
		ap.Service = *s.service
		created = ap
		return nil
	})

	if err != nil {
		if isTimeConflict(err) {
			uc.audit.Dispatch(ctx, audit.Event{
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"service_id":  in.ServiceID,
					"customer_id": in.CustomerID,
					"start":       start,
				},
			})
			return nil, errTimeConflict()
		}
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: audit.EntityID(created.ID),
	})

	return created, nil
}
