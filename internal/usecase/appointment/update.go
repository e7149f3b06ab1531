package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	domain "github.com/BruksfildServices01/salon-api/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
	"github.com/BruksfildServices01/salon-api/internal/models"
	"github.com/BruksfildServices01/salon-api/internal/timezone"
)

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

// Execute sobrescreve cliente, serviço, horários e notas. O status
// nunca é alterado aqui.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	in ScheduleInput,
) (*models.Appointment, error) {

	start, err := in.validate(uc.now())
	if err != nil {
		return nil, err
	}

	var updated *models.Appointment

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return err
		}
		if ap == nil {
			return httperr.ErrNotFound("appointment", appointmentID)
		}

		s, err := reserve(ctx, tx, in, start, ap.ID)
		if err != nil {
			return err
		}

		ap.CustomerID = s.customer.ID
		ap.ServiceID = s.service.ID
		ap.StartTime = s.interval.Start
		ap.EndTime = s.interval.End
		ap.Notes = in.Notes

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		ap.Customer = *s.customer
		ap.Service = *s.service
		updated = ap
		return nil
	})

	if err != nil {
		if isTimeConflict(err) {
			uc.audit.Dispatch(ctx, audit.Event{
				Action:   "appointment_conflict",
				Entity:   "appointment",
				EntityID: audit.EntityID(appointmentID),
				Metadata: map[string]any{"start": start},
			})
			return nil, errTimeConflict()
		}
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: audit.EntityID(updated.ID),
	})

	return updated, nil
}
