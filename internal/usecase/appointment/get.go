package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-api/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx)
}

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

// Execute devolve found=false (sem erro) quando o agendamento não existe.
func (uc *GetAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, bool, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, false, err
	}
	return ap, ap != nil, nil
}
