package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-api/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-api/internal/models"
	ucAppointment "github.com/BruksfildServices01/salon-api/internal/usecase/appointment"
)

type AppointmentRequest struct {
	CustomerID uint      `json:"customer_id" binding:"required"`
	ServiceID  uint      `json:"service_id" binding:"required"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	Notes      string    `json:"notes"`
}

func (r AppointmentRequest) ToInput() ucAppointment.ScheduleInput {
	return ucAppointment.ScheduleInput{
		CustomerID: r.CustomerID,
		ServiceID:  r.ServiceID,
		StartTime:  r.StartTime,
		Notes:      r.Notes,
	}
}

type AppointmentDTO struct {
	ID           uint            `json:"id"`
	CustomerID   uint            `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	ServiceID    uint            `json:"service_id"`
	ServiceName  string          `json:"service_name"`
	ServicePrice decimal.Decimal `json:"service_price"`
	StartTime    time.Time       `json:"start_time"`
	EndTime      time.Time       `json:"end_time"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes"`
}

// NewAppointmentDTO espera Customer e Service carregados.
func NewAppointmentDTO(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:           ap.ID,
		CustomerID:   ap.CustomerID,
		CustomerName: ap.Customer.FullName(),
		ServiceID:    ap.ServiceID,
		ServiceName:  ap.Service.Title,
		ServicePrice: catalog.EffectivePrice(&ap.Service),
		StartTime:    ap.StartTime.UTC(),
		EndTime:      ap.EndTime.UTC(),
		Status:       ap.Status,
		Notes:        ap.Notes,
	}
}

func NewAppointmentDTOs(list []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(list))
	for i := range list {
		out = append(out, NewAppointmentDTO(&list[i]))
	}
	return out
}
