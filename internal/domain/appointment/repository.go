package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-api/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	GetService(ctx context.Context, id uint) (*models.Service, error)
	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)

	// -------- Appointment (read) --------
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	// -------- Appointment (conflict / write) --------

	// FindOverlapping devolve agendamentos cujo [start, end) cruza o
	// intervalo dado, ignorando excludeID quando diferente de zero.
	FindOverlapping(ctx context.Context, in Interval, excludeID uint) ([]models.Appointment, error)

	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, ap *models.Appointment) error

	// Transaction executa fn numa única transação; fn recebe um
	// repositório ligado a ela.
	Transaction(ctx context.Context, fn func(tx Repository) error) error
}
