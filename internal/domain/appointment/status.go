package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "Scheduled"
)

// InitialStatus é o status de todo agendamento recém-criado.
func InitialStatus() Status {
	return StatusScheduled
}
