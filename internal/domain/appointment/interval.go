package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-api/internal/models"
)

// Interval é um intervalo semiaberto [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// EndTime deriva o fim do atendimento a partir da duração do serviço.
func EndTime(start time.Time, durationMinutes int) time.Time {
	return start.Add(time.Duration(durationMinutes) * time.Minute)
}

func NewInterval(start time.Time, service *models.Service) Interval {
	return Interval{Start: start, End: EndTime(start, service.DurationMinutes)}
}

// Overlaps: s1 < e2 AND s2 < e1. Extremos que se tocam não conflitam.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

func IntervalOf(ap *models.Appointment) Interval {
	return Interval{Start: ap.StartTime, End: ap.EndTime}
}
