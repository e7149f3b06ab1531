package timezone

import "time"

// Todos os horários do salão são persistidos e comparados em UTC,
// com precisão de segundos.

func Now() time.Time {
	return Normalize(time.Now())
}

// Normalize converte para UTC e descarta frações de segundo.
func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// StartOfDay devolve 00:00 UTC do dia de t.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
