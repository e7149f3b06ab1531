package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_ConvertsToUTCAndTruncates(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	in := time.Date(2026, 3, 10, 9, 30, 15, 987654321, loc)

	out := Normalize(in)

	assert.Equal(t, time.UTC, out.Location())
	assert.Equal(t, time.Date(2026, 3, 10, 12, 30, 15, 0, time.UTC), out)
	assert.True(t, in.Truncate(time.Second).Equal(out))
}

func TestNow_IsUTCWholeSecond(t *testing.T) {
	now := Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.Equal(t, 0, now.Nanosecond())
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), StartOfDay(in))

	// 22:00 em BRT já é o dia seguinte em UTC
	brt := time.Date(2026, 3, 10, 22, 0, 0, 0, time.FixedZone("BRT", -3*60*60))
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), StartOfDay(brt))
}
