package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) DateRange {
	t.Helper()
	r, err := NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		r, err := NewDateRange(date(2026, 7, 10), date(2026, 7, 13))
		require.NoError(t, err)
		assert.Equal(t, 3, r.Nights())
		assert.Equal(t, date(2026, 7, 10), r.Start())
		assert.Equal(t, date(2026, 7, 13), r.End())
	})

	t.Run("single night", func(t *testing.T) {
		r, err := NewDateRange(date(2026, 7, 10), date(2026, 7, 11))
		require.NoError(t, err)
		assert.Equal(t, 1, r.Nights())
	})

	t.Run("checkout equals checkin", func(t *testing.T) {
		_, err := NewDateRange(date(2026, 7, 10), date(2026, 7, 10))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("checkout before checkin", func(t *testing.T) {
		_, err := NewDateRange(date(2026, 7, 13), date(2026, 7, 10))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("time component is truncated", func(t *testing.T) {
		start := time.Date(2026, 7, 10, 15, 30, 0, 0, time.UTC)
		end := time.Date(2026, 7, 12, 9, 0, 0, 0, time.UTC)
		r, err := NewDateRange(start, end)
		require.NoError(t, err)
		assert.Equal(t, date(2026, 7, 10), r.Start())
		assert.Equal(t, 2, r.Nights())
	})
}

func TestDateRange_Overlaps(t *testing.T) {
	base := mustRange(t, date(2026, 7, 10), date(2026, 7, 13))

	tests := []struct {
		name  string
		other DateRange
		want  bool
	}{
		{"identical", mustRange(t, date(2026, 7, 10), date(2026, 7, 13)), true},
		{"contained", mustRange(t, date(2026, 7, 11), date(2026, 7, 12)), true},
		{"partial left", mustRange(t, date(2026, 7, 8), date(2026, 7, 11)), true},
		{"partial right", mustRange(t, date(2026, 7, 12), date(2026, 7, 15)), true},
		{"same-day turnover before", mustRange(t, date(2026, 7, 7), date(2026, 7, 10)), false},
		{"same-day turnover after", mustRange(t, date(2026, 7, 13), date(2026, 7, 16)), false},
		{"disjoint", mustRange(t, date(2026, 8, 1), date(2026, 8, 5)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestDateRange_EachNight(t *testing.T) {
	r := mustRange(t, date(2026, 7, 10), date(2026, 7, 13))

	var nights []time.Time
	r.EachNight(func(night time.Time) {
		nights = append(nights, night)
	})

	require.Len(t, nights, 3)
	assert.Equal(t, date(2026, 7, 10), nights[0])
	assert.Equal(t, date(2026, 7, 12), nights[2])
}

func TestDateRange_NightWeekdays(t *testing.T) {
	// 2026-07-10 пятница, 2026-07-11 суббота
	r := mustRange(t, date(2026, 7, 10), date(2026, 7, 12))

	weekdays := r.NightWeekdays()
	assert.True(t, weekdays[time.Friday])
	assert.True(t, weekdays[time.Saturday])
	assert.False(t, weekdays[time.Sunday])
}
