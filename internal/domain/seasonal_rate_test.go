package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeasonalRate_CoversStay(t *testing.T) {
	rate := &SeasonalRate{
		StartDate: date(2026, 12, 20),
		EndDate:   date(2027, 1, 5),
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{"inside period", date(2026, 12, 25), date(2026, 12, 28), true},
		{"starts before period", date(2026, 12, 18), date(2026, 12, 21), true},
		{"last night on end date", date(2027, 1, 5), date(2027, 1, 6), true},
		{"checkout on start date", date(2026, 12, 17), date(2026, 12, 20), false},
		{"checkin after period", date(2027, 1, 6), date(2027, 1, 9), false},
		{"entirely before", date(2026, 11, 1), date(2026, 11, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay := mustRange(t, tt.checkIn, tt.checkOut)
			assert.Equal(t, tt.want, rate.CoversStay(stay))
		})
	}
}

func TestSeasonalRateSet_FindApplicable(t *testing.T) {
	stay := mustRange(t, date(2026, 12, 25), date(2026, 12, 28))

	t.Run("highest priority wins", func(t *testing.T) {
		low := &SeasonalRate{
			ID: 1, Name: "Low Season Boost",
			StartDate: date(2026, 12, 1), EndDate: date(2026, 12, 31),
			RateType: RateTypePercentage, RateValue: 10, Priority: 10, IsActive: true,
		}
		high := &SeasonalRate{
			ID: 2, Name: "Christmas Peak",
			StartDate: date(2026, 12, 20), EndDate: date(2027, 1, 5),
			RateType: RateTypeMultiplier, RateValue: 1.5, Priority: 90, IsActive: true,
		}

		set := NewSeasonalRateSet([]*SeasonalRate{low, high})
		applied := set.FindApplicable(stay, true)
		require.NotNil(t, applied)
		assert.Equal(t, int64(2), applied.ID)
	})

	t.Run("equal priority breaks tie by earlier start date", func(t *testing.T) {
		later := &SeasonalRate{
			ID: 1, Name: "Late",
			StartDate: date(2026, 12, 15), EndDate: date(2026, 12, 31),
			RateType: RateTypePercentage, RateValue: 20, Priority: 50, IsActive: true,
		}
		earlier := &SeasonalRate{
			ID: 2, Name: "Early",
			StartDate: date(2026, 12, 1), EndDate: date(2026, 12, 31),
			RateType: RateTypePercentage, RateValue: 15, Priority: 50, IsActive: true,
		}

		set := NewSeasonalRateSet([]*SeasonalRate{later, earlier})
		applied := set.FindApplicable(stay, true)
		require.NotNil(t, applied)
		assert.Equal(t, int64(2), applied.ID)
	})

	t.Run("inactive rates are skipped", func(t *testing.T) {
		inactive := &SeasonalRate{
			ID: 1, StartDate: date(2026, 12, 1), EndDate: date(2026, 12, 31),
			RateType: RateTypeFixed, RateValue: 900000, Priority: 90, IsActive: false,
		}
		active := &SeasonalRate{
			ID: 2, StartDate: date(2026, 12, 1), EndDate: date(2026, 12, 31),
			RateType: RateTypePercentage, RateValue: 10, Priority: 10, IsActive: true,
		}

		set := NewSeasonalRateSet([]*SeasonalRate{inactive, active})
		applied := set.FindApplicable(stay, false)
		require.NotNil(t, applied)
		assert.Equal(t, int64(2), applied.ID)
	})

	t.Run("weekends-only rate skipped for weekday stay", func(t *testing.T) {
		weekendOnly := &SeasonalRate{
			ID: 1, StartDate: date(2026, 12, 1), EndDate: date(2026, 12, 31),
			RateType: RateTypePercentage, RateValue: 25, Priority: 50,
			AppliesToWeekendsOnly: true, IsActive: true,
		}

		set := NewSeasonalRateSet([]*SeasonalRate{weekendOnly})
		assert.Nil(t, set.FindApplicable(stay, false))
		assert.NotNil(t, set.FindApplicable(stay, true))
	})

	t.Run("applicable days of week filter", func(t *testing.T) {
		// Ночи проживания: пт 25, сб 26, вс 27 декабря 2026
		sundayOnly := &SeasonalRate{
			ID: 1, StartDate: date(2026, 12, 1), EndDate: date(2026, 12, 31),
			RateType: RateTypePercentage, RateValue: 10, Priority: 50,
			ApplicableDaysOfWeek: []int{0}, IsActive: true,
		}
		mondayOnly := &SeasonalRate{
			ID: 2, StartDate: date(2026, 12, 1), EndDate: date(2026, 12, 31),
			RateType: RateTypePercentage, RateValue: 10, Priority: 40,
			ApplicableDaysOfWeek: []int{1}, IsActive: true,
		}

		set := NewSeasonalRateSet([]*SeasonalRate{sundayOnly, mondayOnly})
		applied := set.FindApplicable(stay, true)
		require.NotNil(t, applied)
		assert.Equal(t, int64(1), applied.ID)
	})

	t.Run("no applicable rate", func(t *testing.T) {
		set := NewSeasonalRateSet(nil)
		assert.Nil(t, set.FindApplicable(stay, false))
	})
}
