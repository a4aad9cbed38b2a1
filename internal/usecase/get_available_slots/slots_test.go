package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	"github.com/m04kA/MediCare-Portal/pkg/types"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func ts(values ...string) []types.TimeString {
	out := make([]types.TimeString, len(values))
	for i, v := range values {
		out[i] = types.TimeString(v)
	}
	return out
}

var mondayWindow = []domain.AvailabilityWindow{
	{Day: "Monday", StartTime: "09:00", EndTime: "18:00", IsAvailable: true},
}

func TestCalculateSlots(t *testing.T) {
	// 2026-10-19 - понедельник
	now := date(2026, time.October, 19, 14, 30)
	today := date(2026, time.October, 19, 0, 0)
	nextMonday := date(2026, time.October, 26, 0, 0)
	nextTuesday := date(2026, time.October, 27, 0, 0)

	tests := []struct {
		name    string
		windows []domain.AvailabilityWindow
		date    *time.Time
		want    []types.TimeString
	}{
		{
			name:    "no date selected",
			windows: mondayWindow,
			want:    ts(),
		},
		{
			name:    "today excludes current and past hours",
			windows: mondayWindow,
			date:    &today,
			want:    ts("15:00", "16:00", "17:00"),
		},
		{
			name:    "future date enumerates whole window",
			windows: mondayWindow,
			date:    &nextMonday,
			want:    ts("09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"),
		},
		{
			name:    "no window for weekday",
			windows: mondayWindow,
			date:    &nextTuesday,
			want:    ts(),
		},
		{
			name: "unavailable window is skipped",
			windows: []domain.AvailabilityWindow{
				{Day: "Monday", StartTime: "09:00", EndTime: "12:00", IsAvailable: false},
				{Day: "Monday", StartTime: "13:00", EndTime: "15:00", IsAvailable: true},
			},
			date: &nextMonday,
			want: ts("13:00", "14:00"),
		},
		{
			name: "first matching window wins",
			windows: []domain.AvailabilityWindow{
				{Day: "Monday", StartTime: "10:00", EndTime: "11:00", IsAvailable: true},
				{Day: "Monday", StartTime: "13:00", EndTime: "15:00", IsAvailable: true},
			},
			date: &nextMonday,
			want: ts("10:00"),
		},
		{
			name: "inverted window is not enumerated",
			windows: []domain.AvailabilityWindow{
				{Day: "Monday", StartTime: "18:00", EndTime: "09:00", IsAvailable: true},
			},
			date: &nextMonday,
			want: ts(),
		},
		{
			name: "empty window is not enumerated",
			windows: []domain.AvailabilityWindow{
				{Day: "Monday", StartTime: "10:00", EndTime: "10:30", IsAvailable: true},
			},
			date: &nextMonday,
			want: ts(),
		},
		{
			name: "unparseable window is not enumerated",
			windows: []domain.AvailabilityWindow{
				{Day: "Monday", StartTime: "nine", EndTime: "18:00", IsAvailable: true},
			},
			date: &nextMonday,
			want: ts(),
		},
		{
			name: "fallback range on future date",
			date: &nextTuesday,
			want: ts("09:00", "10:00", "11:00", "12:00", "13:00", "14:00",
				"15:00", "16:00", "17:00", "18:00", "19:00", "20:00"),
		},
		{
			name: "fallback range today",
			date: &today,
			want: ts("15:00", "16:00", "17:00", "18:00", "19:00", "20:00"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateSlots(tt.windows, tt.date, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateSlots_TodayCompareByCalendarDay(t *testing.T) {
	now := date(2026, time.October, 19, 8, 5)
	// та же дата, но другое время суток - всё равно "сегодня"
	sameDay := date(2026, time.October, 19, 23, 59)

	got := CalculateSlots(mondayWindow, &sameDay, now)
	assert.Len(t, got, 9)
	assert.Equal(t, types.TimeString("09:00"), got[0])
}

func TestCalculateSlots_LateEvening(t *testing.T) {
	now := date(2026, time.October, 19, 20, 0)
	today := date(2026, time.October, 19, 0, 0)

	assert.Empty(t, CalculateSlots(nil, &today, now))
	assert.Empty(t, CalculateSlots(mondayWindow, &today, now))
}
