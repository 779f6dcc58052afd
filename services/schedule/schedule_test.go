package schedule

import (
	"testing"

	"chamba/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleDay(t *testing.T) {
	s := models.Schedule{}

	s = ToggleDay(s, "Lunes")
	slots, ok := s["Lunes"]
	require.True(t, ok, "day should be selected after toggle")
	assert.Empty(t, slots, "freshly selected day starts with no slots")

	s = SetDaySlots(s, "Lunes", []string{"08:00 - 09:00"})
	s = ToggleDay(s, "Lunes")
	_, ok = s["Lunes"]
	assert.False(t, ok, "toggling a selected day removes it and its slots")
}

func TestToggleDayDoesNotMutateInput(t *testing.T) {
	original := models.Schedule{"Martes": {"10:00 - 11:00"}}
	_ = ToggleDay(original, "Martes")
	assert.Contains(t, original, "Martes")
}

func TestSetDaySlotsAddsAbsentDay(t *testing.T) {
	s := SetDaySlots(models.Schedule{}, "Sábado", models.PlatformSlots)
	assert.Len(t, s["Sábado"], len(models.PlatformSlots))
}

func TestClearDayRemovesKeyEntirely(t *testing.T) {
	s := models.Schedule{"Jueves": {}}
	s = ClearDay(s, "Jueves")
	_, ok := s["Jueves"]
	assert.False(t, ok, "clear must unselect the day, not just empty it")
}

func TestDuplicateDay(t *testing.T) {
	tests := []struct {
		name     string
		schedule models.Schedule
		source   string
		target   string
		want     []string
		wantKey  bool
	}{
		{
			name:     "copies slots onto absent target",
			schedule: models.Schedule{"Lunes": {"08:00 - 09:00", "09:00 - 10:00"}},
			source:   "Lunes",
			target:   "Viernes",
			want:     []string{"08:00 - 09:00", "09:00 - 10:00"},
			wantKey:  true,
		},
		{
			name:     "overwrites existing target",
			schedule: models.Schedule{"Lunes": {"08:00 - 09:00"}, "Martes": {"15:00 - 16:00"}},
			source:   "Lunes",
			target:   "Martes",
			want:     []string{"08:00 - 09:00"},
			wantKey:  true,
		},
		{
			name:     "no-op when source absent",
			schedule: models.Schedule{"Martes": {"15:00 - 16:00"}},
			source:   "Lunes",
			target:   "Miércoles",
			wantKey:  false,
		},
		{
			name:     "no-op when source selected but empty",
			schedule: models.Schedule{"Lunes": {}},
			source:   "Lunes",
			target:   "Miércoles",
			wantKey:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DuplicateDay(tt.schedule, tt.source, tt.target)
			slots, ok := got[tt.target]
			assert.Equal(t, tt.wantKey, ok)
			if tt.wantKey {
				assert.Equal(t, tt.want, slots)
			}
		})
	}
}

func TestDuplicateDayCopiesNotAliases(t *testing.T) {
	s := models.Schedule{"Lunes": {"08:00 - 09:00"}}
	got := DuplicateDay(s, "Lunes", "Martes")
	got["Martes"][0] = "mutated"
	assert.Equal(t, "08:00 - 09:00", got["Lunes"][0])
}

func TestDaysWithSlots(t *testing.T) {
	s := models.Schedule{
		"Domingo": {"08:00 - 09:00"},
		"Lunes":   {"09:00 - 10:00"},
		"Martes":  {},
	}

	assert.Equal(t, []string{"Lunes", "Domingo"}, DaysWithSlots(s, ""),
		"weekday order, empty-slot days excluded")
	assert.Equal(t, []string{"Domingo"}, DaysWithSlots(s, "Lunes"))
}

func TestHasAnySlot(t *testing.T) {
	assert.False(t, HasAnySlot(models.Schedule{}))
	assert.False(t, HasAnySlot(models.Schedule{"Lunes": {}}),
		"a selected day with zero slots does not satisfy the gate")
	assert.True(t, HasAnySlot(models.Schedule{"Lunes": {}, "Martes": {"08:00 - 09:00"}}))
}

func TestSummarizeFollowsWeekdayOrder(t *testing.T) {
	s := models.Schedule{
		"Viernes": {"18:00 - 19:00"},
		"Lunes":   {"08:00 - 09:00", "09:00 - 10:00"},
	}

	lines := Summarize(s)
	require.Len(t, lines, 2)
	assert.Equal(t, "Lunes: 08:00 - 09:00, 09:00 - 10:00", lines[0])
	assert.Equal(t, "Viernes: 18:00 - 19:00", lines[1])
}

func TestValidSlots(t *testing.T) {
	assert.True(t, ValidSlots([]string{"08:00 - 09:00"}, models.PlatformSlots))
	assert.False(t, ValidSlots([]string{"06:00 - 07:00"}, models.PlatformSlots),
		"full-day slot is outside the platform catalog")
	assert.True(t, ValidSlots([]string{"06:00 - 07:00"}, models.FullDaySlots))
}
