package schedule

import (
	"fmt"
	"strings"

	"chamba/models"
)

// ToggleDay selects a day (with an empty slot set) or, if already selected,
// removes it together with its slots. The input schedule is never mutated.
func ToggleDay(s models.Schedule, day string) models.Schedule {
	out := clone(s)
	if _, ok := out[day]; ok {
		delete(out, day)
		return out
	}
	out[day] = []string{}
	return out
}

// SetDaySlots replaces the slot set for a day, adding the day key when absent.
// Used by per-slot selection and by "select all hours".
func SetDaySlots(s models.Schedule, day string, slots []string) models.Schedule {
	out := clone(s)
	copied := make([]string, len(slots))
	copy(copied, slots)
	out[day] = copied
	return out
}

// ClearDay removes the day key entirely. This is the trash action: the day
// becomes unselected, not merely emptied.
func ClearDay(s models.Schedule, day string) models.Schedule {
	out := clone(s)
	delete(out, day)
	return out
}

// DuplicateDay copies the source day's slots onto the target day, creating the
// target when absent and overwriting when present. When the source has no
// slots the schedule is returned unchanged.
func DuplicateDay(s models.Schedule, sourceDay, targetDay string) models.Schedule {
	src, ok := s[sourceDay]
	if !ok || len(src) == 0 {
		return clone(s)
	}
	out := clone(s)
	copied := make([]string, len(src))
	copy(copied, src)
	out[targetDay] = copied
	return out
}

// DaysWithSlots returns, in weekday order, the selected days that already have
// at least one slot. excluding (optional, empty to skip) filters out one day;
// the copy-from menu uses it to hide the day being edited.
func DaysWithSlots(s models.Schedule, excluding string) []string {
	var days []string
	for _, day := range models.Weekdays {
		if day == excluding {
			continue
		}
		if slots, ok := s[day]; ok && len(slots) > 0 {
			days = append(days, day)
		}
	}
	return days
}

// HasAnySlot reports whether at least one selected day has a non-empty slot
// set. A day selected with zero slots does not count.
func HasAnySlot(s models.Schedule) bool {
	for _, slots := range s {
		if len(slots) > 0 {
			return true
		}
	}
	return false
}

// Summarize renders a review listing, one line per selected day in weekday
// order, e.g. "Lunes: 08:00 - 09:00, 09:00 - 10:00".
func Summarize(s models.Schedule) []string {
	var lines []string
	for _, day := range models.Weekdays {
		slots, ok := s[day]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", day, strings.Join(slots, ", ")))
	}
	return lines
}

// ValidSlots reports whether every slot belongs to the given catalog.
func ValidSlots(slots, catalog []string) bool {
	for _, slot := range slots {
		if !contains(catalog, slot) {
			return false
		}
	}
	return true
}

// ValidDay reports whether the label is one of the seven weekdays.
func ValidDay(day string) bool {
	return contains(models.Weekdays, day)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func clone(s models.Schedule) models.Schedule {
	if s == nil {
		return models.Schedule{}
	}
	return s.Clone()
}
