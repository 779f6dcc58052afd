package models

import "fmt"

// Schedule maps a weekday label to the set of time slots the student is
// available on that day. A day key being present means the day is selected,
// even when its slot list is still empty.
type Schedule map[string][]string

// Weekdays holds the seven day labels in calendar order. Summaries and the
// outgoing registration payload always follow this order, never map order.
var Weekdays = []string{
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
	"Domingo",
}

// FullDaySlots is the complete hourly slot catalog (06:00 through 22:00).
var FullDaySlots = buildSlots(6, 22)

// PlatformSlots is the narrower catalog used by the registration wizard.
var PlatformSlots = buildSlots(8, 20)

func buildSlots(from, to int) []string {
	slots := make([]string, 0, to-from)
	for h := from; h < to; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00 - %02d:00", h, h+1))
	}
	return slots
}

// Clone returns a deep copy so callers can mutate without aliasing.
func (s Schedule) Clone() Schedule {
	if s == nil {
		return nil
	}
	out := make(Schedule, len(s))
	for day, slots := range s {
		copied := make([]string, len(slots))
		copy(copied, slots)
		out[day] = copied
	}
	return out
}
