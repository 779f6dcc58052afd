package wizard

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"chamba/models"
)

const (
	// countryPrefix is prepended to bare 8-digit Bolivian numbers.
	countryPrefix = "+591-"
	// noClassSchedule stands in when no day has any slot configured.
	noClassSchedule = "Sin horario definido"
	// noPaymentQR marks a skipped optional QR upload.
	noPaymentQR = "QR_PENDIENTE"
)

var barePhonePattern = regexp.MustCompile(`^\d{8}$`)

// AssemblePayload normalizes a finished draft into the registration record.
// Normalization never rejects: missing days are filled in, odd phone formats
// pass through untouched.
func AssemblePayload(d *models.WizardDraft) models.RegistrationPayload {
	p := models.RegistrationPayload{
		FullName:      d.Personal.FullName,
		Email:         d.Personal.Email,
		Phone:         NormalizePhone(d.Personal.Phone),
		City:          d.Personal.City,
		Zone:          d.Personal.Zone,
		Address:       d.Personal.Address,
		SkillIDs:      append([]string(nil), d.SkillIDs...),
		OtherSkills:   d.OtherSkills,
		Schedule:      NormalizeSchedule(d.Schedule),
		ClassSchedule: ClassScheduleString(d.Schedule),
		University:    d.Academic.University,
		Career:        d.Academic.Career,
		Semester:      d.Academic.Semester,
		DocumentURL:   d.Academic.DocumentURL,
		PaymentQR:     d.Academic.PaymentQRURL,
	}
	if d.Personal.BirthDate != nil {
		p.BirthDate = FormatBirthDate(*d.Personal.BirthDate)
	}
	if p.PaymentQR == "" {
		p.PaymentQR = noPaymentQR
	}
	return p
}

// NormalizeSchedule returns a schedule carrying all seven weekday keys,
// filling the ones the student never selected with empty slot sets.
func NormalizeSchedule(s models.Schedule) models.Schedule {
	out := make(models.Schedule, len(models.Weekdays))
	for _, day := range models.Weekdays {
		slots := s[day]
		copied := make([]string, len(slots))
		copy(copied, slots)
		out[day] = copied
	}
	return out
}

// ClassScheduleString renders the human-readable availability summary, e.g.
// "Lunes de 08:00 - 09:00, 09:00 - 10:00; Viernes de 18:00 - 19:00". Days
// without slots are skipped; with none at all, a fixed placeholder is used.
func ClassScheduleString(s models.Schedule) string {
	var parts []string
	for _, day := range models.Weekdays {
		slots, ok := s[day]
		if !ok || len(slots) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s de %s", day, strings.Join(slots, ", ")))
	}
	if len(parts) == 0 {
		return noClassSchedule
	}
	return strings.Join(parts, "; ")
}

// NormalizePhone prefixes the country code onto bare 8-digit numbers.
// Anything else, including numbers already carrying the prefix, passes
// through unchanged.
func NormalizePhone(phone string) string {
	if barePhonePattern.MatchString(phone) {
		return countryPrefix + phone
	}
	return phone
}

// FormatBirthDate renders YYYY-MM-DD from local calendar fields. Converting
// through UTC could shift the date by a day for students east of Greenwich.
func FormatBirthDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}
