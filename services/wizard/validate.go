package wizard

import (
	"regexp"
	"strings"
	"time"

	"chamba/models"
	"chamba/services/flow"
	"chamba/services/schedule"
)

// Wizard steps in order. StepVerification has no gate of its own; Next on it
// fires the submission instead of advancing.
const (
	StepPersonal = iota
	StepSkills
	StepAcademic
	StepVerification
	StepCount
)

const (
	minAge = 18
	maxAge = 25
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{8}$`)
)

// gateFor returns the validation gate for a step, evaluated against the
// current draft when the sequencer attempts a forward move.
func gateFor(d *models.WizardDraft, step int, now time.Time) flow.Gate {
	switch step {
	case StepPersonal:
		return func() error { return validatePersonal(d.Personal, now) }
	case StepSkills:
		return func() error { return validateSkills(d) }
	case StepAcademic:
		return func() error { return validateAcademic(d.Academic) }
	default:
		return nil
	}
}

func validatePersonal(p models.PersonalInfo, now time.Time) error {
	if strings.TrimSpace(p.FullName) == "" {
		return invalid("fullName", "ingresa tu nombre completo")
	}
	if p.BirthDate == nil {
		return invalid("birthDate", "ingresa tu fecha de nacimiento")
	}
	if !withinAgeRange(*p.BirthDate, now) {
		return invalid("birthDate", "debes tener entre 18 y 25 años")
	}
	if !emailPattern.MatchString(p.Email) {
		return invalid("email", "ingresa un correo válido")
	}
	if !phonePattern.MatchString(p.Phone) {
		return invalid("phone", "el celular debe tener 8 dígitos")
	}
	if strings.TrimSpace(p.City) == "" {
		return invalid("city", "selecciona tu ciudad")
	}
	if strings.TrimSpace(p.Zone) == "" {
		return invalid("zone", "ingresa tu zona")
	}
	if strings.TrimSpace(p.Address) == "" {
		return invalid("address", "ingresa tu dirección")
	}
	return nil
}

// withinAgeRange compares calendar dates, not elapsed years: a student born
// exactly minAge years ago today passes, one day younger does not, and the
// same boundary applies at maxAge.
func withinAgeRange(birth, now time.Time) bool {
	b := time.Date(birth.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, time.Local)
	youngest := time.Date(now.Year()-minAge, now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	oldest := time.Date(now.Year()-maxAge, now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return !b.After(youngest) && !b.Before(oldest)
}

func validateSkills(d *models.WizardDraft) error {
	if len(d.SkillIDs) == 0 {
		return invalid("skills", "selecciona al menos un servicio")
	}
	if d.HasSkill(models.OtherSkillID) && strings.TrimSpace(d.OtherSkills) == "" {
		return invalid("otherSkills", "describe los otros servicios que ofreces")
	}
	if !schedule.HasAnySlot(d.Schedule) {
		return invalid("schedule", "selecciona al menos un horario disponible")
	}
	return nil
}

func validateAcademic(a models.AcademicInfo) error {
	if strings.TrimSpace(a.DocumentURL) == "" {
		return invalid("documentUrl", "sube tu certificado de estudios")
	}
	return nil
}
