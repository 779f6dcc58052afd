package wizard

import (
	"testing"
	"time"

	"chamba/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.August, 31, 12, 0, 0, 0, time.Local)

func validPersonal() models.PersonalInfo {
	birth := testNow.AddDate(-20, 0, 0)
	return models.PersonalInfo{
		FullName:  "Ana Quispe",
		BirthDate: &birth,
		Email:     "ana@example.com",
		Phone:     "75528888",
		City:      "La Paz",
		Zone:      "Sopocachi",
		Address:   "Av. Arce 123",
	}
}

func TestValidatePersonalAccepts(t *testing.T) {
	assert.NoError(t, validatePersonal(validPersonal(), testNow))
}

func TestValidatePersonalRequiredFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*models.PersonalInfo)
	}{
		{"fullName", func(p *models.PersonalInfo) { p.FullName = "  " }},
		{"birthDate", func(p *models.PersonalInfo) { p.BirthDate = nil }},
		{"email", func(p *models.PersonalInfo) { p.Email = "not-an-email" }},
		{"email", func(p *models.PersonalInfo) { p.Email = "a@b" }},
		{"phone", func(p *models.PersonalInfo) { p.Phone = "123" }},
		{"phone", func(p *models.PersonalInfo) { p.Phone = "755288889" }},
		{"city", func(p *models.PersonalInfo) { p.City = "" }},
		{"zone", func(p *models.PersonalInfo) { p.Zone = "" }},
		{"address", func(p *models.PersonalInfo) { p.Address = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			p := validPersonal()
			tt.mutate(&p)
			err := validatePersonal(p, testNow)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestAgeBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		want  bool
	}{
		{"one day short of 18 rejected", testNow.AddDate(-18, 0, 1), false},
		{"exactly 18 accepted", testNow.AddDate(-18, 0, 0), true},
		{"exactly 25 accepted", testNow.AddDate(-25, 0, 0), true},
		{"25 years and one day rejected", testNow.AddDate(-25, 0, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withinAgeRange(tt.birth, testNow))
		})
	}
}

func TestValidateSkills(t *testing.T) {
	base := func() *models.WizardDraft {
		return &models.WizardDraft{
			SkillIDs: []string{"limpieza-hogar"},
			Schedule: models.Schedule{"Lunes": {"08:00 - 09:00"}},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validateSkills(base()))
	})

	t.Run("no skills", func(t *testing.T) {
		d := base()
		d.SkillIDs = nil
		assert.Error(t, validateSkills(d))
	})

	t.Run("other skill needs description", func(t *testing.T) {
		d := base()
		d.SkillIDs = append(d.SkillIDs, models.OtherSkillID)
		assert.Error(t, validateSkills(d))

		d.OtherSkills = "Armado de muebles"
		assert.NoError(t, validateSkills(d))
	})

	t.Run("day selected with zero slots does not pass", func(t *testing.T) {
		d := base()
		d.Schedule = models.Schedule{"Lunes": {}}
		assert.Error(t, validateSkills(d))
	})
}

func TestValidateAcademic(t *testing.T) {
	assert.Error(t, validateAcademic(models.AcademicInfo{}))
	assert.NoError(t, validateAcademic(models.AcademicInfo{
		DocumentURL: "https://res.cloudinary.com/chamba/certificado.pdf",
	}))
}

func TestVerificationStepHasNoGate(t *testing.T) {
	assert.Nil(t, gateFor(&models.WizardDraft{}, StepVerification, testNow))
}
