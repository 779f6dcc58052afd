package models

import "time"

// PersonalInfo holds the fields collected on the first wizard step.
type PersonalInfo struct {
	FullName  string     `json:"fullName"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	City      string     `json:"city"`
	Zone      string     `json:"zone"`
	Address   string     `json:"address"`
}

// AcademicInfo holds the fields collected on the third wizard step. The
// document is uploaded to the file service separately; only the returned URL
// is ever stored in the draft.
type AcademicInfo struct {
	University   string `json:"university"`
	Career       string `json:"career"`
	Semester     string `json:"semester"`
	DocumentURL  string `json:"documentUrl"`
	PaymentQRURL string `json:"paymentQrUrl,omitempty"`
}

// WizardDraft is the full accumulated registration state across all steps.
// It is serialized to the draft store on every mutation so a crash or reload
// never loses more than the last change.
type WizardDraft struct {
	StudentID     string       `json:"studentId"`
	Personal      PersonalInfo `json:"personal"`
	SkillIDs      []string     `json:"skillIds"`
	OtherSkills   string       `json:"otherSkills,omitempty"`
	Schedule      Schedule     `json:"schedule"`
	Academic      AcademicInfo `json:"academic"`
	StepIndex     int          `json:"stepIndex"`
	Submitted     bool         `json:"submitted"`
	CreatedAt     time.Time    `json:"createdAt"`
	LastUpdatedAt time.Time    `json:"lastUpdatedAt"`
}

// HasSkill reports whether the given skill is currently selected.
func (d *WizardDraft) HasSkill(id string) bool {
	for _, s := range d.SkillIDs {
		if s == id {
			return true
		}
	}
	return false
}
