package wizard

import "chamba/models"

// WizardService drives the guarded multi-step registration flow. Every
// mutation persists the full draft before returning, so the flow survives
// reloads and crashes with at most the last change lost.
type WizardService interface {
	// Start loads the student's saved draft or creates a fresh one.
	Start(identity models.AuthIdentity) (*models.WizardDraft, error)
	// Get returns the current draft.
	Get(studentID string) (*models.WizardDraft, error)

	// UpdatePersonal stores the personal-info step fields.
	UpdatePersonal(studentID string, p models.PersonalInfo) (*models.WizardDraft, error)
	// SetSkills replaces the skill selection. Clearing it to empty also
	// clears the schedule and the freeform description.
	SetSkills(studentID string, skillIDs []string, otherSkills string) (*models.WizardDraft, error)
	// UpdateAcademic stores the academic step fields.
	UpdateAcademic(studentID string, a models.AcademicInfo) (*models.WizardDraft, error)

	// Availability mutations for the skills step.
	ToggleDay(studentID, day string) (*models.WizardDraft, error)
	SetDaySlots(studentID, day string, slots []string) (*models.WizardDraft, error)
	ClearDay(studentID, day string) (*models.WizardDraft, error)
	DuplicateDay(studentID, sourceDay, targetDay string) (*models.WizardDraft, error)

	// Next advances past the current step's gate; on the verification step it
	// submits the registration instead.
	Next(studentID string) (*models.WizardDraft, error)
	// Previous steps back without validation.
	Previous(studentID string) (*models.WizardDraft, error)
	// JumpTo revisits an earlier, already-passed step.
	JumpTo(studentID string, index int) (*models.WizardDraft, error)

	// Exit enforces the leave guard: without confirm it returns an
	// ExitGuardError while the wizard is unfinished; with confirm it signs
	// the student out and keeps the draft for later resume.
	Exit(studentID string, confirm bool) error
}

// SessionRevoker is the slice of the auth collaborator the exit guard needs:
// tearing down the student's session on abandonment.
type SessionRevoker interface {
	SignOut(studentID string) error
}
