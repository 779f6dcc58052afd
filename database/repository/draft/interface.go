package draftRepo

import "chamba/models"

// DraftRepository persists the in-progress wizard draft. One fixed key per
// student; a save must complete before the triggering mutation is considered
// final, so a crash never loses more than that single change.
type DraftRepository interface {
	// Save writes the full draft under the student's key.
	Save(draft *models.WizardDraft) error
	// Get loads the draft for a student. Returns (nil, nil) when none exists.
	Get(studentID string) (*models.WizardDraft, error)
	// Delete removes the draft. Called on successful submission or reset.
	Delete(studentID string) error
}
