package wizard

import (
	"fmt"
	"sync"
	"time"

	draftRepo "chamba/database/repository/draft"
	studentRepo "chamba/database/repository/student"
	"chamba/models"
	"chamba/services/flow"
	"chamba/services/schedule"
	"chamba/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultWizardService implements WizardService on the draft store and the
// student repository.
type DefaultWizardService struct {
	Drafts   draftRepo.DraftRepository
	Students studentRepo.StudentRepository
	Sessions SessionRevoker

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time

	mu       sync.Mutex
	inflight map[string]bool
}

func (s *DefaultWizardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Start loads the student's saved draft or creates a fresh one seeded with
// the identity's email.
func (s *DefaultWizardService) Start(identity models.AuthIdentity) (*models.WizardDraft, error) {
	existing, err := s.Drafts.Get(identity.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved draft: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	draft := &models.WizardDraft{
		StudentID: identity.UID,
		Personal:  models.PersonalInfo{Email: identity.Email},
		Schedule:  models.Schedule{},
		CreatedAt: s.now(),
	}
	if err := s.Drafts.Save(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Get returns the current draft.
func (s *DefaultWizardService) Get(studentID string) (*models.WizardDraft, error) {
	return s.load(studentID)
}

func (s *DefaultWizardService) load(studentID string) (*models.WizardDraft, error) {
	draft, err := s.Drafts.Get(studentID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}
	return draft, nil
}

// mutate loads the draft, applies fn, and saves before returning. The save
// completing is what makes the mutation final.
func (s *DefaultWizardService) mutate(studentID string, fn func(*models.WizardDraft) error) (*models.WizardDraft, error) {
	draft, err := s.load(studentID)
	if err != nil {
		return nil, err
	}
	if draft.Submitted {
		return nil, ErrAlreadySubmitted
	}
	if err := fn(draft); err != nil {
		return nil, err
	}
	if err := s.Drafts.Save(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// UpdatePersonal stores the personal-info step fields.
func (s *DefaultWizardService) UpdatePersonal(studentID string, p models.PersonalInfo) (*models.WizardDraft, error) {
	return s.mutate(studentID, func(d *models.WizardDraft) error {
		d.Personal = p
		return nil
	})
}

// SetSkills replaces the skill selection. An empty selection cascades:
// no skills means no schedule and no freeform skill text either.
func (s *DefaultWizardService) SetSkills(studentID string, skillIDs []string, otherSkills string) (*models.WizardDraft, error) {
	seen := make(map[string]bool, len(skillIDs))
	deduped := make([]string, 0, len(skillIDs))
	for _, id := range skillIDs {
		if _, ok := models.SkillByID(id); !ok {
			return nil, invalid("skills", fmt.Sprintf("servicio desconocido: %s", id))
		}
		if !seen[id] {
			seen[id] = true
			deduped = append(deduped, id)
		}
	}

	return s.mutate(studentID, func(d *models.WizardDraft) error {
		d.SkillIDs = deduped
		d.OtherSkills = otherSkills
		if len(deduped) == 0 {
			d.Schedule = models.Schedule{}
			d.OtherSkills = ""
		} else if !seen[models.OtherSkillID] {
			d.OtherSkills = ""
		}
		return nil
	})
}

// UpdateAcademic stores the academic step fields.
func (s *DefaultWizardService) UpdateAcademic(studentID string, a models.AcademicInfo) (*models.WizardDraft, error) {
	return s.mutate(studentID, func(d *models.WizardDraft) error {
		d.Academic = a
		return nil
	})
}

// ToggleDay selects or unselects a day on the availability schedule.
func (s *DefaultWizardService) ToggleDay(studentID, day string) (*models.WizardDraft, error) {
	if !schedule.ValidDay(day) {
		return nil, invalid("schedule", fmt.Sprintf("día desconocido: %s", day))
	}
	return s.mutate(studentID, func(d *models.WizardDraft) error {
		d.Schedule = schedule.ToggleDay(d.Schedule, day)
		return nil
	})
}

// SetDaySlots replaces the slots for a day, selecting the day when needed.
func (s *DefaultWizardService) SetDaySlots(studentID, day string, slots []string) (*models.WizardDraft, error) {
	if !schedule.ValidDay(day) {
		return nil, invalid("schedule", fmt.Sprintf("día desconocido: %s", day))
	}
	if !schedule.ValidSlots(slots, models.PlatformSlots) {
		return nil, invalid("schedule", "horario fuera del catálogo")
	}
	return s.mutate(studentID, func(d *models.WizardDraft) error {
		d.Schedule = schedule.SetDaySlots(d.Schedule, day, slots)
		return nil
	})
}

// ClearDay unselects a day entirely.
func (s *DefaultWizardService) ClearDay(studentID, day string) (*models.WizardDraft, error) {
	return s.mutate(studentID, func(d *models.WizardDraft) error {
		d.Schedule = schedule.ClearDay(d.Schedule, day)
		return nil
	})
}

// DuplicateDay copies one day's slots onto another.
func (s *DefaultWizardService) DuplicateDay(studentID, sourceDay, targetDay string) (*models.WizardDraft, error) {
	if !schedule.ValidDay(sourceDay) || !schedule.ValidDay(targetDay) {
		return nil, invalid("schedule", "día desconocido")
	}
	return s.mutate(studentID, func(d *models.WizardDraft) error {
		d.Schedule = schedule.DuplicateDay(d.Schedule, sourceDay, targetDay)
		return nil
	})
}

// Next advances past the current step's gate. On the verification step it
// submits the registration instead of advancing.
func (s *DefaultWizardService) Next(studentID string) (*models.WizardDraft, error) {
	draft, err := s.load(studentID)
	if err != nil {
		return nil, err
	}
	if draft.Submitted {
		return nil, ErrAlreadySubmitted
	}

	seq := flow.Sequencer{Index: draft.StepIndex, N: StepCount}
	seq, submit, err := seq.Next(gateFor(draft, draft.StepIndex, s.now()))
	if err != nil {
		return nil, err
	}
	if submit {
		return s.submit(draft)
	}

	draft.StepIndex = seq.Index
	if err := s.Drafts.Save(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Previous steps back without validation.
func (s *DefaultWizardService) Previous(studentID string) (*models.WizardDraft, error) {
	return s.mutate(studentID, func(d *models.WizardDraft) error {
		seq := flow.Sequencer{Index: d.StepIndex, N: StepCount}
		d.StepIndex = seq.Previous().Index
		return nil
	})
}

// JumpTo revisits an earlier, already-passed step.
func (s *DefaultWizardService) JumpTo(studentID string, index int) (*models.WizardDraft, error) {
	return s.mutate(studentID, func(d *models.WizardDraft) error {
		seq := flow.Sequencer{Index: d.StepIndex, N: StepCount}
		seq, err := seq.JumpTo(index)
		if err != nil {
			return err
		}
		d.StepIndex = seq.Index
		return nil
	})
}

// submit assembles the payload and creates the student record. On failure the
// draft is untouched and the sequencer stays on the verification step, so the
// student can retry or go back without losing anything.
func (s *DefaultWizardService) submit(draft *models.WizardDraft) (*models.WizardDraft, error) {
	s.mu.Lock()
	if s.inflight == nil {
		s.inflight = make(map[string]bool)
	}
	if s.inflight[draft.StudentID] {
		s.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	s.inflight[draft.StudentID] = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.inflight, draft.StudentID)
		s.mu.Unlock()
	}()

	payload := AssemblePayload(draft)
	payload.GoogleUID = draft.StudentID

	student := &models.Student{
		ID:      uuid.New().String(),
		Payload: payload,
	}
	if err := s.Students.Create(student); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	if err := s.Drafts.Delete(draft.StudentID); err != nil {
		// The registration went through; a stale draft is only noise.
		utils.GetLogger().Warn("failed to clear wizard draft after submission",
			zap.String("studentID", draft.StudentID), zap.Error(err))
	}

	draft.Submitted = true
	return draft, nil
}

// Exit enforces the leave guard. Once submitted, leaving is unguarded.
func (s *DefaultWizardService) Exit(studentID string, confirm bool) error {
	draft, err := s.Drafts.Get(studentID)
	if err != nil {
		return err
	}
	if draft == nil || draft.Submitted {
		return nil
	}
	if !confirm {
		return &ExitGuardError{}
	}
	// Abandon: tear the session down but keep the draft for a later resume.
	if s.Sessions != nil {
		if err := s.Sessions.SignOut(studentID); err != nil {
			return fmt.Errorf("failed to sign out: %w", err)
		}
	}
	return nil
}
