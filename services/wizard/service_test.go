package wizard

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"chamba/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// memDraftRepo is an in-memory DraftRepository for service tests.
type memDraftRepo struct {
	mu     sync.Mutex
	drafts map[string][]byte
}

func newMemDraftRepo() *memDraftRepo {
	return &memDraftRepo{drafts: make(map[string][]byte)}
}

func (m *memDraftRepo) Save(d *models.WizardDraft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	m.drafts[d.StudentID] = data
	return nil
}

func (m *memDraftRepo) Get(studentID string) (*models.WizardDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.drafts[studentID]
	if !ok {
		return nil, nil
	}
	var d models.WizardDraft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (m *memDraftRepo) Delete(studentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, studentID)
	return nil
}

// stubStudentRepo counts Create calls and can fail or stall on demand.
type stubStudentRepo struct {
	mu         sync.Mutex
	created    []*models.Student
	failCreate error
	block      chan struct{}
}

func (s *stubStudentRepo) Create(student *models.Student) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failCreate != nil {
		return s.failCreate
	}
	s.created = append(s.created, student)
	return nil
}

func (s *stubStudentRepo) createdCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.created)
}

func (s *stubStudentRepo) GetByID(string) (*models.Student, error)        { return nil, nil }
func (s *stubStudentRepo) GetByEmail(string) (*models.Student, error)     { return nil, nil }
func (s *stubStudentRepo) GetByGoogleUID(string) (*models.Student, error) { return nil, nil }
func (s *stubStudentRepo) GetAll() ([]models.Student, error)              { return nil, nil }
func (s *stubStudentRepo) Update(*models.Student) error                   { return nil }
func (s *stubStudentRepo) Delete(string) error                            { return nil }
func (s *stubStudentRepo) GetByIDWithProjection(string, bson.M) (*models.Student, error) {
	return nil, nil
}

type stubRevoker struct {
	signedOut []string
}

func (r *stubRevoker) SignOut(studentID string) error {
	r.signedOut = append(r.signedOut, studentID)
	return nil
}

func newTestService(t *testing.T) (*DefaultWizardService, *stubStudentRepo, *stubRevoker) {
	t.Helper()
	students := &stubStudentRepo{}
	revoker := &stubRevoker{}
	svc := &DefaultWizardService{
		Drafts:   newMemDraftRepo(),
		Students: students,
		Sessions: revoker,
		Now:      func() time.Time { return testNow },
	}
	return svc, students, revoker
}

func startWizard(t *testing.T, svc *DefaultWizardService) *models.WizardDraft {
	t.Helper()
	d, err := svc.Start(models.AuthIdentity{UID: "uid-1", Email: "ana@example.com"})
	require.NoError(t, err)
	return d
}

// fillDraft walks the wizard to the verification step with valid data.
func fillDraft(t *testing.T, svc *DefaultWizardService) {
	t.Helper()
	_, err := svc.UpdatePersonal("uid-1", validPersonal())
	require.NoError(t, err)
	_, err = svc.Next("uid-1")
	require.NoError(t, err)

	_, err = svc.SetSkills("uid-1", []string{"limpieza-hogar"}, "")
	require.NoError(t, err)
	_, err = svc.SetDaySlots("uid-1", "Lunes", []string{"08:00 - 09:00"})
	require.NoError(t, err)
	_, err = svc.Next("uid-1")
	require.NoError(t, err)

	_, err = svc.UpdateAcademic("uid-1", models.AcademicInfo{
		University:  "UMSA",
		Career:      "Derecho",
		Semester:    "4",
		DocumentURL: "https://res.cloudinary.com/chamba/cert.pdf",
	})
	require.NoError(t, err)
	_, err = svc.Next("uid-1")
	require.NoError(t, err)
}

func TestStartCreatesAndResumesDraft(t *testing.T) {
	svc, _, _ := newTestService(t)

	d := startWizard(t, svc)
	assert.Equal(t, 0, d.StepIndex)
	assert.Equal(t, "ana@example.com", d.Personal.Email, "draft seeded from identity")

	_, err := svc.UpdatePersonal("uid-1", validPersonal())
	require.NoError(t, err)

	resumed, err := svc.Start(models.AuthIdentity{UID: "uid-1", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Quispe", resumed.Personal.FullName, "existing draft is resumed, not replaced")
}

func TestNextBlockedByGateKeepsStep(t *testing.T) {
	svc, _, _ := newTestService(t)
	startWizard(t, svc)

	_, err := svc.Next("uid-1")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	d, err := svc.Get("uid-1")
	require.NoError(t, err)
	assert.Equal(t, 0, d.StepIndex)
}

func TestPreviousAndJumpTo(t *testing.T) {
	svc, _, _ := newTestService(t)
	startWizard(t, svc)
	_, err := svc.UpdatePersonal("uid-1", validPersonal())
	require.NoError(t, err)
	_, err = svc.Next("uid-1")
	require.NoError(t, err)

	d, err := svc.Previous("uid-1")
	require.NoError(t, err)
	assert.Equal(t, 0, d.StepIndex)

	_, err = svc.Next("uid-1")
	require.NoError(t, err)
	_, err = svc.JumpTo("uid-1", 1)
	assert.Error(t, err, "forward jump must be rejected")

	d, err = svc.JumpTo("uid-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, d.StepIndex)
}

func TestSkillsClearCascades(t *testing.T) {
	svc, _, _ := newTestService(t)
	startWizard(t, svc)

	_, err := svc.SetSkills("uid-1", []string{"limpieza-hogar", models.OtherSkillID}, "Armado de muebles")
	require.NoError(t, err)
	_, err = svc.SetDaySlots("uid-1", "Lunes", []string{"08:00 - 09:00"})
	require.NoError(t, err)

	d, err := svc.SetSkills("uid-1", nil, "ignored")
	require.NoError(t, err)
	assert.Empty(t, d.SkillIDs)
	assert.Empty(t, d.Schedule, "no skills implies no schedule")
	assert.Empty(t, d.OtherSkills, "no skills implies no freeform text")
}

func TestSetSkillsRejectsUnknownAndDedupes(t *testing.T) {
	svc, _, _ := newTestService(t)
	startWizard(t, svc)

	_, err := svc.SetSkills("uid-1", []string{"no-such-skill"}, "")
	assert.Error(t, err)

	d, err := svc.SetSkills("uid-1", []string{"mandados", "mandados"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"mandados"}, d.SkillIDs)
}

func TestSubmitSuccess(t *testing.T) {
	svc, students, _ := newTestService(t)
	startWizard(t, svc)
	fillDraft(t, svc)

	d, err := svc.Next("uid-1") // verification step: triggers submission
	require.NoError(t, err)
	assert.True(t, d.Submitted)
	require.Equal(t, 1, students.createdCount())

	payload := students.created[0].Payload
	assert.Equal(t, "uid-1", payload.GoogleUID)
	assert.Equal(t, "+591-75528888", payload.Phone)
	assert.Len(t, payload.Schedule, 7)

	_, err = svc.Get("uid-1")
	assert.ErrorIs(t, err, ErrDraftNotFound, "draft cleared after successful submission")
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	svc, students, _ := newTestService(t)
	students.failCreate = errors.New("mongo unavailable")
	startWizard(t, svc)
	fillDraft(t, svc)

	_, err := svc.Next("uid-1")
	require.Error(t, err)

	d, err := svc.Get("uid-1")
	require.NoError(t, err)
	assert.False(t, d.Submitted)
	assert.Equal(t, StepVerification, d.StepIndex, "sequencer stays on verification for retry")

	// Retry works once the repository recovers.
	students.failCreate = nil
	d, err = svc.Next("uid-1")
	require.NoError(t, err)
	assert.True(t, d.Submitted)
}

func TestDoubleSubmitTriggersOnce(t *testing.T) {
	svc, students, _ := newTestService(t)
	students.block = make(chan struct{})
	startWizard(t, svc)
	fillDraft(t, svc)

	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := svc.Next("uid-1")
			results <- err
		}()
	}

	// Let both goroutines reach the guard, then release the slow create.
	time.Sleep(50 * time.Millisecond)
	close(students.block)

	first, second := <-results, <-results
	inflight := 0
	for _, err := range []error{first, second} {
		if errors.Is(err, ErrSubmissionInFlight) {
			inflight++
		}
	}
	assert.Equal(t, 1, inflight, "exactly one call is turned away by the guard")
	assert.Equal(t, 1, students.createdCount(), "submission fires exactly once")
}

func TestExitGuard(t *testing.T) {
	svc, _, revoker := newTestService(t)
	startWizard(t, svc)

	err := svc.Exit("uid-1", false)
	var guard *ExitGuardError
	require.ErrorAs(t, err, &guard, "unconfirmed exit surfaces the prompt")
	assert.Empty(t, revoker.signedOut)

	require.NoError(t, svc.Exit("uid-1", true))
	assert.Equal(t, []string{"uid-1"}, revoker.signedOut, "abandon signs the student out")

	d, err := svc.Get("uid-1")
	require.NoError(t, err)
	assert.NotNil(t, d, "draft survives abandonment")
}

func TestExitUnguardedAfterSubmission(t *testing.T) {
	svc, _, revoker := newTestService(t)
	startWizard(t, svc)
	fillDraft(t, svc)
	_, err := svc.Next("uid-1")
	require.NoError(t, err)

	assert.NoError(t, svc.Exit("uid-1", false), "no guard once submitted")
	assert.Empty(t, revoker.signedOut)
}
