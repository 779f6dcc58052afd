package income

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chamba/models"
	"chamba/services/flow"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Estimate flow steps.
const (
	EstimateStepSkills = iota
	EstimateStepCity
	EstimateStepResults
	estimateStepCount
)

const sessionKeyPrefix = "estimateSession:"

// ErrSessionNotFound is returned when a session has expired or never existed.
var ErrSessionNotFound = fmt.Errorf("estimate session not found or expired")

// StepError blocks a forward move through the estimate flow. The message is
// shown to the student as-is.
type StepError struct {
	Message string
}

func (e *StepError) Error() string {
	return e.Message
}

// EstimateService drives the anonymous income calculator flow.
type EstimateService interface {
	// Initiate creates a fresh session on the skills step.
	Initiate() (*models.EstimateSession, error)
	// Get returns the current session state.
	Get(sessionID string) (*models.EstimateSession, error)
	// SetSkills replaces the selection made on the skills step.
	SetSkills(sessionID string, skillIDs []string) (*models.EstimateSession, error)
	// SetCity records the student's city.
	SetCity(sessionID, city string) (*models.EstimateSession, error)
	// Next advances through the gated steps; entering the results step
	// computes the income breakdown.
	Next(sessionID string) (*models.EstimateSession, error)
	// Previous steps back freely.
	Previous(sessionID string) (*models.EstimateSession, error)
	// JumpTo revisits an earlier step.
	JumpTo(sessionID string, index int) (*models.EstimateSession, error)
}

// DefaultEstimateService implements EstimateService on a Redis session store
// and a read-only price table.
type DefaultEstimateService struct {
	Cache *redis.Client
	Table models.PriceTable
	TTL   time.Duration
}

// NewEstimateService wires an EstimateService with the standard 30-minute
// session lifetime.
func NewEstimateService(cache *redis.Client, table models.PriceTable) EstimateService {
	return &DefaultEstimateService{Cache: cache, Table: table, TTL: 30 * time.Minute}
}

// Initiate creates a fresh session on the skills step.
func (s *DefaultEstimateService) Initiate() (*models.EstimateSession, error) {
	session := &models.EstimateSession{
		SessionID: uuid.New().String(),
		CreatedAt: time.Now(),
	}
	if err := s.save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns the current session state.
func (s *DefaultEstimateService) Get(sessionID string) (*models.EstimateSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := s.Cache.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load estimate session: %w", err)
	}

	var session models.EstimateSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse estimate session: %w", err)
	}
	return &session, nil
}

func (s *DefaultEstimateService) save(session *models.EstimateSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal estimate session: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Set(ctx, sessionKeyPrefix+session.SessionID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store estimate session: %w", err)
	}
	return nil
}

// SetSkills replaces the selection made on the skills step. Changing skills
// invalidates any previously computed results.
func (s *DefaultEstimateService) SetSkills(sessionID string, skillIDs []string) (*models.EstimateSession, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(skillIDs))
	deduped := make([]string, 0, len(skillIDs))
	for _, id := range skillIDs {
		if _, ok := models.SkillByID(id); !ok {
			return nil, fmt.Errorf("unknown skill: %s", id)
		}
		if !seen[id] {
			seen[id] = true
			deduped = append(deduped, id)
		}
	}
	session.SkillIDs = deduped
	session.Breakdown = nil

	if err := s.save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetCity records the student's city. The lookup/display split is resolved
// here, once, so every later consumer sees both values.
func (s *DefaultEstimateService) SetCity(sessionID, city string) (*models.EstimateSession, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}
	session.City = ResolveCity(city, s.Table)
	session.Breakdown = nil

	if err := s.save(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultEstimateService) gateFor(session *models.EstimateSession) flow.Gate {
	switch session.StepIndex {
	case EstimateStepSkills:
		return func() error {
			if len(session.SkillIDs) == 0 {
				return &StepError{Message: "selecciona al menos un servicio"}
			}
			return nil
		}
	case EstimateStepCity:
		return func() error {
			if session.City.DisplayCity == "" {
				return &StepError{Message: "selecciona tu ciudad"}
			}
			return nil
		}
	default:
		return nil
	}
}

// Next advances through the gated steps. Arriving on the results step
// computes the breakdown; Next on the results step is a no-op.
func (s *DefaultEstimateService) Next(sessionID string) (*models.EstimateSession, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}

	seq := flow.Sequencer{Index: session.StepIndex, N: estimateStepCount}
	seq, atEnd, err := seq.Next(s.gateFor(session))
	if err != nil {
		return nil, err
	}
	if atEnd {
		return session, nil
	}
	session.StepIndex = seq.Index

	if session.StepIndex == EstimateStepResults {
		session.Breakdown = Compute(session.SkillIDs, session.City.LookupCity, s.Table)
	}

	if err := s.save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Previous steps back freely.
func (s *DefaultEstimateService) Previous(sessionID string) (*models.EstimateSession, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}
	seq := flow.Sequencer{Index: session.StepIndex, N: estimateStepCount}
	session.StepIndex = seq.Previous().Index

	if err := s.save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// JumpTo revisits an earlier step.
func (s *DefaultEstimateService) JumpTo(sessionID string, index int) (*models.EstimateSession, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}
	seq := flow.Sequencer{Index: session.StepIndex, N: estimateStepCount}
	seq, err = seq.JumpTo(index)
	if err != nil {
		return nil, err
	}
	session.StepIndex = seq.Index

	if err := s.save(session); err != nil {
		return nil, err
	}
	return session, nil
}
