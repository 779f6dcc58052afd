package income

import (
	"testing"
	"time"

	"chamba/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEstimateService(t *testing.T) EstimateService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &DefaultEstimateService{Cache: client, Table: testTable, TTL: 30 * time.Minute}
}

func TestEstimateFlowEndToEnd(t *testing.T) {
	svc := newTestEstimateService(t)

	session, err := svc.Initiate()
	require.NoError(t, err)
	assert.Equal(t, EstimateStepSkills, session.StepIndex)

	// Gate: no skills selected yet.
	_, err = svc.Next(session.SessionID)
	assert.Error(t, err)

	_, err = svc.SetSkills(session.SessionID, []string{"limpieza-hogar"})
	require.NoError(t, err)
	session, err = svc.Next(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, EstimateStepCity, session.StepIndex)

	// Gate: no city selected yet.
	_, err = svc.Next(session.SessionID)
	assert.Error(t, err)

	_, err = svc.SetCity(session.SessionID, "La Paz")
	require.NoError(t, err)
	session, err = svc.Next(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, EstimateStepResults, session.StepIndex)

	require.NotNil(t, session.Breakdown)
	assert.Equal(t, models.PriceRange{Min: 100, Max: 200}, session.Breakdown.Weekly)
	assert.Equal(t, models.PriceRange{Min: 400, Max: 800}, session.Breakdown.Monthly)
}

func TestEstimateCityFallbackKeepsDisplayCity(t *testing.T) {
	svc := newTestEstimateService(t)
	session, err := svc.Initiate()
	require.NoError(t, err)

	session, err = svc.SetCity(session.SessionID, "Tarija")
	require.NoError(t, err)
	assert.Equal(t, "Tarija", session.City.DisplayCity)
	assert.Equal(t, ReferenceCity, session.City.LookupCity)
}

func TestEstimateNextOnResultsIsNoOp(t *testing.T) {
	svc := newTestEstimateService(t)
	session, err := svc.Initiate()
	require.NoError(t, err)

	_, err = svc.SetSkills(session.SessionID, []string{"limpieza-hogar"})
	require.NoError(t, err)
	_, err = svc.Next(session.SessionID)
	require.NoError(t, err)
	_, err = svc.SetCity(session.SessionID, "La Paz")
	require.NoError(t, err)
	_, err = svc.Next(session.SessionID)
	require.NoError(t, err)

	session, err = svc.Next(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, EstimateStepResults, session.StepIndex)
}

func TestEstimateBackwardNavigation(t *testing.T) {
	svc := newTestEstimateService(t)
	session, err := svc.Initiate()
	require.NoError(t, err)

	_, err = svc.SetSkills(session.SessionID, []string{"clases-ingles"})
	require.NoError(t, err)
	_, err = svc.Next(session.SessionID)
	require.NoError(t, err)

	_, err = svc.JumpTo(session.SessionID, 1)
	assert.Error(t, err, "forward jump rejected")

	session, err = svc.Previous(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, EstimateStepSkills, session.StepIndex)
}

func TestEstimateChangingSkillsInvalidatesResults(t *testing.T) {
	svc := newTestEstimateService(t)
	session, err := svc.Initiate()
	require.NoError(t, err)

	_, err = svc.SetSkills(session.SessionID, []string{"limpieza-hogar"})
	require.NoError(t, err)
	_, err = svc.Next(session.SessionID)
	require.NoError(t, err)
	_, err = svc.SetCity(session.SessionID, "La Paz")
	require.NoError(t, err)
	_, err = svc.Next(session.SessionID)
	require.NoError(t, err)

	session, err = svc.SetSkills(session.SessionID, []string{"clases-ingles"})
	require.NoError(t, err)
	assert.Nil(t, session.Breakdown)
}

func TestEstimateExpiredSession(t *testing.T) {
	svc := newTestEstimateService(t)
	_, err := svc.Get("no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
