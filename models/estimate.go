package models

import "time"

// EstimateSession holds the state of the three-step income calculator flow
// (skills, city, results). Unlike the registration wizard it is short-lived
// and anonymous: sessions expire instead of persisting.
type EstimateSession struct {
	SessionID     string           `json:"sessionId"`
	SkillIDs      []string         `json:"skillIds"`
	City          CityContext      `json:"city"`
	StepIndex     int              `json:"stepIndex"`
	Breakdown     *IncomeBreakdown `json:"breakdown,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}
