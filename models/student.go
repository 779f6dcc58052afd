package models

import "time"

// RegistrationPayload is the normalized record the assembler produces from a
// finished draft. All seven weekday keys are present in Schedule even when the
// student configured only some of them.
type RegistrationPayload struct {
	GoogleUID     string   `json:"googleUid" bson:"googleUid"`
	FullName      string   `json:"fullName" bson:"fullName"`
	BirthDate     string   `json:"birthDate" bson:"birthDate"` // YYYY-MM-DD, local calendar fields
	Email         string   `json:"email" bson:"email"`
	Phone         string   `json:"phone" bson:"phone"`
	City          string   `json:"city" bson:"city"`
	Zone          string   `json:"zone" bson:"zone"`
	Address       string   `json:"address" bson:"address"`
	SkillIDs      []string `json:"skillIds" bson:"skillIds"`
	OtherSkills   string   `json:"otherSkills,omitempty" bson:"otherSkills,omitempty"`
	Schedule      Schedule `json:"schedule" bson:"schedule"`
	ClassSchedule string   `json:"classSchedule" bson:"classSchedule"`
	University    string   `json:"university" bson:"university"`
	Career        string   `json:"career" bson:"career"`
	Semester      string   `json:"semester" bson:"semester"`
	DocumentURL   string   `json:"documentUrl" bson:"documentUrl"`
	PaymentQR     string   `json:"paymentQr" bson:"paymentQr"`
}

// Student is the persisted profile created on successful registration.
type Student struct {
	ID        string              `json:"id" bson:"id"`
	Payload   RegistrationPayload `json:"payload" bson:"payload"`
	TokenHash string              `json:"-" bson:"tokenHash,omitempty"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// AuthIdentity is what the sign-in collaborator hands the core: who the caller
// is and whether a student profile already exists for them.
type AuthIdentity struct {
	UID    string `json:"uid"`
	Email  string `json:"email"`
	Exists bool   `json:"exists"`
}
