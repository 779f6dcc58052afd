package auth

import (
	"context"

	"chamba/models"
)

// AuthService handles Google sign-in and session teardown. The rest of the
// core only ever reads two things from it: who the caller is and whether a
// student profile already exists for them.
type AuthService interface {
	// SignIn verifies a Google ID token and opens a session. It returns the
	// caller's identity (with the exists flag resolved) and a session token.
	SignIn(ctx context.Context, idToken string) (*models.AuthIdentity, string, error)
	// SignOut tears the session down. Used directly and by the exit guard.
	SignOut(studentID string) error
}

// TokenVerifier abstracts the Google ID token check so tests can stub it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (uid, email string, err error)
}
