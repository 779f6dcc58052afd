package auth

import (
	"context"
	"fmt"
	"time"

	studentRepo "chamba/database/repository/student"
	"chamba/models"
	"chamba/utils"

	fbauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

// AuthSessionPrefix keys the token hash of each open session in Redis.
const AuthSessionPrefix = "authSession:"

const sessionDuration = 24 * time.Hour

// DefaultAuthService implements AuthService on Firebase Auth, the student
// repository, and the auth cache.
type DefaultAuthService struct {
	Verifier TokenVerifier
	Students studentRepo.StudentRepository
}

// SignIn verifies a Google ID token and opens a session.
func (s *DefaultAuthService) SignIn(ctx context.Context, idToken string) (*models.AuthIdentity, string, error) {
	uid, email, err := s.Verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, "", fmt.Errorf("invalid sign-in token: %w", err)
	}

	identity := &models.AuthIdentity{UID: uid, Email: email}

	// A failed existence lookup must not block sign-in: transient repository
	// outages degrade to "does not exist", never to an error.
	student, err := s.Students.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Warn("student existence lookup failed; treating as not registered",
			zap.String("email", email), zap.Error(err))
	} else {
		identity.Exists = student != nil
	}

	token, err := utils.GenerateToken(uid, email, sessionDuration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	cacheCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cache := utils.GetAuthCacheClient()
	if err := cache.Set(cacheCtx, AuthSessionPrefix+uid, utils.HashToken(token), sessionDuration).Err(); err != nil {
		return nil, "", fmt.Errorf("failed to store session: %w", err)
	}

	return identity, token, nil
}

// SignOut tears the session down by dropping its token hash.
func (s *DefaultAuthService) SignOut(studentID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.GetAuthCacheClient().Del(ctx, AuthSessionPrefix+studentID).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// FirebaseVerifier implements TokenVerifier on the Firebase Auth client.
type FirebaseVerifier struct {
	Client *fbauth.Client
}

func (v *FirebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, string, error) {
	token, err := v.Client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", "", err
	}
	email, _ := token.Claims["email"].(string)
	return token.UID, email, nil
}
