package services

import (
	"context"
	"errors"

	"github.com/petbloom/backend/models"
	apperrors "github.com/petbloom/backend/pkg/errors"
	repositories "github.com/petbloom/backend/repository"
	"gorm.io/gorm"
)

// LoginResult is returned to the client after a successful login or
// registration.
type LoginResult struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	AccessToken string `json:"access_token"`
}

// AuthService exchanges a verified Firebase ID token for a backend access
// token. The backend token is what every other route resolves.
type AuthService struct {
	users    repositories.UserRepository
	verifier FirebaseVerifier
	tokens   *TokenService
}

func NewAuthService(users repositories.UserRepository, verifier FirebaseVerifier, tokens *TokenService) *AuthService {
	return &AuthService{users: users, verifier: verifier, tokens: tokens}
}

// Login verifies the Firebase token, looks up the registered user and
// issues an access token. Unregistered users get NotFound and must
// register first.
func (s *AuthService) Login(ctx context.Context, firebaseToken string) (*LoginResult, error) {
	decoded, err := s.verifier.VerifyIDToken(ctx, firebaseToken)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, err)
	}

	email, _ := decoded.Claims["email"].(string)
	if decoded.UID == "" || email == "" {
		return nil, apperrors.Wrap(apperrors.ErrBadRequest, errors.New("token missing uid or email"))
	}

	user, err := s.users.FindByFirebaseUID(ctx, decoded.UID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, errors.New("user not registered"))
		}
		return nil, storageErr(err)
	}

	return s.issue(user)
}

// Register verifies the Firebase token and creates the user record, then
// issues an access token.
func (s *AuthService) Register(ctx context.Context, firebaseToken, name string) (*LoginResult, error) {
	decoded, err := s.verifier.VerifyIDToken(ctx, firebaseToken)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, err)
	}

	email, _ := decoded.Claims["email"].(string)
	if decoded.UID == "" || email == "" {
		return nil, apperrors.Wrap(apperrors.ErrBadRequest, errors.New("token missing uid or email"))
	}

	if existing, err := s.users.FindByFirebaseUID(ctx, decoded.UID); err == nil && existing != nil {
		return s.issue(existing)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageErr(err)
	}

	user := &models.User{
		FirebaseUID: decoded.UID,
		Email:       email,
		Name:        name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, storageErr(err)
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (*LoginResult, error) {
	token, err := s.tokens.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &LoginResult{
		ID:          user.ID.String(),
		Email:       user.Email,
		Name:        user.Name,
		AccessToken: token,
	}, nil
}
