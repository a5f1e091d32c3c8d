package services

import (
	"context"
	"errors"
	"testing"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"github.com/petbloom/backend/models"
	apperrors "github.com/petbloom/backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByFirebaseUID(ctx context.Context, firebaseUID string) (*models.User, error) {
	args := m.Called(ctx, firebaseUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// fakeVerifier maps raw token strings to decoded results.
type fakeVerifier struct {
	tokens map[string]*fbauth.Token
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, idToken string) (*fbauth.Token, error) {
	tok, ok := f.tokens[idToken]
	if !ok {
		return nil, errors.New("invalid firebase token")
	}
	return tok, nil
}

func authFixture(users *MockUserRepository, verifier FirebaseVerifier) *AuthService {
	tokens := NewTokenService("test-secret", time.Hour)
	return NewAuthService(users, verifier, tokens)
}

func TestLogin_UnregisteredUser(t *testing.T) {
	users := new(MockUserRepository)
	verifier := &fakeVerifier{tokens: map[string]*fbauth.Token{
		"fb-token": {UID: "fb-uid-1", Claims: map[string]interface{}{"email": "new@petbloom.dev"}},
	}}
	svc := authFixture(users, verifier)
	ctx := context.Background()

	users.On("FindByFirebaseUID", ctx, "fb-uid-1").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(ctx, "fb-token")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLogin_BadFirebaseToken(t *testing.T) {
	svc := authFixture(new(MockUserRepository), &fakeVerifier{})

	_, err := svc.Login(context.Background(), "garbage")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLogin_IssuesResolvableToken(t *testing.T) {
	users := new(MockUserRepository)
	verifier := &fakeVerifier{tokens: map[string]*fbauth.Token{
		"fb-token": {UID: "fb-uid-1", Claims: map[string]interface{}{"email": "ada@petbloom.dev"}},
	}}
	svc := authFixture(users, verifier)
	ctx := context.Background()

	userID := uuid.New()
	users.On("FindByFirebaseUID", ctx, "fb-uid-1").
		Return(&models.User{ID: userID, FirebaseUID: "fb-uid-1", Email: "ada@petbloom.dev", Name: "Ada"}, nil)

	result, err := svc.Login(ctx, "fb-token")
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), result.ID)
	assert.Equal(t, "Ada", result.Name)

	// the issued token resolves back to the same subject
	principal, err := NewTokenService("test-secret", time.Hour).ResolveBearer("Bearer " + result.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), principal.Subject)
	assert.Equal(t, "ada@petbloom.dev", principal.Email)
}

func TestRegister_CreatesUser(t *testing.T) {
	users := new(MockUserRepository)
	verifier := &fakeVerifier{tokens: map[string]*fbauth.Token{
		"fb-token": {UID: "fb-uid-2", Claims: map[string]interface{}{"email": "grace@petbloom.dev"}},
	}}
	svc := authFixture(users, verifier)
	ctx := context.Background()

	users.On("FindByFirebaseUID", ctx, "fb-uid-2").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", ctx, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = uuid.New()
		}).
		Return(nil)

	result, err := svc.Register(ctx, "fb-token", "Grace")
	assert.NoError(t, err)
	assert.Equal(t, "grace@petbloom.dev", result.Email)
	assert.NotEmpty(t, result.AccessToken)
	users.AssertCalled(t, "Create", ctx, mock.AnythingOfType("*models.User"))
}

func TestRegister_Idempotent(t *testing.T) {
	users := new(MockUserRepository)
	verifier := &fakeVerifier{tokens: map[string]*fbauth.Token{
		"fb-token": {UID: "fb-uid-3", Claims: map[string]interface{}{"email": "ada@petbloom.dev"}},
	}}
	svc := authFixture(users, verifier)
	ctx := context.Background()

	existing := &models.User{ID: uuid.New(), FirebaseUID: "fb-uid-3", Email: "ada@petbloom.dev"}
	users.On("FindByFirebaseUID", ctx, "fb-uid-3").Return(existing, nil)

	result, err := svc.Register(ctx, "fb-token", "Ada")
	assert.NoError(t, err)
	assert.Equal(t, existing.ID.String(), result.ID)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_MissingEmailClaim(t *testing.T) {
	verifier := &fakeVerifier{tokens: map[string]*fbauth.Token{
		"fb-token": {UID: "fb-uid-4", Claims: map[string]interface{}{}},
	}}
	svc := authFixture(new(MockUserRepository), verifier)

	_, err := svc.Login(context.Background(), "fb-token")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}
