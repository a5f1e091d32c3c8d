package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	apperrors "github.com/petbloom/backend/pkg/errors"
)

// Principal is the authenticated identity derived from a bearer credential.
// Subject is returned verbatim from the token's sub claim.
type Principal struct {
	Subject string
	Email   string
}

// TokenService issues and resolves the HS256 access tokens used on every
// authenticated route. Resolution is a pure function of the header, the
// configured secret and the clock; it never touches storage.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), expiry: expiry}
}

// Generate creates a signed access token for the given user.
func (s *TokenService) Generate(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   time.Now().Add(s.expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ResolveBearer turns an Authorization header value into a Principal.
// The header must be a two-part "Bearer <token>" pair (scheme matched
// case-insensitively). Each malformation yields its own error value:
// ErrMalformedToken, ErrTokenExpired, ErrInvalidToken or ErrMissingSubject.
func (s *TokenService) ResolveBearer(header string) (*Principal, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, apperrors.ErrMalformedToken
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.Wrap(apperrors.ErrTokenExpired, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, apperrors.ErrMissingSubject
	}

	email, _ := claims["email"].(string)
	return &Principal{Subject: sub, Email: email}, nil
}
