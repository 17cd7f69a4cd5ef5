package application

import (
	"context"
	"crypto/hmac"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/okiroth/gallery_backend/internal/domain"
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Principal is the authenticated identity an Authorizer extracts from a
// credential. Shared-secret auth yields a synthetic admin principal.
type Principal struct {
	UserID   int
	Username string
	Role     string
}

// Authorizer validates a single credential string. Implementations must
// fail closed: a misconfigured authorizer rejects everything.
type Authorizer interface {
	Authorize(credential string) (Principal, error)
}

// SharedSecretAuthorizer compares the submitted password against the
// configured admin secret in constant time. An empty secret means no
// password can ever authorize, including an empty one.
type SharedSecretAuthorizer struct {
	secret string
}

func NewSharedSecretAuthorizer(secret string) *SharedSecretAuthorizer {
	return &SharedSecretAuthorizer{secret: secret}
}

func (a *SharedSecretAuthorizer) Authorize(credential string) (Principal, error) {
	if a.secret == "" {
		return Principal{}, ErrUnauthorized
	}
	if !hmac.Equal([]byte(credential), []byte(a.secret)) {
		return Principal{}, ErrUnauthorized
	}
	return Principal{Username: "admin", Role: domain.RoleAdmin}, nil
}

// Claims is the payload of tokens issued by Login.
type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenAuthorizer validates bearer tokens issued by AuthService.Login.
type TokenAuthorizer struct {
	secret []byte
}

func NewTokenAuthorizer(secret []byte) *TokenAuthorizer {
	return &TokenAuthorizer{secret: secret}
}

func (a *TokenAuthorizer) Authorize(credential string) (Principal, error) {
	if len(a.secret) == 0 {
		return Principal{}, ErrUnauthorized
	}
	tok, err := jwt.ParseWithClaims(credential, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return Principal{}, ErrUnauthorized
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return Principal{}, ErrUnauthorized
	}
	return Principal{UserID: claims.UserID, Username: claims.Username, Role: claims.Role}, nil
}

type AuthService struct {
	users    domain.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users domain.UserRepository, secret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, tokenTTL: tokenTTL}
}

// Login verifies a username/password pair and returns a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if s.users == nil {
		// file-backed deployments have no user accounts
		return "", ErrInvalidCredentials
	}
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		// Burn a bcrypt comparison anyway so a missing user takes as
		// long as a wrong password.
		bcrypt.CompareHashAndPassword([]byte("$2a$10$000000000000000000000uGyt3z0C/0RJmLVbiCBrvuSta0Y6FK6"), []byte(password))
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	claims := Claims{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
