package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hospital-management-api/config"
	"hospital-management-api/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

const (
	rolePatient = "patient"
	roleDoctor  = "doctor"
)

// ErrKindNotIssued is returned when a role's policy has no lifetime for the requested token kind.
var ErrKindNotIssued = errors.New("token kind not issued for role")

// Identity is what a token asserts about its bearer.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  string
}

type Claims struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() Identity {
	return Identity{ID: c.ID, Email: c.Email, Role: c.Role}
}

// TokenPolicy holds the lifetimes issued to one role. A zero lifetime means
// the kind is never issued.
type TokenPolicy struct {
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

func (p TokenPolicy) expiry(kind TokenType) time.Duration {
	if kind == RefreshToken {
		return p.RefreshExpiry
	}
	return p.AccessExpiry
}

type Option func(*JWTService)

// WithTimeFunc replaces the clock used for issuing and verifying.
func WithTimeFunc(now func() time.Time) Option {
	return func(s *JWTService) {
		s.now = now
	}
}

type JWTService struct {
	secret   []byte
	policies map[string]TokenPolicy
	fallback TokenPolicy
	now      func() time.Time
}

func NewJWTService(cfg config.JWTConfig, opts ...Option) *JWTService {
	fallback := TokenPolicy{AccessExpiry: cfg.AccessExpiry, RefreshExpiry: cfg.RefreshExpiry}
	s := &JWTService{
		secret: []byte(cfg.Secret),
		policies: map[string]TokenPolicy{
			rolePatient: fallback,
			roleDoctor:  {AccessExpiry: cfg.DoctorExpiry},
		},
		fallback: fallback,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Policy returns the lifetimes for role, falling back to the patient policy.
func (s *JWTService) Policy(role string) TokenPolicy {
	if p, ok := s.policies[role]; ok {
		return p
	}
	return s.fallback
}

// Issue signs a token of the given kind using the lifetime from the role's policy.
func (s *JWTService) Issue(identity Identity, kind TokenType) (string, time.Time, error) {
	ttl := s.Policy(identity.Role).expiry(kind)
	if ttl <= 0 {
		return "", time.Time{}, fmt.Errorf("%w: %s/%s", ErrKindNotIssued, identity.Role, kind)
	}
	return s.IssueFor(identity, kind, ttl)
}

func (s *JWTService) IssueFor(identity Identity, kind TokenType, ttl time.Duration) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(ttl)
	claims := Claims{
		ID:        identity.ID,
		Email:     strings.ToLower(identity.Email),
		Role:      identity.Role,
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identity.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signedToken, expiresAt, nil
}

// Verify checks signature, algorithm and lifetime. Expiry yields
// apperror.ErrTokenExpired; every other failure yields apperror.ErrInvalidToken.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.ErrTokenExpired
		}
		return nil, apperror.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == uuid.Nil {
		return nil, apperror.ErrInvalidToken
	}

	return claims, nil
}
