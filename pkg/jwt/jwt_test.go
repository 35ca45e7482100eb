package jwt

import (
	"testing"
	"time"

	"hospital-management-api/config"
	"hospital-management-api/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  7 * 24 * time.Hour,
		RefreshExpiry: 30 * 24 * time.Hour,
		DoctorExpiry:  2 * time.Hour,
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := NewJWTService(testConfig())
	identity := Identity{ID: uuid.New(), Email: "Jane@Example.com", Role: "patient"}

	for _, kind := range []TokenType{AccessToken, RefreshToken} {
		t.Run(string(kind), func(t *testing.T) {
			token, _, err := svc.Issue(identity, kind)
			require.NoError(t, err)

			claims, err := svc.Verify(token)
			require.NoError(t, err)
			require.Equal(t, Identity{ID: identity.ID, Email: "jane@example.com", Role: "patient"}, claims.Identity())
			require.Equal(t, kind, claims.TokenType)
			require.NotEmpty(t, claims.RegisteredClaims.ID)
		})
	}
}

func TestIssue_RolePolicy(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewJWTService(testConfig(), WithTimeFunc(clock.Now))

	_, exp, err := svc.Issue(Identity{ID: uuid.New(), Email: "a@x.com", Role: "patient"}, AccessToken)
	require.NoError(t, err)
	require.Equal(t, clock.now.Add(7*24*time.Hour), exp)

	_, exp, err = svc.Issue(Identity{ID: uuid.New(), Email: "a@x.com", Role: "patient"}, RefreshToken)
	require.NoError(t, err)
	require.Equal(t, clock.now.Add(30*24*time.Hour), exp)

	_, exp, err = svc.Issue(Identity{ID: uuid.New(), Email: "d@x.com", Role: "doctor"}, AccessToken)
	require.NoError(t, err)
	require.Equal(t, clock.now.Add(2*time.Hour), exp)

	_, _, err = svc.Issue(Identity{ID: uuid.New(), Email: "d@x.com", Role: "doctor"}, RefreshToken)
	require.ErrorIs(t, err, ErrKindNotIssued)
}

func TestVerify_ExpiredAfterLifetime(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewJWTService(testConfig(), WithTimeFunc(clock.Now))

	token, _, err := svc.IssueFor(Identity{ID: uuid.New(), Email: "a@x.com", Role: "patient"}, AccessToken, time.Second)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Second)
	_, err = svc.Verify(token)
	require.ErrorIs(t, err, apperror.ErrTokenExpired)
	require.Equal(t, apperror.KindTokenExpired, apperror.KindOf(err))
}

func TestVerify_BadSignature(t *testing.T) {
	issuer := NewJWTService(testConfig())
	other := testConfig()
	other.Secret = "another-secret"
	verifier := NewJWTService(other)

	token, _, err := issuer.Issue(Identity{ID: uuid.New(), Email: "a@x.com", Role: "patient"}, AccessToken)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	svc := NewJWTService(testConfig())
	claims := Claims{
		ID:        uuid.New(),
		Email:     "a@x.com",
		Role:      "patient",
		TokenType: AccessToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = svc.Verify(token)
	require.ErrorIs(t, err, apperror.ErrInvalidToken)

	token, err = jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.Verify(token)
	require.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	svc := NewJWTService(testConfig())

	_, err := svc.Verify("not.a.token")
	require.ErrorIs(t, err, apperror.ErrInvalidToken)
}
