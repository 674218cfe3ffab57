package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/inventory-service/internal/domain"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestIssueAndValidateRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 4*time.Hour)

	principal := Principal{
		ID:    "user-1",
		Email: "alice@example.com",
		Roles: []domain.Role{domain.RoleAdmin, domain.RoleCustomer},
	}

	token, expiresAt, err := tm.Issue(principal)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(4*time.Hour), expiresAt, time.Minute)

	got, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, principal.ID, got.ID)
	assert.Equal(t, principal.Email, got.Email)
	assert.Equal(t, principal.Roles, got.Roles)
}

func TestValidateRoundTripWithoutRoles(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, _, err := tm.Issue(Principal{ID: "user-2", Email: "bob@example.com"})
	require.NoError(t, err)

	got, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Empty(t, got.Roles)
}

func TestValidateRejectsExpiredWithZeroTolerance(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tm := NewTokenManager("test-secret", 4*time.Hour)
	tm.now = fixedClock(issuedAt)

	token, expiresAt, err := tm.Issue(Principal{ID: "user-1", Email: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(4*time.Hour), expiresAt)

	// One second before expiry the token still verifies.
	tm.now = fixedClock(expiresAt.Add(-time.Second))
	_, err = tm.Validate(token)
	require.NoError(t, err)

	// One second past expiry it does not; there is no skew allowance.
	tm.now = fixedClock(expiresAt.Add(time.Second))
	_, err = tm.Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateRejectsTamperedSignature(t *testing.T) {
	issuer := NewTokenManager("secret-one", time.Hour)
	verifier := NewTokenManager("secret-two", time.Hour)

	token, _, err := issuer.Issue(Principal{ID: "user-1", Email: "a@b.c"})
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestValidateRejectsMalformedToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	_, err := tm.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestValidateRejectsWrongSigningMethod(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	// A token signed with "none" must never pass, regardless of claims.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}
