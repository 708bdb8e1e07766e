package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewTokenAuthority_EmptySecret(t *testing.T) {
	_, err := NewTokenAuthority("", time.Hour)
	assert.Error(t, err)
}

func TestIssueAndVerify(t *testing.T) {
	tokens, err := NewTokenAuthority("secret", time.Hour)
	require.NoError(t, err)

	raw, err := tokens.Issue("user-1")
	require.NoError(t, err)

	claims, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, issuer, claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestIssue_UniqueTokenIDs(t *testing.T) {
	tokens, err := NewTokenAuthority("secret", time.Hour)
	require.NoError(t, err)

	first, err := tokens.Issue("user-1")
	require.NoError(t, err)
	second, err := tokens.Issue("user-1")
	require.NoError(t, err)

	a, err := tokens.Verify(first)
	require.NoError(t, err)
	b, err := tokens.Verify(second)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestIssue_NoExpiryWhenTTLZero(t *testing.T) {
	tokens, err := NewTokenAuthority("secret", 0)
	require.NoError(t, err)

	raw, err := tokens.Issue("user-1")
	require.NoError(t, err)
	claims, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestVerify_Failures(t *testing.T) {
	tokens, err := NewTokenAuthority("secret", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenAuthority("other-secret", time.Hour)
	require.NoError(t, err)

	foreign, err := other.Issue("user-1")
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &UserClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &UserClaims{}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = tokens.Verify("")
	assert.ErrorIs(t, err, ErrMissingToken)

	for name, raw := range map[string]string{
		"garbage":    "not-a-jwt",
		"foreign":    foreign,
		"expired":    expired,
		"no subject": noSubject,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tokens.Verify(raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestRevokedTokenIsInvalid(t *testing.T) {
	assert.ErrorIs(t, ErrRevokedToken, ErrInvalidToken)
}

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.HashPassword("Passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd", hash)

	assert.NoError(t, hasher.CheckPasswordHash("Passw0rd", hash))
	assert.ErrorIs(t, hasher.CheckPasswordHash("wrong", hash), ErrPasswordMismatch)

	again, err := hasher.HashPassword("Passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)

	_, err = hasher.HashPassword("")
	assert.Error(t, err)
}

func TestNewPasswordHasher_Cost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.MinCost, NewPasswordHasher(1).cost)
	assert.Equal(t, bcrypt.MaxCost, NewPasswordHasher(99).cost)
}
