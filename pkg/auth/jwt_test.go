package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Issuer:     "bib-test",
		Audience:   "iban-service",
		Expiration: 15 * time.Minute,
	})
	require.NoError(t, err)
	return svc
}

func TestIssueAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t)

	tokenString, err := svc.IssueToken("payments-api", []string{ScopeValidate, ScopeRead})
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)

	assert.Equal(t, "payments-api", claims.ClientID)
	assert.Equal(t, "payments-api", claims.Subject)
	assert.Equal(t, "bib-test", claims.Issuer)
	assert.Equal(t, []string{ScopeValidate, ScopeRead}, claims.Scopes)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_RSA(t *testing.T) {
	privPEM, pubPEM, err := GenerateKeyPair()
	require.NoError(t, err)

	issuer, err := NewJWTService(JWTConfig{PrivateKeyPEM: string(privPEM), Issuer: "bib-gateway", Expiration: time.Minute})
	require.NoError(t, err)
	verifier, err := NewJWTService(JWTConfig{PublicKeyPEM: string(pubPEM), Issuer: "bib-gateway"})
	require.NoError(t, err)

	token, err := issuer.IssueToken("ops-console", []string{ScopeAdmin})
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.HasScope(ScopeRead), "admin scope grants read")

	_, err = verifier.IssueToken("ops-console", nil)
	assert.ErrorIs(t, err, ErrIssueDisabled)

	// An HS256 token must not be accepted by an RS256 verifier.
	hmacSvc := newTestJWTService(t)
	hmacToken, err := hmacSvc.IssueToken("intruder", []string{ScopeAdmin})
	require.NoError(t, err)
	_, err = verifier.ValidateToken(hmacToken)
	assert.Error(t, err)
}

func TestValidateToken_Rejections(t *testing.T) {
	svc := newTestJWTService(t)

	t.Run("expired", func(t *testing.T) {
		expired, err := NewJWTService(JWTConfig{
			Secret:     "test-secret-key-for-unit-tests",
			Issuer:     "bib-test",
			Audience:   "iban-service",
			Expiration: -1 * time.Hour,
		})
		require.NoError(t, err)
		token, err := expired.IssueToken("c", []string{ScopeRead})
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.True(t, errors.Is(err, jwt.ErrTokenExpired), "got %v", err)
	})

	t.Run("wrong signature", func(t *testing.T) {
		other, err := NewJWTService(JWTConfig{Secret: "secret-two", Issuer: "bib-test", Audience: "iban-service", Expiration: time.Minute})
		require.NoError(t, err)
		token, err := other.IssueToken("c", nil)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid), "got %v", err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other, err := NewJWTService(JWTConfig{Secret: "test-secret-key-for-unit-tests", Issuer: "elsewhere", Audience: "iban-service", Expiration: time.Minute})
		require.NoError(t, err)
		token, err := other.IssueToken("c", nil)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.True(t, errors.Is(err, jwt.ErrTokenInvalidIssuer), "got %v", err)
	})

	t.Run("wrong audience", func(t *testing.T) {
		other, err := NewJWTService(JWTConfig{Secret: "test-secret-key-for-unit-tests", Issuer: "bib-test", Audience: "ledger", Expiration: time.Minute})
		require.NoError(t, err)
		token, err := other.IssueToken("c", nil)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.True(t, errors.Is(err, jwt.ErrTokenInvalidAudience), "got %v", err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-jwt")
		assert.Error(t, err)
	})
}

func TestNewJWTService_RequiresKeyMaterial(t *testing.T) {
	_, err := NewJWTService(JWTConfig{Issuer: "bib-test"})
	assert.Error(t, err)

	_, err = NewJWTService(JWTConfig{PublicKeyPEM: "-----BEGIN PUBLIC KEY-----\nbad\n-----END PUBLIC KEY-----"})
	assert.Error(t, err)
}

func TestHasScope(t *testing.T) {
	claims := Claims{Scopes: []string{ScopeValidate}}

	assert.True(t, claims.HasScope(ScopeValidate))
	assert.False(t, claims.HasScope(ScopeRead))
	assert.False(t, Claims{}.HasScope(ScopeValidate))
}
