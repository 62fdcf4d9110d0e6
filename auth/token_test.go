package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue(map[string]interface{}{
		"email": "a@x.com",
		"role":  "viewer",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims["email"])
	assert.Equal(t, "viewer", claims["role"])
	assert.Contains(t, claims, "exp")
}

func TestIssue_EmptyClaims(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue(nil)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	// Only the expiry is added by the service.
	assert.Len(t, claims, 1)
}

func TestVerify_TamperedToken(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue(map[string]interface{}{"email": "a@x.com"})
	require.NoError(t, err)

	// Flip the last byte of the signature.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = svc.Verify(string(tampered))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one")
	verifier := NewTokenService("secret-two")

	token, err := issuer.Issue(map[string]interface{}{"email": "a@x.com"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_ExpiredToken(t *testing.T) {
	svc := &TokenService{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := svc.Issue(map[string]interface{}{"email": "a@x.com"})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	svc := NewTokenService("test-secret")

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
