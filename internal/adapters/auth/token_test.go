package auth

import (
	"testing"
	"time"

	"clubops/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	issuer := NewJWTIssuer("test-secret")
	verifier := NewJWTVerifier("test-secret")

	want := domain.Principal{
		UserID: "u-1",
		Name:   "Dana",
		Role:   domain.RoleSecretary,
		ClubID: "club-1",
	}

	token, err := issuer.Issue(want, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVerify_Rejections(t *testing.T) {
	issuer := NewJWTIssuer("test-secret")
	principal := domain.Principal{UserID: "u-1", Role: domain.RoleAdmin}

	t.Run("wrong secret", func(t *testing.T) {
		token, err := issuer.Issue(principal, time.Hour)
		require.NoError(t, err)

		_, err = NewJWTVerifier("other-secret").Verify(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := issuer.Issue(principal, -time.Minute)
		require.NoError(t, err)

		_, err = NewJWTVerifier("test-secret").Verify(token)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := NewJWTVerifier("test-secret").Verify("not.a.jwt")
		assert.Error(t, err)
	})
}
