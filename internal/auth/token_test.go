package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	s := NewTokenService("test-secret", time.Hour)

	token, err := s.Issue("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "activevacancy", claims.Issuer)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).Issue("admin")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	token, err := NewTokenService("test-secret", -time.Minute).Issue("admin")
	require.NoError(t, err)

	_, err = NewTokenService("test-secret", -time.Minute).Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := NewTokenService("test-secret", time.Hour).Validate("not.a.token")
	assert.Error(t, err)
}
