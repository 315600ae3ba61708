package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndValidate(t *testing.T) {
	t.Setenv("HOST_USERNAME", "builder")
	t.Setenv("HOST_PASSWORD", "s3cret")
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewAuthService()

	resp, err := svc.Login("builder", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Contains(t, resp.HostID, "host_")

	claims, err := svc.ValidateHostToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.HostID, claims.HostID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Setenv("HOST_USERNAME", "builder")
	t.Setenv("HOST_PASSWORD", "s3cret")

	svc := NewAuthService()

	_, err := svc.Login("builder", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("intruder", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateRejectsGarbageToken(t *testing.T) {
	svc := NewAuthService()

	_, err := svc.ValidateHostToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
