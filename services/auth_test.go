package services

import (
	"testing"

	"github.com/recuerdo-labs/escape_api/dto"
	"github.com/recuerdo-labs/escape_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Register(dto.RegisterRequest{
		Email:    "player@example.com",
		Username: "player01",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "player@example.com", user.Email)
	assert.Equal(t, "user", user.Role)

	resp, err := env.auth.Login(dto.LoginRequest{
		EmailOrUsername: "player@example.com",
		Password:        "Sup3rSecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, user.ID, resp.User.ID)

	// The token round-trips through the verifier.
	userID, err := env.jwt.VerifyJWTToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	// Username works as the login handle too.
	resp, err = env.auth.Login(dto.LoginRequest{
		EmailOrUsername: "player01",
		Password:        "Sup3rSecret",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)
	require.NotNil(t, resp.User.LastLoginAt)
}

func TestRegisterDuplicate(t *testing.T) {
	env := newTestEnv(t)

	req := dto.RegisterRequest{
		Email:    "dup@example.com",
		Username: "dupuser",
		Password: "Sup3rSecret",
	}
	_, err := env.auth.Register(req)
	require.NoError(t, err)

	_, err = env.auth.Register(req)
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.StatusCode)

	req.Email = "other@example.com"
	_, err = env.auth.Register(req)
	require.Error(t, err, "username still taken")
	appErr, ok = shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register(dto.RegisterRequest{
		Email:    "wp@example.com",
		Username: "wpuser",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)

	_, err = env.auth.Login(dto.LoginRequest{
		EmailOrUsername: "wp@example.com",
		Password:        "WrongPass1",
	})
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.StatusCode)
}

func TestLoginUnknownAccount(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Login(dto.LoginRequest{
		EmailOrUsername: "ghost@example.com",
		Password:        "Sup3rSecret",
	})
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.StatusCode)
}

func TestGetProfile(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.auth.Register(dto.RegisterRequest{
		Email:    "profile@example.com",
		Username: "profileuser",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)

	profile, err := env.auth.GetProfile(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, profile.ID)
	assert.Equal(t, "profileuser", profile.Username)

	_, err = env.auth.GetProfile("no-such-user")
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
}
