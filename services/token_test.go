package services

import (
	"testing"
	"time"

	"github.com/recuerdo-labs/escape_api/dto"
	"github.com/recuerdo-labs/escape_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnFromToken(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "tokowner1")
	player := createTestUser(t, env, "tokplayer1")
	createTextFact(t, env, owner.ID, "A question", "alpha", shared.DifficultyMedium, nil)
	token := createTestToken(t, env, owner.ID, "spawncode1", nil, nil)

	session, err := env.token.SpawnFromToken(token.Code, player.ID)
	require.NoError(t, err)

	assert.Equal(t, player.ID, session.PlayerID)
	assert.Equal(t, owner.ID, session.ContentOwnerID)
	assert.NotEmpty(t, session.Seed)

	uses, err := env.db.Tokens().CountUses(token.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), uses)
}

func TestSpawnFromTokenRepeatPlayerOneUse(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "tokowner2")
	player := createTestUser(t, env, "tokplayer2")
	createTextFact(t, env, owner.ID, "A question", "alpha", shared.DifficultyMedium, nil)
	token := createTestToken(t, env, owner.ID, "spawncode2", nil, nil)

	first, err := env.token.SpawnFromToken(token.Code, player.ID)
	require.NoError(t, err)
	second, err := env.token.SpawnFromToken(token.Code, player.ID)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	// Same account, one usage-log entry.
	uses, err := env.db.Tokens().CountUses(token.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), uses)
}

func TestSpawnFromTokenUnknownCode(t *testing.T) {
	env := newTestEnv(t)
	player := createTestUser(t, env, "tokplayer3")

	_, err := env.token.SpawnFromToken("nosuchcode", player.ID)
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.StatusCode)
	assert.ErrorIs(t, appErr.Err, shared.ErrTokenInvalid)
}

func TestSpawnFromTokenInactive(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "tokowner4")
	player := createTestUser(t, env, "tokplayer4")
	token := createTestToken(t, env, owner.ID, "spawncode4", nil, nil)

	require.NoError(t, env.token.DeactivateToken(owner.ID, token.ID))

	_, err := env.token.SpawnFromToken(token.Code, player.ID)
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.ErrorIs(t, appErr.Err, shared.ErrTokenInvalid)
}

func TestSpawnFromTokenExpired(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "tokowner5")
	player := createTestUser(t, env, "tokplayer5")
	past := time.Now().Add(-time.Hour)
	token := createTestToken(t, env, owner.ID, "spawncode5", nil, &past)

	_, err := env.token.SpawnFromToken(token.Code, player.ID)
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.ErrorIs(t, appErr.Err, shared.ErrTokenInvalid)
}

func TestSpawnFromTokenMaxUses(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "tokowner6")
	playerA := createTestUser(t, env, "tokplayer6a")
	playerB := createTestUser(t, env, "tokplayer6b")
	createTextFact(t, env, owner.ID, "A question", "alpha", shared.DifficultyMedium, nil)

	one := 1
	token := createTestToken(t, env, owner.ID, "spawncode6", &one, nil)

	_, err := env.token.SpawnFromToken(token.Code, playerA.ID)
	require.NoError(t, err)

	// A second distinct account is over the cap.
	_, err = env.token.SpawnFromToken(token.Code, playerB.ID)
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.ErrorIs(t, appErr.Err, shared.ErrTokenInvalid)

	// The account that already redeemed can keep playing.
	_, err = env.token.SpawnFromToken(token.Code, playerA.ID)
	require.NoError(t, err)
}

func TestSpawnFromTokenSelfUse(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "tokowner7")
	createTextFact(t, env, owner.ID, "A question", "alpha", shared.DifficultyMedium, nil)
	token := createTestToken(t, env, owner.ID, "spawncode7", nil, nil)

	_, err := env.token.SpawnFromToken(token.Code, owner.ID)
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.StatusCode)
	assert.ErrorIs(t, appErr.Err, shared.ErrSelfUse)
}

func TestSpawnFromTokenEmptyPool(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "tokowner8")
	player := createTestUser(t, env, "tokplayer8")
	token := createTestToken(t, env, owner.ID, "spawncode8", nil, nil)

	_, err := env.token.SpawnFromToken(token.Code, player.ID)
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.StatusCode)
	assert.ErrorIs(t, appErr.Err, shared.ErrEmptyPool)
}

func TestCreateAndListTokens(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "tokowner9")
	player := createTestUser(t, env, "tokplayer9")
	createTextFact(t, env, owner.ID, "A question", "alpha", shared.DifficultyMedium, nil)

	uses := 5
	created, err := env.token.CreateToken(owner.ID, dto.CreateShareTokenRequest{MaxUses: &uses})
	require.NoError(t, err)
	assert.Len(t, created.Code, 10)
	assert.True(t, created.IsActive)
	assert.Equal(t, 0, created.UseCount)

	_, err = env.token.SpawnFromToken(created.Code, player.ID)
	require.NoError(t, err)

	list, err := env.token.ListTokens(owner.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, list.Tokens, 1)
	assert.Equal(t, 1, list.Tokens[0].UseCount)
}

func TestDeactivateTokenWrongOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "tokowner10")
	stranger := createTestUser(t, env, "tokstranger10")
	token := createTestToken(t, env, owner.ID, "spawncode10", nil, nil)

	err := env.token.DeactivateToken(stranger.ID, token.ID)
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
}
