package services

import (
	"testing"

	"github.com/recuerdo-labs/escape_api/dto"
	"github.com/recuerdo-labs/escape_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawRewardDeterministic(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "rowner1")
	player := createTestUser(t, env, "rplayer1")

	createTestReward(t, env, owner.ID, "Light", 1)
	heavy := createTestReward(t, env, owner.ID, "Heavy", 9)

	// Seed "abc" over weights [1, 9] lands on the second reward.
	won, err := env.reward.DrawReward(env.db.Db(), owner.ID, player.ID, "abc")
	require.NoError(t, err)
	assert.Equal(t, heavy.ID, won.ID)

	stored, err := env.db.Rewards().GetReward(won.ID)
	require.NoError(t, err)
	assert.True(t, stored.Used)
	assert.Equal(t, player.ID, stored.UsedBy)
	require.NotNil(t, stored.UsedAt)
}

func TestDrawRewardSkipsUsed(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "rowner2")
	player := createTestUser(t, env, "rplayer2")

	only := createTestReward(t, env, owner.ID, "Only", 3)

	won, err := env.reward.DrawReward(env.db.Db(), owner.ID, player.ID, "abc")
	require.NoError(t, err)
	assert.Equal(t, only.ID, won.ID)

	// Pool is now exhausted.
	_, err = env.reward.DrawReward(env.db.Db(), owner.ID, player.ID, "def")
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.StatusCode)
	assert.ErrorIs(t, appErr.Err, shared.ErrEmptyRewardPool)
}

func TestDrawRewardEmptyPool(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "rowner3")
	player := createTestUser(t, env, "rplayer3")

	_, err := env.reward.DrawReward(env.db.Db(), owner.ID, player.ID, "abc")
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.ErrorIs(t, appErr.Err, shared.ErrEmptyRewardPool)
}

func TestGetWonReward(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "rowner4")
	player := createTestUser(t, env, "rplayer4")

	_, err := env.reward.GetWonReward(player.ID)
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)

	created := createTestReward(t, env, owner.ID, "Prize", 5)
	_, err = env.reward.DrawReward(env.db.Db(), owner.ID, player.ID, "abc")
	require.NoError(t, err)

	won, err := env.reward.GetWonReward(player.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, won.ID)
	assert.Equal(t, "Prize", won.Title)
	assert.Zero(t, won.Weight, "weight is owner-only")
}

func TestUpdateUsedRewardRejected(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "rowner5")
	player := createTestUser(t, env, "rplayer5")

	reward := createTestReward(t, env, owner.ID, "Prize", 5)
	_, err := env.reward.DrawReward(env.db.Db(), owner.ID, player.ID, "abc")
	require.NoError(t, err)

	_, err = env.reward.UpdateReward(owner.ID, reward.ID, dto.UpdateRewardRequest{Title: "Edited"})
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.StatusCode)

	err = env.reward.DeleteReward(owner.ID, reward.ID)
	require.Error(t, err)
	appErr, ok = shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.StatusCode)
}

func TestCreateAndUpdateReward(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "rowner6")

	created, err := env.reward.CreateReward(owner.ID, dto.CreateRewardRequest{
		Title:  "Dinner",
		Weight: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.Weight, "owner view includes weight")

	updated, err := env.reward.UpdateReward(owner.ID, created.ID, dto.UpdateRewardRequest{Weight: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Weight)

	list, err := env.reward.ListRewards(owner.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, list.Rewards, 1)
	assert.Equal(t, int64(1), list.Total)
}
