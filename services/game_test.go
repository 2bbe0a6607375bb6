package services

import (
	"testing"

	"github.com/recuerdo-labs/escape_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeSessionDeterministicOrder(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "owner1")

	f0 := createTextFact(t, env, owner.ID, "First question", "alpha", shared.DifficultyMedium, nil)
	f1 := createTextFact(t, env, owner.ID, "Second question", "beta", shared.DifficultyMedium, nil)
	f2 := createTextFact(t, env, owner.ID, "Third question", "gamma", shared.DifficultyMedium, nil)

	// Seed "xyz" requests 3 levels and samples indices [0, 2, 1] from a
	// pool of three facts ordered by creation.
	session, err := env.game.ComposeSession(owner.ID, owner.ID, "xyz")
	require.NoError(t, err)

	assert.Equal(t, 3, session.TotalLevels)
	assert.Equal(t, shared.SessionStatusActive, session.Status)
	assert.Equal(t, "xyz", session.Seed)
	require.Len(t, session.Levels, 3)

	assert.Equal(t, f0.ID, session.Levels[0].FactID)
	assert.Equal(t, f2.ID, session.Levels[1].FactID)
	assert.Equal(t, f1.ID, session.Levels[2].FactID)

	for i, lvl := range session.Levels {
		assert.Equal(t, i+1, lvl.OrderIndex)
		assert.NotEmpty(t, lvl.Salt)
		assert.NotEmpty(t, lvl.Commitment)
		assert.Equal(t, 4, lvl.MaxAttempts)
	}
}

func TestComposeSessionEmptyPool(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "owner2")

	_, err := env.game.ComposeSession(owner.ID, owner.ID, "xyz")
	require.Error(t, err)

	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.StatusCode)
	assert.ErrorIs(t, appErr.Err, shared.ErrEmptyPool)
}

func TestComposeSessionClampsToPoolSize(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "owner3")

	createTextFact(t, env, owner.ID, "Only question", "alpha", shared.DifficultyMedium, nil)
	createTextFact(t, env, owner.ID, "Other question", "beta", shared.DifficultyMedium, nil)

	// "xyz" wants 3 levels but only 2 facts exist.
	session, err := env.game.ComposeSession(owner.ID, owner.ID, "xyz")
	require.NoError(t, err)
	assert.Equal(t, 2, session.TotalLevels)
}

func TestComposeSessionRetiresPreviousRun(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "owner4")
	createTextFact(t, env, owner.ID, "A question", "alpha", shared.DifficultyMedium, nil)

	first, err := env.game.ComposeSession(owner.ID, owner.ID, "seed-one")
	require.NoError(t, err)

	second, err := env.game.ComposeSession(owner.ID, owner.ID, "seed-two")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	stale, err := env.db.Games().GetSession(first.ID)
	require.NoError(t, err)
	assert.False(t, stale.IsActive)

	active, err := env.db.Games().GetActiveSession(owner.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
}

func TestVerifyWrongAnswerWalksHints(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "owner5")
	createTextFact(t, env, owner.ID, "A question", "alpha", shared.DifficultyEasy,
		[]string{"first hint", "second hint"})

	session, err := env.game.ComposeSession(owner.ID, owner.ID, "abc")
	require.NoError(t, err)
	require.Len(t, session.Levels, 1)
	levelID := session.Levels[0].ID

	resp, err := env.game.VerifyLevel(owner.ID, session.ID, levelID, "wrong")
	require.NoError(t, err)
	assert.False(t, resp.Correct)
	assert.Equal(t, 1, resp.Attempts)
	assert.Equal(t, 4, resp.AttemptsLeft)
	require.NotNil(t, resp.Hint)
	assert.Equal(t, "first hint", resp.Hint.Hint)
	assert.Equal(t, 1, resp.Hint.Remaining)

	resp, err = env.game.VerifyLevel(owner.ID, session.ID, levelID, "still wrong")
	require.NoError(t, err)
	require.NotNil(t, resp.Hint)
	assert.Equal(t, "second hint", resp.Hint.Hint)
	assert.Equal(t, 0, resp.Hint.Remaining)

	// Hints clamp at the last one.
	resp, err = env.game.VerifyLevel(owner.ID, session.ID, levelID, "nope")
	require.NoError(t, err)
	require.NotNil(t, resp.Hint)
	assert.Equal(t, "second hint", resp.Hint.Hint)
}

func TestVerifyCanonicalizesAnswers(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "owner6")
	createTextFact(t, env, owner.ID, "A question", "Café", shared.DifficultyMedium, nil)

	session, err := env.game.ComposeSession(owner.ID, owner.ID, "abc")
	require.NoError(t, err)
	require.Len(t, session.Levels, 1)

	resp, err := env.game.VerifyLevel(owner.ID, session.ID, session.Levels[0].ID, "  cafe ")
	require.NoError(t, err)
	assert.True(t, resp.Correct)
}

func TestVerifyExhaustsAttempts(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "owner7")
	createTextFact(t, env, owner.ID, "A question", "alpha", shared.DifficultyHard, nil)

	session, err := env.game.ComposeSession(owner.ID, owner.ID, "abc")
	require.NoError(t, err)
	levelID := session.Levels[0].ID

	for i := 0; i < 3; i++ {
		resp, err := env.game.VerifyLevel(owner.ID, session.ID, levelID, "wrong")
		require.NoError(t, err)
		assert.False(t, resp.Correct)
		assert.Equal(t, i+1, resp.Attempts)
	}

	_, err = env.game.VerifyLevel(owner.ID, session.ID, levelID, "alpha")
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.StatusCode)
	assert.ErrorIs(t, appErr.Err, shared.ErrExhaustedAttempts)
}

func TestVerifyCompletesSessionAndDrawsReward(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "owner8")
	createTextFact(t, env, owner.ID, "A question", "alpha", shared.DifficultyMedium, nil)
	createTestReward(t, env, owner.ID, "Dinner", 5)

	session, err := env.game.ComposeSession(owner.ID, owner.ID, "abc")
	require.NoError(t, err)

	resp, err := env.game.VerifyLevel(owner.ID, session.ID, session.Levels[0].ID, "alpha")
	require.NoError(t, err)

	assert.True(t, resp.Correct)
	assert.True(t, resp.SessionCompleted)
	require.NotNil(t, resp.Session)
	assert.Equal(t, shared.SessionStatusCompleted, resp.Session.Status)
	assert.Equal(t, 100, resp.Session.Progress)
	assert.Equal(t, 1, resp.Session.CompletedCount)
	require.NotNil(t, resp.Reward)
	assert.Equal(t, "Dinner", resp.Reward.Title)
	assert.Zero(t, resp.Reward.Weight, "weight is owner-only")

	user, err := env.db.Users().GetUser(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, user.CompletedSessions)

	// A completed session rejects further guesses.
	_, err = env.game.VerifyLevel(owner.ID, session.ID, session.Levels[0].ID, "alpha")
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.ErrorIs(t, appErr.Err, shared.ErrAlreadyCompleted)
}

func TestVerifyCompletesWithoutRewardPool(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "owner9")
	createTextFact(t, env, owner.ID, "A question", "alpha", shared.DifficultyMedium, nil)

	session, err := env.game.ComposeSession(owner.ID, owner.ID, "abc")
	require.NoError(t, err)

	resp, err := env.game.VerifyLevel(owner.ID, session.ID, session.Levels[0].ID, "alpha")
	require.NoError(t, err)
	assert.True(t, resp.SessionCompleted)
	assert.Nil(t, resp.Reward)
}

func TestVerifyProgressAcrossLevels(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "owner10")

	f0 := createTextFact(t, env, owner.ID, "Q1", "alpha", shared.DifficultyMedium, nil)
	f1 := createTextFact(t, env, owner.ID, "Q2", "beta", shared.DifficultyMedium, nil)
	f2 := createTextFact(t, env, owner.ID, "Q3", "gamma", shared.DifficultyMedium, nil)
	answers := answersByFact(f0, f1, f2)

	session, err := env.game.ComposeSession(owner.ID, owner.ID, "xyz")
	require.NoError(t, err)
	require.Len(t, session.Levels, 3)

	resp, err := env.game.VerifyLevel(owner.ID, session.ID, session.Levels[0].ID,
		answers[session.Levels[0].FactID])
	require.NoError(t, err)
	assert.True(t, resp.Correct)
	assert.False(t, resp.SessionCompleted)

	mid, err := env.db.Games().GetSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, mid.CompletedCount)
	assert.Equal(t, 33, mid.Progress)

	for _, lvl := range session.Levels[1:] {
		resp, err = env.game.VerifyLevel(owner.ID, session.ID, lvl.ID, answers[lvl.FactID])
		require.NoError(t, err)
		assert.True(t, resp.Correct)
	}
	assert.True(t, resp.SessionCompleted)

	done, err := env.db.Games().GetSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, shared.SessionStatusCompleted, done.Status)
	assert.Equal(t, 100, done.Progress)
	assert.Equal(t, 3, done.CompletedCount)
	require.NotNil(t, done.CompletedAt)
}

func TestVerifyUnknownSession(t *testing.T) {
	env := newTestEnv(t)
	player := createTestUser(t, env, "owner11")

	_, err := env.game.VerifyLevel(player.ID, "no-such-session", "no-such-level", "x")
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestGetLevelHidesCommitment(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "owner12")
	createTextFact(t, env, owner.ID, "A question", "alpha", shared.DifficultyMedium, nil)

	session, err := env.game.ComposeSession(owner.ID, owner.ID, "abc")
	require.NoError(t, err)

	view, err := env.game.GetLevel(owner.ID, session.ID, session.Levels[0].ID)
	require.NoError(t, err)
	assert.Equal(t, session.Levels[0].ID, view.ID)
	assert.Equal(t, "A question", view.Prompt)
	assert.Equal(t, 4, view.MaxAttempts)
}

func TestGetLevelForeignSession(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "owner13")
	stranger := createTestUser(t, env, "stranger13")
	createTextFact(t, env, owner.ID, "A question", "alpha", shared.DifficultyMedium, nil)

	session, err := env.game.ComposeSession(owner.ID, owner.ID, "abc")
	require.NoError(t, err)

	_, err = env.game.GetLevel(stranger.ID, session.ID, session.Levels[0].ID)
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestResetSession(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "owner14")
	createTextFact(t, env, owner.ID, "A question", "alpha", shared.DifficultyMedium, nil)

	first, err := env.game.ComposeSession(owner.ID, owner.ID, "abc")
	require.NoError(t, err)

	fresh, err := env.game.ResetSession(owner.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, fresh.ID)
	assert.NotEqual(t, first.Seed, fresh.Seed)

	// The old run's levels are gone and the session is retired.
	old, err := env.db.Games().GetSessionWithLevels(first.ID)
	require.NoError(t, err)
	assert.Empty(t, old.Levels)
	assert.False(t, old.IsActive)

	active, err := env.db.Games().GetActiveSession(owner.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, fresh.ID, active.ID)
}

func TestResetSessionWithoutActiveRun(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "owner15")
	createTextFact(t, env, owner.ID, "A question", "alpha", shared.DifficultyMedium, nil)

	fresh, err := env.game.ResetSession(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.TotalLevels)
}
