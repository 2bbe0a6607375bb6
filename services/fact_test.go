package services

import (
	"testing"

	"github.com/recuerdo-labs/escape_api/dto"
	"github.com/recuerdo-labs/escape_api/model"
	"github.com/recuerdo-labs/escape_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFactText(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "fowner1")

	created, err := env.fact.CreateFact(owner.ID, dto.CreateFactRequest{
		Type:   shared.FactTypeText,
		Prompt: "What do I always order?",
		Hints:  []string{"Tiny cup"},
		Value:  dto.FactValueRequest{Text: "cafe"},
	})
	require.NoError(t, err)

	assert.Equal(t, shared.FactTypeText, created.Type)
	assert.Equal(t, shared.DifficultyMedium, created.Difficulty, "difficulty defaults to medium")
	assert.True(t, created.IsActive)
	assert.Equal(t, []string{"Tiny cup"}, created.Hints)
}

func TestCreateFactDateNormalized(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "fowner2")

	created, err := env.fact.CreateFact(owner.ID, dto.CreateFactRequest{
		Type:   shared.FactTypeDate,
		Prompt: "When was our first trip?",
		Value:  dto.FactValueRequest{Date: "15/06/2020"},
	})
	require.NoError(t, err)

	stored, err := env.db.Facts().GetOwnerFact(owner.ID, created.ID)
	require.NoError(t, err)
	value, err := stored.DecodeValue()
	require.NoError(t, err)
	assert.Equal(t, "2020-06-15", value.Date)
}

func TestCreateFactDateRejectsGarbage(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "fowner3")

	_, err := env.fact.CreateFact(owner.ID, dto.CreateFactRequest{
		Type:   shared.FactTypeDate,
		Prompt: "When was our first trip?",
		Value:  dto.FactValueRequest{Date: "sometime in June"},
	})
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode)
}

func TestCreateFactValueTypeMismatch(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "fowner4")

	_, err := env.fact.CreateFact(owner.ID, dto.CreateFactRequest{
		Type:   shared.FactTypeText,
		Prompt: "A question here",
		Value:  dto.FactValueRequest{Date: "2020-06-15"},
	})
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode)
}

func TestCreateFactPhotoRequiresOwnedAsset(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "fowner5")

	_, err := env.fact.CreateFact(owner.ID, dto.CreateFactRequest{
		Type:   shared.FactTypePhoto,
		Prompt: "Solve the puzzle",
		Value: dto.FactValueRequest{
			Photo: &dto.PhotoValueRequest{AssetID: "no-such-asset", GridSize: 3},
		},
	})
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode)
}

func TestCreateFactPhotoWithAsset(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "fowner6")

	asset, err := env.db.Media().CreateAsset(&model.MediaAsset{
		OwnerID:     owner.ID,
		FileName:    "pic.jpg",
		ContentType: "image/jpeg",
		Size:        1024,
		ObjectKey:   "images/" + owner.ID + "/pic.jpg",
	})
	require.NoError(t, err)

	created, err := env.fact.CreateFact(owner.ID, dto.CreateFactRequest{
		Type:   shared.FactTypePhoto,
		Prompt: "Solve the puzzle",
		Value: dto.FactValueRequest{
			Photo: &dto.PhotoValueRequest{AssetID: asset.ID, GridSize: 4},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, shared.FactTypePhoto, created.Type)
}

func TestUpdateFact(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "fowner7")
	fact := createTextFact(t, env, owner.ID, "Original prompt", "alpha", shared.DifficultyMedium, nil)

	inactive := false
	updated, err := env.fact.UpdateFact(owner.ID, fact.ID, dto.UpdateFactRequest{
		Prompt:     "Edited prompt",
		Difficulty: shared.DifficultyHard,
		IsActive:   &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Edited prompt", updated.Prompt)
	assert.Equal(t, shared.DifficultyHard, updated.Difficulty)
	assert.False(t, updated.IsActive)

	// Deactivated facts drop out of the compose pool.
	pool, err := env.db.Facts().GetActiveFactPool(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, pool)
}

func TestUpdateFactForeignOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "fowner8")
	stranger := createTestUser(t, env, "fstranger8")
	fact := createTextFact(t, env, owner.ID, "A question", "alpha", shared.DifficultyMedium, nil)

	_, err := env.fact.UpdateFact(stranger.ID, fact.ID, dto.UpdateFactRequest{Prompt: "Hijacked"})
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestDeleteFact(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "fowner9")
	fact := createTextFact(t, env, owner.ID, "A question", "alpha", shared.DifficultyMedium, nil)

	require.NoError(t, env.fact.DeleteFact(owner.ID, fact.ID))

	_, err := env.fact.GetFact(owner.ID, fact.ID)
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestListFacts(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env, "fowner10")
	for i := 0; i < 3; i++ {
		createTextFact(t, env, owner.ID, "Question number", "alpha", shared.DifficultyMedium, nil)
	}

	list, err := env.fact.ListFacts(owner.ID, 2, 0)
	require.NoError(t, err)
	assert.Len(t, list.Facts, 2)
	assert.Equal(t, int64(3), list.Total)
}
