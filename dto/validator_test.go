package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequestValidation(t *testing.T) {
	valid := RegisterRequest{
		Email:    "player@example.com",
		Username: "player01",
		Password: "Sup3rSecret",
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing email", RegisterRequest{Username: "player01", Password: "Sup3rSecret"}},
		{"bad email", RegisterRequest{Email: "nope", Username: "player01", Password: "Sup3rSecret"}},
		{"short username", RegisterRequest{Email: "a@b.com", Username: "ab", Password: "Sup3rSecret"}},
		{"non alphanum username", RegisterRequest{Email: "a@b.com", Username: "play er", Password: "Sup3rSecret"}},
		{"weak password no upper", RegisterRequest{Email: "a@b.com", Username: "player01", Password: "supersecret1"}},
		{"weak password no digit", RegisterRequest{Email: "a@b.com", Username: "player01", Password: "SuperSecret"}},
		{"short password", RegisterRequest{Email: "a@b.com", Username: "player01", Password: "Ab1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.req.Validate())
		})
	}
}

func TestLoginRequestValidation(t *testing.T) {
	assert.NoError(t, LoginRequest{EmailOrUsername: "player01", Password: "x"}.Validate())
	assert.Error(t, LoginRequest{Password: "x"}.Validate())
	assert.Error(t, LoginRequest{EmailOrUsername: "player01"}.Validate())
}

func TestCreateFactRequestValidation(t *testing.T) {
	valid := CreateFactRequest{
		Type:   "text",
		Prompt: "Where did we first meet?",
		Hints:  []string{"It rained", "Near the river"},
		Value:  FactValueRequest{Text: "cafe"},
	}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.Type = "riddle"
	assert.Error(t, badType.Validate())

	shortPrompt := valid
	shortPrompt.Prompt = "ab"
	assert.Error(t, shortPrompt.Validate())

	tooManyHints := valid
	tooManyHints.Hints = []string{"a1", "b2", "c3", "d4"}
	assert.Error(t, tooManyHints.Validate())

	emptyHint := valid
	emptyHint.Hints = []string{""}
	assert.Error(t, emptyHint.Validate())

	badDifficulty := valid
	badDifficulty.Difficulty = "impossible"
	assert.Error(t, badDifficulty.Validate())
}

func TestCreateFactRequestPhotoGrid(t *testing.T) {
	req := CreateFactRequest{
		Type:   "photo",
		Prompt: "Solve the picture puzzle",
		Value: FactValueRequest{
			Photo: &PhotoValueRequest{AssetID: "asset-1", GridSize: 3},
		},
	}
	assert.NoError(t, req.Validate())

	req.Value.Photo.GridSize = 1
	assert.Error(t, req.Validate())

	req.Value.Photo.GridSize = 7
	assert.Error(t, req.Validate())

	req.Value.Photo = &PhotoValueRequest{GridSize: 3}
	assert.Error(t, req.Validate(), "asset id is required")
}

func TestUpdateFactRequestValidation(t *testing.T) {
	assert.NoError(t, UpdateFactRequest{}.Validate(), "all fields optional")
	assert.NoError(t, UpdateFactRequest{Prompt: "New prompt", Difficulty: "hard"}.Validate())
	assert.Error(t, UpdateFactRequest{Difficulty: "brutal"}.Validate())
}

func TestVerifyAnswerRequestValidation(t *testing.T) {
	assert.NoError(t, VerifyAnswerRequest{Answer: "cafe"}.Validate())
	assert.Error(t, VerifyAnswerRequest{}.Validate())
}

func TestCreateRewardRequestValidation(t *testing.T) {
	assert.NoError(t, CreateRewardRequest{Title: "Dinner", Weight: 5}.Validate())
	assert.Error(t, CreateRewardRequest{Weight: 5}.Validate(), "title required")
	assert.Error(t, CreateRewardRequest{Title: "Dinner", Weight: 0}.Validate())
	assert.Error(t, CreateRewardRequest{Title: "Dinner", Weight: 11}.Validate())
}

func TestCreateShareTokenRequestValidation(t *testing.T) {
	assert.NoError(t, CreateShareTokenRequest{}.Validate(), "unbounded token")

	uses := 3
	future := time.Now().Add(24 * time.Hour)
	assert.NoError(t, CreateShareTokenRequest{MaxUses: &uses, ExpiresAt: &future}.Validate())

	zero := 0
	assert.Error(t, CreateShareTokenRequest{MaxUses: &zero}.Validate())
}

func TestStartSessionRequestValidation(t *testing.T) {
	assert.NoError(t, StartSessionRequest{ShareCode: "abcd1234ef"}.Validate())
	assert.Error(t, StartSessionRequest{}.Validate())
	assert.Error(t, StartSessionRequest{ShareCode: "short"}.Validate())
}

func TestFormatValidationErrors(t *testing.T) {
	err := RegisterRequest{Email: "nope", Username: "x", Password: "weak"}.Validate()
	require.Error(t, err)

	fields := FormatValidationErrors(err)
	require.NotEmpty(t, fields)

	byField := map[string]string{}
	for _, f := range fields {
		byField[f.Field] = f.Message
	}
	assert.Contains(t, byField, "Email")
	assert.Contains(t, byField, "Username")
	assert.Contains(t, byField, "Password")
}
