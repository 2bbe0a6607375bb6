package services

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/recuerdo-labs/escape_api/model"
	"github.com/recuerdo-labs/escape_api/shared"
	"github.com/stretchr/testify/require"
)

// testEnv wires the service graph over a throwaway sqlite database, no
// registry involved. Redis stays clientless so cache paths degrade to
// plain DB reads.
type testEnv struct {
	db     *DatabaseService
	redis  *RedisService
	reward *RewardService
	game   *GameService
	token  *ShareTokenService
	fact   *FactService
	auth   *AuthService
	jwt    *JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := &DatabaseService{
		driver:   "sqlite",
		database: filepath.Join(t.TempDir(), "test.db"),
	}
	require.NoError(t, db.Start())

	redis := &RedisService{}
	reward := &RewardService{dbSvc: db}
	game := &GameService{dbSvc: db, redisSvc: redis, rewardSvc: reward}
	jwt := &JWTService{AccessTokenDuration: time.Hour, jwtSecretKey: "test-secret"}

	return &testEnv{
		db:     db,
		redis:  redis,
		reward: reward,
		game:   game,
		token:  &ShareTokenService{dbSvc: db, gameSvc: game},
		fact:   &FactService{dbSvc: db},
		auth:   &AuthService{dbSvc: db, jwtSvc: jwt},
		jwt:    jwt,
	}
}

func createTestUser(t *testing.T, env *testEnv, name string) *model.User {
	t.Helper()
	user, err := env.db.Users().CreateUser(name+"@example.com", name, "not-a-real-hash")
	require.NoError(t, err)
	return user
}

func createTextFact(t *testing.T, env *testEnv, ownerID, prompt, answer, difficulty string, hints []string) *model.Fact {
	t.Helper()

	value, err := json.Marshal(model.FactValue{Text: answer})
	require.NoError(t, err)

	fact := &model.Fact{
		OwnerID:    ownerID,
		Type:       shared.FactTypeText,
		Prompt:     prompt,
		Value:      value,
		Difficulty: difficulty,
		IsActive:   true,
	}
	if hints != nil {
		raw, err := json.Marshal(hints)
		require.NoError(t, err)
		fact.Hints = raw
	}

	fact, err = env.db.Facts().CreateFact(fact)
	require.NoError(t, err)
	return fact
}

func createTestReward(t *testing.T, env *testEnv, ownerID, title string, weight int) *model.Reward {
	t.Helper()
	reward, err := env.db.Rewards().CreateReward(&model.Reward{
		OwnerID:  ownerID,
		Title:    title,
		Weight:   weight,
		IsActive: true,
	})
	require.NoError(t, err)
	return reward
}

func createTestToken(t *testing.T, env *testEnv, ownerID, code string, maxUses *int, expiresAt *time.Time) *model.ShareToken {
	t.Helper()
	token, err := env.db.Tokens().CreateToken(&model.ShareToken{
		OwnerID:   ownerID,
		Code:      code,
		IsActive:  true,
		MaxUses:   maxUses,
		ExpiresAt: expiresAt,
	})
	require.NoError(t, err)
	return token
}

// answersByFact maps fact ids to their plaintext answers so level order
// does not matter to the caller.
func answersByFact(facts ...*model.Fact) map[string]string {
	answers := make(map[string]string, len(facts))
	for _, f := range facts {
		var v model.FactValue
		if err := json.Unmarshal(f.Value, &v); err == nil {
			answers[f.ID] = v.Text
		}
	}
	return answers
}
