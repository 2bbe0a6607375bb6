package services

import (
	goContext "context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/recuerdo-labs/escape_api/dto"
	"github.com/recuerdo-labs/escape_api/game"
	"github.com/recuerdo-labs/escape_api/model"
	"github.com/recuerdo-labs/escape_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// GameService composes sessions from an owner's fact pool and drives them
// through verification to completion. Composition is deterministic per
// (seed, fact pool); everything the player sees is derived, the answers
// themselves only ever live as salted commitments.
type GameService struct {
	context.DefaultService

	dbSvc     *DatabaseService
	redisSvc  *RedisService
	rewardSvc *RewardService
}

const GAME_SVC = "game_svc"

const levelCacheTTL = 5 * time.Minute

func (svc GameService) Id() string {
	return GAME_SVC
}

func (svc *GameService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *GameService) Start() error {
	svc.dbSvc = svc.Service(DATABASE_SVC).(*DatabaseService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.rewardSvc = svc.Service(REWARD_SVC).(*RewardService)
	return nil
}

// ComposeSession builds a fresh session over the owner's active facts.
// The seed fully determines which facts are picked and in what order, so
// the same seed over an unchanged pool reproduces the same session.
func (svc *GameService) ComposeSession(playerID, ownerID, seed string) (*model.GameSession, error) {
	facts, err := svc.dbSvc.Facts().GetActiveFactPool(ownerID)
	if err != nil {
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to load fact pool")
	}
	if len(facts) == 0 {
		return nil, shared.NewEmptyPoolError(ownerID)
	}

	count := game.LevelCount(seed)
	if count > len(facts) {
		count = len(facts)
	}
	picked := game.Sample(len(facts), count, seed)

	levels := make([]model.Level, 0, count)
	for i, factIdx := range picked {
		fact := facts[factIdx]
		level, err := svc.buildLevel(&fact, i+1)
		if err != nil {
			return nil, err
		}
		levels = append(levels, *level)
	}

	session := &model.GameSession{
		PlayerID:       playerID,
		ContentOwnerID: ownerID,
		Seed:           seed,
		Status:         shared.SessionStatusActive,
		TotalLevels:    len(levels),
		IsActive:       true,
	}

	if err := svc.dbSvc.Games().DeactivateSessions(svc.dbSvc.Db(), playerID, ownerID); err != nil {
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to retire previous session")
	}

	session, err = svc.dbSvc.Games().CreateSessionWithLevels(session, levels)
	if err != nil {
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to create session")
	}

	sessionsComposedTotal.Inc()
	log.WithFields(log.Fields{
		"session_id": session.ID,
		"player_id":  playerID,
		"owner_id":   ownerID,
		"levels":     session.TotalLevels,
	}).Info("Session composed")
	return session, nil
}

// buildLevel derives a playable level from a fact: the prompt and hints are
// copied, the answer is canonicalized and committed under a fresh salt.
func (svc *GameService) buildLevel(fact *model.Fact, order int) (*model.Level, error) {
	value, err := fact.DecodeValue()
	if err != nil {
		return nil, shared.NewInternalError(err, "Fact value is malformed")
	}

	var plain string
	gridSize := 0
	switch fact.Type {
	case shared.FactTypeText:
		plain = value.Text
	case shared.FactTypePlace:
		plain = value.Place
	case shared.FactTypeDate:
		plain = value.Date
	case shared.FactTypePhoto:
		if value.Photo == nil {
			return nil, shared.NewInternalError(nil, "Photo fact has no photo value")
		}
		gridSize = value.Photo.GridSize
		plain = game.PuzzleSolution(gridSize)
	default:
		return nil, shared.NewInternalError(nil, fmt.Sprintf("unknown fact type %q", fact.Type))
	}

	canonical, err := game.CanonicalAnswer(fact.Type, plain)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to canonicalize fact value")
	}

	salt, err := game.NewSalt()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to generate salt")
	}

	return &model.Level{
		FactID:      fact.ID,
		OrderIndex:  order,
		FactType:    fact.Type,
		Prompt:      fact.Prompt,
		Hints:       fact.Hints,
		GridSize:    gridSize,
		Salt:        salt,
		Commitment:  game.Commit(salt, canonical),
		MaxAttempts: fact.MaxAttempts(),
	}, nil
}

func (svc *GameService) GetSession(playerID, sessionID string) (*dto.SessionResponse, error) {
	session, err := svc.dbSvc.Games().GetPlayerSession(playerID, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Session not found")
		}
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to load session")
	}
	return svc.ToSessionResponse(session), nil
}

func (svc *GameService) ListSessions(playerID string, limit, offset int) ([]dto.SessionResponse, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	sessions, total, err := svc.dbSvc.Games().ListPlayerSessions(playerID, limit, offset)
	if err != nil {
		return nil, 0, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to list sessions")
	}

	out := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, *svc.ToSessionResponse(&sessions[i]))
	}
	return out, total, nil
}

// GetLevel returns the player view of a level, salt and commitment never
// included. Views are cached until the level changes.
func (svc *GameService) GetLevel(playerID, sessionID, levelID string) (*dto.LevelResponse, error) {
	cacheKey := svc.levelCacheKey(sessionID, levelID)

	var cached dto.LevelResponse
	if err := svc.redisSvc.GetJSON(goContext.Background(), cacheKey, &cached); err == nil && cached.ID != "" {
		return &cached, nil
	}

	if _, err := svc.dbSvc.Games().GetPlayerSession(playerID, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Session not found")
		}
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to load session")
	}

	level, err := svc.dbSvc.Games().GetLevel(sessionID, levelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Level not found")
		}
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to load level")
	}

	resp := svc.toLevelResponse(level)
	if err := svc.redisSvc.Set(goContext.Background(), cacheKey, resp, levelCacheTTL); err != nil {
		log.WithError(err).Debug("Failed to cache level view")
	}
	return resp, nil
}

// VerifyLevel checks a submitted answer against the level's commitment.
// Attempt accounting is atomic, so concurrent guesses cannot overrun the
// budget, and completion of the final level flips the session exactly once.
func (svc *GameService) VerifyLevel(playerID, sessionID, levelID, answer string) (*dto.VerifyAnswerResponse, error) {
	session, err := svc.dbSvc.Games().GetPlayerSession(playerID, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Session not found")
		}
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to load session")
	}
	if session.Status == shared.SessionStatusCompleted {
		return nil, shared.NewAlreadyCompletedError()
	}

	level, err := svc.dbSvc.Games().GetLevel(sessionID, levelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Level not found")
		}
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to load level")
	}

	if level.Completed {
		return nil, shared.NewAlreadyCompletedError()
	}
	if level.Attempts >= level.MaxAttempts {
		return nil, shared.NewExhaustedAttemptsError()
	}

	bumped, err := svc.dbSvc.Games().IncrementAttempt(level.ID)
	if err != nil {
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to record attempt")
	}
	if !bumped {
		// Lost the race: another request completed the level or spent the
		// last attempt between our read and the UPDATE.
		fresh, err := svc.dbSvc.Games().GetLevel(sessionID, levelID)
		if err == nil && fresh.Completed {
			return nil, shared.NewAlreadyCompletedError()
		}
		return nil, shared.NewExhaustedAttemptsError()
	}
	attempts := level.Attempts + 1

	defer svc.invalidateLevelCache(sessionID, levelID)

	if !game.Verify(level.Salt, level.Commitment, level.FactType, answer) {
		levelVerificationsTotal.WithLabelValues("incorrect").Inc()
		resp := &dto.VerifyAnswerResponse{
			Correct:      false,
			Attempts:     attempts,
			AttemptsLeft: level.MaxAttempts - attempts,
		}
		if resp.AttemptsLeft > 0 {
			resp.Hint = svc.nextHint(level, attempts)
		}
		return resp, nil
	}

	levelVerificationsTotal.WithLabelValues("correct").Inc()
	return svc.completeLevel(session, level, attempts)
}

// nextHint walks the fact's hint list one entry per failed attempt,
// clamping at the last hint.
func (svc *GameService) nextHint(level *model.Level, attempts int) *dto.HintResponse {
	hints := level.DecodeHints()
	if len(hints) == 0 {
		return nil
	}
	idx := attempts - 1
	if idx >= len(hints) {
		idx = len(hints) - 1
	}
	return &dto.HintResponse{
		Hint:      hints[idx],
		HintIndex: idx,
		Remaining: len(hints) - idx - 1,
	}
}

func (svc *GameService) completeLevel(session *model.GameSession, level *model.Level, attempts int) (*dto.VerifyAnswerResponse, error) {
	resp := &dto.VerifyAnswerResponse{
		Correct:      true,
		Attempts:     attempts,
		AttemptsLeft: level.MaxAttempts - attempts,
	}

	var reward *model.Reward
	err := svc.dbSvc.Db().Transaction(func(tx *gorm.DB) error {
		won, err := svc.dbSvc.Games().CompleteLevel(tx, level.ID)
		if err != nil {
			return err
		}
		if !won {
			return shared.ErrAlreadyCompleted
		}

		done, err := svc.countCompleted(tx, session.ID)
		if err != nil {
			return err
		}

		if done < session.TotalLevels {
			progress := int(math.Round(float64(done) / float64(session.TotalLevels) * 100))
			return svc.dbSvc.Games().UpdateSessionProgress(tx, session.ID, done, progress)
		}

		// Final level: complete the session, draw the reward, bump the
		// player's lifetime counter. All or nothing.
		reward, err = svc.rewardSvc.DrawReward(tx, session.ContentOwnerID, session.PlayerID, session.Seed)
		if err != nil && !errors.Is(err, shared.ErrEmptyRewardPool) {
			return err
		}

		var rewardID *string
		if reward != nil {
			rewardID = &reward.ID
		}

		flipped, err := svc.dbSvc.Games().CompleteSession(tx, session.ID, rewardID)
		if err != nil {
			return err
		}
		if !flipped {
			return shared.ErrAlreadyCompleted
		}

		resp.SessionCompleted = true
		return svc.dbSvc.Users().IncrementCompletedSessions(tx, session.PlayerID)
	})
	if err != nil {
		if errors.Is(err, shared.ErrAlreadyCompleted) {
			return nil, shared.NewAlreadyCompletedError()
		}
		if appErr, ok := shared.GetAppError(err); ok {
			return nil, appErr
		}
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to complete level")
	}

	updated, err := svc.dbSvc.Games().GetSessionWithLevels(session.ID)
	if err == nil {
		resp.Session = svc.ToSessionResponse(updated)
	}
	if reward != nil {
		resp.Reward = svc.rewardSvc.ToRewardResponse(reward, false)
	}

	if resp.SessionCompleted {
		log.WithFields(log.Fields{
			"session_id": session.ID,
			"player_id":  session.PlayerID,
			"reward_won": reward != nil,
		}).Info("Session completed")
	}
	return resp, nil
}

func (svc *GameService) countCompleted(tx *gorm.DB, sessionID string) (int, error) {
	var count int64
	err := tx.Model(&model.Level{}).
		Where("session_id = ? AND completed = ?", sessionID, true).Count(&count).Error
	return int(count), err
}

// ResetSession throws away the player's active run over their own facts
// and composes a new one under a fresh random seed.
func (svc *GameService) ResetSession(playerID string) (*model.GameSession, error) {
	old, err := svc.dbSvc.Games().GetActiveSession(playerID, playerID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to look up active session")
	}

	if old != nil {
		err = svc.dbSvc.Db().Transaction(func(tx *gorm.DB) error {
			if err := svc.dbSvc.Games().DeleteSessionLevels(tx, old.ID); err != nil {
				return err
			}
			return svc.dbSvc.Games().DeactivateSessions(tx, playerID, playerID)
		})
		if err != nil {
			return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to reset session")
		}
		for _, lvl := range old.Levels {
			svc.invalidateLevelCache(old.ID, lvl.ID)
		}
	}

	seed, err := game.NewSalt()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to generate seed")
	}
	return svc.ComposeSession(playerID, playerID, seed)
}

func (svc *GameService) levelCacheKey(sessionID, levelID string) string {
	return fmt.Sprintf("level:%s:%s", sessionID, levelID)
}

func (svc *GameService) invalidateLevelCache(sessionID, levelID string) {
	if err := svc.redisSvc.Delete(goContext.Background(), svc.levelCacheKey(sessionID, levelID)); err != nil {
		log.WithError(err).Debug("Failed to invalidate level cache")
	}
}

func (svc *GameService) ToSessionResponse(session *model.GameSession) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		ID:             session.ID,
		Status:         session.Status,
		TotalLevels:    session.TotalLevels,
		CompletedCount: session.CompletedCount,
		Progress:       session.Progress,
		RewardID:       session.RewardID,
		CompletedAt:    session.CompletedAt,
		CreatedAt:      session.CreatedAt,
	}
	for i := range session.Levels {
		resp.Levels = append(resp.Levels, *svc.toLevelResponse(&session.Levels[i]))
	}
	return resp
}

func (svc *GameService) toLevelResponse(level *model.Level) *dto.LevelResponse {
	return &dto.LevelResponse{
		ID:          level.ID,
		OrderIndex:  level.OrderIndex,
		FactType:    level.FactType,
		Prompt:      level.Prompt,
		GridSize:    level.GridSize,
		Attempts:    level.Attempts,
		MaxAttempts: level.MaxAttempts,
		Completed:   level.Completed,
		CompletedAt: level.CompletedAt,
	}
}
