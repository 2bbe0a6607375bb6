package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/recuerdo-labs/escape_api/model"
	"github.com/recuerdo-labs/escape_api/shared"
	"gorm.io/gorm"
)

// GameRepository handles session and level database operations
type GameRepository struct {
	BaseRepository
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *GameRepository) GetSession(sessionID string) (*model.GameSession, error) {
	var session model.GameSession
	if err := ds.db.Where("id = ?", sessionID).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (ds *GameRepository) GetSessionWithLevels(sessionID string) (*model.GameSession, error) {
	var session model.GameSession
	if err := ds.db.Preload("Levels", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index ASC")
	}).Where("id = ?", sessionID).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (ds *GameRepository) GetPlayerSession(playerID, sessionID string) (*model.GameSession, error) {
	var session model.GameSession
	if err := ds.db.Preload("Levels", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index ASC")
	}).Where("id = ? AND player_id = ?", sessionID, playerID).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (ds *GameRepository) ListPlayerSessions(playerID string, limit, offset int) ([]model.GameSession, int64, error) {
	var sessions []model.GameSession
	var total int64

	query := ds.db.Model(&model.GameSession{}).Where("player_id = ?", playerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&sessions).Error; err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

func (ds *GameRepository) GetActiveSession(playerID, ownerID string) (*model.GameSession, error) {
	var session model.GameSession
	if err := ds.db.Where("player_id = ? AND content_owner_id = ? AND status = ? AND is_active = ?",
		playerID, ownerID, shared.SessionStatusActive, true).
		Order("created_at DESC").First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// DeactivateSessions retires any still active sessions for the pair before
// a new one is composed. Old rows stay for history; is_active marks the
// one current run.
func (ds *GameRepository) DeactivateSessions(tx *gorm.DB, playerID, ownerID string) error {
	return tx.Model(&model.GameSession{}).
		Where("player_id = ? AND content_owner_id = ? AND is_active = ?", playerID, ownerID, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}

func (ds *GameRepository) DeleteSessionLevels(tx *gorm.DB, sessionID string) error {
	return tx.Where("session_id = ?", sessionID).Delete(&model.Level{}).Error
}

// CreateSessionWithLevels persists a composed session and its levels in one
// transaction so a half written session is never visible.
func (ds *GameRepository) CreateSessionWithLevels(session *model.GameSession, levels []model.Level) (*model.GameSession, error) {
	id, _ := uuid.NewV7()
	session.ID = id.String()
	session.CreatedAt = time.Now()
	session.UpdatedAt = time.Now()

	err := ds.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}
		for i := range levels {
			levelID, _ := uuid.NewV7()
			levels[i].ID = levelID.String()
			levels[i].SessionID = session.ID
			levels[i].CreatedAt = time.Now()
			levels[i].UpdatedAt = time.Now()
		}
		if len(levels) > 0 {
			if err := tx.Create(&levels).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	session.Levels = levels
	return session, nil
}

func (ds *GameRepository) GetLevel(sessionID, levelID string) (*model.Level, error) {
	var level model.Level
	if err := ds.db.Where("id = ? AND session_id = ?", levelID, sessionID).First(&level).Error; err != nil {
		return nil, err
	}
	return &level, nil
}

// IncrementAttempt bumps the attempt counter only while the level is still
// open and under its cap. The conditional UPDATE makes concurrent guesses
// race safely: exactly max_attempts increments can ever succeed.
func (ds *GameRepository) IncrementAttempt(levelID string) (bool, error) {
	result := ds.db.Model(&model.Level{}).
		Where("id = ? AND completed = ? AND attempts < max_attempts", levelID, false).
		Updates(map[string]interface{}{
			"attempts":   gorm.Expr("attempts + 1"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CompleteLevel marks a level solved. Returns false when it was already
// completed by a concurrent request.
func (ds *GameRepository) CompleteLevel(tx *gorm.DB, levelID string) (bool, error) {
	now := time.Now()
	result := tx.Model(&model.Level{}).
		Where("id = ? AND completed = ?", levelID, false).
		Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": &now,
			"updated_at":   now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (ds *GameRepository) UpdateSessionProgress(tx *gorm.DB, sessionID string, completedCount int, progress int) error {
	return tx.Model(&model.GameSession{}).Where("id = ?", sessionID).Updates(map[string]interface{}{
		"completed_count": completedCount,
		"progress":        progress,
		"updated_at":      time.Now(),
	}).Error
}

// CompleteSession flips an active session to completed and attaches the drawn
// reward. The status guard keeps completion idempotent under races.
func (ds *GameRepository) CompleteSession(tx *gorm.DB, sessionID string, rewardID *string) (bool, error) {
	now := time.Now()
	updates := map[string]interface{}{
		"status":          shared.SessionStatusCompleted,
		"completed_at":    &now,
		"progress":        100,
		"completed_count": gorm.Expr("total_levels"),
		"updated_at":      now,
	}
	if rewardID != nil {
		updates["reward_id"] = *rewardID
	}
	result := tx.Model(&model.GameSession{}).
		Where("id = ? AND status = ?", sessionID, shared.SessionStatusActive).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (ds *GameRepository) CountCompletedLevels(sessionID string) (int64, error) {
	var count int64
	err := ds.db.Model(&model.Level{}).
		Where("session_id = ? AND completed = ?", sessionID, true).Count(&count).Error
	return count, err
}

// ResetLevels reopens every level of a session and zeroes the attempt
// counters. Used when the player restarts an active session.
func (ds *GameRepository) ResetLevels(tx *gorm.DB, sessionID string) error {
	return tx.Model(&model.Level{}).Where("session_id = ?", sessionID).Updates(map[string]interface{}{
		"attempts":     0,
		"completed":    false,
		"completed_at": nil,
		"updated_at":   time.Now(),
	}).Error
}

func (ds *GameRepository) ResetSessionProgress(tx *gorm.DB, sessionID string) error {
	return tx.Model(&model.GameSession{}).Where("id = ?", sessionID).Updates(map[string]interface{}{
		"completed_count": 0,
		"progress":        0,
		"updated_at":      time.Now(),
	}).Error
}
