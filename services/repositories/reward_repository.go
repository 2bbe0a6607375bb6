package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/recuerdo-labs/escape_api/model"
	"gorm.io/gorm"
)

// RewardRepository handles reward database operations
type RewardRepository struct {
	BaseRepository
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *RewardRepository) GetReward(rewardID string) (*model.Reward, error) {
	var reward model.Reward
	if err := ds.db.Where("id = ?", rewardID).First(&reward).Error; err != nil {
		return nil, err
	}
	return &reward, nil
}

func (ds *RewardRepository) GetOwnerReward(ownerID, rewardID string) (*model.Reward, error) {
	var reward model.Reward
	if err := ds.db.Where("id = ? AND owner_id = ?", rewardID, ownerID).First(&reward).Error; err != nil {
		return nil, err
	}
	return &reward, nil
}

// GetDrawPool returns the owner's unused active rewards in stable order so
// the weighted draw walks candidates deterministically for a given seed.
func (ds *RewardRepository) GetDrawPool(tx *gorm.DB, ownerID string) ([]model.Reward, error) {
	var rewards []model.Reward
	if err := tx.Where("owner_id = ? AND is_active = ? AND used = ?", ownerID, true, false).
		Order("created_at ASC, id ASC").Find(&rewards).Error; err != nil {
		return nil, err
	}
	return rewards, nil
}

func (ds *RewardRepository) ListRewards(ownerID string, limit, offset int) ([]model.Reward, int64, error) {
	var rewards []model.Reward
	var total int64

	query := ds.db.Model(&model.Reward{}).Where("owner_id = ?", ownerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rewards).Error; err != nil {
		return nil, 0, err
	}
	return rewards, total, nil
}

func (ds *RewardRepository) CreateReward(reward *model.Reward) (*model.Reward, error) {
	id, _ := uuid.NewV7()
	reward.ID = id.String()
	reward.CreatedAt = time.Now()
	reward.UpdatedAt = time.Now()
	if err := ds.db.Create(reward).Error; err != nil {
		return nil, err
	}
	return reward, nil
}

func (ds *RewardRepository) UpdateReward(reward *model.Reward) error {
	reward.UpdatedAt = time.Now()
	return ds.db.Save(reward).Error
}

func (ds *RewardRepository) DeleteReward(ownerID, rewardID string) error {
	return ds.db.Where("id = ? AND owner_id = ?", rewardID, ownerID).Delete(&model.Reward{}).Error
}

// MarkUsed consumes a reward for the winning player. The used guard makes the
// draw safe when two sessions complete against the same pool at once: only
// one UPDATE can win the row.
func (ds *RewardRepository) MarkUsed(tx *gorm.DB, rewardID, usedBy string) (bool, error) {
	now := time.Now()
	result := tx.Model(&model.Reward{}).
		Where("id = ? AND used = ?", rewardID, false).
		Updates(map[string]interface{}{
			"used":       true,
			"used_by":    usedBy,
			"used_at":    &now,
			"updated_at": now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
