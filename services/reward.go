package services

import (
	"errors"

	"github.com/alphabatem/common/context"
	"github.com/recuerdo-labs/escape_api/dto"
	"github.com/recuerdo-labs/escape_api/game"
	"github.com/recuerdo-labs/escape_api/model"
	"github.com/recuerdo-labs/escape_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RewardService runs the completion lottery and the owner-facing reward
// CRUD. A reward is consumed at most once; the draw happens inside the
// session completion transaction.
type RewardService struct {
	context.DefaultService

	dbSvc *DatabaseService
}

const REWARD_SVC = "reward_svc"

func (svc RewardService) Id() string {
	return REWARD_SVC
}

func (svc *RewardService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *RewardService) Start() error {
	svc.dbSvc = svc.Service(DATABASE_SVC).(*DatabaseService)
	return nil
}

// DrawReward picks one unused reward weighted by its 1-10 weight, using the
// session seed so the draw is reproducible, and marks it used for the
// player. Runs inside the caller's transaction.
func (svc *RewardService) DrawReward(tx *gorm.DB, ownerID, playerID, seed string) (*model.Reward, error) {
	pool, err := svc.dbSvc.Rewards().GetDrawPool(tx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, shared.NewEmptyRewardPoolError(ownerID)
	}

	weights := make([]int, len(pool))
	for i := range pool {
		weights[i] = pool[i].Weight
	}

	idx := game.WeightedPick(weights, seed)
	if idx < 0 {
		return nil, shared.NewEmptyRewardPoolError(ownerID)
	}
	picked := &pool[idx]

	won, err := svc.dbSvc.Rewards().MarkUsed(tx, picked.ID, playerID)
	if err != nil {
		return nil, err
	}
	if !won {
		// Another completion consumed it first. The pool query already
		// filtered used rows, so this only happens under contention.
		return nil, shared.NewEmptyRewardPoolError(ownerID)
	}

	rewardsGrantedTotal.Inc()
	log.WithFields(log.Fields{
		"reward_id": picked.ID,
		"owner_id":  ownerID,
		"player_id": playerID,
	}).Info("Reward drawn")
	return picked, nil
}

// GetWonReward returns the most recent reward the player has won.
func (svc *RewardService) GetWonReward(playerID string) (*dto.RewardResponse, error) {
	var reward model.Reward
	err := svc.dbSvc.Db().Where("used_by = ?", playerID).
		Order("used_at DESC").First(&reward).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "No reward won yet")
		}
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to load reward")
	}
	return svc.ToRewardResponse(&reward, false), nil
}

func (svc *RewardService) CreateReward(ownerID string, req dto.CreateRewardRequest) (*dto.RewardResponse, error) {
	reward := &model.Reward{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		MediaURL:    req.MediaURL,
		Weight:      req.Weight,
		IsActive:    true,
	}

	reward, err := svc.dbSvc.Rewards().CreateReward(reward)
	if err != nil {
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to create reward")
	}
	return svc.ToRewardResponse(reward, true), nil
}

func (svc *RewardService) ListRewards(ownerID string, limit, offset int) (*dto.ListRewardsResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rewards, total, err := svc.dbSvc.Rewards().ListRewards(ownerID, limit, offset)
	if err != nil {
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to list rewards")
	}

	resp := &dto.ListRewardsResponse{Rewards: make([]dto.RewardResponse, 0, len(rewards)), Total: total}
	for i := range rewards {
		resp.Rewards = append(resp.Rewards, *svc.ToRewardResponse(&rewards[i], true))
	}
	return resp, nil
}

func (svc *RewardService) UpdateReward(ownerID, rewardID string, req dto.UpdateRewardRequest) (*dto.RewardResponse, error) {
	reward, err := svc.dbSvc.Rewards().GetOwnerReward(ownerID, rewardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Reward not found")
		}
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to load reward")
	}

	if reward.Used {
		return nil, shared.NewConflictError(nil, "Used rewards cannot be edited")
	}

	if req.Title != "" {
		reward.Title = req.Title
	}
	if req.Description != "" {
		reward.Description = req.Description
	}
	if req.MediaURL != "" {
		reward.MediaURL = req.MediaURL
	}
	if req.Weight != 0 {
		reward.Weight = req.Weight
	}
	if req.IsActive != nil {
		reward.IsActive = *req.IsActive
	}

	if err := svc.dbSvc.Rewards().UpdateReward(reward); err != nil {
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to update reward")
	}
	return svc.ToRewardResponse(reward, true), nil
}

func (svc *RewardService) DeleteReward(ownerID, rewardID string) error {
	reward, err := svc.dbSvc.Rewards().GetOwnerReward(ownerID, rewardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewNotFoundError(err, "Reward not found")
		}
		return shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to load reward")
	}
	if reward.Used {
		return shared.NewConflictError(nil, "Used rewards cannot be deleted")
	}

	if err := svc.dbSvc.Rewards().DeleteReward(ownerID, rewardID); err != nil {
		return shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to delete reward")
	}
	return nil
}

// ToRewardResponse renders a reward. The weight is an owner-only detail;
// winners just see what they won.
func (svc *RewardService) ToRewardResponse(reward *model.Reward, ownerView bool) *dto.RewardResponse {
	resp := &dto.RewardResponse{
		ID:          reward.ID,
		Title:       reward.Title,
		Description: reward.Description,
		MediaURL:    reward.MediaURL,
		Used:        reward.Used,
		UsedAt:      reward.UsedAt,
		CreatedAt:   reward.CreatedAt,
	}
	if ownerView {
		resp.Weight = reward.Weight
	}
	return resp
}
