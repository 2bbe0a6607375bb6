package dto

import "time"

type StartSessionRequest struct {
	ShareCode string `json:"share_code" validate:"required,min=8,max=64" example:"a1b2c3d4e5f6"`
}

func (r StartSessionRequest) Validate() error {
	return validate.Struct(r)
}

type SessionResponse struct {
	ID             string          `json:"id"`
	Status         string          `json:"status"`
	TotalLevels    int             `json:"total_levels"`
	CompletedCount int             `json:"completed_count"`
	Progress       int             `json:"progress"`
	RewardID       *string         `json:"reward_id,omitempty"`
	Levels         []LevelResponse `json:"levels,omitempty"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type LevelResponse struct {
	ID          string     `json:"id"`
	OrderIndex  int        `json:"order_index"`
	FactType    string     `json:"fact_type"`
	Prompt      string     `json:"prompt"`
	GridSize    int        `json:"grid_size,omitempty"`
	Attempts    int        `json:"attempts"`
	MaxAttempts int        `json:"max_attempts"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type HintResponse struct {
	Hint      string `json:"hint"`
	HintIndex int    `json:"hint_index"`
	Remaining int    `json:"remaining"`
}

type VerifyAnswerRequest struct {
	Answer string `json:"answer" validate:"required,max=500" example:"cafe"`
}

func (r VerifyAnswerRequest) Validate() error {
	return validate.Struct(r)
}

type VerifyAnswerResponse struct {
	Correct          bool             `json:"correct"`
	Attempts         int              `json:"attempts"`
	AttemptsLeft     int              `json:"attempts_left"`
	Hint             *HintResponse    `json:"hint,omitempty"`
	SessionCompleted bool             `json:"session_completed"`
	Session          *SessionResponse `json:"session,omitempty"`
	Reward           *RewardResponse  `json:"reward,omitempty"`
}

type CreateRewardRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200" example:"Dinner at our favorite place"`
	Description string `json:"description" validate:"max=1000"`
	MediaURL    string `json:"media_url" validate:"omitempty,url"`
	Weight      int    `json:"weight" validate:"required,min=1,max=10" example:"5"`
}

func (r CreateRewardRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateRewardRequest struct {
	Title       string `json:"title" validate:"omitempty,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	MediaURL    string `json:"media_url" validate:"omitempty,url"`
	Weight      int    `json:"weight" validate:"omitempty,min=1,max=10"`
	IsActive    *bool  `json:"is_active"`
}

func (r UpdateRewardRequest) Validate() error {
	return validate.Struct(r)
}

type RewardResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	MediaURL    string     `json:"media_url,omitempty"`
	Weight      int        `json:"weight,omitempty"`
	Used        bool       `json:"used"`
	UsedAt      *time.Time `json:"used_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ListRewardsResponse struct {
	Rewards []RewardResponse `json:"rewards"`
	Total   int64            `json:"total"`
}

type CreateShareTokenRequest struct {
	MaxUses   *int       `json:"max_uses" validate:"omitempty,min=1"`
	ExpiresAt *time.Time `json:"expires_at"`
}

func (r CreateShareTokenRequest) Validate() error {
	return validate.Struct(r)
}

type ShareTokenResponse struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	IsActive  bool       `json:"is_active"`
	MaxUses   *int       `json:"max_uses,omitempty"`
	UseCount  int        `json:"use_count"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type ListShareTokensResponse struct {
	Tokens []ShareTokenResponse `json:"tokens"`
	Total  int64                `json:"total"`
}
