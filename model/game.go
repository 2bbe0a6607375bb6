package model

import (
	"encoding/json"
	"time"
)

// GameSession is an ordered run of levels composed from one content
// owner's facts under a single seed. Player and content owner differ when
// the session was spawned from a share token.
type GameSession struct {
	ID             string `json:"id" gorm:"primaryKey"`
	PlayerID       string `json:"player_id" gorm:"not null;index"`
	ContentOwnerID string `json:"content_owner_id" gorm:"not null;index"`
	Seed           string `json:"seed" gorm:"not null"`
	Status         string `json:"status" gorm:"default:active"` // active, completed
	TotalLevels    int    `json:"total_levels" gorm:"not null"`
	CompletedCount int    `json:"completed_count" gorm:"default:0"`
	Progress       int    `json:"progress" gorm:"default:0"` // 0-100

	RewardID *string `json:"reward_id"`
	IsActive bool    `json:"is_active" gorm:"default:true"`

	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Levels []Level `json:"levels" gorm:"foreignKey:SessionID"`
}

// Level is one challenge inside a session, derived from exactly one fact
// at composition time. Everything except the attempt counter and the
// completion fields is immutable once created.
type Level struct {
	ID         string          `json:"id" gorm:"primaryKey"`
	SessionID  string          `json:"session_id" gorm:"not null;index"`
	FactID     string          `json:"fact_id" gorm:"not null"`
	OrderIndex int             `json:"order_index" gorm:"not null"`
	FactType   string          `json:"fact_type" gorm:"not null"`
	Prompt     string          `json:"prompt" gorm:"type:text;not null"`
	Hints      json.RawMessage `json:"hints" gorm:"type:text"`
	GridSize   int             `json:"grid_size" gorm:"default:0"` // photo levels only

	Salt       string `json:"-" gorm:"not null"`
	Commitment string `json:"-" gorm:"not null"`

	Attempts    int        `json:"attempts" gorm:"default:0"`
	MaxAttempts int        `json:"max_attempts" gorm:"not null"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (l *Level) DecodeHints() []string {
	var hints []string
	if l.Hints != nil {
		if err := json.Unmarshal(l.Hints, &hints); err != nil {
			hints = nil
		}
	}
	return hints
}

// Reward is a prize a content owner stakes on their sessions. Selected at
// most once; the used flag ties it to a single completion event.
type Reward struct {
	ID          string `json:"id" gorm:"primaryKey"`
	OwnerID     string `json:"owner_id" gorm:"not null;index"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	MediaURL    string `json:"media_url"`
	Weight      int    `json:"weight" gorm:"default:1"` // 1-10

	Used     bool       `json:"used" gorm:"default:false"`
	UsedBy   string     `json:"used_by"`
	UsedAt   *time.Time `json:"used_at"`
	IsActive bool       `json:"is_active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShareToken lets other accounts spawn sessions over the owner's facts.
type ShareToken struct {
	ID       string     `json:"id" gorm:"primaryKey"`
	OwnerID  string     `json:"owner_id" gorm:"not null;index"`
	Code     string     `json:"code" gorm:"unique;not null"`
	IsActive bool       `json:"is_active" gorm:"default:true"`
	MaxUses  *int       `json:"max_uses"`
	ExpiresAt *time.Time `json:"expires_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Uses []ShareTokenUse `json:"uses" gorm:"foreignKey:TokenID"`
}

// ShareTokenUse is the deduplicated usage log: one row per distinct
// account per token, stamped at first use.
type ShareTokenUse struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	TokenID     string    `json:"token_id" gorm:"not null;uniqueIndex:idx_token_account"`
	AccountID   string    `json:"account_id" gorm:"not null;uniqueIndex:idx_token_account"`
	FirstUsedAt time.Time `json:"first_used_at" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}
