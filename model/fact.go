package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/recuerdo-labs/escape_api/shared"
)

// FactValue is the type-tagged payload of a Fact. Exactly one variant is
// set, matching the Fact's Type.
type FactValue struct {
	Text  string      `json:"text,omitempty"`
	Date  string      `json:"date,omitempty"` // YYYY-MM-DD
	Place string      `json:"place,omitempty"`
	Photo *PhotoValue `json:"photo,omitempty"`
}

type PhotoValue struct {
	AssetID  string `json:"asset_id"`
	GridSize int    `json:"grid_size"`
}

// Fact is a user-authored piece of personal data levels are built from.
// The game core only ever reads facts; owners create and edit them.
type Fact struct {
	ID         string          `json:"id" gorm:"primaryKey"`
	OwnerID    string          `json:"owner_id" gorm:"not null;index"`
	Type       string          `json:"type" gorm:"not null"` // text, date, place, photo
	Prompt     string          `json:"prompt" gorm:"type:text;not null"`
	Hints      json.RawMessage `json:"hints" gorm:"type:text"` // JSON array, max 3
	Value      json.RawMessage `json:"value" gorm:"type:text;not null"`
	Difficulty string          `json:"difficulty" gorm:"default:medium"`
	IsActive   bool            `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (f *Fact) DecodeValue() (*FactValue, error) {
	var v FactValue
	if err := json.Unmarshal(f.Value, &v); err != nil {
		return nil, fmt.Errorf("fact %s has malformed value: %w", f.ID, err)
	}
	return &v, nil
}

func (f *Fact) DecodeHints() []string {
	var hints []string
	if f.Hints != nil {
		if err := json.Unmarshal(f.Hints, &hints); err != nil {
			hints = nil
		}
	}
	if len(hints) > shared.MaxHintsPerFact {
		hints = hints[:shared.MaxHintsPerFact]
	}
	return hints
}

// MaxAttempts maps the difficulty tag to the per-level attempt budget.
func (f *Fact) MaxAttempts() int {
	switch f.Difficulty {
	case shared.DifficultyEasy:
		return 5
	case shared.DifficultyMedium:
		return 4
	case shared.DifficultyHard:
		return 3
	default:
		return 3
	}
}
