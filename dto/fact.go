package dto

import "time"

// FactValueRequest carries exactly one populated branch matching Type on the
// enclosing request. Cross-field consistency is checked in the service layer
// because validator tags cannot express the union.
type FactValueRequest struct {
	Text  string             `json:"text,omitempty" example:"cafe"`
	Date  string             `json:"date,omitempty" example:"2020-06-15"`
	Place string             `json:"place,omitempty" example:"Lisbon"`
	Photo *PhotoValueRequest `json:"photo,omitempty"`
}

type PhotoValueRequest struct {
	AssetID  string `json:"asset_id" validate:"required" example:"0198a1b2-..."`
	GridSize int    `json:"grid_size" validate:"required,min=2,max=6" example:"3"`
}

type CreateFactRequest struct {
	Type       string           `json:"type" validate:"required,oneof=text date place photo" example:"text"`
	Prompt     string           `json:"prompt" validate:"required,min=3,max=500" example:"Where did we first meet?"`
	Hints      []string         `json:"hints" validate:"max=3,dive,min=1,max=200"`
	Value      FactValueRequest `json:"value" validate:"required"`
	Difficulty string           `json:"difficulty" validate:"omitempty,oneof=easy medium hard" example:"medium"`
}

func (r CreateFactRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateFactRequest struct {
	Prompt     string   `json:"prompt" validate:"omitempty,min=3,max=500"`
	Hints      []string `json:"hints" validate:"omitempty,max=3,dive,min=1,max=200"`
	Difficulty string   `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	IsActive   *bool    `json:"is_active"`
}

func (r UpdateFactRequest) Validate() error {
	return validate.Struct(r)
}

type FactResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Prompt     string    `json:"prompt"`
	Hints      []string  `json:"hints"`
	Difficulty string    `json:"difficulty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ListFactsResponse struct {
	Facts []FactResponse `json:"facts"`
	Total int64          `json:"total"`
}
