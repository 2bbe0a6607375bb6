package model

import "time"

type RateLimit struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	Identifier   string     `json:"identifier" gorm:"not null;index:idx_rate_identifier"`
	EndpointType string     `json:"endpoint_type" gorm:"not null;index:idx_rate_identifier"`
	RequestCount int        `json:"request_count" gorm:"not null"`
	WindowStart  time.Time  `json:"window_start" gorm:"not null"`
	BlockedUntil *time.Time `json:"blocked_until"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
