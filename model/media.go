package model

import "time"

// MediaAsset tracks a file stored in the object store. Photo facts and
// reward media reference assets by ID.
type MediaAsset struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	OwnerID     string    `json:"owner_id" gorm:"not null;index"`
	FileName    string    `json:"file_name" gorm:"not null"`
	ObjectKey   string    `json:"object_key" gorm:"not null"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
