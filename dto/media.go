package dto

import "time"

type MediaAssetResponse struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	URL         string    `json:"url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListMediaAssetsResponse struct {
	Assets []MediaAssetResponse `json:"assets"`
	Total  int64                `json:"total"`
}
