package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/recuerdo-labs/escape_api/model"
	"gorm.io/gorm"
)

// RateLimitRepository handles rate limit window database operations
type RateLimitRepository struct {
	BaseRepository
}

func NewRateLimitRepository(db *gorm.DB) *RateLimitRepository {
	return &RateLimitRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *RateLimitRepository) GetWindow(identifier, endpointType string) (*model.RateLimit, error) {
	var limit model.RateLimit
	if err := ds.db.Where("identifier = ? AND endpoint_type = ?", identifier, endpointType).
		First(&limit).Error; err != nil {
		return nil, err
	}
	return &limit, nil
}

func (ds *RateLimitRepository) CreateWindow(limit *model.RateLimit) error {
	id, _ := uuid.NewV7()
	limit.ID = id.String()
	limit.CreatedAt = time.Now()
	limit.UpdatedAt = time.Now()
	return ds.db.Create(limit).Error
}

func (ds *RateLimitRepository) UpdateWindow(limit *model.RateLimit) error {
	limit.UpdatedAt = time.Now()
	return ds.db.Save(limit).Error
}

func (ds *RateLimitRepository) IncrementWindow(limitID string) error {
	return ds.db.Model(&model.RateLimit{}).Where("id = ?", limitID).Updates(map[string]interface{}{
		"request_count": gorm.Expr("request_count + 1"),
		"updated_at":    time.Now(),
	}).Error
}

// CleanupExpired drops windows that ended before the cutoff.
func (ds *RateLimitRepository) CleanupExpired(cutoff time.Time) error {
	return ds.db.Where("window_start < ? AND (blocked_until IS NULL OR blocked_until < ?)", cutoff, time.Now()).
		Delete(&model.RateLimit{}).Error
}
