package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/recuerdo-labs/escape_api/model"
	"gorm.io/gorm"
)

// MediaRepository handles media asset database operations
type MediaRepository struct {
	BaseRepository
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *MediaRepository) GetAsset(assetID string) (*model.MediaAsset, error) {
	var asset model.MediaAsset
	if err := ds.db.Where("id = ?", assetID).First(&asset).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

func (ds *MediaRepository) GetOwnerAsset(ownerID, assetID string) (*model.MediaAsset, error) {
	var asset model.MediaAsset
	if err := ds.db.Where("id = ? AND owner_id = ?", assetID, ownerID).First(&asset).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

func (ds *MediaRepository) ListOwnerAssets(ownerID string, limit, offset int) ([]model.MediaAsset, int64, error) {
	var assets []model.MediaAsset
	var total int64

	query := ds.db.Model(&model.MediaAsset{}).Where("owner_id = ?", ownerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&assets).Error; err != nil {
		return nil, 0, err
	}
	return assets, total, nil
}

func (ds *MediaRepository) CreateAsset(asset *model.MediaAsset) (*model.MediaAsset, error) {
	id, _ := uuid.NewV7()
	asset.ID = id.String()
	asset.CreatedAt = time.Now()
	asset.UpdatedAt = time.Now()
	if err := ds.db.Create(asset).Error; err != nil {
		return nil, err
	}
	return asset, nil
}

func (ds *MediaRepository) DeleteAsset(ownerID, assetID string) error {
	return ds.db.Where("id = ? AND owner_id = ?", assetID, ownerID).Delete(&model.MediaAsset{}).Error
}
