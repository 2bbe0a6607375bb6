package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/recuerdo-labs/escape_api/model"
	"gorm.io/gorm"
)

// FactRepository handles fact database operations
type FactRepository struct {
	BaseRepository
}

func NewFactRepository(db *gorm.DB) *FactRepository {
	return &FactRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *FactRepository) GetFact(factID string) (*model.Fact, error) {
	var fact model.Fact
	if err := ds.db.Where("id = ?", factID).First(&fact).Error; err != nil {
		return nil, err
	}
	return &fact, nil
}

func (ds *FactRepository) GetOwnerFact(ownerID, factID string) (*model.Fact, error) {
	var fact model.Fact
	if err := ds.db.Where("id = ? AND owner_id = ?", factID, ownerID).First(&fact).Error; err != nil {
		return nil, err
	}
	return &fact, nil
}

// GetActiveFactPool returns the owner's active facts ordered by creation time.
// Stable ordering matters here: the session composer indexes into this slice
// with seed-derived positions, so two calls with the same data must agree.
func (ds *FactRepository) GetActiveFactPool(ownerID string) ([]model.Fact, error) {
	var facts []model.Fact
	if err := ds.db.Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("created_at ASC, id ASC").Find(&facts).Error; err != nil {
		return nil, err
	}
	return facts, nil
}

func (ds *FactRepository) ListFacts(ownerID string, limit, offset int) ([]model.Fact, int64, error) {
	var facts []model.Fact
	var total int64

	query := ds.db.Model(&model.Fact{}).Where("owner_id = ?", ownerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&facts).Error; err != nil {
		return nil, 0, err
	}
	return facts, total, nil
}

func (ds *FactRepository) CreateFact(fact *model.Fact) (*model.Fact, error) {
	id, _ := uuid.NewV7()
	fact.ID = id.String()
	fact.CreatedAt = time.Now()
	fact.UpdatedAt = time.Now()
	if err := ds.db.Create(fact).Error; err != nil {
		return nil, err
	}
	return fact, nil
}

func (ds *FactRepository) UpdateFact(fact *model.Fact) error {
	fact.UpdatedAt = time.Now()
	return ds.db.Save(fact).Error
}

func (ds *FactRepository) DeleteFact(ownerID, factID string) error {
	return ds.db.Where("id = ? AND owner_id = ?", factID, ownerID).Delete(&model.Fact{}).Error
}

func (ds *FactRepository) CountActiveFacts(ownerID string) (int64, error) {
	var count int64
	err := ds.db.Model(&model.Fact{}).
		Where("owner_id = ? AND is_active = ?", ownerID, true).Count(&count).Error
	return count, err
}
