package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/recuerdo-labs/escape_api/model"
	"gorm.io/gorm"
)

// TokenRepository handles share token database operations
type TokenRepository struct {
	BaseRepository
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *TokenRepository) GetToken(tokenID string) (*model.ShareToken, error) {
	var token model.ShareToken
	if err := ds.db.Where("id = ?", tokenID).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (ds *TokenRepository) GetTokenByCode(code string) (*model.ShareToken, error) {
	var token model.ShareToken
	if err := ds.db.Where("code = ?", code).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (ds *TokenRepository) ListOwnerTokens(ownerID string, limit, offset int) ([]model.ShareToken, int64, error) {
	var tokens []model.ShareToken
	var total int64

	query := ds.db.Model(&model.ShareToken{}).Where("owner_id = ?", ownerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&tokens).Error; err != nil {
		return nil, 0, err
	}
	return tokens, total, nil
}

func (ds *TokenRepository) CreateToken(token *model.ShareToken) (*model.ShareToken, error) {
	id, _ := uuid.NewV7()
	token.ID = id.String()
	token.CreatedAt = time.Now()
	token.UpdatedAt = time.Now()
	if err := ds.db.Create(token).Error; err != nil {
		return nil, err
	}
	return token, nil
}

func (ds *TokenRepository) UpdateToken(token *model.ShareToken) error {
	token.UpdatedAt = time.Now()
	return ds.db.Save(token).Error
}

func (ds *TokenRepository) CountUses(tokenID string) (int64, error) {
	var count int64
	err := ds.db.Model(&model.ShareTokenUse{}).Where("token_id = ?", tokenID).Count(&count).Error
	return count, err
}

func (ds *TokenRepository) GetUse(tokenID, accountID string) (*model.ShareTokenUse, error) {
	var use model.ShareTokenUse
	if err := ds.db.Where("token_id = ? AND account_id = ?", tokenID, accountID).First(&use).Error; err != nil {
		return nil, err
	}
	return &use, nil
}

// RecordUse logs a redemption, at most once per account per token. Repeat
// redemptions hit the unique index and report isNew false instead of failing.
func (ds *TokenRepository) RecordUse(tx *gorm.DB, tokenID, accountID string) (isNew bool, err error) {
	id, _ := uuid.NewV7()
	use := &model.ShareTokenUse{
		ID:          id.String(),
		TokenID:     tokenID,
		AccountID:   accountID,
		FirstUsedAt: time.Now(),
		CreatedAt:   time.Now(),
	}
	if err := tx.Create(use).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
