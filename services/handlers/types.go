package handlers

import (
	"mime/multipart"

	"github.com/recuerdo-labs/escape_api/dto"
	"github.com/recuerdo-labs/escape_api/model"
)

type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	GetProfile(userID string) (*dto.UserResponse, error)
}

type FactServiceInterface interface {
	CreateFact(ownerID string, req dto.CreateFactRequest) (*dto.FactResponse, error)
	GetFact(ownerID, factID string) (*dto.FactResponse, error)
	ListFacts(ownerID string, limit, offset int) (*dto.ListFactsResponse, error)
	UpdateFact(ownerID, factID string, req dto.UpdateFactRequest) (*dto.FactResponse, error)
	DeleteFact(ownerID, factID string) error
}

type GameServiceInterface interface {
	GetSession(playerID, sessionID string) (*dto.SessionResponse, error)
	ListSessions(playerID string, limit, offset int) ([]dto.SessionResponse, int64, error)
	GetLevel(playerID, sessionID, levelID string) (*dto.LevelResponse, error)
	VerifyLevel(playerID, sessionID, levelID, answer string) (*dto.VerifyAnswerResponse, error)
	ResetSession(playerID string) (*model.GameSession, error)
	ToSessionResponse(session *model.GameSession) *dto.SessionResponse
}

type RewardServiceInterface interface {
	CreateReward(ownerID string, req dto.CreateRewardRequest) (*dto.RewardResponse, error)
	ListRewards(ownerID string, limit, offset int) (*dto.ListRewardsResponse, error)
	UpdateReward(ownerID, rewardID string, req dto.UpdateRewardRequest) (*dto.RewardResponse, error)
	DeleteReward(ownerID, rewardID string) error
	GetWonReward(playerID string) (*dto.RewardResponse, error)
}

type ShareTokenServiceInterface interface {
	CreateToken(ownerID string, req dto.CreateShareTokenRequest) (*dto.ShareTokenResponse, error)
	ListTokens(ownerID string, limit, offset int) (*dto.ListShareTokensResponse, error)
	DeactivateToken(ownerID, tokenID string) error
	SpawnFromToken(code, playerID string) (*model.GameSession, error)
}

type MediaServiceInterface interface {
	UploadImage(ownerID string, fileHeader *multipart.FileHeader) (*dto.MediaAssetResponse, error)
	GetAsset(ownerID, assetID string) (*dto.MediaAssetResponse, error)
	GetAssetURL(assetID string) (string, error)
	ListAssets(ownerID string, limit, offset int) (*dto.ListMediaAssetsResponse, error)
	DeleteAsset(ownerID, assetID string) error
}
