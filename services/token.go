package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/recuerdo-labs/escape_api/dto"
	"github.com/recuerdo-labs/escape_api/game"
	"github.com/recuerdo-labs/escape_api/model"
	"github.com/recuerdo-labs/escape_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ShareTokenService lets a content owner hand out codes that spawn sessions
// over their fact pool for other accounts. One code, many sessions; the
// usage log records each distinct account once.
type ShareTokenService struct {
	context.DefaultService

	dbSvc   *DatabaseService
	gameSvc *GameService
}

const SHARE_TOKEN_SVC = "share_token_svc"

func (svc ShareTokenService) Id() string {
	return SHARE_TOKEN_SVC
}

func (svc *ShareTokenService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ShareTokenService) Start() error {
	svc.dbSvc = svc.Service(DATABASE_SVC).(*DatabaseService)
	svc.gameSvc = svc.Service(GAME_SVC).(*GameService)
	return nil
}

// SpawnFromToken validates the code and composes a brand-new session over
// the token owner's facts. Checks run in a fixed order and the first
// failure wins: existence/active, expiry, use cap, self-use. A repeat
// player gets a new session but no second usage-log entry.
func (svc *ShareTokenService) SpawnFromToken(code, playerID string) (*model.GameSession, error) {
	token, err := svc.dbSvc.Tokens().GetTokenByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewTokenInvalidError("Share token not found")
		}
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to look up token")
	}
	if !token.IsActive {
		return nil, shared.NewTokenInvalidError("Share token is no longer active")
	}
	if token.ExpiresAt != nil && token.ExpiresAt.Before(time.Now()) {
		return nil, shared.NewTokenInvalidError("Share token has expired")
	}
	if token.MaxUses != nil {
		uses, err := svc.dbSvc.Tokens().CountUses(token.ID)
		if err != nil {
			return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to count token uses")
		}
		alreadyUsed := false
		if _, err := svc.dbSvc.Tokens().GetUse(token.ID, playerID); err == nil {
			alreadyUsed = true
		}
		// A returning player does not consume a new use.
		if !alreadyUsed && uses >= int64(*token.MaxUses) {
			return nil, shared.NewTokenInvalidError("Share token has no uses left")
		}
	}
	if token.OwnerID == playerID {
		return nil, shared.NewSelfUseError()
	}

	if _, err := svc.dbSvc.Tokens().RecordUse(svc.dbSvc.Db(), token.ID, playerID); err != nil {
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to record token use")
	}

	seed, err := game.NewSalt()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to generate seed")
	}

	session, err := svc.gameSvc.ComposeSession(playerID, token.OwnerID, seed)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"token_id":   token.ID,
		"player_id":  playerID,
		"session_id": session.ID,
	}).Info("Session spawned from share token")
	return session, nil
}

func (svc *ShareTokenService) CreateToken(ownerID string, req dto.CreateShareTokenRequest) (*dto.ShareTokenResponse, error) {
	code, err := newShareCode()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to generate share code")
	}

	token := &model.ShareToken{
		OwnerID:   ownerID,
		Code:      code,
		IsActive:  true,
		MaxUses:   req.MaxUses,
		ExpiresAt: req.ExpiresAt,
	}

	token, err = svc.dbSvc.Tokens().CreateToken(token)
	if err != nil {
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to create token")
	}
	return svc.toTokenResponse(token, 0), nil
}

func (svc *ShareTokenService) ListTokens(ownerID string, limit, offset int) (*dto.ListShareTokensResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	tokens, total, err := svc.dbSvc.Tokens().ListOwnerTokens(ownerID, limit, offset)
	if err != nil {
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to list tokens")
	}

	resp := &dto.ListShareTokensResponse{Tokens: make([]dto.ShareTokenResponse, 0, len(tokens)), Total: total}
	for i := range tokens {
		uses, err := svc.dbSvc.Tokens().CountUses(tokens[i].ID)
		if err != nil {
			return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to count token uses")
		}
		resp.Tokens = append(resp.Tokens, *svc.toTokenResponse(&tokens[i], int(uses)))
	}
	return resp, nil
}

func (svc *ShareTokenService) DeactivateToken(ownerID, tokenID string) error {
	token, err := svc.dbSvc.Tokens().GetToken(tokenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewNotFoundError(err, "Token not found")
		}
		return shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to load token")
	}
	if token.OwnerID != ownerID {
		return shared.NewNotFoundError(nil, "Token not found")
	}

	token.IsActive = false
	if err := svc.dbSvc.Tokens().UpdateToken(token); err != nil {
		return shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to deactivate token")
	}
	return nil
}

func (svc *ShareTokenService) toTokenResponse(token *model.ShareToken, useCount int) *dto.ShareTokenResponse {
	return &dto.ShareTokenResponse{
		ID:        token.ID,
		Code:      token.Code,
		IsActive:  token.IsActive,
		MaxUses:   token.MaxUses,
		UseCount:  useCount,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	}
}

// newShareCode returns a 10-character lowercase hex code.
func newShareCode() (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
