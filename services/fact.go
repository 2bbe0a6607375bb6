package services

import (
	"encoding/json"
	"errors"

	"github.com/alphabatem/common/context"
	"github.com/recuerdo-labs/escape_api/dto"
	"github.com/recuerdo-labs/escape_api/game"
	"github.com/recuerdo-labs/escape_api/model"
	"github.com/recuerdo-labs/escape_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// FactService manages the content owner's pool of secret facts. Values are
// validated for canonicalizability at write time so a session composer never
// trips over a fact it cannot commit to.
type FactService struct {
	context.DefaultService

	dbSvc *DatabaseService
}

const FACT_SVC = "fact_svc"

func (svc FactService) Id() string {
	return FACT_SVC
}

func (svc *FactService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *FactService) Start() error {
	svc.dbSvc = svc.Service(DATABASE_SVC).(*DatabaseService)
	return nil
}

func (svc *FactService) CreateFact(ownerID string, req dto.CreateFactRequest) (*dto.FactResponse, error) {
	value, err := svc.buildValue(ownerID, req.Type, req.Value)
	if err != nil {
		return nil, err
	}

	rawValue, err := json.Marshal(value)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to encode fact value")
	}

	hints := req.Hints
	if hints == nil {
		hints = []string{}
	}
	rawHints, err := json.Marshal(hints)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to encode hints")
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = shared.DifficultyMedium
	}

	fact := &model.Fact{
		OwnerID:    ownerID,
		Type:       req.Type,
		Prompt:     req.Prompt,
		Hints:      rawHints,
		Value:      rawValue,
		Difficulty: difficulty,
		IsActive:   true,
	}

	fact, err = svc.dbSvc.Facts().CreateFact(fact)
	if err != nil {
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to create fact")
	}

	log.WithFields(log.Fields{"owner_id": ownerID, "fact_id": fact.ID, "type": fact.Type}).Info("Fact created")
	return svc.toFactResponse(fact), nil
}

// buildValue checks the union branch matches the declared type and that the
// value canonicalizes cleanly.
func (svc *FactService) buildValue(ownerID, factType string, req dto.FactValueRequest) (*model.FactValue, error) {
	value := &model.FactValue{}

	switch factType {
	case shared.FactTypeText:
		if req.Text == "" {
			return nil, shared.NewBadRequestError(nil, "Text facts require a text value")
		}
		value.Text = req.Text
	case shared.FactTypePlace:
		if req.Place == "" {
			return nil, shared.NewBadRequestError(nil, "Place facts require a place value")
		}
		value.Place = req.Place
	case shared.FactTypeDate:
		if req.Date == "" {
			return nil, shared.NewBadRequestError(nil, "Date facts require a date value")
		}
		normalized, err := game.NormalizeDate(req.Date)
		if err != nil {
			return nil, shared.NewBadRequestError(err, "Unrecognized date format")
		}
		value.Date = normalized
	case shared.FactTypePhoto:
		if req.Photo == nil {
			return nil, shared.NewBadRequestError(nil, "Photo facts require a photo value")
		}
		if req.Photo.GridSize < shared.MinPuzzleGrid || req.Photo.GridSize > shared.MaxPuzzleGrid {
			return nil, shared.NewBadRequestError(nil, "Grid size out of range")
		}
		if _, err := svc.dbSvc.Media().GetOwnerAsset(ownerID, req.Photo.AssetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, shared.NewBadRequestError(nil, "Photo asset not found")
			}
			return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to check photo asset")
		}
		value.Photo = &model.PhotoValue{
			AssetID:  req.Photo.AssetID,
			GridSize: req.Photo.GridSize,
		}
	default:
		return nil, shared.NewBadRequestError(nil, "Unknown fact type")
	}

	return value, nil
}

func (svc *FactService) GetFact(ownerID, factID string) (*dto.FactResponse, error) {
	fact, err := svc.dbSvc.Facts().GetOwnerFact(ownerID, factID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Fact not found")
		}
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to load fact")
	}
	return svc.toFactResponse(fact), nil
}

func (svc *FactService) ListFacts(ownerID string, limit, offset int) (*dto.ListFactsResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	facts, total, err := svc.dbSvc.Facts().ListFacts(ownerID, limit, offset)
	if err != nil {
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to list facts")
	}

	resp := &dto.ListFactsResponse{Facts: make([]dto.FactResponse, 0, len(facts)), Total: total}
	for i := range facts {
		resp.Facts = append(resp.Facts, *svc.toFactResponse(&facts[i]))
	}
	return resp, nil
}

func (svc *FactService) UpdateFact(ownerID, factID string, req dto.UpdateFactRequest) (*dto.FactResponse, error) {
	fact, err := svc.dbSvc.Facts().GetOwnerFact(ownerID, factID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Fact not found")
		}
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to load fact")
	}

	if req.Prompt != "" {
		fact.Prompt = req.Prompt
	}
	if req.Hints != nil {
		rawHints, err := json.Marshal(req.Hints)
		if err != nil {
			return nil, shared.NewInternalError(err, "Failed to encode hints")
		}
		fact.Hints = rawHints
	}
	if req.Difficulty != "" {
		fact.Difficulty = req.Difficulty
	}
	if req.IsActive != nil {
		fact.IsActive = *req.IsActive
	}

	if err := svc.dbSvc.Facts().UpdateFact(fact); err != nil {
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to update fact")
	}
	return svc.toFactResponse(fact), nil
}

func (svc *FactService) DeleteFact(ownerID, factID string) error {
	if _, err := svc.dbSvc.Facts().GetOwnerFact(ownerID, factID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewNotFoundError(err, "Fact not found")
		}
		return shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to load fact")
	}

	if err := svc.dbSvc.Facts().DeleteFact(ownerID, factID); err != nil {
		return shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to delete fact")
	}
	return nil
}

func (svc *FactService) toFactResponse(fact *model.Fact) *dto.FactResponse {
	return &dto.FactResponse{
		ID:         fact.ID,
		Type:       fact.Type,
		Prompt:     fact.Prompt,
		Hints:      fact.DecodeHints(),
		Difficulty: fact.Difficulty,
		IsActive:   fact.IsActive,
		CreatedAt:  fact.CreatedAt,
		UpdatedAt:  fact.UpdatedAt,
	}
}
