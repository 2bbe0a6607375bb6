package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	"github.com/recuerdo-labs/escape_api/dto"
	"github.com/recuerdo-labs/escape_api/model"
	"github.com/recuerdo-labs/escape_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MediaService stores uploaded images in MinIO and tracks them as assets.
// Photo facts and reward media both reference assets by id.
type MediaService struct {
	context.DefaultService

	dbSvc    *DatabaseService
	minioSvc *MinIOService
}

const MEDIA_SVC = "media_svc"

const maxUploadSize = 10 << 20 // 10 MB

const presignedURLExpiry = 1 * time.Hour

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *MediaService) Start() error {
	svc.dbSvc = svc.Service(DATABASE_SVC).(*DatabaseService)
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)
	return nil
}

func (svc *MediaService) UploadImage(ownerID string, fileHeader *multipart.FileHeader) (*dto.MediaAssetResponse, error) {
	if fileHeader.Size > maxUploadSize {
		return nil, shared.NewBadRequestError(nil, "File exceeds the 10MB size limit")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return nil, shared.NewBadRequestError(nil, "Only JPEG, PNG, GIF and WebP images are accepted")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, shared.NewBadRequestError(err, "Failed to read uploaded file")
	}
	defer file.Close()

	assetID, _ := uuid.NewV7()
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	objectKey := fmt.Sprintf("images/%s/%s%s", ownerID, assetID.String(), ext)

	if _, err := svc.minioSvc.UploadFile(objectKey, file, fileHeader.Size, contentType); err != nil {
		return nil, shared.NewInternalError(err, "Failed to store image")
	}

	asset := &model.MediaAsset{
		OwnerID:     ownerID,
		FileName:    fileHeader.Filename,
		ObjectKey:   objectKey,
		ContentType: contentType,
		Size:        fileHeader.Size,
		IsActive:    true,
	}

	asset, err = svc.dbSvc.Media().CreateAsset(asset)
	if err != nil {
		// Best effort cleanup of the orphaned object.
		if delErr := svc.minioSvc.DeleteFile(objectKey); delErr != nil {
			log.WithError(delErr).WithField("object_key", objectKey).Warn("Failed to clean up orphaned upload")
		}
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to record asset")
	}

	log.WithFields(log.Fields{"owner_id": ownerID, "asset_id": asset.ID, "size": asset.Size}).Info("Image uploaded")
	return svc.toAssetResponse(asset, true), nil
}

func (svc *MediaService) GetAsset(ownerID, assetID string) (*dto.MediaAssetResponse, error) {
	asset, err := svc.dbSvc.Media().GetOwnerAsset(ownerID, assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Asset not found")
		}
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to load asset")
	}
	return svc.toAssetResponse(asset, true), nil
}

// GetAssetURL resolves an asset to a presigned URL for any viewer. Used to
// serve puzzle images to players who do not own the asset.
func (svc *MediaService) GetAssetURL(assetID string) (string, error) {
	asset, err := svc.dbSvc.Media().GetAsset(assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", shared.NewNotFoundError(err, "Asset not found")
		}
		return "", shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to load asset")
	}

	url, err := svc.minioSvc.GetFileURL(asset.ObjectKey, presignedURLExpiry)
	if err != nil {
		return "", shared.NewInternalError(err, "Failed to generate asset URL")
	}
	return url, nil
}

func (svc *MediaService) ListAssets(ownerID string, limit, offset int) (*dto.ListMediaAssetsResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	assets, total, err := svc.dbSvc.Media().ListOwnerAssets(ownerID, limit, offset)
	if err != nil {
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to list assets")
	}

	resp := &dto.ListMediaAssetsResponse{Assets: make([]dto.MediaAssetResponse, 0, len(assets)), Total: total}
	for i := range assets {
		resp.Assets = append(resp.Assets, *svc.toAssetResponse(&assets[i], false))
	}
	return resp, nil
}

func (svc *MediaService) DeleteAsset(ownerID, assetID string) error {
	asset, err := svc.dbSvc.Media().GetOwnerAsset(ownerID, assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewNotFoundError(err, "Asset not found")
		}
		return shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to load asset")
	}

	if err := svc.dbSvc.Media().DeleteAsset(ownerID, assetID); err != nil {
		return shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to delete asset")
	}

	if err := svc.minioSvc.DeleteFile(asset.ObjectKey); err != nil {
		log.WithError(err).WithField("object_key", asset.ObjectKey).Warn("Failed to delete stored object")
	}
	return nil
}

func (svc *MediaService) toAssetResponse(asset *model.MediaAsset, withURL bool) *dto.MediaAssetResponse {
	resp := &dto.MediaAssetResponse{
		ID:          asset.ID,
		FileName:    asset.FileName,
		ContentType: asset.ContentType,
		Size:        asset.Size,
		CreatedAt:   asset.CreatedAt,
	}
	if withURL {
		if url, err := svc.minioSvc.GetFileURL(asset.ObjectKey, presignedURLExpiry); err == nil {
			resp.URL = url
		}
	}
	return resp
}
