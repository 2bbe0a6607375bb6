package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/recuerdo-labs/escape_api/shared"
)

type MediaHandler struct {
	mediaSvc MediaServiceInterface
}

func NewMediaHandler(mediaSvc MediaServiceInterface) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
	}
}

// @Summary Upload Image
// @Description Upload an image for photo facts or reward media
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file (max 10MB)"
// @Success 201 {object} shared.Response{data=dto.MediaAssetResponse}
// @Router /api/v1/media [post]
func (h *MediaHandler) UploadImage(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return shared.ResponseBadRequest(c, "Missing file upload")
	}

	asset, err := h.mediaSvc.UploadImage(userID, fileHeader)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Image uploaded", asset)
}

// @Summary List Media Assets
// @Description List the authenticated owner's uploaded images
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} shared.Response{data=dto.ListMediaAssetsResponse}
// @Router /api/v1/media [get]
func (h *MediaHandler) ListAssets(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	assets, err := h.mediaSvc.ListAssets(userID, c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", assets)
}

// @Summary Get Media Asset
// @Description Get one asset with a presigned download URL
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param assetId path string true "Asset ID"
// @Success 200 {object} shared.Response{data=dto.MediaAssetResponse}
// @Router /api/v1/media/{assetId} [get]
func (h *MediaHandler) GetAsset(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	asset, err := h.mediaSvc.GetAsset(userID, c.Params("assetId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", asset)
}

// @Summary Get Asset URL
// @Description Resolve any asset to a presigned URL, used to render puzzle images
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param assetId path string true "Asset ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/media/{assetId}/url [get]
func (h *MediaHandler) GetAssetURL(c *fiber.Ctx) error {
	url, err := h.mediaSvc.GetAssetURL(c.Params("assetId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", fiber.Map{"url": url})
}

// @Summary Delete Media Asset
// @Description Remove an uploaded image
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param assetId path string true "Asset ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/media/{assetId} [delete]
func (h *MediaHandler) DeleteAsset(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	if err := h.mediaSvc.DeleteAsset(userID, c.Params("assetId")); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Asset deleted", nil)
}
