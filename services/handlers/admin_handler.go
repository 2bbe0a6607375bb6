package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/recuerdo-labs/escape_api/dto"
	"github.com/recuerdo-labs/escape_api/shared"
)

type AdminServiceInterface interface {
	ListUsers(page, limit int, search string) (*dto.AdminUserListResponse, error)
	UpdateUser(userID string, req dto.AdminUpdateUserRequest) error
}

type RateLimitServiceInterface interface {
	GetRateLimitStats() (map[string]interface{}, error)
	ResetRateLimit(identifier, endpointType string) error
	CleanupOldRecords() error
}

type AdminHandler struct {
	adminSvc     AdminServiceInterface
	rateLimitSvc RateLimitServiceInterface
}

func NewAdminHandler(adminSvc AdminServiceInterface, rateLimitSvc RateLimitServiceInterface) *AdminHandler {
	return &AdminHandler{
		adminSvc:     adminSvc,
		rateLimitSvc: rateLimitSvc,
	}
}

// @Summary List Users (Admin)
// @Description Paged listing of all accounts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param search query string false "Search term"
// @Success 200 {object} shared.Response{data=dto.AdminUserListResponse}
// @Router /api/v1/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.adminSvc.ListUsers(c.QueryInt("page", 1), c.QueryInt("limit", 20), c.Query("search"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", users)
}

// @Summary Update User (Admin)
// @Description Change an account's role or active flag
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param adminUpdateUserRequest body dto.AdminUpdateUserRequest true "Fields to update"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/users/{userId} [put]
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	var req dto.AdminUpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, err.Error())
	}
	if err := req.Validate(); err != nil {
		return shared.ResponseJSON(c, fiber.StatusBadRequest, "Validation failed", dto.FormatValidationErrors(err))
	}

	if err := h.adminSvc.UpdateUser(c.Params("userId"), req); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "User updated", nil)
}

// @Summary Rate Limit Stats (Admin)
// @Description Current rate limit configs and window counts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/rate-limits [get]
func (h *AdminHandler) RateLimitStats(c *fiber.Ctx) error {
	stats, err := h.rateLimitSvc.GetRateLimitStats()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", stats)
}

// @Summary Reset Rate Limit (Admin)
// @Description Clear the rate limit window for one identifier and endpoint type
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param identifier path string true "Identifier"
// @Param endpointType path string true "Endpoint type"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/rate-limits/{identifier}/{endpointType} [delete]
func (h *AdminHandler) ResetRateLimit(c *fiber.Ctx) error {
	identifier := c.Params("identifier")
	endpointType := c.Params("endpointType")

	if identifier == "" || endpointType == "" {
		return shared.ResponseBadRequest(c, "Missing identifier or endpoint type")
	}

	if err := h.rateLimitSvc.ResetRateLimit(identifier, endpointType); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Rate limit reset", nil)
}

// @Summary Cleanup Rate Limits (Admin)
// @Description Drop expired rate limit windows
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/rate-limits/cleanup [post]
func (h *AdminHandler) CleanupRateLimits(c *fiber.Ctx) error {
	if err := h.rateLimitSvc.CleanupOldRecords(); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Rate limits cleaned up", nil)
}
