package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/recuerdo-labs/escape_api/dto"
	"github.com/recuerdo-labs/escape_api/shared"
)

type TokenHandler struct {
	tokenSvc ShareTokenServiceInterface
	gameSvc  GameServiceInterface
}

func NewTokenHandler(tokenSvc ShareTokenServiceInterface, gameSvc GameServiceInterface) *TokenHandler {
	return &TokenHandler{
		tokenSvc: tokenSvc,
		gameSvc:  gameSvc,
	}
}

// @Summary Create Share Token
// @Description Issue a share code for the authenticated owner's facts
// @Tags tokens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createShareTokenRequest body dto.CreateShareTokenRequest true "Token options"
// @Success 201 {object} shared.Response{data=dto.ShareTokenResponse}
// @Router /api/v1/tokens [post]
func (h *TokenHandler) CreateToken(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.CreateShareTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, err.Error())
	}
	if err := req.Validate(); err != nil {
		return shared.ResponseJSON(c, fiber.StatusBadRequest, "Validation failed", dto.FormatValidationErrors(err))
	}

	token, err := h.tokenSvc.CreateToken(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Token created", token)
}

// @Summary List Share Tokens
// @Description List the authenticated owner's share tokens
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} shared.Response{data=dto.ListShareTokensResponse}
// @Router /api/v1/tokens [get]
func (h *TokenHandler) ListTokens(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	tokens, err := h.tokenSvc.ListTokens(userID, c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", tokens)
}

// @Summary Deactivate Share Token
// @Description Turn off a share token without deleting its usage log
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Param tokenId path string true "Token ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/tokens/{tokenId} [delete]
func (h *TokenHandler) DeactivateToken(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	if err := h.tokenSvc.DeactivateToken(userID, c.Params("tokenId")); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Token deactivated", nil)
}

// @Summary Spawn Session From Token
// @Description Redeem a share code and start a new session over the owner's facts
// @Tags tokens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param startSessionRequest body dto.StartSessionRequest true "Share code"
// @Success 201 {object} shared.Response{data=dto.SessionResponse}
// @Router /api/v1/tokens/spawn [post]
func (h *TokenHandler) SpawnSession(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, err.Error())
	}
	if err := req.Validate(); err != nil {
		return shared.ResponseJSON(c, fiber.StatusBadRequest, "Validation failed", dto.FormatValidationErrors(err))
	}

	session, err := h.tokenSvc.SpawnFromToken(req.ShareCode, userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Session spawned", h.gameSvc.ToSessionResponse(session))
}
