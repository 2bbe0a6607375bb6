package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/recuerdo-labs/escape_api/dto"
	"github.com/recuerdo-labs/escape_api/shared"
)

type GameHandler struct {
	gameSvc   GameServiceInterface
	rewardSvc RewardServiceInterface
}

func NewGameHandler(gameSvc GameServiceInterface, rewardSvc RewardServiceInterface) *GameHandler {
	return &GameHandler{
		gameSvc:   gameSvc,
		rewardSvc: rewardSvc,
	}
}

// @Summary List Sessions
// @Description List the authenticated player's sessions, newest first
// @Tags game
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} shared.Response{data=[]dto.SessionResponse}
// @Router /api/v1/sessions [get]
func (h *GameHandler) ListSessions(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	sessions, total, err := h.gameSvc.ListSessions(userID, c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", fiber.Map{
		"sessions": sessions,
		"total":    total,
	})
}

// @Summary Get Session
// @Description Get a session with its levels
// @Tags game
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} shared.Response{data=dto.SessionResponse}
// @Router /api/v1/sessions/{sessionId} [get]
func (h *GameHandler) GetSession(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	session, err := h.gameSvc.GetSession(userID, c.Params("sessionId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", session)
}

// @Summary Get Level
// @Description Get the player view of one level
// @Tags game
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param levelId path string true "Level ID"
// @Success 200 {object} shared.Response{data=dto.LevelResponse}
// @Router /api/v1/sessions/{sessionId}/levels/{levelId} [get]
func (h *GameHandler) GetLevel(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	level, err := h.gameSvc.GetLevel(userID, c.Params("sessionId"), c.Params("levelId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", level)
}

// @Summary Verify Answer
// @Description Submit an answer for a level
// @Tags game
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param levelId path string true "Level ID"
// @Param verifyAnswerRequest body dto.VerifyAnswerRequest true "Submitted answer"
// @Success 200 {object} shared.Response{data=dto.VerifyAnswerResponse}
// @Router /api/v1/sessions/{sessionId}/levels/{levelId}/verify [post]
func (h *GameHandler) VerifyAnswer(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.VerifyAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, err.Error())
	}
	if err := req.Validate(); err != nil {
		return shared.ResponseJSON(c, fiber.StatusBadRequest, "Validation failed", dto.FormatValidationErrors(err))
	}

	result, err := h.gameSvc.VerifyLevel(userID, c.Params("sessionId"), c.Params("levelId"), req.Answer)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}

// @Summary Reset Session
// @Description Restart the player's run over their own facts with a fresh session
// @Tags game
// @Produce json
// @Security BearerAuth
// @Success 201 {object} shared.Response{data=dto.SessionResponse}
// @Router /api/v1/sessions/reset [post]
func (h *GameHandler) ResetSession(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	session, err := h.gameSvc.ResetSession(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Session reset", h.gameSvc.ToSessionResponse(session))
}

// @Summary Get Won Reward
// @Description Get the most recent reward the player has won
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response{data=dto.RewardResponse}
// @Router /api/v1/rewards/won [get]
func (h *GameHandler) GetWonReward(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	reward, err := h.rewardSvc.GetWonReward(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", reward)
}

// @Summary Create Reward
// @Description Add a reward to the authenticated owner's pool
// @Tags rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createRewardRequest body dto.CreateRewardRequest true "Reward details"
// @Success 201 {object} shared.Response{data=dto.RewardResponse}
// @Router /api/v1/rewards [post]
func (h *GameHandler) CreateReward(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.CreateRewardRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, err.Error())
	}
	if err := req.Validate(); err != nil {
		return shared.ResponseJSON(c, fiber.StatusBadRequest, "Validation failed", dto.FormatValidationErrors(err))
	}

	reward, err := h.rewardSvc.CreateReward(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Reward created", reward)
}

// @Summary List Rewards
// @Description List the authenticated owner's rewards
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} shared.Response{data=dto.ListRewardsResponse}
// @Router /api/v1/rewards [get]
func (h *GameHandler) ListRewards(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	rewards, err := h.rewardSvc.ListRewards(userID, c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", rewards)
}

// @Summary Update Reward
// @Description Edit an unused reward
// @Tags rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rewardId path string true "Reward ID"
// @Param updateRewardRequest body dto.UpdateRewardRequest true "Fields to update"
// @Success 200 {object} shared.Response{data=dto.RewardResponse}
// @Router /api/v1/rewards/{rewardId} [put]
func (h *GameHandler) UpdateReward(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.UpdateRewardRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, err.Error())
	}
	if err := req.Validate(); err != nil {
		return shared.ResponseJSON(c, fiber.StatusBadRequest, "Validation failed", dto.FormatValidationErrors(err))
	}

	reward, err := h.rewardSvc.UpdateReward(userID, c.Params("rewardId"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Reward updated", reward)
}

// @Summary Delete Reward
// @Description Remove an unused reward from the pool
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param rewardId path string true "Reward ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/rewards/{rewardId} [delete]
func (h *GameHandler) DeleteReward(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	if err := h.rewardSvc.DeleteReward(userID, c.Params("rewardId")); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Reward deleted", nil)
}
