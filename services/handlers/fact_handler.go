package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/recuerdo-labs/escape_api/dto"
	"github.com/recuerdo-labs/escape_api/shared"
)

type FactHandler struct {
	factSvc FactServiceInterface
}

func NewFactHandler(factSvc FactServiceInterface) *FactHandler {
	return &FactHandler{
		factSvc: factSvc,
	}
}

// @Summary Create Fact
// @Description Add a fact to the authenticated owner's pool
// @Tags facts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createFactRequest body dto.CreateFactRequest true "Fact details"
// @Success 201 {object} shared.Response{data=dto.FactResponse}
// @Router /api/v1/facts [post]
func (h *FactHandler) CreateFact(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.CreateFactRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, err.Error())
	}
	if err := req.Validate(); err != nil {
		return shared.ResponseJSON(c, fiber.StatusBadRequest, "Validation failed", dto.FormatValidationErrors(err))
	}

	fact, err := h.factSvc.CreateFact(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Fact created", fact)
}

// @Summary List Facts
// @Description List the authenticated owner's facts
// @Tags facts
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} shared.Response{data=dto.ListFactsResponse}
// @Router /api/v1/facts [get]
func (h *FactHandler) ListFacts(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	facts, err := h.factSvc.ListFacts(userID, c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", facts)
}

// @Summary Get Fact
// @Description Get one of the authenticated owner's facts
// @Tags facts
// @Produce json
// @Security BearerAuth
// @Param factId path string true "Fact ID"
// @Success 200 {object} shared.Response{data=dto.FactResponse}
// @Router /api/v1/facts/{factId} [get]
func (h *FactHandler) GetFact(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	fact, err := h.factSvc.GetFact(userID, c.Params("factId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", fact)
}

// @Summary Update Fact
// @Description Edit prompt, hints, difficulty or active flag of a fact
// @Tags facts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param factId path string true "Fact ID"
// @Param updateFactRequest body dto.UpdateFactRequest true "Fields to update"
// @Success 200 {object} shared.Response{data=dto.FactResponse}
// @Router /api/v1/facts/{factId} [put]
func (h *FactHandler) UpdateFact(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.UpdateFactRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, err.Error())
	}
	if err := req.Validate(); err != nil {
		return shared.ResponseJSON(c, fiber.StatusBadRequest, "Validation failed", dto.FormatValidationErrors(err))
	}

	fact, err := h.factSvc.UpdateFact(userID, c.Params("factId"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Fact updated", fact)
}

// @Summary Delete Fact
// @Description Remove a fact from the pool
// @Tags facts
// @Produce json
// @Security BearerAuth
// @Param factId path string true "Fact ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/facts/{factId} [delete]
func (h *FactHandler) DeleteFact(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	if err := h.factSvc.DeleteFact(userID, c.Params("factId")); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Fact deleted", nil)
}
