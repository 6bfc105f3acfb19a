package controllers

import (
	"context"

	"Backend-Medical-Intake/src/logger"
	"Backend-Medical-Intake/src/middleware"
	"Backend-Medical-Intake/src/models"
	"Backend-Medical-Intake/src/utils"

	"github.com/gofiber/fiber/v2"
)

type ResponseStore interface {
	ListResponses(ctx context.Context, ownerID string, q models.ResponseQuery) (*models.PaginatedResponse, error)
	DeleteResponse(ctx context.Context, ownerID, id string) error
}

type ResponseController struct {
	store ResponseStore
}

func NewResponseController(store ResponseStore) *ResponseController {
	return &ResponseController{store: store}
}

// GetResponses godoc
// @Summary      List patient responses
// @Tags         responses
// @Produce      json
// @Param        search  query  string  false  "Patient name or email"
// @Param        status  query  string  false  "all, completed, partial, pending"
// @Param        formId  query  string  false  "Form ID"
// @Param        page    query  int     false  "Page"   default(1)
// @Param        limit   query  int     false  "Limit"  default(10)
// @Success      200  {object}  models.PaginatedResponse
// @Router       /responses [get]
func (rc *ResponseController) GetResponses(c *fiber.Ctx) error {
	q := models.ResponseQuery{
		PaginationParams: models.PaginationParams{
			Page:   c.QueryInt("page", 1),
			Limit:  c.QueryInt("limit", 10),
			Search: c.Query("search"),
		},
		Status: c.Query("status", "all"),
		FormID: c.Query("formId"),
	}
	switch q.Status {
	case "all", string(models.ResponseCompleted), string(models.ResponsePartial), string(models.ResponsePending):
	default:
		return utils.HandleError(c, fiber.StatusBadRequest, "status must be one of all, completed, partial, pending")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	page, err := rc.store.ListResponses(ctx, middleware.CurrentUser(c).ID, q)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching responses")
	}
	return c.JSON(page)
}

// DeleteResponse godoc
// @Summary      Delete a response
// @Tags         responses
// @Param        id   path  string  true  "Response ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /responses/{id} [delete]
func (rc *ResponseController) DeleteResponse(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	if err := rc.store.DeleteResponse(ctx, middleware.CurrentUser(c).ID, c.Params("id")); err != nil {
		logger.WithError(err).Error("❌ Error deleting response")
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete response locally")
	}
	return c.JSON(fiber.Map{"message": "Response deleted successfully"})
}
