package controllers

import (
	"context"
	"errors"

	"Backend-Medical-Intake/src/middleware"
	"Backend-Medical-Intake/src/models"
	"Backend-Medical-Intake/src/services/templates"
	"Backend-Medical-Intake/src/utils"

	"github.com/gofiber/fiber/v2"
)

type TemplateController struct {
	templates *templates.Service
}

func NewTemplateController(svc *templates.Service) *TemplateController {
	return &TemplateController{templates: svc}
}

// GetTemplates godoc
// @Summary      Browse form templates
// @Tags         templates
// @Produce      json
// @Param        search    query  string  false  "Title or description"
// @Param        category  query  string  false  "Category"  default(All)
// @Success      200  {array}  models.FormTemplate
// @Router       /templates [get]
func (tc *TemplateController) GetTemplates(c *fiber.Ctx) error {
	return c.JSON(tc.templates.List(models.TemplateQuery{
		Search:   c.Query("search"),
		Category: c.Query("category", templates.AllCategories),
	}))
}

func (tc *TemplateController) GetCategories(c *fiber.Ctx) error {
	return c.JSON(tc.templates.Categories())
}

// UseTemplate godoc
// @Summary      Create a draft form from a template
// @Tags         templates
// @Produce      json
// @Param        id   path      string  true  "Template ID"
// @Success      201  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Router       /templates/{id}/use [post]
func (tc *TemplateController) UseTemplate(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	form, err := tc.templates.Use(ctx, middleware.CurrentUser(c).ID, c.Params("id"))
	if errors.Is(err, templates.ErrTemplateNotFound) {
		return utils.HandleError(c, fiber.StatusNotFound, "Template not found")
	}
	if err != nil {
		return saveError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(form)
}
