package controllers

import (
	"context"
	"errors"
	"time"

	"Backend-Medical-Intake/src/logger"
	"Backend-Medical-Intake/src/middleware"
	"Backend-Medical-Intake/src/models"
	"Backend-Medical-Intake/src/services/formstore"
	"Backend-Medical-Intake/src/services/ledger"
	"Backend-Medical-Intake/src/utils"

	"github.com/gofiber/fiber/v2"
)

const requestTimeout = 10 * time.Second

// FormStore is what the form and dashboard handlers need from persistence.
type FormStore interface {
	Load(ctx context.Context, ownerID, id string) (*models.Form, error)
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]models.Form, error)
	Save(ctx context.Context, form models.Form) (*models.Form, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, ownerID string) (*models.DashboardSummary, error)
}

type FormController struct {
	store FormStore
}

func NewFormController(store FormStore) *FormController {
	return &FormController{store: store}
}

// GetForms godoc
// @Summary      List my forms
// @Description  Most recently updated first. Served from local storage when the database is unavailable.
// @Tags         forms
// @Produce      json
// @Param        limit  query  int  false  "Max rows"  default(10)
// @Success      200  {array}   models.Form
// @Failure      401  {object}  models.ErrorResponse
// @Router       /forms [get]
func (fc *FormController) GetForms(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	user := middleware.CurrentUser(c)
	forms, err := fc.store.ListByOwner(ctx, user.ID, c.QueryInt("limit", formstore.DefaultListLimit))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching forms")
	}
	return c.JSON(forms)
}

// GetFormByID godoc
// @Summary      Get a form
// @Tags         forms
// @Produce      json
// @Param        id   path      string  true  "Form ID"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [get]
func (fc *FormController) GetFormByID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	form, err := fc.store.Load(ctx, middleware.CurrentUser(c).ID, c.Params("id"))
	if err != nil {
		return loadError(c, err)
	}
	return c.JSON(form)
}

// CreateForm godoc
// @Summary      Create a form
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        form  body      models.FormInput  true  "Form"
// @Success      201   {object}  models.Form
// @Failure      400   {object}  models.ErrorResponse
// @Failure      500   {object}  models.ErrorResponse
// @Router       /forms [post]
func (fc *FormController) CreateForm(c *fiber.Ctx) error {
	var in models.FormInput
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	form := models.Form{
		Title:       deref(in.Title),
		Description: deref(in.Description),
		Fields:      in.Fields,
		Status:      in.Status,
		OwnerID:     middleware.CurrentUser(c).ID,
	}
	if err := utils.ValidateStruct(form); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	saved, err := fc.store.Save(ctx, form)
	if err != nil {
		return saveError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// UpdateForm godoc
// @Summary      Update a form
// @Description  Keys left out of the body keep their stored value. Owner and createdAt never change.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Form ID"
// @Param        form  body      models.FormInput  true  "Form"
// @Success      200   {object}  models.Form
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Router       /forms/{id} [put]
func (fc *FormController) UpdateForm(c *fiber.Ctx) error {
	var in models.FormInput
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	existing, err := fc.store.Load(ctx, middleware.CurrentUser(c).ID, c.Params("id"))
	if err != nil {
		return loadError(c, err)
	}

	// absent keys keep their stored value
	if in.Title != nil {
		existing.Title = *in.Title
	}
	if in.Description != nil {
		existing.Description = *in.Description
	}
	if in.Fields != nil {
		existing.Fields = in.Fields
	}
	if in.Status != "" {
		existing.Status = in.Status
	}
	if err := utils.ValidateStruct(*existing); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	saved, err := fc.store.Save(ctx, *existing)
	if err != nil {
		return saveError(c, err)
	}
	return c.JSON(saved)
}

// PublishForm godoc
// @Summary      Publish a form
// @Tags         forms
// @Produce      json
// @Param        id   path      string  true  "Form ID"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id}/publish [post]
func (fc *FormController) PublishForm(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	form, err := fc.store.Load(ctx, middleware.CurrentUser(c).ID, c.Params("id"))
	if err != nil {
		return loadError(c, err)
	}
	form.Status = models.FormPublished

	saved, err := fc.store.Save(ctx, *form)
	if err != nil {
		return saveError(c, err)
	}
	return c.JSON(saved)
}

// DeleteForm godoc
// @Summary      Delete a form
// @Description  Idempotent: deleting a missing form succeeds.
// @Tags         forms
// @Produce      json
// @Param        id   path      string  true  "Form ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms/{id} [delete]
func (fc *FormController) DeleteForm(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	id := c.Params("id")
	_, err := fc.store.Load(ctx, middleware.CurrentUser(c).ID, id)
	switch {
	case errors.Is(err, formstore.ErrFormNotFound):
		// not ours or already gone
	case err != nil:
		return loadError(c, err)
	default:
		if err := fc.store.Delete(ctx, id); err != nil {
			logger.WithError(err).Error("❌ Error deleting form")
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete form locally")
		}
	}

	return c.JSON(fiber.Map{
		"message": "Form deleted successfully",
	})
}

// GetDashboardSummary godoc
// @Summary      Dashboard counters
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.DashboardSummary
// @Router       /dashboard/summary [get]
func (fc *FormController) GetDashboardSummary(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	sum, err := fc.store.Summary(ctx, middleware.CurrentUser(c).ID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error loading dashboard")
	}
	return c.JSON(sum)
}

func loadError(c *fiber.Ctx, err error) error {
	if errors.Is(err, formstore.ErrFormNotFound) {
		return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
	}
	logger.WithError(err).Error("❌ Error loading form")
	return utils.HandleError(c, fiber.StatusInternalServerError, "Error loading form")
}

func saveError(c *fiber.Ctx, err error) error {
	logger.WithError(err).Error("❌ Error saving form")
	var storageErr *ledger.StorageError
	if errors.As(err, &storageErr) {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to save form locally")
	}
	return utils.HandleError(c, fiber.StatusInternalServerError, "Error saving form")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
