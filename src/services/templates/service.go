package templates

import (
	"context"
	"errors"
	"strings"

	"Backend-Medical-Intake/src/models"
)

var ErrTemplateNotFound = errors.New("template not found")

// FormSaver is the part of the form store templates need.
type FormSaver interface {
	Save(ctx context.Context, form models.Form) (*models.Form, error)
}

const AllCategories = "All"

var categories = []string{AllCategories, "General", "Dental", "Pediatric", "Mental Health", "Orthopedic", "Cardiology"}

type Service struct {
	forms FormSaver
}

func NewService(forms FormSaver) *Service {
	return &Service{forms: forms}
}

func (s *Service) Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// List filters the catalog by category and by a case-insensitive match on
// title or description.
func (s *Service) List(q models.TemplateQuery) []models.FormTemplate {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := []models.FormTemplate{}
	for _, t := range catalog {
		if q.Category != "" && q.Category != AllCategories && t.Category != q.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		out = append(out, withCount(t))
	}
	return out
}

func (s *Service) Get(id string) (models.FormTemplate, error) {
	for _, t := range catalog {
		if t.ID == id {
			return withCount(t), nil
		}
	}
	return models.FormTemplate{}, ErrTemplateNotFound
}

// Use creates a new draft form for ownerID from the template.
func (s *Service) Use(ctx context.Context, ownerID, templateID string) (*models.Form, error) {
	t, err := s.Get(templateID)
	if err != nil {
		return nil, err
	}
	fields := make(models.Fields, len(t.Fields))
	copy(fields, t.Fields)
	for i := range fields {
		fields[i].Options = append([]string(nil), fields[i].Options...)
	}

	return s.forms.Save(ctx, models.Form{
		Title:       t.Title,
		Description: t.Description,
		Fields:      fields,
		Status:      models.FormDraft,
		OwnerID:     ownerID,
	})
}

func withCount(t models.FormTemplate) models.FormTemplate {
	t.FieldCount = len(t.Fields)
	return t
}
