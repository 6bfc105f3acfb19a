package ledger

import (
	"time"

	"Backend-Medical-Intake/src/models"
)

const day = 24 * time.Hour

// Ids of the sample forms, referenced by the sample responses.
const (
	SampleGeneralFormID = "form_sample_1"
	SampleDentalFormID  = "form_sample_2"
	SampleMentalFormID  = "form_sample_3"
)

func sampleForms(ownerID string, now time.Time) []models.Form {
	return []models.Form{
		{
			ID:          SampleGeneralFormID,
			Title:       "General Patient Intake",
			Description: "Comprehensive intake form for new patients",
			Fields: models.Fields{
				{ID: "field_1", Type: models.FieldText, Label: "Full Name", Required: true, Placeholder: "Enter your full name"},
				{ID: "field_2", Type: models.FieldEmail, Label: "Email Address", Required: true, Placeholder: "Enter your email"},
				{ID: "field_3", Type: models.FieldPhone, Label: "Phone Number", Required: true, Placeholder: "Enter your phone number"},
				{ID: "field_4", Type: models.FieldDate, Label: "Date of Birth", Required: true},
				{ID: "field_5", Type: models.FieldTextarea, Label: "Medical History", Placeholder: "Please describe any relevant medical history"},
			},
			Status:        models.FormPublished,
			ResponseCount: 12,
			OwnerID:       ownerID,
			CreatedAt:     now.Add(-7 * day),
			UpdatedAt:     now.Add(-2 * day),
		},
		{
			ID:          SampleDentalFormID,
			Title:       "Dental Patient Intake",
			Description: "Specialized form for dental practices",
			Fields: models.Fields{
				{ID: "field_1", Type: models.FieldText, Label: "Full Name", Required: true, Placeholder: "Enter your full name"},
				{ID: "field_2", Type: models.FieldSelect, Label: "Reason for Visit", Required: true,
					Options: []string{"Routine Cleaning", "Tooth Pain", "Check-up", "Emergency"}},
				{ID: "field_3", Type: models.FieldRadio, Label: "Have you had dental work in the past year?", Required: true,
					Options: []string{"Yes", "No"}},
			},
			Status:        models.FormPublished,
			ResponseCount: 8,
			OwnerID:       ownerID,
			CreatedAt:     now.Add(-5 * day),
			UpdatedAt:     now.Add(-1 * day),
		},
		{
			ID:          SampleMentalFormID,
			Title:       "Mental Health Intake",
			Description: "Comprehensive mental health assessment form",
			Fields: models.Fields{
				{ID: "field_1", Type: models.FieldText, Label: "Full Name", Required: true, Placeholder: "Enter your full name"},
				{ID: "field_2", Type: models.FieldTextarea, Label: "Current Concerns", Required: true, Placeholder: "Please describe what brings you here today"},
			},
			Status:        models.FormDraft,
			ResponseCount: 0,
			OwnerID:       ownerID,
			CreatedAt:     now.Add(-3 * day),
			UpdatedAt:     now.Add(-3 * day),
		},
	}
}

func sampleResponses(ownerID string, now time.Time) []models.Response {
	return []models.Response{
		{
			ID:           "response_1",
			FormID:       SampleGeneralFormID,
			PatientName:  "Alexander Chen",
			PatientEmail: "alexander.chen@email.com",
			Answers: map[string]any{
				"field_1": "Alexander Chen",
				"field_2": "alexander.chen@email.com",
				"field_3": "+1-555-0123",
				"field_4": "1985-03-15",
				"field_5": "No significant medical history",
			},
			Status:      models.ResponseCompleted,
			SubmittedAt: now.Add(-1 * day),
			OwnerID:     ownerID,
		},
		{
			ID:           "response_2",
			FormID:       SampleDentalFormID,
			PatientName:  "Maria Gonzalez",
			PatientEmail: "maria.gonzalez@email.com",
			Answers: map[string]any{
				"field_1": "Maria Gonzalez",
				"field_2": "Routine Cleaning",
				"field_3": "Yes",
			},
			Status:      models.ResponseCompleted,
			SubmittedAt: now.Add(-2 * day),
			OwnerID:     ownerID,
		},
		{
			// partial: fields 3-5 not answered
			ID:           "response_3",
			FormID:       SampleGeneralFormID,
			PatientName:  "Ravi Patel",
			PatientEmail: "ravi.patel@email.com",
			Answers: map[string]any{
				"field_1": "Ravi Patel",
				"field_2": "ravi.patel@email.com",
			},
			Status:      models.ResponsePartial,
			SubmittedAt: now.Add(-3 * day),
			OwnerID:     ownerID,
		},
	}
}
