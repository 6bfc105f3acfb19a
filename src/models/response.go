package models

import "time"

type ResponseStatus string

const (
	ResponseCompleted ResponseStatus = "completed"
	ResponsePartial   ResponseStatus = "partial"
	ResponsePending   ResponseStatus = "pending"
)

// Response is a patient's submission against a form. Answers are keyed by
// FormField.ID.
type Response struct {
	ID           string         `bson:"_id,omitempty" json:"id,omitempty"`
	FormID       string         `bson:"formId" json:"formId"`
	PatientName  string         `bson:"patientName" json:"patientName"`
	PatientEmail string         `bson:"patientEmail" json:"patientEmail"`
	Answers      map[string]any `bson:"answers" json:"answers"`
	Status       ResponseStatus `bson:"status" json:"status"`
	SubmittedAt  time.Time      `bson:"submittedAt" json:"submittedAt"`
	OwnerID      string         `bson:"ownerId" json:"ownerId"`
}

// ResponseQuery filters the responses table.
type ResponseQuery struct {
	PaginationParams
	Status string `json:"status" query:"status" example:"all"`
	FormID string `json:"formId" query:"formId"`
}
