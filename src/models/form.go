package models

import (
	"time"
)

type FormStatus string

const (
	FormDraft     FormStatus = "draft"
	FormPublished FormStatus = "published"
)

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldRadio    FieldType = "radio"
	FieldCheckbox FieldType = "checkbox"
	FieldDate     FieldType = "date"
	FieldEmail    FieldType = "email"
	FieldPhone    FieldType = "phone"
	FieldNumber   FieldType = "number"
)

// HasOptions reports whether the field type renders a list of choices.
func (t FieldType) HasOptions() bool {
	return t == FieldSelect || t == FieldRadio || t == FieldCheckbox
}

// TextLike reports whether a placeholder means anything for the type.
func (t FieldType) TextLike() bool {
	switch t {
	case FieldText, FieldTextarea, FieldEmail, FieldPhone, FieldNumber, FieldDate:
		return true
	}
	return false
}

// --- Form ---
type Form struct {
	ID            string     `bson:"_id,omitempty" json:"id,omitempty"`
	Title         string     `bson:"title" json:"title" validate:"required,max=200"`
	Description   string     `bson:"description" json:"description" validate:"max=2000"`
	Fields        Fields     `bson:"fields" json:"fields" validate:"dive"`
	Status        FormStatus `bson:"status" json:"status" validate:"omitempty,oneof=draft published"`
	ResponseCount int        `bson:"responseCount" json:"responseCount" validate:"gte=0"`
	OwnerID       string     `bson:"ownerId" json:"ownerId"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// --- FormField ---
type FormField struct {
	ID          string    `bson:"id" json:"id"`
	Type        FieldType `bson:"type" json:"type" validate:"required,oneof=text textarea select radio checkbox date email phone number"`
	Label       string    `bson:"label" json:"label" validate:"required,max=300"`
	Placeholder string    `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
	Required    bool      `bson:"required" json:"required"`
	Options     []string  `bson:"options,omitempty" json:"options,omitempty"`
}

// FormInput is the body accepted when creating or updating a form. Owner and
// timestamps are never taken from the client. Nil pointers are absent keys,
// so an update can tell a missing description from a cleared one.
type FormInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Fields      Fields     `json:"fields"`
	Status      FormStatus `json:"status"`
}

// DashboardSummary counts an owner's forms for the dashboard cards.
type DashboardSummary struct {
	TotalForms     int    `json:"totalForms"`
	PublishedForms int    `json:"publishedForms"`
	DraftForms     int    `json:"draftForms"`
	TotalResponses int    `json:"totalResponses"`
	RecentForms    []Form `json:"recentForms"`
}
