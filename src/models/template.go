package models

// FormTemplate is a read-only starting point for a new form.
type FormTemplate struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Preview     string `json:"preview"`
	Fields      Fields `json:"fields"`
	FieldCount  int    `json:"fieldCount"`
}

type TemplateQuery struct {
	Search   string `query:"search"`
	Category string `query:"category" example:"All"`
}
