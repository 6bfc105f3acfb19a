package utils

import (
	"errors"
	"fmt"
	"strings"

	"Backend-Medical-Intake/src/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(formFieldRules, models.FormField{})
	v.RegisterStructValidation(formRules, models.Form{})
	return v
}

// choice fields need at least one non-blank option
func formFieldRules(sl validator.StructLevel) {
	field := sl.Current().Interface().(models.FormField)
	if !field.Type.HasOptions() {
		return
	}
	for _, o := range field.Options {
		if strings.TrimSpace(o) != "" {
			return
		}
	}
	sl.ReportError(field.Options, "Options", "options", "options_required", string(field.Type))
}

// field ids are unique within a form
func formRules(sl validator.StructLevel) {
	form := sl.Current().Interface().(models.Form)
	seen := make(map[string]bool, len(form.Fields))
	for _, f := range form.Fields {
		if f.ID == "" {
			continue
		}
		if seen[f.ID] {
			sl.ReportError(form.Fields, "Fields", "fields", "unique_field_id", f.ID)
			return
		}
		seen[f.ID] = true
	}
}

// ValidateStruct runs tag and struct-level rules and flattens the result
// into one readable error.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Namespace())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Namespace(), fe.Param())
	case "options_required":
		return fmt.Sprintf("%s: %s fields need at least one option", fe.Namespace(), fe.Param())
	case "unique_field_id":
		return fmt.Sprintf("duplicate field id %q", fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Namespace())
	}
	return fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag())
}
