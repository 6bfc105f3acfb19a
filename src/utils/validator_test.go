package utils

import (
	"testing"

	"Backend-Medical-Intake/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() models.Form {
	return models.Form{
		Title: "Intake",
		Fields: models.Fields{
			{ID: "field_1", Type: models.FieldText, Label: "Name"},
			{ID: "field_2", Type: models.FieldSelect, Label: "Visit", Options: []string{"Check-up"}},
		},
	}
}

func TestValidateForm(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validForm()))
	})

	t.Run("MissingTitle", func(t *testing.T) {
		f := validForm()
		f.Title = ""
		err := ValidateStruct(f)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Form.Title is required")
	})

	t.Run("UnknownFieldType", func(t *testing.T) {
		f := validForm()
		f.Fields[0].Type = "signature"
		err := ValidateStruct(f)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be one of")
	})

	t.Run("ChoiceWithoutOptions", func(t *testing.T) {
		f := validForm()
		f.Fields[1].Options = []string{"  "}
		err := ValidateStruct(f)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "select fields need at least one option")
	})

	t.Run("DuplicateFieldIDs", func(t *testing.T) {
		f := validForm()
		f.Fields[1].ID = "field_1"
		err := ValidateStruct(f)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `duplicate field id "field_1"`)
	})

	t.Run("BadStatus", func(t *testing.T) {
		f := validForm()
		f.Status = "archived"
		assert.Error(t, ValidateStruct(f))
	})
}

func TestValidateSettings(t *testing.T) {
	s := models.DefaultClinicSettings()
	assert.NoError(t, ValidateStruct(s))

	s.DataRetention = "forever"
	assert.Error(t, ValidateStruct(s))

	s = models.DefaultClinicSettings()
	s.ClinicEmail = "not-an-email"
	err := ValidateStruct(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a valid email")
}
