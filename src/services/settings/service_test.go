package settings_test

import (
	"context"
	"testing"

	"Backend-Medical-Intake/src/models"
	"Backend-Medical-Intake/src/services/ledger"
	"Backend-Medical-Intake/src/services/settings"
	"Backend-Medical-Intake/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings(t *testing.T) {
	ctx := context.Background()
	svc := settings.NewService(ledger.New(ledger.NewMemoryStorage()))

	assert.Equal(t, models.DefaultClinicSettings(), svc.Get(ctx, "user-1"))

	custom := models.DefaultClinicSettings()
	custom.ClinicName = "Harbor Clinic"
	custom.DefaultFormTheme = "medical"
	require.NoError(t, svc.Save(ctx, "user-1", custom))

	assert.Equal(t, custom, svc.Get(ctx, "user-1"))
	assert.Equal(t, models.DefaultClinicSettings(), svc.Get(ctx, "user-2"))
}

func TestSettingsCorruptValue(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewBrokenStorage()
	s.Put("medical-settings:user-1", "{nope")

	svc := settings.NewService(ledger.New(s))
	assert.Equal(t, models.DefaultClinicSettings(), svc.Get(ctx, "user-1"))
}

func TestSettingsSaveFailure(t *testing.T) {
	s := testutil.NewBrokenStorage()
	s.FailWrites = true

	err := settings.NewService(ledger.New(s)).Save(context.Background(), "user-1", models.DefaultClinicSettings())
	var storageErr *ledger.StorageError
	assert.ErrorAs(t, err, &storageErr)
}
