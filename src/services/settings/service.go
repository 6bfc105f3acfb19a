package settings

import (
	"context"

	"Backend-Medical-Intake/src/logger"
	"Backend-Medical-Intake/src/models"
	"Backend-Medical-Intake/src/services/ledger"
)

const keyPrefix = "medical-settings:"

// Service keeps clinic settings per owner in the ledger's preference space.
type Service struct {
	ledger *ledger.Ledger
}

func NewService(l *ledger.Ledger) *Service {
	return &Service{ledger: l}
}

// Get returns the stored settings, or the defaults when none are stored or
// the stored value cannot be read.
func (s *Service) Get(ctx context.Context, ownerID string) models.ClinicSettings {
	settings := models.DefaultClinicSettings()
	ok, err := s.ledger.GetPreference(ctx, keyPrefix+ownerID, &settings)
	if err != nil {
		logger.WithError(err).Warn("⚠️ Stored settings unreadable, using defaults")
		return models.DefaultClinicSettings()
	}
	if !ok {
		return models.DefaultClinicSettings()
	}
	return settings
}

// Save stores settings as given. Callers validate first.
func (s *Service) Save(ctx context.Context, ownerID string, settings models.ClinicSettings) error {
	return s.ledger.SetPreference(ctx, keyPrefix+ownerID, settings)
}
