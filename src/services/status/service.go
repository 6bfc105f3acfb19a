package status

import (
	"context"

	"Backend-Medical-Intake/src/logger"
	"Backend-Medical-Intake/src/models"
	"Backend-Medical-Intake/src/services/availability"
	"Backend-Medical-Intake/src/services/ledger"
)

const dismissedPrefix = "db-banner-dismissed:"

// Service reports which storage mode is active and remembers whether the
// owner closed the local-storage banner.
type Service struct {
	probe  availability.Checker
	ledger *ledger.Ledger
}

func NewService(probe availability.Checker, l *ledger.Ledger) *Service {
	return &Service{probe: probe, ledger: l}
}

func (s *Service) Status(ctx context.Context, ownerID string) models.DatabaseStatus {
	available := s.probe != nil && s.probe.CheckAvailability(ctx)

	var dismissed bool
	if _, err := s.ledger.GetPreference(ctx, dismissedPrefix+ownerID, &dismissed); err != nil {
		logger.WithError(err).Warn("⚠️ Could not read banner preference")
	}

	st := models.DatabaseStatus{
		DatabaseAvailable: available,
		Mode:              models.ModeRemote,
		BannerDismissed:   dismissed,
	}
	if !available {
		st.Mode = models.ModeLocal
		st.ShowBanner = !dismissed
	}
	return st
}

func (s *Service) DismissBanner(ctx context.Context, ownerID string) error {
	return s.ledger.SetPreference(ctx, dismissedPrefix+ownerID, true)
}
