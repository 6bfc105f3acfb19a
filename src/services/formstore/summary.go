package formstore

import (
	"context"

	"Backend-Medical-Intake/src/models"
)

// Summary counts every form of the owner for the dashboard. RecentForms
// holds the first DefaultListLimit of them.
func (s *Store) Summary(ctx context.Context, ownerID string) (*models.DashboardSummary, error) {
	forms, err := s.listOwned(ctx, ownerID, 0)
	if err != nil {
		return nil, err
	}

	sum := &models.DashboardSummary{TotalForms: len(forms)}
	for _, f := range forms {
		switch f.Status {
		case models.FormPublished:
			sum.PublishedForms++
		default:
			sum.DraftForms++
		}
		sum.TotalResponses += f.ResponseCount
	}

	recent := forms
	if len(recent) > DefaultListLimit {
		recent = recent[:DefaultListLimit]
	}
	sum.RecentForms = recent
	return sum, nil
}
