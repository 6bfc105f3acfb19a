package formstore

import (
	"context"
	"sort"
	"strings"

	"Backend-Medical-Intake/src/database"
	"Backend-Medical-Intake/src/logger"
	"Backend-Medical-Intake/src/models"
)

// ListResponses returns one page of the owner's responses, newest first,
// filtered by q. Same remote-then-ledger policy as ListByOwner.
func (s *Store) ListResponses(ctx context.Context, ownerID string, q models.ResponseQuery) (*models.PaginatedResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q.Normalize()

	all := s.ownedResponses(ctx, ownerID, q.FormID)

	search := strings.ToLower(strings.TrimSpace(q.Search))
	filtered := make([]models.Response, 0, len(all))
	for _, r := range all {
		if q.Status != "" && q.Status != "all" && string(r.Status) != q.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.PatientName), search) &&
			!strings.Contains(strings.ToLower(r.PatientEmail), search) {
			continue
		}
		filtered = append(filtered, r)
	}

	start := int(q.GetSkip())
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + q.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return models.NewPaginatedResponse(filtered[start:end], int64(len(filtered)), q.PaginationParams), nil
}

// DeleteResponse removes one of the owner's responses. Unknown ids and ids
// owned by someone else are ignored.
func (s *Store) DeleteResponse(ctx context.Context, ownerID, id string) error {
	lctx, cancel := localCtx(ctx)
	defer cancel()

	if s.responses != nil && s.remoteAvailable(ctx) {
		rctx, rcancel := s.remoteCtx(ctx)
		found, err := s.responses.List(rctx, database.ListOptions{
			Where: map[string]any{"id": id, "ownerId": ownerID},
			Limit: 1,
		})
		if err == nil && len(found) > 0 {
			err = s.responses.Delete(rctx, id)
		}
		rcancel()
		if err == nil {
			// same as Delete: drop any copy stored while offline
			if lerr := s.deleteLocalResponse(lctx, ownerID, id); lerr != nil {
				logger.WithError(lerr).Warn("⚠️ Could not remove local copy of deleted response")
			}
			return nil
		}
		logger.WithError(err).Warn("⚠️ Database delete failed, updating local storage")
	}

	return s.deleteLocalResponse(lctx, ownerID, id)
}

func (s *Store) deleteLocalResponse(ctx context.Context, ownerID, id string) error {
	for _, r := range s.ledger.ListResponses(ctx) {
		if r.ID == id && r.OwnerID == ownerID {
			return s.ledger.DeleteResponse(ctx, id)
		}
	}
	return nil
}

func (s *Store) ownedResponses(ctx context.Context, ownerID, formID string) []models.Response {
	var responses []models.Response
	served := false

	if s.responses != nil && s.remoteAvailable(ctx) {
		where := map[string]any{"ownerId": ownerID}
		if formID != "" {
			where["formId"] = formID
		}
		rctx, cancel := s.remoteCtx(ctx)
		found, err := s.responses.List(rctx, database.ListOptions{
			Where:   where,
			OrderBy: []database.SortField{{Field: "submittedAt", Desc: true}},
		})
		cancel()
		if err != nil {
			logger.WithError(err).Warn("⚠️ Database query failed, falling back to local storage")
		} else {
			responses, served = found, true
		}
	}

	if !served {
		lctx, cancel := localCtx(ctx)
		defer cancel()
		if err := s.ledger.SeedIfEmpty(lctx, ownerID); err != nil {
			logger.WithError(err).Error("❌ Could not seed sample data")
		}
		responses = s.ledger.ListResponses(lctx)
	}

	owned := make([]models.Response, 0, len(responses))
	for _, r := range responses {
		if r.OwnerID != ownerID || (formID != "" && r.FormID != formID) {
			continue
		}
		if r.Answers == nil {
			r.Answers = map[string]any{}
		}
		owned = append(owned, r)
	}
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].SubmittedAt.After(owned[j].SubmittedAt)
	})
	return owned
}
