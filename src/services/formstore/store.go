package formstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"Backend-Medical-Intake/src/database"
	"Backend-Medical-Intake/src/logger"
	"Backend-Medical-Intake/src/models"
	"Backend-Medical-Intake/src/services/availability"
	"Backend-Medical-Intake/src/services/ledger"

	"github.com/google/uuid"
)

var (
	ErrFormNotFound     = errors.New("form not found")
	ErrResponseNotFound = errors.New("response not found")
)

const DefaultListLimit = 10

// Bounds for each remote round-trip and each ledger call. The ledger runs
// detached from the caller's deadline so a hung remote call still leaves
// the fallback usable.
const (
	DefaultRemoteTimeout = 3 * time.Second
	localTimeout         = 5 * time.Second
)

// Store is the single entry point for form and response persistence. Every
// call probes the remote database on its own and falls back to the local
// ledger when the probe or the remote call fails; there is no sticky mode.
// Callers cannot tell which side served them.
//
// Concurrent saves to one record are last-writer-wins on either side.
type Store struct {
	probe     availability.Checker
	forms     database.Collection[models.Form]
	responses database.Collection[models.Response]
	ledger    *ledger.Ledger
	now       func() time.Time

	remoteTimeout time.Duration
}

// New wires a store. forms and responses may be nil when no remote database
// is configured; the store then always serves from the ledger.
func New(probe availability.Checker, forms database.Collection[models.Form], responses database.Collection[models.Response], l *ledger.Ledger) *Store {
	return &Store{
		probe:     probe,
		forms:     forms,
		responses: responses,
		ledger:    l,
		now:       time.Now,

		remoteTimeout: DefaultRemoteTimeout,
	}
}

func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// WithRemoteTimeout bounds the probe and every remote call.
func (s *Store) WithRemoteTimeout(d time.Duration) *Store {
	s.remoteTimeout = d
	return s
}

func (s *Store) remoteCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.remoteTimeout)
}

// localCtx keeps the caller's values but not its deadline or cancellation.
func localCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), localTimeout)
}

func (s *Store) remoteAvailable(ctx context.Context) bool {
	if s.forms == nil || s.probe == nil {
		return false
	}
	rctx, cancel := s.remoteCtx(ctx)
	defer cancel()
	return s.probe.CheckAvailability(rctx)
}

// Load returns the owner's form with the given id. A record missing from the
// remote database is looked up in the ledger before ErrFormNotFound.
func (s *Store) Load(ctx context.Context, ownerID, id string) (*models.Form, error) {
	if s.remoteAvailable(ctx) {
		rctx, cancel := s.remoteCtx(ctx)
		found, err := s.forms.List(rctx, database.ListOptions{
			Where: map[string]any{"id": id},
			Limit: 1,
		})
		cancel()
		if err != nil {
			logger.WithError(err).Warn("⚠️ Database unavailable, checking local storage")
		} else if len(found) > 0 {
			if found[0].OwnerID != ownerID {
				return nil, ErrFormNotFound
			}
			return normalizeForm(found[0]), nil
		}
	}

	lctx, cancel := localCtx(ctx)
	defer cancel()
	form, ok := s.ledger.GetForm(lctx, id)
	if !ok || form.OwnerID != ownerID {
		return nil, ErrFormNotFound
	}
	return normalizeForm(form), nil
}

// ListByOwner returns up to limit of the owner's forms, most recently
// updated first. The local path seeds sample data on first use.
func (s *Store) ListByOwner(ctx context.Context, ownerID string, limit int) ([]models.Form, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.listOwned(ctx, ownerID, limit)
}

// listOwned is ListByOwner where limit 0 means every form of the owner.
func (s *Store) listOwned(ctx context.Context, ownerID string, limit int) ([]models.Form, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var forms []models.Form
	served := false
	if s.remoteAvailable(ctx) {
		rctx, cancel := s.remoteCtx(ctx)
		found, err := s.forms.List(rctx, database.ListOptions{
			Where:   map[string]any{"ownerId": ownerID},
			OrderBy: []database.SortField{{Field: "updatedAt", Desc: true}},
			Limit:   int64(limit),
		})
		cancel()
		if err != nil {
			logger.WithError(err).Warn("⚠️ Database query failed, falling back to local storage")
		} else {
			forms, served = found, true
		}
	}

	if !served {
		lctx, cancel := localCtx(ctx)
		defer cancel()
		if err := s.ledger.SeedIfEmpty(lctx, ownerID); err != nil {
			logger.WithError(err).Error("❌ Could not seed sample data")
		}
		forms = s.ledger.ListForms(lctx)
	}

	owned := make([]models.Form, 0, len(forms))
	for _, f := range forms {
		if f.OwnerID == ownerID {
			owned = append(owned, *normalizeForm(f))
		}
	}
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].UpdatedAt.After(owned[j].UpdatedAt)
	})
	if limit > 0 && len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, nil
}

// Save stamps timestamps and writes the form, creating it when it has no id.
// The returned form carries the id assigned by whichever side stored it.
func (s *Store) Save(ctx context.Context, form models.Form) (*models.Form, error) {
	now := s.now().UTC()
	form.UpdatedAt = now
	if form.CreatedAt.IsZero() {
		form.CreatedAt = now
	}
	if form.Status == "" {
		form.Status = models.FormDraft
	}
	form.Fields = prepareFields(form.Fields)

	if s.remoteAvailable(ctx) {
		rctx, cancel := s.remoteCtx(ctx)
		var err error
		if form.ID == "" {
			var id string
			if id, err = s.forms.Create(rctx, form); err == nil {
				form.ID = id
			}
		} else {
			err = s.forms.Update(rctx, form.ID, form)
		}
		cancel()
		if err == nil {
			return &form, nil
		}
		logger.WithError(err).Warn("⚠️ Database unavailable, saving to local storage")
	}

	lctx, cancel := localCtx(ctx)
	defer cancel()
	if form.ID == "" {
		form.ID = s.localFormID(lctx, now)
	}
	if err := s.ledger.SaveForm(lctx, form); err != nil {
		return nil, err
	}
	return &form, nil
}

// Delete removes the form. Deleting an unknown id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	lctx, cancel := localCtx(ctx)
	defer cancel()

	if s.remoteAvailable(ctx) {
		rctx, rcancel := s.remoteCtx(ctx)
		err := s.forms.Delete(rctx, id)
		rcancel()
		if err == nil {
			// a copy saved while offline would otherwise resurface through Load
			if lerr := s.ledger.DeleteForm(lctx, id); lerr != nil {
				logger.WithError(lerr).Warn("⚠️ Could not remove local copy of deleted form")
			}
			return nil
		}
		logger.WithError(err).Warn("⚠️ Database delete failed, updating local storage")
	}
	return s.ledger.DeleteForm(lctx, id)
}

// localFormID returns form_<unix millis>, bumped until unused in the ledger.
func (s *Store) localFormID(ctx context.Context, now time.Time) string {
	ts := now.UnixMilli()
	for {
		id := fmt.Sprintf("form_%d", ts)
		if _, taken := s.ledger.GetForm(ctx, id); !taken {
			return id
		}
		ts++
	}
}

func normalizeForm(f models.Form) *models.Form {
	if f.Fields == nil {
		f.Fields = models.Fields{}
	}
	if f.Status == "" {
		f.Status = models.FormDraft
	}
	return &f
}

// prepareFields gives id-less fields an id and drops attributes that do not
// apply to the field type.
func prepareFields(fields models.Fields) models.Fields {
	out := make(models.Fields, 0, len(fields))
	for _, field := range fields {
		if field.ID == "" {
			field.ID = "field-" + uuid.NewString()
		}
		if !field.Type.HasOptions() {
			field.Options = nil
		}
		if !field.Type.TextLike() {
			field.Placeholder = ""
		}
		out = append(out, field)
	}
	return out
}
