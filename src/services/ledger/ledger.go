package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"Backend-Medical-Intake/src/logger"
	"Backend-Medical-Intake/src/models"
)

// Fixed keys of the two record blobs.
const (
	FormsKey     = "medical-forms"
	ResponsesKey = "medical-responses"
)

// StorageError is returned when a local write fails. There is nothing left
// to fall back to, so callers surface it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s locally: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Ledger is the local substitute for the remote forms and responses
// collections. Each collection is one JSON array under a fixed key; every
// mutation rewrites the whole array. Lookups scan in memory, which is fine
// for the dozens of records a single clinic keeps here.
type Ledger struct {
	storage Storage
	now     func() time.Time

	// Serializes read-modify-write within this process. Writers in other
	// processes sharing the storage still race (last writer wins).
	mu sync.Mutex
}

func New(storage Storage) *Ledger {
	return &Ledger{storage: storage, now: time.Now}
}

// WithClock overrides the clock used for sample data timestamps.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// ListForms returns every stored form. Read or decode failures are logged
// and yield an empty list.
func (l *Ledger) ListForms(ctx context.Context) []models.Form {
	forms, err := readList[models.Form](ctx, l.storage, FormsKey)
	if err != nil {
		logger.WithError(err).Error("❌ Error reading forms from local storage")
		return []models.Form{}
	}
	return forms
}

func (l *Ledger) ListResponses(ctx context.Context) []models.Response {
	responses, err := readList[models.Response](ctx, l.storage, ResponsesKey)
	if err != nil {
		logger.WithError(err).Error("❌ Error reading responses from local storage")
		return []models.Response{}
	}
	return responses
}

func (l *Ledger) GetForm(ctx context.Context, id string) (models.Form, bool) {
	for _, f := range l.ListForms(ctx) {
		if f.ID == id {
			return f, true
		}
	}
	return models.Form{}, false
}

// SaveForm inserts or replaces the form with the same id.
func (l *Ledger) SaveForm(ctx context.Context, form models.Form) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	forms, err := l.loadForWrite(ctx, FormsKey, "save form")
	if err != nil {
		return err
	}
	list, err := decodeList[models.Form](forms)
	if err != nil {
		logger.WithError(err).Warn("⚠️ Local forms unreadable, starting a new list")
		list = []models.Form{}
	}

	replaced := false
	for i := range list {
		if list[i].ID == form.ID {
			list[i] = form
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, form)
	}
	return l.write(ctx, FormsKey, list, "save form")
}

// DeleteForm removes id. A missing id leaves storage untouched.
func (l *Ledger) DeleteForm(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	raw, err := l.loadForWrite(ctx, FormsKey, "delete form")
	if err != nil {
		return err
	}
	list, err := decodeList[models.Form](raw)
	if err != nil {
		logger.WithError(err).Warn("⚠️ Local forms unreadable, nothing to delete")
		return nil
	}

	kept := make([]models.Form, 0, len(list))
	for _, f := range list {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	return l.write(ctx, FormsKey, kept, "delete form")
}

func (l *Ledger) DeleteResponse(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	raw, err := l.loadForWrite(ctx, ResponsesKey, "delete response")
	if err != nil {
		return err
	}
	list, err := decodeList[models.Response](raw)
	if err != nil {
		logger.WithError(err).Warn("⚠️ Local responses unreadable, nothing to delete")
		return nil
	}

	kept := make([]models.Response, 0, len(list))
	for _, r := range list {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	return l.write(ctx, ResponsesKey, kept, "delete response")
}

// SeedIfEmpty writes the sample forms when no forms are stored and, as a
// separate decision, the sample responses when no responses are stored.
// Calling it again once data exists does nothing. A failed read seeds
// nothing and returns the error; only a missing or empty list counts as
// empty. An undecodable list is replaced, as SaveForm would.
func (l *Ledger) SeedIfEmpty(ctx context.Context, ownerID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	empty, err := listIsEmpty[models.Form](ctx, l.storage, FormsKey, "seed forms")
	if err != nil {
		return err
	}
	if empty {
		if err := l.write(ctx, FormsKey, sampleForms(ownerID, now), "seed forms"); err != nil {
			return err
		}
		logger.WithField("ownerId", ownerID).Info("🌱 Seeded sample forms")
	}

	empty, err = listIsEmpty[models.Response](ctx, l.storage, ResponsesKey, "seed responses")
	if err != nil {
		return err
	}
	if empty {
		if err := l.write(ctx, ResponsesKey, sampleResponses(ownerID, now), "seed responses"); err != nil {
			return err
		}
		logger.WithField("ownerId", ownerID).Info("🌱 Seeded sample responses")
	}
	return nil
}

// GetPreference decodes the JSON value stored under key into v.
func (l *Ledger) GetPreference(ctx context.Context, key string, v any) (bool, error) {
	raw, ok, err := l.storage.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

func (l *Ledger) SetPreference(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := l.storage.Set(ctx, key, string(b)); err != nil {
		return &StorageError{Op: "save " + key, Err: err}
	}
	return nil
}

func (l *Ledger) loadForWrite(ctx context.Context, key, op string) (string, error) {
	raw, _, err := l.storage.Get(ctx, key)
	if err != nil {
		return "", &StorageError{Op: op, Err: err}
	}
	return raw, nil
}

func (l *Ledger) write(ctx context.Context, key string, v any, op string) error {
	b, err := json.Marshal(v)
	if err != nil {
		return &StorageError{Op: op, Err: err}
	}
	if err := l.storage.Set(ctx, key, string(b)); err != nil {
		logger.WithError(err).Errorf("❌ Error writing %s to local storage", key)
		return &StorageError{Op: op, Err: err}
	}
	return nil
}

func readList[T any](ctx context.Context, s Storage, key string) ([]T, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	return decodeList[T](raw)
}

func listIsEmpty[T any](ctx context.Context, s Storage, key, op string) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, &StorageError{Op: op, Err: err}
	}
	if !ok {
		return true, nil
	}
	list, err := decodeList[T](raw)
	if err != nil {
		logger.WithError(err).Warnf("⚠️ Local %s unreadable, replacing with samples", key)
		return true, nil
	}
	return len(list) == 0, nil
}

func decodeList[T any](raw string) ([]T, error) {
	list := []T{}
	if raw == "" {
		return list, nil
	}
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}
