// Package testutil holds in-memory stand-ins for the remote database and the
// ledger storage, shared by package tests.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"Backend-Medical-Intake/src/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotProvisioned is what a database without the collection returns.
var ErrNotProvisioned = &database.Error{
	Kind: database.KindNotProvisioned,
	Op:   "list forms",
	Err:  errors.New("(NamespaceNotFound) 404 collection not found"),
}

// MemoryCollection implements database.Collection[T] over BSON documents, so
// records take the same encode/decode path they would against MongoDB.
// Setting Err makes every call fail with it.
type MemoryCollection[T any] struct {
	mu     sync.Mutex
	docs   []bson.M
	nextID int

	Err   error
	Calls int
}

func NewMemoryCollection[T any]() *MemoryCollection[T] {
	return &MemoryCollection[T]{}
}

// Fail makes every following call return err. Pass nil to recover.
func (m *MemoryCollection[T]) Fail(err error) {
	m.mu.Lock()
	m.Err = err
	m.mu.Unlock()
}

// InsertRaw stores a document as is, bypassing T's encoders.
func (m *MemoryCollection[T]) InsertRaw(doc bson.M) {
	m.mu.Lock()
	m.docs = append(m.docs, doc)
	m.mu.Unlock()
}

// Raw returns the stored document for id, or nil.
func (m *MemoryCollection[T]) Raw(id string) bson.M {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexOf(id); i >= 0 {
		return m.docs[i]
	}
	return nil
}

// Len is the number of stored documents.
func (m *MemoryCollection[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}

func (m *MemoryCollection[T]) List(_ context.Context, opts database.ListOptions) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}

	matched := []bson.M{}
	for _, d := range m.docs {
		if matches(d, opts.Where) {
			matched = append(matched, d)
		}
	}
	for i := len(opts.OrderBy) - 1; i >= 0; i-- {
		s := opts.OrderBy[i]
		sort.SliceStable(matched, func(a, b int) bool {
			less := lessValue(matched[a][s.Field], matched[b][s.Field])
			if s.Desc {
				return lessValue(matched[b][s.Field], matched[a][s.Field])
			}
			return less
		})
	}
	if opts.Limit > 0 && int64(len(matched)) > opts.Limit {
		matched = matched[:opts.Limit]
	}

	out := make([]T, 0, len(matched))
	for _, d := range matched {
		var v T
		if err := decode(d, &v); err != nil {
			return nil, database.Classify("list", err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (m *MemoryCollection[T]) Create(_ context.Context, doc T) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}

	d, err := encode(doc)
	if err != nil {
		return "", database.Classify("create", err)
	}
	id, _ := d["_id"].(string)
	if id == "" {
		m.nextID++
		id = fmt.Sprintf("doc_%d", m.nextID)
		d["_id"] = id
	}
	if m.indexOf(id) >= 0 {
		return "", database.Classify("create", fmt.Errorf("duplicate key %s", id))
	}
	m.docs = append(m.docs, d)
	return id, nil
}

func (m *MemoryCollection[T]) Update(_ context.Context, id string, doc T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return m.Err
	}

	d, err := encode(doc)
	if err != nil {
		return database.Classify("update", err)
	}
	d["_id"] = id
	if i := m.indexOf(id); i >= 0 {
		m.docs[i] = d
		return nil
	}
	m.docs = append(m.docs, d)
	return nil
}

func (m *MemoryCollection[T]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	if i := m.indexOf(id); i >= 0 {
		m.docs = append(m.docs[:i], m.docs[i+1:]...)
	}
	return nil
}

func (m *MemoryCollection[T]) indexOf(id string) int {
	for i, d := range m.docs {
		if d["_id"] == id {
			return i
		}
	}
	return -1
}

func matches(d bson.M, where map[string]any) bool {
	for k, v := range where {
		if k == "id" {
			k = "_id"
		}
		if d[k] != v {
			return false
		}
	}
	return true
}

func lessValue(a, b any) bool {
	switch av := a.(type) {
	case primitive.DateTime:
		bv, _ := b.(primitive.DateTime)
		return av < bv
	case time.Time:
		bv, _ := b.(time.Time)
		return av.Before(bv)
	case string:
		bv, _ := b.(string)
		return av < bv
	case int32:
		bv, _ := b.(int32)
		return av < bv
	case int64:
		bv, _ := b.(int64)
		return av < bv
	}
	return false
}

func encode(v any) (bson.M, error) {
	b, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var d bson.M
	if err := bson.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return d, nil
}

func decode(d bson.M, v any) error {
	b, err := bson.Marshal(d)
	if err != nil {
		return err
	}
	return bson.Unmarshal(b, v)
}
