package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Keyed is implemented by every record type kept in a Collection.
type Keyed interface {
	RecordID() string
	// StampNew assigns the generated identifier and creation time.
	StampNew(id string, at time.Time)
}

// touchable records carry an update timestamp refreshed on every Update.
type touchable interface {
	Touch(at time.Time)
}

// Collection gives typed CRUD access to one slot. Instantiate with a pointer
// record type, e.g. Collection[*models.Room].
//
// Every mutation is a read-modify-write of the whole slot, serialized by a
// mutex within this process. Two processes sharing one slot table still race
// as last-writer-wins per collection; that is a known limitation, not a bug
// to fix here.
type Collection[T Keyed] struct {
	backend Backend
	key     string
	mu      sync.Mutex
}

func NewCollection[T Keyed](backend Backend, key string) *Collection[T] {
	return &Collection[T]{backend: backend, key: key}
}

func (c *Collection[T]) Key() string { return c.key }

// Exists reports whether the slot has ever been written. Used as the seed
// marker.
func (c *Collection[T]) Exists() (bool, error) {
	_, ok, err := c.backend.Get(c.key)
	return ok, err
}

// All returns every record in the collection. A missing or unparsable slot
// reads as empty: this store favors availability over strictness and is not
// a system of record.
func (c *Collection[T]) All() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Get returns the record with the given id, or false on a miss.
func (c *Collection[T]) Get(id string) (T, bool, error) {
	var zero T
	items, err := c.All()
	if err != nil {
		return zero, false, err
	}
	for _, it := range items {
		if it.RecordID() == id {
			return it, true, nil
		}
	}
	return zero, false, nil
}

// Find returns the records matching pred, in stored order.
func (c *Collection[T]) Find(pred func(T) bool) ([]T, error) {
	items, err := c.All()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

// Create assigns a fresh identifier, stamps the creation time, appends and
// persists. Returns the stored record.
func (c *Collection[T]) Create(rec T) (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return zero, err
	}
	rec.StampNew(uuid.NewString(), time.Now().UTC())
	items = append(items, rec)
	if err := c.save(items); err != nil {
		return zero, err
	}
	return rec, nil
}

// Update merges partial fields shallowly into the record with the given id
// and persists the collection. A miss returns false without touching the
// slot. The identifier and creation timestamp cannot be overwritten.
func (c *Collection[T]) Update(id string, partial map[string]any) (T, bool, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return zero, false, err
	}
	idx := -1
	for i, it := range items {
		if it.RecordID() == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return zero, false, nil
	}

	raw, err := json.Marshal(items[idx])
	if err != nil {
		return zero, false, err
	}
	var merged map[string]any
	if err := json.Unmarshal(raw, &merged); err != nil {
		return zero, false, err
	}
	for k, v := range partial {
		if k == "id" || k == "createdAt" {
			continue
		}
		merged[k] = v
	}
	out, err := json.Marshal(merged)
	if err != nil {
		return zero, false, err
	}
	var rec T
	if err := json.Unmarshal(out, &rec); err != nil {
		return zero, false, err
	}
	if t, ok := any(rec).(touchable); ok {
		t.Touch(time.Now().UTC())
	}
	items[idx] = rec
	if err := c.save(items); err != nil {
		return zero, false, err
	}
	return rec, true, nil
}

// Delete removes the record with the given id. Returns whether a record was
// actually removed.
func (c *Collection[T]) Delete(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return false, err
	}
	kept := items[:0]
	removed := false
	for _, it := range items {
		if it.RecordID() == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return false, nil
	}
	if err := c.save(kept); err != nil {
		return false, err
	}
	return true, nil
}

// Replace overwrites the whole collection. Seeding uses this to install the
// demo rows (an empty list still marks the slot as present).
func (c *Collection[T]) Replace(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if items == nil {
		items = []T{}
	}
	return c.save(items)
}

func (c *Collection[T]) load() ([]T, error) {
	raw, ok, err := c.backend.Get(c.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) save(items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.backend.Set(c.key, raw)
}
