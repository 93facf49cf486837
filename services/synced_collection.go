package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/kendall-kelly/renovation-manager-api/models"
)

// errDegraded marks commits skipped because an earlier write to the same key failed
var errDegraded = errors.New("durable store unavailable, keeping changes in memory for this session")

type collectionState int

const (
	stateUninitialized collectionState = iota
	stateHydrated
)

func (s collectionState) String() string {
	if s == stateHydrated {
		return "hydrated"
	}
	return "uninitialized"
}

// CollectionStatus reports how a collection was hydrated and whether writes still reach the store
type CollectionStatus struct {
	Key       string `json:"key"`
	State     string `json:"state"`
	Source    string `json:"source"`
	Degraded  bool   `json:"degraded"`
	LastError string `json:"lastError,omitempty"`
}

// syncedCollection is one durable collection: a value hydrated once from a
// KVStore key and rewritten in full on every commit. Readers always see
// either the previous or the next value, never a partial update.
type syncedCollection[T any] struct {
	key       string
	store     KVStore
	seed      func() T
	clone     func(T) T
	normalize func(T) T

	mu        sync.RWMutex
	state     collectionState
	source    string
	degraded  bool
	lastError error
	value     T
}

func newSyncedCollection[T any](key string, store KVStore, seed func() T, clone func(T) T) *syncedCollection[T] {
	return &syncedCollection[T]{
		key:   key,
		store: store,
		seed:  seed,
		clone: clone,
	}
}

// Hydrate loads the stored value, falling back to the seed when the key is
// absent or its payload cannot be decoded. A read or decode failure is
// returned as a *models.PersistenceError warning; the collection is usable
// either way. Calls after the first are no-ops.
func (c *syncedCollection[T]) Hydrate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hydrateLocked(ctx)
}

func (c *syncedCollection[T]) hydrateLocked(ctx context.Context) error {
	if c.state == stateHydrated {
		return nil
	}
	c.state = stateHydrated

	data, err := c.store.Get(ctx, c.key)
	if errors.Is(err, ErrKeyNotFound) {
		c.useSeed()
		return nil
	}
	if err != nil {
		return c.fallBack("read", err)
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return c.fallBack("decode", err)
	}
	if c.normalize != nil {
		value = c.normalize(value)
	}
	c.value = value
	c.source = "store"
	return nil
}

func (c *syncedCollection[T]) useSeed() {
	c.value = c.seed()
	c.source = "seed"
}

func (c *syncedCollection[T]) fallBack(op string, err error) error {
	perr := &models.PersistenceError{Key: c.key, Op: op, Err: err}
	log.Printf("warning: %v; falling back to seed data", perr)
	c.lastError = perr
	c.useSeed()
	return perr
}

// ensureHydrated hydrates lazily for callers that skipped Hydrate
func (c *syncedCollection[T]) ensureHydrated() {
	c.mu.RLock()
	ready := c.state == stateHydrated
	c.mu.RUnlock()
	if !ready {
		_ = c.Hydrate(context.Background())
	}
}

// Get returns a deep copy of the published value
func (c *syncedCollection[T]) Get() T {
	c.ensureHydrated()

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clone(c.value)
}

// Commit computes the next value from the current one, writes the whole
// collection to the store and publishes it. When fn fails nothing changes.
// When the write fails the next value is still published, the collection
// stops writing for the rest of the session, and a *models.PersistenceError
// is returned together with the committed value.
func (c *syncedCollection[T]) Commit(ctx context.Context, fn func(current T) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.hydrateLocked(ctx)

	next, err := fn(c.clone(c.value))
	if err != nil {
		var zero T
		return zero, err
	}

	data, err := json.Marshal(next)
	if err != nil {
		var zero T
		return zero, &models.PersistenceError{Key: c.key, Op: "encode", Err: err}
	}

	c.value = next
	if c.degraded {
		return c.clone(next), &models.PersistenceError{Key: c.key, Op: "write", Err: errDegraded}
	}

	if err := c.store.Put(ctx, c.key, data); err != nil {
		perr := &models.PersistenceError{Key: c.key, Op: "write", Err: err}
		log.Printf("warning: %v; continuing in memory only", perr)
		c.degraded = true
		c.lastError = perr
		return c.clone(next), perr
	}
	return c.clone(next), nil
}

// Status reports the collection's hydration source and write health
func (c *syncedCollection[T]) Status() CollectionStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	status := CollectionStatus{
		Key:      c.key,
		State:    c.state.String(),
		Source:   c.source,
		Degraded: c.degraded,
	}
	if c.lastError != nil {
		status.LastError = c.lastError.Error()
	}
	return status
}
