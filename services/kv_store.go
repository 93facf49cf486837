package services

import (
	"context"
	"errors"
)

// Well-known keys under which collections are persisted
const (
	KeyProjects     = "projects"
	KeySuppliers    = "suppliers"
	KeyCurrentUser  = "currentUser"
	KeyProfileImage = "profileImage"
	KeyUsers        = "users"
)

// ErrKeyNotFound is returned by a KVStore when nothing is stored under a key
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the durable key-value medium collections are flushed to.
// Values are opaque JSON documents; each Put replaces the whole value.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Name identifies the backend in status output and logs
	Name() string
}

// prefixedStore namespaces every key of an underlying store
type prefixedStore struct {
	KVStore
	prefix string
}

// WithKeyPrefix wraps store so every key is stored as prefix+key.
// An empty prefix returns store unchanged.
func WithKeyPrefix(store KVStore, prefix string) KVStore {
	if prefix == "" {
		return store
	}
	return &prefixedStore{KVStore: store, prefix: prefix}
}

func (p *prefixedStore) Get(ctx context.Context, key string) ([]byte, error) {
	return p.KVStore.Get(ctx, p.prefix+key)
}

func (p *prefixedStore) Put(ctx context.Context, key string, value []byte) error {
	return p.KVStore.Put(ctx, p.prefix+key, value)
}

func (p *prefixedStore) Delete(ctx context.Context, key string) error {
	return p.KVStore.Delete(ctx, p.prefix+key)
}
