package services

import (
	"context"
	"path/filepath"
	"testing"

	appConfig "github.com/kendall-kelly/renovation-manager-api/config"
	"github.com/kendall-kelly/renovation-manager-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseKVStore runs the contract every backend must satisfy
func exerciseKVStore(t *testing.T, store KVStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Put(ctx, "projects", []byte(`[1]`)))
	require.NoError(t, store.Put(ctx, "projects", []byte(`[1,2]`)))
	data, err := store.Get(ctx, "projects")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(data))

	require.NoError(t, store.Delete(ctx, "projects"))
	_, err = store.Get(ctx, "projects")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.NoError(t, store.Delete(ctx, "never-written"))
}

func TestMemoryKVStore(t *testing.T) {
	store := NewMemoryKVStore()
	exerciseKVStore(t, store)
	assert.Equal(t, "memory", store.Name())
}

func TestMemoryKVStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryKVStore()

	value := []byte("abc")
	require.NoError(t, store.Put(ctx, "k", value))
	value[0] = 'X'

	got, _ := store.Get(ctx, "k")
	assert.Equal(t, "abc", string(got))
	got[1] = 'Y'
	again, _ := store.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestWithKeyPrefix(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryKVStore()

	assert.Same(t, inner, WithKeyPrefix(inner, ""))

	prefixed := WithKeyPrefix(inner, "tenant-a/")
	exerciseKVStore(t, prefixed)
	require.NoError(t, prefixed.Put(ctx, KeySuppliers, []byte(`[]`)))
	assert.Equal(t, []string{"tenant-a/suppliers"}, inner.Keys())
	assert.Equal(t, "memory", prefixed.Name())
}

func TestS3KVStore(t *testing.T) {
	ctx := context.Background()
	bucket := NewMockS3Service()
	store := NewS3KVStore(bucket, "store/")

	exerciseKVStore(t, store)
	assert.Equal(t, "s3", store.Name())

	require.NoError(t, store.Put(ctx, KeyProjects, []byte(`[]`)))
	assert.True(t, bucket.FileExists("store/projects.json"))
}

func TestDatabaseKVStore(t *testing.T) {
	db, err := appConfig.ConnectDatabase(&appConfig.Config{
		GoEnv:          "test",
		DatabaseDriver: appConfig.DriverSQLite,
		DatabaseURL:    filepath.Join(t.TempDir(), "kv.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	store := NewDatabaseKVStore(db)
	exerciseKVStore(t, store)
	assert.Equal(t, "database/sqlite", store.Name())

	// a whole store round-trips through the table
	ctx := context.Background()
	first := NewStore(store)
	_, err = first.Suppliers.Commit(ctx, func(current []models.Supplier) ([]models.Supplier, error) {
		return current[:3], nil
	})
	require.NoError(t, err)

	second := NewStore(store)
	assert.Len(t, second.Suppliers.All(), 3)
}
