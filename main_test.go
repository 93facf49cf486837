package main

import (
	"testing"

	"github.com/kendall-kelly/renovation-manager-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKVStore_Memory(t *testing.T) {
	store, err := newKVStore(&config.Config{StoreBackend: config.StoreBackendMemory}, nil)
	require.NoError(t, err)
	assert.Equal(t, "memory", store.Name())
}

func TestNewKVStore_SQLite(t *testing.T) {
	cfg := &config.Config{
		GoEnv:          "test",
		StoreBackend:   config.StoreBackendDatabase,
		DatabaseDriver: config.DriverSQLite,
		DatabaseURL:    "file::memory:",
	}

	store, err := newKVStore(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "database/sqlite", store.Name())
}

func TestNewKVStore_UnknownBackend(t *testing.T) {
	_, err := newKVStore(&config.Config{StoreBackend: "redis"}, nil)
	assert.Error(t, err)
}
