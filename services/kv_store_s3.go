package services

import (
	"context"
	"errors"
)

// S3KVStore persists each key as a JSON object under a bucket prefix
type S3KVStore struct {
	s3     S3Interface
	prefix string
}

// NewS3KVStore creates a store writing objects to {prefix}{key}.json
func NewS3KVStore(s3 S3Interface, prefix string) *S3KVStore {
	return &S3KVStore{s3: s3, prefix: prefix}
}

func (s *S3KVStore) objectKey(key string) string {
	return s.prefix + key + ".json"
}

// Get downloads the object stored for key
func (s *S3KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	body, err := s.s3.GetObject(ctx, s.objectKey(key))
	if errors.Is(err, ErrObjectNotFound) {
		return nil, ErrKeyNotFound
	}
	return body, err
}

// Put uploads value as the object for key
func (s *S3KVStore) Put(ctx context.Context, key string, value []byte) error {
	return s.s3.PutObject(ctx, s.objectKey(key), value, "application/json")
}

// Delete removes the object for key
func (s *S3KVStore) Delete(ctx context.Context, key string) error {
	return s.s3.DeleteFile(ctx, s.objectKey(key))
}

// Name returns "s3"
func (s *S3KVStore) Name() string {
	return "s3"
}
