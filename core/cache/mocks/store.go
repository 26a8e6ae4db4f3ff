package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of cache.Store
type Store struct {
	mock.Mock
}

func (m *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *Store) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *Store) Delete(ctx context.Context, keys ...string) error {
	callArgs := make([]interface{}, 0, len(keys)+1)
	callArgs = append(callArgs, ctx)
	for _, k := range keys {
		callArgs = append(callArgs, k)
	}
	args := m.Called(callArgs...)
	return args.Error(0)
}

func (m *Store) DeleteByPattern(ctx context.Context, patterns ...string) error {
	callArgs := make([]interface{}, 0, len(patterns)+1)
	callArgs = append(callArgs, ctx)
	for _, p := range patterns {
		callArgs = append(callArgs, p)
	}
	args := m.Called(callArgs...)
	return args.Error(0)
}
