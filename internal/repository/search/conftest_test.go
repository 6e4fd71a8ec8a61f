package search

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/cdcp/search-api/internal/cache"
)

// mockSelecter implements the consumer interface for tests.
type mockSelecter struct {
	selectFn func(ctx context.Context, core string, params url.Values) ([]byte, error)
	calls    int
}

func (m *mockSelecter) Select(ctx context.Context, core string, params url.Values) ([]byte, error) {
	m.calls++
	if m.selectFn != nil {
		return m.selectFn(ctx, core, params)
	}
	return []byte(`{}`), nil
}

// mockStore is an in-memory cache store.
type mockStore struct {
	data   map[string][]byte
	getErr error
	setErr error
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string][]byte)}
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, cache.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockStore) SetWithTTL(_ context.Context, key string, value []byte, _ time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func newCachedRepo(inner selecter, s store) *CachedRepo {
	return NewCached(inner, s, time.Minute, nil, zap.NewNop())
}
