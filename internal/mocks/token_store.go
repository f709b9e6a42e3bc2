package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/store"
)

// MockTokenStore implements store.TokenStore for testing.
type MockTokenStore struct {
	mu sync.Mutex

	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, token *domain.AuthToken) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.AuthToken, error)
	DeleteFn        func(ctx context.Context, id uuid.UUID) error
	DeleteExpiredFn func(ctx context.Context) (int64, error)

	// Data for default implementation
	Tokens map[uuid.UUID]*domain.AuthToken
}

// NewMockTokenStore creates a new mock store with initialized defaults.
func NewMockTokenStore() *MockTokenStore {
	return &MockTokenStore{
		Tokens: make(map[uuid.UUID]*domain.AuthToken),
	}
}

var _ store.TokenStore = (*MockTokenStore)(nil)

// Create implements the TokenStore interface.
func (m *MockTokenStore) Create(ctx context.Context, token *domain.AuthToken) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, token)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *token
	m.Tokens[token.ID] = &copied
	return nil
}

// GetByID implements the TokenStore interface.
func (m *MockTokenStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuthToken, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	token, exists := m.Tokens[id]
	if !exists {
		return nil, store.ErrTokenNotFound
	}

	copied := *token
	return &copied, nil
}

// Delete implements the TokenStore interface.
func (m *MockTokenStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Tokens[id]; !exists {
		return store.ErrTokenNotFound
	}

	delete(m.Tokens, id)
	return nil
}

// DeleteExpired implements the TokenStore interface.
func (m *MockTokenStore) DeleteExpired(ctx context.Context) (int64, error) {
	if m.DeleteExpiredFn != nil {
		return m.DeleteExpiredFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	var removed int64
	for id, token := range m.Tokens {
		if token.ExpiresAt.Before(now) {
			delete(m.Tokens, id)
			removed++
		}
	}
	return removed, nil
}
