package mocks

import (
	"context"

	"github.com/google/uuid"

	"portfolio-cms/models"
)

// MockSessionProvider resolves tokens from a fixed table.
type MockSessionProvider struct {
	Sessions map[string]*models.Session
	Err      error
	Calls    int
}

func NewMockSessionProvider() *MockSessionProvider {
	return &MockSessionProvider{Sessions: make(map[string]*models.Session)}
}

func (m *MockSessionProvider) GetSession(ctx context.Context, token string) (*models.Session, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	session, ok := m.Sessions[token]
	if !ok {
		return nil, models.ErrorUnauthorized{Message: "session not found"}
	}
	return session, nil
}

// MockRoleLookup answers role checks from a user -> roles table.
type MockRoleLookup struct {
	Roles map[uuid.UUID][]string
	Err   error
	Calls int
}

func NewMockRoleLookup() *MockRoleLookup {
	return &MockRoleLookup{Roles: make(map[uuid.UUID][]string)}
}

func (m *MockRoleLookup) HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	m.Calls++
	if m.Err != nil {
		return false, m.Err
	}
	for _, r := range m.Roles[userID] {
		if r == role {
			return true, nil
		}
	}
	return false, nil
}
