package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"portfolio-cms/mocks"
	"portfolio-cms/models"
	"portfolio-cms/services"
)

func newGuard() (services.AccessGuard, *mocks.MockSessionProvider, *mocks.MockRoleLookup) {
	sessions := mocks.NewMockSessionProvider()
	roles := mocks.NewMockRoleLookup()
	return services.NewAccessGuard(sessions, roles, zerolog.Nop()), sessions, roles
}

func sessionFor(userID uuid.UUID) *models.Session {
	return &models.Session{UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}
}

func TestAccessGuard_NoSessionRedirectsToLogin(t *testing.T) {
	guard, sessions, roles := newGuard()

	for _, token := range []string{"", "unknown"} {
		decision := guard.Check(context.Background(), token)
		assert.Equal(t, models.AccessDenied, decision.State)
		assert.Equal(t, models.LoginRoute, decision.Redirect)
		assert.Empty(t, decision.Notice)
		assert.False(t, decision.Granted())
	}
	assert.Equal(t, 1, sessions.Calls)
	assert.Zero(t, roles.Calls)
}

func TestAccessGuard_NoAdminRoleRedirectsHome(t *testing.T) {
	guard, sessions, roles := newGuard()
	userID := uuid.New()
	sessions.Sessions["tok"] = sessionFor(userID)
	roles.Roles[userID] = []string{"editor"}

	decision := guard.Check(context.Background(), "tok")

	assert.Equal(t, models.AccessDenied, decision.State)
	assert.Equal(t, models.HomeRoute, decision.Redirect)
	assert.Equal(t, models.AccessDeniedNotice, decision.Notice)
}

func TestAccessGuard_AdminRoleGrants(t *testing.T) {
	guard, sessions, roles := newGuard()
	userID := uuid.New()
	sessions.Sessions["tok"] = sessionFor(userID)
	roles.Roles[userID] = []string{"editor", models.RoleAdmin}

	decision := guard.Check(context.Background(), "tok")

	assert.True(t, decision.Granted())
	assert.Empty(t, decision.Redirect)
	if assert.NotNil(t, decision.UserID) {
		assert.Equal(t, userID, *decision.UserID)
	}
}

func TestAccessGuard_ErrorsFailClosed(t *testing.T) {
	guard, sessions, roles := newGuard()
	sessions.Err = errors.New("auth backend down")

	decision := guard.Check(context.Background(), "tok")
	assert.Equal(t, models.AccessDenied, decision.State)
	assert.Equal(t, models.LoginRoute, decision.Redirect)

	sessions.Err = nil
	userID := uuid.New()
	sessions.Sessions["tok"] = sessionFor(userID)
	roles.Roles[userID] = []string{models.RoleAdmin}
	roles.Err = errors.New("role table unavailable")

	decision = guard.Check(context.Background(), "tok")
	assert.Equal(t, models.AccessDenied, decision.State)
	assert.Equal(t, models.HomeRoute, decision.Redirect)
	assert.Equal(t, models.AccessDeniedNotice, decision.Notice)
}
