package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"portfolio-cms/models"
)

// SessionProvider resolves a bearer token to its live session.
type SessionProvider interface {
	GetSession(ctx context.Context, token string) (*models.Session, error)
}

// RoleLookup answers whether a user holds a role.
type RoleLookup interface {
	HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error)
}

// AccessGuard decides whether a caller may use the admin panel. Every
// failure is treated as "no access".
type AccessGuard interface {
	Check(ctx context.Context, token string) models.AccessDecision
}

type accessGuard struct {
	sessions SessionProvider
	roles    RoleLookup
	log      zerolog.Logger
}

func NewAccessGuard(sessions SessionProvider, roles RoleLookup, log zerolog.Logger) AccessGuard {
	return &accessGuard{
		sessions: sessions,
		roles:    roles,
		log:      log.With().Str("component", "access_guard").Logger(),
	}
}

func (g *accessGuard) Check(ctx context.Context, token string) models.AccessDecision {
	decision := models.AccessDecision{State: models.AccessChecking}

	if token == "" {
		return deny(decision, models.LoginRoute, "")
	}

	session, err := g.sessions.GetSession(ctx, token)
	if err != nil || session == nil {
		g.log.Debug().Err(err).Msg("No usable session")
		return deny(decision, models.LoginRoute, "")
	}

	userID := session.UserID
	decision.UserID = &userID

	isAdmin, err := g.roles.HasRole(ctx, userID, models.RoleAdmin)
	if err != nil {
		g.log.Warn().Err(err).Str("user_id", userID.String()).Msg("Role lookup failed")
		return deny(decision, models.HomeRoute, models.AccessDeniedNotice)
	}
	if !isAdmin {
		return deny(decision, models.HomeRoute, models.AccessDeniedNotice)
	}

	decision.State = models.AccessGranted
	return decision
}

func deny(d models.AccessDecision, redirect, notice string) models.AccessDecision {
	d.State = models.AccessDenied
	d.Redirect = redirect
	d.Notice = notice
	return d
}
