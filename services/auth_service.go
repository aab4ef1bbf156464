package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"portfolio-cms/config"
	"portfolio-cms/models"
	"portfolio-cms/repositories"
)

var errInvalidCredentials = models.ErrorUnauthorized{Message: "invalid credentials"}

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetSession(ctx context.Context, token string) (*models.Session, error)
	Logout(ctx context.Context, token string) error
	Roles(ctx context.Context, userID uuid.UUID) ([]string, error)
	GrantRole(ctx context.Context, email, role string) error
}

type authService struct {
	userRepo    repositories.UserRepository
	roleRepo    repositories.UserRoleRepository
	sessionRepo repositories.SessionRepository
	cfg         config.AuthConfig
	now         func() time.Time
	log         zerolog.Logger
}

func NewAuthService(
	userRepo repositories.UserRepository,
	roleRepo repositories.UserRoleRepository,
	sessionRepo repositories.SessionRepository,
	cfg config.AuthConfig,
	log zerolog.Logger,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
		now:         time.Now,
		log:         log.With().Str("component", "auth").Logger(),
	}
}

// Register creates a user without any role.
func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return nil, models.ErrorConflict{Message: "user already exists"}
	}
	var notFound models.ErrorNotFound
	if err != nil && !errors.As(err, &notFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID.String()).Msg("User registered")
	return user, nil
}

// Login checks the credentials and opens a session backing the returned token.
func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		var notFound models.ErrorNotFound
		if errors.As(err, &notFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errInvalidCredentials
	}

	now := s.now()
	session := &models.Session{
		UserID:    user.ID,
		ExpiresAt: now.Add(s.cfg.JWTExpiration),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.generateToken(session, now)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      *user,
	}, nil
}

// GetSession resolves a token to its session. Malformed, expired and revoked
// tokens all yield ErrorUnauthorized.
func (s *authService) GetSession(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := s.parseToken(token)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		var notFound models.ErrorNotFound
		if errors.As(err, &notFound) {
			return nil, models.ErrorUnauthorized{Message: "session not found"}
		}
		return nil, err
	}
	if !session.Active(s.now()) {
		return nil, models.ErrorUnauthorized{Message: "session expired"}
	}
	return session, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	session, err := s.GetSession(ctx, token)
	if err != nil {
		return err
	}
	if err := s.sessionRepo.Revoke(ctx, session.ID, s.now()); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (s *authService) Roles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return s.roleRepo.ListRoles(ctx, userID)
}

func (s *authService) GrantRole(ctx context.Context, email, role string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := s.roleRepo.Grant(ctx, user.ID, role); err != nil {
		return fmt.Errorf("failed to grant role: %w", err)
	}
	s.log.Info().Str("user_id", user.ID.String()).Str("role", role).Msg("Role granted")
	return nil
}

func (s *authService) generateToken(session *models.Session, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        session.ID.String(),
		Subject:   session.UserID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.cfg.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signedToken, nil
}

func (s *authService) parseToken(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.cfg.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, models.ErrorUnauthorized{Message: "invalid token"}
	}

	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return uuid.Nil, models.ErrorUnauthorized{Message: "invalid token"}
	}
	return sessionID, nil
}
