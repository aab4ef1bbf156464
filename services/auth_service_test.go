package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"portfolio-cms/config"
	"portfolio-cms/models"
	"portfolio-cms/repositories"
	"portfolio-cms/services"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db    *gorm.DB
	repos *repositories.Repositories
	auth  services.AuthService
	guard services.AccessGuard
	ctx   context.Context
}

func (suite *AuthServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	suite.Require().NoError(err)
	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	suite.Require().NoError(db.AutoMigrate(models.All()...))

	suite.db = db
	suite.repos = repositories.New(db, "")
	suite.auth = services.NewAuthService(
		suite.repos.User,
		suite.repos.UserRole,
		suite.repos.Session,
		config.AuthConfig{JWTSecret: []byte("test-secret"), JWTExpiration: time.Hour},
		zerolog.Nop(),
	)
	suite.guard = services.NewAccessGuard(suite.auth, suite.repos.UserRole, zerolog.Nop())
	suite.ctx = context.Background()
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	if sqlDB, err := suite.db.DB(); err == nil {
		sqlDB.Close()
	}
}

func (suite *AuthServiceTestSuite) login(email, password string) string {
	resp, err := suite.auth.Login(suite.ctx, models.LoginRequest{Email: email, Password: password})
	suite.Require().NoError(err)
	suite.Require().NotEmpty(resp.Token)
	return resp.Token
}

func (suite *AuthServiceTestSuite) TestRegisterLoginSessionLogout() {
	user, err := suite.auth.Register(suite.ctx, models.RegisterRequest{Email: "admin@example.com", Password: "secret1"})
	suite.Require().NoError(err)
	suite.NotEqual("secret1", user.Password)

	token := suite.login("admin@example.com", "secret1")

	session, err := suite.auth.GetSession(suite.ctx, token)
	suite.Require().NoError(err)
	suite.Equal(user.ID, session.UserID)
	suite.Equal("admin@example.com", session.User.Email)

	suite.Require().NoError(suite.auth.Logout(suite.ctx, token))
	_, err = suite.auth.GetSession(suite.ctx, token)
	suite.IsType(models.ErrorUnauthorized{}, err)
}

func (suite *AuthServiceTestSuite) TestRegisterDuplicateAndBadCredentials() {
	_, err := suite.auth.Register(suite.ctx, models.RegisterRequest{Email: "a@example.com", Password: "secret1"})
	suite.Require().NoError(err)

	_, err = suite.auth.Register(suite.ctx, models.RegisterRequest{Email: "a@example.com", Password: "other12"})
	suite.IsType(models.ErrorConflict{}, err)

	_, err = suite.auth.Login(suite.ctx, models.LoginRequest{Email: "a@example.com", Password: "wrong"})
	suite.IsType(models.ErrorUnauthorized{}, err)

	_, err = suite.auth.Login(suite.ctx, models.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	suite.IsType(models.ErrorUnauthorized{}, err)
}

func (suite *AuthServiceTestSuite) TestTamperedTokenIsRejected() {
	_, err := suite.auth.Register(suite.ctx, models.RegisterRequest{Email: "a@example.com", Password: "secret1"})
	suite.Require().NoError(err)
	token := suite.login("a@example.com", "secret1")

	_, err = suite.auth.GetSession(suite.ctx, token+"x")
	suite.IsType(models.ErrorUnauthorized{}, err)

	_, err = suite.auth.GetSession(suite.ctx, "not-a-jwt")
	suite.IsType(models.ErrorUnauthorized{}, err)
}

func (suite *AuthServiceTestSuite) TestGuardAgainstRealRoleTable() {
	_, err := suite.auth.Register(suite.ctx, models.RegisterRequest{Email: "a@example.com", Password: "secret1"})
	suite.Require().NoError(err)
	token := suite.login("a@example.com", "secret1")

	decision := suite.guard.Check(suite.ctx, token)
	suite.Equal(models.AccessDenied, decision.State)
	suite.Equal(models.HomeRoute, decision.Redirect)

	suite.Require().NoError(suite.auth.GrantRole(suite.ctx, "a@example.com", models.RoleAdmin))

	decision = suite.guard.Check(suite.ctx, token)
	suite.True(decision.Granted())

	roles, err := suite.auth.Roles(suite.ctx, *decision.UserID)
	suite.Require().NoError(err)
	suite.Equal([]string{models.RoleAdmin}, roles)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
