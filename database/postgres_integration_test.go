//go:build integration
// +build integration

package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"portfolio-cms/config"
	"portfolio-cms/database"
	"portfolio-cms/models"
	"portfolio-cms/repositories"
)

func startPostgres(t *testing.T, ctx context.Context) *config.DatabaseConfig {
	t.Helper()

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "portfolio",
				"POSTGRES_PASSWORD": "portfolio",
				"POSTGRES_DB":       "portfolio",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return &config.DatabaseConfig{
		Driver:       "postgres",
		Host:         host,
		Port:         port.Port(),
		User:         "portfolio",
		Password:     "portfolio",
		Name:         "portfolio",
		SSLMode:      "disable",
		MaxOpenConns: 5,
		MaxIdleConns: 2,
		MaxLifetime:  time.Minute,
	}
}

func TestPostgresMigrationsAndRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping container-based test in short mode")
	}
	ctx := context.Background()
	cfg := startPostgres(t, ctx)

	db, err := database.Open(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.RunMigrations())
	require.NoError(t, db.HealthCheck(ctx))

	repos := repositories.New(db.DB, "http://localhost:8080")

	category := &models.ArticleCategory{Name: "Go", Slug: "go"}
	require.NoError(t, repos.Category.Create(ctx, category))
	tag := &models.ArticleTag{Name: "sql", Slug: "sql"}
	require.NoError(t, repos.Tag.Create(ctx, tag))

	now := time.Now().UTC()
	article := &models.Article{
		Title:       "Hello",
		Slug:        "hello",
		Content:     "body",
		Status:      models.StatusPublished,
		PublishedAt: &now,
		CategoryID:  &category.ID,
		AuthorID:    uuid.New(),
	}
	require.NoError(t, repos.Article.Create(ctx, article, []uuid.UUID{tag.ID}))

	err = repos.Article.Create(ctx, &models.Article{Title: "Dup", Slug: "hello", Content: "x", Status: models.StatusDraft}, nil)
	assert.IsType(t, models.ErrorConflict{}, err)

	require.NoError(t, repos.Category.Delete(ctx, category.ID))
	fetched, err := repos.Article.GetByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.CategoryID)

	project := &models.Project{Title: "CMS", Description: "d", Technologies: []string{"Go", "Postgres"}}
	require.NoError(t, repos.Project.Create(ctx, project))
	projects, err := repos.Project.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, []string{"Go", "Postgres"}, []string(projects[0].Technologies))

	require.NoError(t, db.MigrateDown())
}
