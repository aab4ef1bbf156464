package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio-cms/models"
)

// MockArticleRepository is an in-memory ArticleRepository.
type MockArticleRepository struct {
	mu        sync.Mutex
	Articles  map[uuid.UUID]*models.Article
	Relations map[uuid.UUID][]uuid.UUID
	TagNames  map[uuid.UUID]string
	ListError error
	SaveError error
	ViewError error
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles:  make(map[uuid.UUID]*models.Article),
		Relations: make(map[uuid.UUID][]uuid.UUID),
		TagNames:  make(map[uuid.UUID]string),
	}
}

func (m *MockArticleRepository) sorted(filter func(*models.Article) bool, less func(a, b *models.Article) bool) []models.Article {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := []*models.Article{}
	for _, a := range m.Articles {
		if filter(a) {
			rows = append(rows, a)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
	out := make([]models.Article, 0, len(rows))
	for _, a := range rows {
		out = append(out, *a)
	}
	return out
}

func publishedFirst(a, b *models.Article) bool {
	if a.PublishedAt == nil || b.PublishedAt == nil {
		return a.PublishedAt != nil
	}
	return a.PublishedAt.After(*b.PublishedAt)
}

func (m *MockArticleRepository) List(ctx context.Context) ([]models.Article, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.sorted(func(*models.Article) bool { return true }, func(a, b *models.Article) bool {
		return a.CreatedAt.After(b.CreatedAt)
	}), nil
}

func (m *MockArticleRepository) ListPublished(ctx context.Context, categoryID *uuid.UUID) ([]models.Article, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.sorted(func(a *models.Article) bool {
		if !a.IsPublished() {
			return false
		}
		return categoryID == nil || (a.CategoryID != nil && *a.CategoryID == *categoryID)
	}, publishedFirst), nil
}

func (m *MockArticleRepository) ListPublishedForSitemap(ctx context.Context) ([]models.Article, error) {
	return m.ListPublished(ctx, nil)
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Articles[id]
	if !ok {
		return nil, models.ErrorNotFound{Message: "article not found"}
	}
	copied := *a
	return &copied, nil
}

func (m *MockArticleRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.Articles {
		if a.Slug == slug && a.IsPublished() {
			copied := *a
			return &copied, nil
		}
	}
	return nil, models.ErrorNotFound{Message: "article not found"}
}

func (m *MockArticleRepository) TagIDs(ctx context.Context, articleID uuid.UUID) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]uuid.UUID{}, m.Relations[articleID]...), nil
}

func (m *MockArticleRepository) Tags(ctx context.Context, articleID uuid.UUID) ([]models.ArticleTag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tags := []models.ArticleTag{}
	for _, id := range m.Relations[articleID] {
		tags = append(tags, models.ArticleTag{Base: models.Base{ID: id}, Name: m.TagNames[id]})
	}
	return tags, nil
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article, tagIDs []uuid.UUID) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.Articles {
		if a.Slug == article.Slug {
			return models.ErrorConflict{Message: "article already exists"}
		}
	}
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now()
	}
	copied := *article
	m.Articles[article.ID] = &copied
	m.Relations[article.ID] = append([]uuid.UUID{}, tagIDs...)
	return nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article, tagIDs []uuid.UUID) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.Articles[article.ID]
	if !ok {
		return models.ErrorNotFound{Message: "article not found"}
	}
	copied := *article
	copied.ViewCount = current.ViewCount
	m.Articles[article.ID] = &copied
	m.Relations[article.ID] = append([]uuid.UUID{}, tagIDs...)
	return nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Articles[id]; !ok {
		return models.ErrorNotFound{Message: "article not found"}
	}
	delete(m.Articles, id)
	delete(m.Relations, id)
	return nil
}

func (m *MockArticleRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	if m.ViewError != nil {
		return m.ViewError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Articles[id]
	if !ok {
		return models.ErrorNotFound{Message: "article not found"}
	}
	a.ViewCount++
	return nil
}

// MockCategoryRepository is an in-memory CategoryRepository.
type MockCategoryRepository struct {
	Categories map[uuid.UUID]*models.ArticleCategory
	ListError  error
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{Categories: make(map[uuid.UUID]*models.ArticleCategory)}
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]models.ArticleCategory, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	rows := []models.ArticleCategory{}
	for _, c := range m.Categories {
		rows = append(rows, *c)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ArticleCategory, error) {
	c, ok := m.Categories[id]
	if !ok {
		return nil, models.ErrorNotFound{Message: "category not found"}
	}
	copied := *c
	return &copied, nil
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.ArticleCategory) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	copied := *category
	m.Categories[category.ID] = &copied
	return nil
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *models.ArticleCategory) error {
	if _, ok := m.Categories[category.ID]; !ok {
		return models.ErrorNotFound{Message: "category not found"}
	}
	copied := *category
	m.Categories[category.ID] = &copied
	return nil
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.Categories[id]; !ok {
		return models.ErrorNotFound{Message: "category not found"}
	}
	delete(m.Categories, id)
	return nil
}

// MockTagRepository is an in-memory TagRepository.
type MockTagRepository struct {
	Tags      map[uuid.UUID]*models.ArticleTag
	ListError error
}

func NewMockTagRepository() *MockTagRepository {
	return &MockTagRepository{Tags: make(map[uuid.UUID]*models.ArticleTag)}
}

func (m *MockTagRepository) List(ctx context.Context) ([]models.ArticleTag, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	rows := []models.ArticleTag{}
	for _, t := range m.Tags {
		rows = append(rows, *t)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func (m *MockTagRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ArticleTag, error) {
	t, ok := m.Tags[id]
	if !ok {
		return nil, models.ErrorNotFound{Message: "tag not found"}
	}
	copied := *t
	return &copied, nil
}

func (m *MockTagRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.ArticleTag, error) {
	rows := []models.ArticleTag{}
	for _, id := range ids {
		if t, ok := m.Tags[id]; ok {
			rows = append(rows, *t)
		}
	}
	return rows, nil
}

func (m *MockTagRepository) Create(ctx context.Context, tag *models.ArticleTag) error {
	if tag.ID == uuid.Nil {
		tag.ID = uuid.New()
	}
	copied := *tag
	m.Tags[tag.ID] = &copied
	return nil
}

func (m *MockTagRepository) Update(ctx context.Context, tag *models.ArticleTag) error {
	if _, ok := m.Tags[tag.ID]; !ok {
		return models.ErrorNotFound{Message: "tag not found"}
	}
	copied := *tag
	m.Tags[tag.ID] = &copied
	return nil
}

func (m *MockTagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.Tags[id]; !ok {
		return models.ErrorNotFound{Message: "tag not found"}
	}
	delete(m.Tags, id)
	return nil
}
