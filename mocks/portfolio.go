package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio-cms/models"
)

// MockObjectStore keeps objects in memory, keyed by bucket then name.
type MockObjectStore struct {
	mu           sync.Mutex
	Objects      map[string]map[string]*models.StorageObject
	BaseURL      string
	ListError    error
	ReplaceError error
	clock        time.Time
}

func NewMockObjectStore() *MockObjectStore {
	return &MockObjectStore{
		Objects: make(map[string]map[string]*models.StorageObject),
		BaseURL: "http://localhost:8080",
		clock:   time.Unix(0, 0),
	}
}

// put stores object, stamping a strictly increasing creation time.
func (m *MockObjectStore) put(object *models.StorageObject) {
	if m.Objects[object.Bucket] == nil {
		m.Objects[object.Bucket] = make(map[string]*models.StorageObject)
	}
	if object.ID == uuid.Nil {
		object.ID = uuid.New()
	}
	m.clock = m.clock.Add(time.Second)
	object.CreatedAt = m.clock
	copied := *object
	m.Objects[object.Bucket][object.Name] = &copied
}

func (m *MockObjectStore) List(ctx context.Context, bucket string) ([]models.StorageObject, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := []models.StorageObject{}
	for _, o := range m.Objects[bucket] {
		rows = append(rows, *o)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return rows, nil
}

func (m *MockObjectStore) Get(ctx context.Context, bucket, name string) (*models.StorageObject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.Objects[bucket][name]
	if !ok {
		return nil, models.ErrorNotFound{Message: "object not found"}
	}
	copied := *o
	return &copied, nil
}

func (m *MockObjectStore) Upload(ctx context.Context, object *models.StorageObject) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.Objects[object.Bucket][object.Name]; exists {
		return models.ErrorConflict{Message: "object already exists"}
	}
	m.put(object)
	return nil
}

func (m *MockObjectStore) Remove(ctx context.Context, bucket string, names ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, name := range names {
		delete(m.Objects[bucket], name)
	}
	return nil
}

func (m *MockObjectStore) Replace(ctx context.Context, object *models.StorageObject) error {
	if m.ReplaceError != nil {
		return m.ReplaceError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Objects, object.Bucket)
	m.put(object)
	return nil
}

func (m *MockObjectStore) PublicURL(bucket, name string) string {
	return strings.TrimRight(m.BaseURL, "/") + "/storage/" + bucket + "/" + name
}

// MockSkillCategoryRepository is an in-memory SkillCategoryRepository.
type MockSkillCategoryRepository struct {
	Categories map[uuid.UUID]*models.SkillCategory
}

func NewMockSkillCategoryRepository() *MockSkillCategoryRepository {
	return &MockSkillCategoryRepository{Categories: make(map[uuid.UUID]*models.SkillCategory)}
}

func (m *MockSkillCategoryRepository) List(ctx context.Context) ([]models.SkillCategory, error) {
	rows := []models.SkillCategory{}
	for _, c := range m.Categories {
		rows = append(rows, *c)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].DisplayOrder < rows[j].DisplayOrder })
	return rows, nil
}

func (m *MockSkillCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SkillCategory, error) {
	c, ok := m.Categories[id]
	if !ok {
		return nil, models.ErrorNotFound{Message: "skill category not found"}
	}
	copied := *c
	return &copied, nil
}

func (m *MockSkillCategoryRepository) MaxDisplayOrder(ctx context.Context) (int, error) {
	highest := 0
	for _, c := range m.Categories {
		if c.DisplayOrder > highest {
			highest = c.DisplayOrder
		}
	}
	return highest, nil
}

func (m *MockSkillCategoryRepository) Create(ctx context.Context, category *models.SkillCategory) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	copied := *category
	m.Categories[category.ID] = &copied
	return nil
}

func (m *MockSkillCategoryRepository) Update(ctx context.Context, category *models.SkillCategory) error {
	if _, ok := m.Categories[category.ID]; !ok {
		return models.ErrorNotFound{Message: "skill category not found"}
	}
	copied := *category
	m.Categories[category.ID] = &copied
	return nil
}

func (m *MockSkillCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.Categories[id]; !ok {
		return models.ErrorNotFound{Message: "skill category not found"}
	}
	delete(m.Categories, id)
	return nil
}

// MockCollection backs the simple ordered collections (skills, projects,
// education, contacts) with a slice returned as-is by List.
type MockCollection[T any] struct {
	Rows      []T
	ListError error
}

func (m *MockCollection[T]) List(ctx context.Context) ([]T, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return append([]T{}, m.Rows...), nil
}

func (m *MockCollection[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	return nil, models.ErrorNotFound{Message: "not found"}
}

func (m *MockCollection[T]) Create(ctx context.Context, row *T) error {
	m.Rows = append(m.Rows, *row)
	return nil
}

func (m *MockCollection[T]) Update(ctx context.Context, row *T) error {
	return nil
}

func (m *MockCollection[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}
