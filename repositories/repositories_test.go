package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"portfolio-cms/models"
)

type RepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	repos *Repositories
	ctx   context.Context
}

func (suite *RepositoryTestSuite) SetupTest() {
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
	suite.repos = New(db, "http://cdn.test/")
	suite.ctx = context.Background()
}

func (suite *RepositoryTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func (suite *RepositoryTestSuite) createArticle(slug string, status models.ArticleStatus, categoryID *uuid.UUID, tagIDs ...uuid.UUID) *models.Article {
	article := &models.Article{
		Title:      slug,
		Slug:       slug,
		Content:    "body",
		Status:     status,
		CategoryID: categoryID,
		AuthorID:   uuid.New(),
	}
	if status == models.StatusPublished {
		now := time.Now().UTC()
		article.PublishedAt = &now
	}
	suite.Require().NoError(suite.repos.Article.Create(suite.ctx, article, tagIDs))
	return article
}

func (suite *RepositoryTestSuite) createTag(slug string) *models.ArticleTag {
	tag := &models.ArticleTag{Name: slug, Slug: slug}
	suite.Require().NoError(suite.repos.Tag.Create(suite.ctx, tag))
	return tag
}

func (suite *RepositoryTestSuite) TestDeleteCategoryDetachesArticles() {
	category := &models.ArticleCategory{Name: "Tech", Slug: "tech"}
	suite.Require().NoError(suite.repos.Category.Create(suite.ctx, category))

	a1 := suite.createArticle("one", models.StatusPublished, &category.ID)
	a2 := suite.createArticle("two", models.StatusDraft, &category.ID)

	suite.Require().NoError(suite.repos.Category.Delete(suite.ctx, category.ID))

	for _, id := range []uuid.UUID{a1.ID, a2.ID} {
		article, err := suite.repos.Article.GetByID(suite.ctx, id)
		suite.Require().NoError(err)
		suite.Nil(article.CategoryID)
	}

	_, err := suite.repos.Category.GetByID(suite.ctx, category.ID)
	suite.IsType(models.ErrorNotFound{}, err)
}

func (suite *RepositoryTestSuite) TestUpdateReplacesTagSet() {
	t1 := suite.createTag("go")
	t2 := suite.createTag("sql")
	t3 := suite.createTag("web")

	article := suite.createArticle("tagged", models.StatusDraft, nil, t1.ID, t2.ID)

	article.Title = "retagged"
	suite.Require().NoError(suite.repos.Article.Update(suite.ctx, article, []uuid.UUID{t2.ID, t3.ID, t3.ID}))

	ids, err := suite.repos.Article.TagIDs(suite.ctx, article.ID)
	suite.Require().NoError(err)
	suite.ElementsMatch([]uuid.UUID{t2.ID, t3.ID}, ids)

	suite.Require().NoError(suite.repos.Article.Update(suite.ctx, article, nil))
	ids, err = suite.repos.Article.TagIDs(suite.ctx, article.ID)
	suite.Require().NoError(err)
	suite.Empty(ids)
}

func (suite *RepositoryTestSuite) TestUpdateMissingArticleRollsBack() {
	tag := suite.createTag("go")
	ghost := &models.Article{Base: models.Base{ID: uuid.New()}, Title: "x", Slug: "x", Status: models.StatusDraft}

	err := suite.repos.Article.Update(suite.ctx, ghost, []uuid.UUID{tag.ID})
	suite.IsType(models.ErrorNotFound{}, err)

	var count int64
	suite.db.Model(&models.ArticleTagRelation{}).Count(&count)
	suite.Zero(count)
}

func (suite *RepositoryTestSuite) TestDuplicateSlugIsConflict() {
	suite.createArticle("same", models.StatusDraft, nil)

	err := suite.repos.Article.Create(suite.ctx, &models.Article{Title: "b", Slug: "same", Status: models.StatusDraft}, nil)
	suite.IsType(models.ErrorConflict{}, err)
}

func (suite *RepositoryTestSuite) TestIncrementViewCount() {
	article := suite.createArticle("popular", models.StatusPublished, nil)

	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repos.Article.IncrementViewCount(suite.ctx, article.ID))
	}

	fetched, err := suite.repos.Article.GetByID(suite.ctx, article.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(3), fetched.ViewCount)

	err = suite.repos.Article.IncrementViewCount(suite.ctx, uuid.New())
	suite.IsType(models.ErrorNotFound{}, err)
}

func (suite *RepositoryTestSuite) TestPublishedQueriesSkipDrafts() {
	category := &models.ArticleCategory{Name: "Go", Slug: "go"}
	suite.Require().NoError(suite.repos.Category.Create(suite.ctx, category))

	suite.createArticle("pub-a", models.StatusPublished, &category.ID)
	suite.createArticle("pub-b", models.StatusPublished, nil)
	suite.createArticle("draft", models.StatusDraft, &category.ID)

	all, err := suite.repos.Article.ListPublished(suite.ctx, nil)
	suite.Require().NoError(err)
	suite.Len(all, 2)

	inCategory, err := suite.repos.Article.ListPublished(suite.ctx, &category.ID)
	suite.Require().NoError(err)
	suite.Require().Len(inCategory, 1)
	suite.Equal("pub-a", inCategory[0].Slug)
	suite.Require().NotNil(inCategory[0].Category)
	suite.Equal("Go", inCategory[0].Category.Name)

	forSitemap, err := suite.repos.Article.ListPublishedForSitemap(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(forSitemap, 2)

	_, err = suite.repos.Article.GetPublishedBySlug(suite.ctx, "draft")
	suite.IsType(models.ErrorNotFound{}, err)
}

func (suite *RepositoryTestSuite) TestDeleteTagRemovesRelations() {
	tag := suite.createTag("go")
	article := suite.createArticle("tagged", models.StatusDraft, nil, tag.ID)

	suite.Require().NoError(suite.repos.Tag.Delete(suite.ctx, tag.ID))

	ids, err := suite.repos.Article.TagIDs(suite.ctx, article.ID)
	suite.Require().NoError(err)
	suite.Empty(ids)
}

func (suite *RepositoryTestSuite) TestMaxDisplayOrder() {
	highest, err := suite.repos.SkillCategory.MaxDisplayOrder(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(0, highest)

	for i, name := range []string{"Frontend", "Backend"} {
		suite.Require().NoError(suite.repos.SkillCategory.Create(suite.ctx, &models.SkillCategory{Name: name, DisplayOrder: i * 4}))
	}

	highest, err = suite.repos.SkillCategory.MaxDisplayOrder(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(4, highest)
}

func (suite *RepositoryTestSuite) TestRenameSkillCategoryMovesSkills() {
	category := &models.SkillCategory{Name: "Frontend"}
	suite.Require().NoError(suite.repos.SkillCategory.Create(suite.ctx, category))
	suite.Require().NoError(suite.repos.Skill.Create(suite.ctx, &models.Skill{Category: "Frontend", Name: "React"}))

	category.Name = "Web"
	suite.Require().NoError(suite.repos.SkillCategory.Update(suite.ctx, category))

	skills, err := suite.repos.Skill.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(skills, 1)
	suite.Equal("Web", skills[0].Category)
}

func (suite *RepositoryTestSuite) TestReplaceLeavesSingleObject() {
	bucket := models.ProfilePictureBucket
	suite.Require().NoError(suite.repos.Objects.Upload(suite.ctx, &models.StorageObject{Bucket: bucket, Name: "old-1.png", Data: []byte("a")}))
	suite.Require().NoError(suite.repos.Objects.Upload(suite.ctx, &models.StorageObject{Bucket: bucket, Name: "old-2.png", Data: []byte("b")}))
	suite.Require().NoError(suite.repos.Objects.Upload(suite.ctx, &models.StorageObject{Bucket: "other", Name: "keep.png", Data: []byte("c")}))

	suite.Require().NoError(suite.repos.Objects.Replace(suite.ctx, &models.StorageObject{Bucket: bucket, Name: "new.png", Data: []byte("d")}))

	objects, err := suite.repos.Objects.List(suite.ctx, bucket)
	suite.Require().NoError(err)
	suite.Require().Len(objects, 1)
	suite.Equal("new.png", objects[0].Name)
	suite.Empty(objects[0].Data)

	other, err := suite.repos.Objects.List(suite.ctx, "other")
	suite.Require().NoError(err)
	suite.Len(other, 1)

	object, err := suite.repos.Objects.Get(suite.ctx, bucket, "new.png")
	suite.Require().NoError(err)
	suite.Equal([]byte("d"), object.Data)

	suite.Equal("http://cdn.test/storage/profile-pictures/new.png", suite.repos.Objects.PublicURL(bucket, "new.png"))
}

func (suite *RepositoryTestSuite) TestSessionRevoke() {
	user := &models.User{Email: "a@b.c", Password: "hash"}
	suite.Require().NoError(suite.repos.User.Create(suite.ctx, user))

	session := &models.Session{UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	suite.Require().NoError(suite.repos.Session.Create(suite.ctx, session))

	fetched, err := suite.repos.Session.GetByID(suite.ctx, session.ID)
	suite.Require().NoError(err)
	suite.Equal("a@b.c", fetched.User.Email)
	suite.True(fetched.Active(time.Now()))

	suite.Require().NoError(suite.repos.Session.Revoke(suite.ctx, session.ID, time.Now()))
	fetched, err = suite.repos.Session.GetByID(suite.ctx, session.ID)
	suite.Require().NoError(err)
	suite.False(fetched.Active(time.Now()))

	err = suite.repos.Session.Revoke(suite.ctx, session.ID, time.Now())
	suite.IsType(models.ErrorNotFound{}, err)
}

func (suite *RepositoryTestSuite) TestGrantIsIdempotent() {
	userID := uuid.New()
	suite.Require().NoError(suite.repos.UserRole.Grant(suite.ctx, userID, models.RoleAdmin))
	suite.Require().NoError(suite.repos.UserRole.Grant(suite.ctx, userID, models.RoleAdmin))

	roles, err := suite.repos.UserRole.ListRoles(suite.ctx, userID)
	suite.Require().NoError(err)
	suite.Equal([]string{models.RoleAdmin}, roles)

	ok, err := suite.repos.UserRole.HasRole(suite.ctx, uuid.New(), models.RoleAdmin)
	suite.Require().NoError(err)
	suite.False(ok)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
