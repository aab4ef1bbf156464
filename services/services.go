package services

import (
	"github.com/rs/zerolog"

	"portfolio-cms/config"
	"portfolio-cms/repositories"
)

// Services bundles every service the HTTP layer and CLI use.
type Services struct {
	Auth          AuthService
	Guard         AccessGuard
	Sitemap       SitemapService
	Article       ArticleService
	Docs          DocsService
	Category      CategoryService
	Tag           TagService
	Project       ProjectService
	Skill         SkillService
	SkillCategory SkillCategoryService
	Education     EducationService
	Contact       ContactService
	Message       MessageService
	Profile       ProfileService
	Portfolio     PortfolioService
}

func NewServices(repos *repositories.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	auth := NewAuthService(repos.User, repos.UserRole, repos.Session, cfg.Auth, log)
	profile := NewProfileService(repos.Objects, cfg.Storage.MaxUploadSize, log)

	return &Services{
		Auth:          auth,
		Guard:         NewAccessGuard(auth, repos.UserRole, log),
		Sitemap:       NewSitemapService(repos.Article, log),
		Article:       NewArticleService(repos.Article, repos.Category, repos.Tag, log),
		Docs:          NewDocsService(repos.Article, repos.Category, log),
		Category:      NewCategoryService(repos.Category, log),
		Tag:           NewTagService(repos.Tag),
		Project:       NewProjectService(repos.Project),
		Skill:         NewSkillService(repos.Skill),
		SkillCategory: NewSkillCategoryService(repos.SkillCategory),
		Education:     NewEducationService(repos.Education),
		Contact:       NewContactService(repos.Contact),
		Message:       NewMessageService(repos.Message, log),
		Profile:       profile,
		Portfolio:     NewPortfolioService(repos.Skill, repos.Project, repos.Education, repos.Contact, profile, log),
	}
}
