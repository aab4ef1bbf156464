package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"portfolio-cms/config"
	"portfolio-cms/handlers"
	"portfolio-cms/helper"
	"portfolio-cms/middleware"
	"portfolio-cms/models"
	"portfolio-cms/services"
)

// NewRouter wires every handler onto a gin engine.
func NewRouter(svcs *services.Services, cfg *config.Config, log zerolog.Logger, healthCheck handlers.HealthCheck) *gin.Engine {
	h := helper.NewHTTPHelper()

	authHandler := handlers.NewAuthHandler(svcs.Auth, h)
	articleHandler := handlers.NewArticleHandler(svcs.Article, svcs.Docs, h)
	portfolioHandler := handlers.NewPortfolioHandler(svcs.Portfolio, h)
	messageHandler := handlers.NewMessageHandler(svcs.Message, h)
	profileHandler := handlers.NewProfileHandler(svcs.Profile, cfg.Storage.MaxUploadSize, h)
	siteHandler := handlers.NewSiteHandler(svcs.Sitemap, cfg.Site.BaseURL, healthCheck, h)

	router := gin.New()
	router.Use(middleware.Recovery(log), middleware.RequestLogger(log), middleware.CORS())
	router.NoRoute(siteHandler.NotFound)

	router.GET("/health", siteHandler.Health)
	router.GET("/sitemap.xml", siteHandler.Sitemap)
	router.GET("/storage/:bucket/*name", profileHandler.Serve)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/session", authHandler.Session)
			auth.POST("/logout", authHandler.Logout)
		}

		public := v1.Group("/public")
		{
			public.GET("/overview", portfolioHandler.Overview)
			public.GET("/skills", portfolioHandler.Skills)
			public.GET("/projects", portfolioHandler.Projects)
			public.GET("/education", portfolioHandler.Education)
			public.GET("/contacts", portfolioHandler.Contacts)
			public.GET("/profile-picture", profileHandler.Current)
			public.GET("/categories", articleHandler.GetPublicCategories)
			public.GET("/articles", articleHandler.GetPublicArticles)
			public.GET("/articles/:slug", articleHandler.GetPublicArticle)
			public.POST("/messages", messageHandler.Submit)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.RequireAdmin(svcs.Guard, h))
		{
			admin.GET("/access", authHandler.Access)

			articles := admin.Group("/articles")
			{
				articles.GET("", articleHandler.ListArticles)
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("/editor", articleHandler.EditorData)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
			}

			handlers.NewCRUDHandler[models.CategoryRequest, models.ArticleCategory](svcs.Category, "category", h).
				Register(admin.Group("/categories"))
			handlers.NewCRUDHandler[models.TagRequest, models.ArticleTag](svcs.Tag, "tag", h).
				Register(admin.Group("/tags"))
			handlers.NewCRUDHandler[models.ProjectRequest, models.Project](svcs.Project, "project", h).
				Register(admin.Group("/projects"))
			handlers.NewCRUDHandler[models.SkillRequest, models.Skill](svcs.Skill, "skill", h).
				Register(admin.Group("/skills"))
			handlers.NewCRUDHandler[models.SkillCategoryRequest, models.SkillCategory](svcs.SkillCategory, "skill category", h).
				Register(admin.Group("/skill-categories"))
			handlers.NewCRUDHandler[models.EducationRequest, models.Education](svcs.Education, "education", h).
				Register(admin.Group("/education"))
			handlers.NewCRUDHandler[models.ContactRequest, models.Contact](svcs.Contact, "contact", h).
				Register(admin.Group("/contacts"))

			admin.GET("/messages", messageHandler.List)
			admin.DELETE("/messages/:id", messageHandler.Delete)

			admin.GET("/profile-picture", profileHandler.Current)
			admin.POST("/profile-picture", profileHandler.Upload)
			admin.DELETE("/profile-picture", profileHandler.Delete)
		}
	}

	return router
}

// NewHandler is the full HTTP surface: legacy redirects ahead of the router.
func NewHandler(svcs *services.Services, cfg *config.Config, log zerolog.Logger, healthCheck handlers.HealthCheck) http.Handler {
	return middleware.Redirects(cfg.Site.Redirects, log, NewRouter(svcs, cfg, log, healthCheck))
}
