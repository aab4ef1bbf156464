package services

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"portfolio-cms/models"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type staticRoute struct {
	path       string
	changefreq string
	priority   string
}

// staticRoutes are emitted first, in this order, on every build.
var staticRoutes = []staticRoute{
	{"", "daily", "1.0"},
	{"/about", "weekly", "0.8"},
	{"/skills", "weekly", "0.8"},
	{"/education", "weekly", "0.8"},
	{"/contact", "monthly", "0.8"},
	{"/projects", "weekly", "0.9"},
	{"/docs", "daily", "0.9"},
}

const (
	articleChangefreq = "weekly"
	articlePriority   = "0.7"
)

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// PublishedArticleLister yields published articles newest first.
type PublishedArticleLister interface {
	ListPublishedForSitemap(ctx context.Context) ([]models.Article, error)
}

type SitemapService interface {
	// Build renders the sitemap for baseURL. now stamps the static routes.
	// Article lookup failures degrade to a static-only document.
	Build(ctx context.Context, baseURL string, now time.Time) ([]byte, error)
}

type sitemapService struct {
	articles PublishedArticleLister
	log      zerolog.Logger
}

func NewSitemapService(articles PublishedArticleLister, log zerolog.Logger) SitemapService {
	return &sitemapService{
		articles: articles,
		log:      log.With().Str("component", "sitemap").Logger(),
	}
}

func (s *sitemapService) Build(ctx context.Context, baseURL string, now time.Time) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")
	built := now.UTC().Format(time.RFC3339)

	set := urlset{Xmlns: sitemapNamespace}
	for _, route := range staticRoutes {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + route.path,
			LastMod:    built,
			ChangeFreq: route.changefreq,
			Priority:   route.priority,
		})
	}

	articles, err := s.articles.ListPublishedForSitemap(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to fetch articles, emitting static routes only")
		articles = nil
	}

	for _, article := range articles {
		if !article.IsPublished() {
			continue
		}
		entry := sitemapURL{
			Loc:        base + "/docs/" + article.Slug,
			ChangeFreq: articleChangefreq,
			Priority:   articlePriority,
		}
		if modified := article.LastModified(); modified != nil {
			entry.LastMod = modified.UTC().Format(time.RFC3339)
		}
		set.URLs = append(set.URLs, entry)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode sitemap: %w", err)
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')

	s.log.Debug().Int("urls", len(set.URLs)).Msg("Sitemap built")
	return out, nil
}
