package services_test

import (
	"context"
	"encoding/xml"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-cms/models"
	"portfolio-cms/services"
)

type stubLister struct {
	articles []models.Article
	err      error
}

func (s stubLister) ListPublishedForSitemap(ctx context.Context) ([]models.Article, error) {
	return s.articles, s.err
}

type parsedSitemap struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []struct {
		Loc        string `xml:"loc"`
		LastMod    string `xml:"lastmod"`
		ChangeFreq string `xml:"changefreq"`
		Priority   string `xml:"priority"`
	} `xml:"url"`
}

var buildTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func build(t *testing.T, lister services.PublishedArticleLister, baseURL string) (string, parsedSitemap) {
	t.Helper()
	out, err := services.NewSitemapService(lister, zerolog.Nop()).Build(context.Background(), baseURL, buildTime)
	require.NoError(t, err)

	var parsed parsedSitemap
	require.NoError(t, xml.Unmarshal(out, &parsed))
	return string(out), parsed
}

func published(slug string, at time.Time) models.Article {
	return models.Article{
		Base:        models.Base{ID: uuid.New()},
		Slug:        slug,
		Status:      models.StatusPublished,
		PublishedAt: &at,
	}
}

func TestSitemap_PublishedArticleListedDraftAbsent(t *testing.T) {
	// The lister only returns published rows; a draft slipping through is still dropped.
	draft := models.Article{Slug: "b", Status: models.StatusDraft}
	lister := stubLister{articles: []models.Article{
		published("a", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		draft,
	}}

	doc, parsed := build(t, lister, "https://example.com")

	assert.Contains(t, doc, "<loc>https://example.com/docs/a</loc>")
	assert.NotContains(t, doc, "https://example.com/docs/b")
	assert.Len(t, parsed.URLs, 8)

	last := parsed.URLs[7]
	assert.Equal(t, "2024-01-01T00:00:00Z", last.LastMod)
	assert.Equal(t, "weekly", last.ChangeFreq)
	assert.Equal(t, "0.7", last.Priority)
}

func TestSitemap_StaticRoutesInFixedOrder(t *testing.T) {
	doc, parsed := build(t, stubLister{}, "https://example.com/")

	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, doc, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)

	want := []struct{ loc, freq, prio string }{
		{"https://example.com", "daily", "1.0"},
		{"https://example.com/about", "weekly", "0.8"},
		{"https://example.com/skills", "weekly", "0.8"},
		{"https://example.com/education", "weekly", "0.8"},
		{"https://example.com/contact", "monthly", "0.8"},
		{"https://example.com/projects", "weekly", "0.9"},
		{"https://example.com/docs", "daily", "0.9"},
	}
	require.Len(t, parsed.URLs, len(want))
	for i, w := range want {
		assert.Equal(t, w.loc, parsed.URLs[i].Loc)
		assert.Equal(t, w.freq, parsed.URLs[i].ChangeFreq)
		assert.Equal(t, w.prio, parsed.URLs[i].Priority)
		assert.Equal(t, "2024-06-01T12:00:00Z", parsed.URLs[i].LastMod)
	}
}

func TestSitemap_FetchFailureKeepsStaticRoutes(t *testing.T) {
	_, parsed := build(t, stubLister{err: errors.New("store unavailable")}, "https://example.com")
	assert.Len(t, parsed.URLs, 7)
}

func TestSitemap_ArticleOrderAndLastMod(t *testing.T) {
	newer := published("newer", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	newer.UpdatedAt = time.Date(2024, 4, 2, 8, 30, 0, 0, time.UTC)
	older := published("older", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	undated := models.Article{Slug: "undated", Status: models.StatusPublished}

	doc, parsed := build(t, stubLister{articles: []models.Article{newer, older, undated}}, "https://example.com")

	require.Len(t, parsed.URLs, 10)
	assert.Equal(t, "https://example.com/docs/newer", parsed.URLs[7].Loc)
	assert.Equal(t, "2024-04-02T08:30:00Z", parsed.URLs[7].LastMod)
	assert.Equal(t, "https://example.com/docs/older", parsed.URLs[8].Loc)
	assert.Equal(t, "2024-02-01T00:00:00Z", parsed.URLs[8].LastMod)
	assert.Equal(t, "https://example.com/docs/undated", parsed.URLs[9].Loc)
	assert.Empty(t, parsed.URLs[9].LastMod)
	assert.NotContains(t, doc, "<lastmod></lastmod>")
}

func TestSitemap_DeterministicForFixedClock(t *testing.T) {
	lister := stubLister{articles: []models.Article{published("a", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))}}
	first, _ := build(t, lister, "https://example.com")
	second, _ := build(t, lister, "https://example.com")
	assert.Equal(t, first, second)
}
