package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SiteConfig describes the public site: its canonical origin and the legacy
// path redirects applied before routing.
type SiteConfig struct {
	BaseURL    string
	File       string
	SitemapOut string
	Redirects  map[string]string
}

type siteFile struct {
	BaseURL   string            `yaml:"base_url"`
	Redirects map[string]string `yaml:"redirects"`
}

// loadFile merges the YAML site file into c. A missing file is not an error;
// SITE_BASE_URL takes precedence over the file's base_url.
func (c *SiteConfig) loadFile() error {
	if c.File == "" {
		return nil
	}
	raw, err := os.ReadFile(c.File)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read site file: %w", err)
	}

	var f siteFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("failed to parse site file %s: %w", c.File, err)
	}

	if c.BaseURL == "" {
		c.BaseURL = strings.TrimRight(f.BaseURL, "/")
	}
	c.Redirects = make(map[string]string, len(f.Redirects))
	for from, to := range f.Redirects {
		if !strings.HasPrefix(from, "/") || !strings.HasPrefix(to, "/") {
			return fmt.Errorf("site file %s: redirect %q -> %q must use absolute paths", c.File, from, to)
		}
		if from == to {
			return fmt.Errorf("site file %s: redirect %q points to itself", c.File, from)
		}
		c.Redirects[from] = to
	}
	return nil
}
