package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Write sitemap.xml for the published site",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.db.Close()

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = a.cfg.Site.SitemapOut
		}
		baseURL, _ := cmd.Flags().GetString("base-url")
		if baseURL == "" {
			baseURL = a.cfg.Site.BaseURL
		}

		doc, err := a.svcs.Sitemap.Build(cmd.Context(), baseURL, time.Now())
		if err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(out, doc, 0o644); err != nil {
			return fmt.Errorf("failed to write sitemap: %w", err)
		}

		a.log.Info().Str("path", out).Str("base_url", baseURL).Int("bytes", len(doc)).Msg("Sitemap written")
		return nil
	},
}

func init() {
	sitemapCmd.Flags().String("out", "", "output file (default SITEMAP_OUT)")
	sitemapCmd.Flags().String("base-url", "", "site origin (default SITE_BASE_URL)")
}
