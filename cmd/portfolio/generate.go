package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dconn.dev/portfolio/internal/services"
	"dconn.dev/portfolio/internal/site"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <output-dir>",
		Short: "Write the portfolio as static HTML pages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			svc := services.NewPortfolioService(cfg.Projects, services.PageOptions{
				Title:    cfg.Title,
				Subtitle: cfg.Subtitle,
				Icon:     cfg.PageIcon,
				Notices:  cfg.Notices,
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generating %d categories from %s...\n", cfg.Projects.Len(), cfg.CatalogPath)

			res, err := site.Export(cmd.Context(), svc, site.Options{
				OutputDir: args[0],
				MediaRoot: cfg.MediaRoot(),
			})
			if err != nil {
				return err
			}

			for _, page := range res.Pages {
				fmt.Fprintf(out, "  Created %s\n", page)
			}
			if res.Images > 0 {
				fmt.Fprintf(out, "  Copied %d images\n", res.Images)
			}
			for _, image := range res.Missing {
				fmt.Fprintf(out, "  Warning: image %s not found\n", image)
			}
			fmt.Fprintln(out, "Done!")
			return nil
		},
	}
}
