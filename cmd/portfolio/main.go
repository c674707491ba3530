package main

import (
	"github.com/spf13/cobra"

	"dconn.dev/portfolio/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Serve or export a categorized project portfolio",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("catalog", "", "path to the projects file (JSON or YAML)")

	root.AddCommand(newServeCmd(), newGenerateCmd())
	return root
}

// loadConfig reads the environment, applies flag overrides and loads the catalog
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if path, _ := cmd.Flags().GetString("catalog"); path != "" {
		cfg.CatalogPath = path
	}
	if cmd.Flags().Lookup("addr") != nil {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.ServerAddr = addr
		}
	}
	cfg.LoadProjects()
	return cfg, nil
}
