package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nearfal08/nexus/internal/assets"
	"github.com/nearfal08/nexus/internal/composer"
	"github.com/nearfal08/nexus/internal/config"
	"github.com/nearfal08/nexus/internal/i18n"
	"github.com/nearfal08/nexus/internal/pagefile"
	"github.com/nearfal08/nexus/internal/sanitize"
)

var composeCmd = &cobra.Command{
	Use:   "compose <pagefile>",
	Short: "Compose a page file into its HTML document",
	Long: `Compose reads a YAML page file (regions plus page context) and writes the
assembled HTML fragment to stdout or a file.

Examples:
  nexus compose page.yml                  # Compose to stdout
  nexus compose page.yml -o page.html     # Compose to a file
  nexus compose page.yml --assets         # Also list attached asset bundles`,
	Args: cobra.ExactArgs(1),
	RunE: runCompose,
}

var (
	composeOutput     string
	composeShowAssets bool
)

func init() {
	rootCmd.AddCommand(composeCmd)

	composeCmd.Flags().StringVarP(&composeOutput, "output", "o", "", "Write HTML to this file instead of stdout")
	composeCmd.Flags().BoolVar(&composeShowAssets, "assets", false, "List attached asset bundles on stderr")
}

func runCompose(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	regions, page, unknown, err := pagefile.Load(args[0], cfg)
	if err != nil {
		return fmt.Errorf("failed to load page file: %w", err)
	}
	for _, name := range unknown {
		fmt.Fprintf(os.Stderr, "Warning: unknown region %q ignored\n", name)
	}

	registry := assets.NewRegistry()
	pc, err := composer.New(&cfg.Theme, sanitize.HTML{}, i18n.New(cfg.Locale), registry, nil)
	if err != nil {
		return fmt.Errorf("failed to create composer: %w", err)
	}

	html, err := pc.Compose(regions, page)
	if err != nil {
		return fmt.Errorf("failed to compose page: %w", err)
	}

	if composeOutput != "" {
		if err := os.WriteFile(composeOutput, []byte(html), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", composeOutput)
	} else {
		fmt.Print(html)
	}

	if composeShowAssets {
		for _, b := range registry.Attached() {
			fmt.Fprintf(os.Stderr, "asset bundle: %s (scripts=%d styles=%d)\n", b.ID, len(b.Scripts), len(b.Styles))
		}
	}

	return nil
}
