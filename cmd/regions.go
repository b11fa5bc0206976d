package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/nearfal08/nexus/internal/composer"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the region keys a page file can fill",
	Long: `Regions prints the fixed set of region keys the composer understands,
in page order, with the wrapper each one renders into. Regions left empty in
a page file are suppressed together with their wrappers.`,
	RunE: runRegions,
}

var regionsFormat string

func init() {
	rootCmd.AddCommand(regionsCmd)

	regionsCmd.Flags().StringVarP(&regionsFormat, "format", "f", "text", "Output format (text, yaml)")
}

// regionWrappers maps each region to a short description of its wrapper
// behavior.
var regionWrappers = map[string]string{
	composer.RegionHeader:         "branding block inside the masthead, escaped",
	composer.RegionMainNavigation: "navigation wrapper, always emitted",
	composer.RegionPrefaceFirst:   "preface row block, row emitted when any preface present",
	composer.RegionPrefaceSecond:  "preface row block, row emitted when any preface present",
	composer.RegionPrefaceThird:   "preface row block, row emitted when any preface present",
	composer.RegionHighlighted:    "highlighted well",
	composer.RegionContentTop:     "page title heading inside the main content area",
	composer.RegionHelp:           "main content area, concatenated before content",
	composer.RegionContent:        "main content area, concatenated after help",
	composer.RegionFooter:         "full-width footer block",
	composer.RegionFooterFirst:    "bottom row block, row emitted when any footer block present",
	composer.RegionFooterSecond:   "bottom row block, row emitted when any footer block present",
	composer.RegionFooterThird:    "bottom row block, row emitted when any footer block present",
	composer.RegionFooterFourth:   "bottom row block, row emitted when any footer block present",
}

func runRegions(cmd *cobra.Command, args []string) error {
	type regionInfo struct {
		Key     string `yaml:"key"`
		Name    string `yaml:"name"`
		Wrapper string `yaml:"wrapper"`
	}

	titler := cases.Title(language.English)
	infos := make([]regionInfo, 0, len(composer.KnownRegions()))
	for _, key := range composer.KnownRegions() {
		infos = append(infos, regionInfo{
			Key:     key,
			Name:    titler.String(strings.ReplaceAll(key, "_", " ")),
			Wrapper: regionWrappers[key],
		})
	}

	switch regionsFormat {
	case "yaml":
		out, err := yaml.Marshal(infos)
		if err != nil {
			return fmt.Errorf("failed to marshal regions: %w", err)
		}
		fmt.Print(string(out))
	default:
		for _, info := range infos {
			fmt.Printf("%-16s %-16s %s\n", info.Key, info.Name, info.Wrapper)
		}
	}
	return nil
}
