package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/nearfal08/nexus/internal/composer"
	"github.com/nearfal08/nexus/internal/config"
	"github.com/nearfal08/nexus/internal/pagefile"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor [pagefile]",
	Short: "Diagnose configuration and page file problems",
	Long: `Doctor checks the active configuration and, when given a page file, the
page input itself. It reports:

- Configuration validation failures
- Unknown region keys in the page file
- Regions whose content is blank (present but suppressed at compose time)
- Slide content without a matching theme slot

Examples:
  nexus doctor                      # Check configuration only
  nexus doctor page.yml             # Also check a page file
  nexus doctor page.yml --format yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDoctor,
}

var doctorFormat string

// DiagnosticResult represents the result of a diagnostic check
type DiagnosticResult struct {
	Name    string `yaml:"name"`
	Status  string `yaml:"status"` // "ok", "warning", "error"
	Message string `yaml:"message"`
}

// DoctorReport represents the complete diagnostic report
type DoctorReport struct {
	Timestamp time.Time          `yaml:"timestamp"`
	Results   []DiagnosticResult `yaml:"results"`
	Errors    int                `yaml:"errors"`
	Warnings  int                `yaml:"warnings"`
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().StringVar(&doctorFormat, "format", "text", "Output format (text, yaml)")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	report := &DoctorReport{Timestamp: time.Now()}

	cfg, err := config.Load()
	if err != nil {
		report.add("configuration", "error", err.Error())
	} else {
		report.add("configuration", "ok", "configuration is valid")
		if !cfg.Theme.Slideshow.Enabled {
			report.add("slideshow", "warning", "slideshow is disabled; front pages render without a slider")
		}
	}

	if len(args) == 1 && cfg != nil {
		diagnosePageFile(report, args[0], cfg)
	}

	for _, r := range report.Results {
		switch r.Status {
		case "error":
			report.Errors++
		case "warning":
			report.Warnings++
		}
	}

	if doctorFormat == "yaml" {
		out, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Print(string(out))
	} else {
		for _, r := range report.Results {
			fmt.Printf("[%s] %s: %s\n", strings.ToUpper(r.Status), r.Name, r.Message)
		}
		fmt.Printf("\n%d error(s), %d warning(s)\n", report.Errors, report.Warnings)
	}

	if report.Errors > 0 {
		return fmt.Errorf("doctor found %d error(s)", report.Errors)
	}
	return nil
}

func diagnosePageFile(report *DoctorReport, path string, cfg *config.Config) {
	data, err := os.ReadFile(path)
	if err != nil {
		report.add("page file", "error", err.Error())
		return
	}

	regions, page, unknown, err := pagefile.Parse(data, cfg)
	if err != nil {
		report.add("page file", "error", err.Error())
		return
	}
	report.add("page file", "ok", fmt.Sprintf("parsed %d region(s)", len(regions)))

	for _, name := range unknown {
		report.add("regions", "warning", fmt.Sprintf("unknown region %q will be ignored", name))
	}
	for _, name := range composer.KnownRegions() {
		if region, ok := regions[name]; ok && !region.Present() {
			report.add("regions", "warning", fmt.Sprintf("region %q is blank and will be suppressed", name))
		}
	}

	if extra := len(page.Slides) - len(cfg.Theme.Slideshow.Slides); extra > 0 {
		report.add("slides", "warning", fmt.Sprintf("%d slide(s) have no matching theme slot and will not render", extra))
	}
	if page.IsFront && !cfg.Theme.Slideshow.Enabled && page.SlideshowDisplay {
		report.add("slides", "warning", "slideshow_display is set but the theme slideshow is disabled")
	}
}

func (r *DoctorReport) add(name, status, message string) {
	r.Results = append(r.Results, DiagnosticResult{Name: name, Status: status, Message: message})
}
