// Package pagefile loads the YAML page input the CLI feeds to the composer:
// a region map of pre-rendered markup plus the scalar page context. Values
// the file leaves out fall back to the site configuration, so a minimal file
// only needs the regions it wants filled.
package pagefile

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nearfal08/nexus/internal/composer"
	"github.com/nearfal08/nexus/internal/config"
)

// File mirrors the on-disk YAML structure.
type File struct {
	Regions map[string]string `yaml:"regions"`
	Page    Page              `yaml:"page"`
}

// Page carries the optional context overrides.
type Page struct {
	IsFront          bool         `yaml:"is_front"`
	SlideshowDisplay bool         `yaml:"slideshow_display"`
	Slides           []SlideInput `yaml:"slides"`
	PrefaceCol       int          `yaml:"preface_col"`
	FooterCol        int          `yaml:"footer_col"`
	ThisYear         string       `yaml:"this_year"`
}

// SlideInput is the per-slot slide content.
type SlideInput struct {
	Heading     string `yaml:"heading"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

// Load reads and parses a page file, merging it with site configuration
// defaults. Unknown region keys are returned so the caller can surface them;
// they never fail the load since unknown regions compose as absent anyway.
func Load(path string, cfg *config.Config) (composer.RegionSet, composer.PageContext, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, composer.PageContext{}, nil, fmt.Errorf("reading page file: %w", err)
	}
	return Parse(data, cfg)
}

// Parse builds the composer inputs from raw page file contents.
func Parse(data []byte, cfg *config.Config) (composer.RegionSet, composer.PageContext, []string, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, composer.PageContext{}, nil, fmt.Errorf("parsing page file: %w", err)
	}

	known := make(map[string]bool, len(composer.KnownRegions()))
	for _, name := range composer.KnownRegions() {
		known[name] = true
	}

	regions := make(composer.RegionSet, len(file.Regions))
	var unknown []string
	for name, markup := range file.Regions {
		if !known[name] {
			unknown = append(unknown, name)
			continue
		}
		regions[name] = composer.Markup(markup)
	}

	page := composer.PageContext{
		IsFront:          file.Page.IsFront,
		SlideshowDisplay: file.Page.SlideshowDisplay,
		PrefaceCol:       file.Page.PrefaceCol,
		FooterCol:        file.Page.FooterCol,
		ThisYear:         file.Page.ThisYear,
		BasePath:         cfg.Site.BasePath,
		FrontPage:        cfg.Site.FrontPage,
		SiteName:         cfg.Site.Name,
	}
	for _, s := range file.Page.Slides {
		page.Slides = append(page.Slides, composer.Slide{
			Heading:     s.Heading,
			Description: s.Description,
			URL:         s.URL,
		})
	}

	if page.PrefaceCol == 0 {
		page.PrefaceCol = cfg.Theme.Columns.Preface
	}
	if page.FooterCol == 0 {
		page.FooterCol = cfg.Theme.Columns.Footer
	}
	if page.ThisYear == "" {
		page.ThisYear = strconv.Itoa(time.Now().Year())
	}

	return regions, page, unknown, nil
}
