// Package theme holds the presentational settings of the Nexus page layout:
// the slideshow slot table, column widths, and footer options. The composer
// reads these at construction; nothing here changes during a render.
package theme

import "fmt"

// Slide describes one fixed slideshow slot: the asset filename appended to
// the page's base path, and an optional call-to-action label override. An
// empty Label falls back to the localized "Read More" string, so every slot
// follows one label policy instead of per-slot literals.
type Slide struct {
	Image string `yaml:"image"`
	Label string `yaml:"label"`
}

// Slideshow configures the front-page slider. Slots are fixed at
// construction; slide content comes from the page context at compose time.
type Slideshow struct {
	Enabled bool    `yaml:"enabled"`
	Slides  []Slide `yaml:"slides"`
}

// Columns carries the default column widths for the preface and footer
// block rows. Values are substituted verbatim into class strings.
type Columns struct {
	Preface int `yaml:"preface"`
	Footer  int `yaml:"footer"`
}

// Footer configures the closing colophon extras.
type Footer struct {
	ShowCredit      bool   `yaml:"show_credit"`
	CreditText      string `yaml:"credit_text"`
	ShowSitemapLink bool   `yaml:"show_sitemap_link"`
	ShowContactLink bool   `yaml:"show_contact_link"`
}

// Theme is the full presentational configuration for one site.
type Theme struct {
	Slideshow Slideshow `yaml:"slideshow"`
	Columns   Columns   `yaml:"columns"`
	Footer    Footer    `yaml:"footer"`
}

// Default returns the stock Nexus theme: a three-slot slideshow, four-column
// preface blocks, and a plain colophon.
func Default() *Theme {
	return &Theme{
		Slideshow: Slideshow{
			Enabled: true,
			Slides: []Slide{
				{Image: "images/slide-1.jpg"},
				{Image: "images/slide-2.jpg"},
				{Image: "images/slide-3.jpg"},
			},
		},
		Columns: Columns{
			Preface: 4,
			Footer:  3,
		},
		Footer: Footer{
			CreditText: "Nexus",
		},
	}
}

// ColumnClass builds the grid class for a block of the given width. The
// width is substituted verbatim; no range is enforced.
func ColumnClass(width int) string {
	return fmt.Sprintf("col-sm-%d", width)
}
