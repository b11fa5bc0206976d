package composer

import "strings"

// Slide carries the per-slot content fields for one slideshow slot. All
// fields are optional strings supplied by the host.
type Slide struct {
	Heading     string
	Description string
	URL         string
}

// HasCaption reports whether the slide gets a caption block. The caption
// renders when either the heading or the description is non-blank; a missing
// heading still renders as an empty heading element.
func (s Slide) HasCaption() bool {
	return strings.TrimSpace(s.Heading) != "" || strings.TrimSpace(s.Description) != ""
}

// PageContext holds the scalar values consumed during one composition. It is
// constructed fresh per render by the caller and never mutated by the
// composer.
type PageContext struct {
	// IsFront marks the site front page; it gates the slideshow and the
	// slider asset attachment.
	IsFront bool
	// SlideshowDisplay toggles slideshow markup on the front page. The
	// slider asset is attached on the front page regardless of this flag.
	SlideshowDisplay bool
	// Slides supplies content per slideshow slot, indexed against the
	// theme's slot table. Extra entries beyond the slot count are ignored.
	Slides []Slide
	// PrefaceCol and FooterCol are column widths substituted verbatim into
	// CSS class strings. The caller guarantees sane values.
	PrefaceCol int
	FooterCol  int
	// BasePath prefixes static asset URLs, including the trailing slash.
	BasePath string
	// ThisYear, FrontPage and SiteName feed the closing colophon.
	ThisYear  string
	FrontPage string
	SiteName  string
}

// SlideAt returns the slide content for slot i, zero when the caller
// supplied fewer slides than the theme has slots.
func (pc PageContext) SlideAt(i int) Slide {
	if i < 0 || i >= len(pc.Slides) {
		return Slide{}
	}
	return pc.Slides[i]
}
