// Package composer assembles the HTML document for one Nexus page render
// from a fixed set of named, independently optional content regions.
//
// A PageComposer is constructed once with its theme, collaborator
// capabilities and operation allow-list, then composes any number of pages.
// Each composition is a single synchronous pass over the region set and page
// context; the only side effect is the idempotent slider asset attachment on
// front-page renders. Wrapper markup for a region is emitted only when the
// region has content, so an empty region set still yields the fixed page
// skeleton.
package composer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/nearfal08/nexus/internal/theme"
)

// PrimaryCol is the fixed column width of the main content area.
const PrimaryCol = 12

// SliderAsset names the script bundle the front page registers with the
// asset registry.
const SliderAsset = "nexus.flexslider"

// Escaper sanitizes text before it is embedded in markup. Implementations
// must treat absent input as empty and never fail on arbitrary strings.
type Escaper interface {
	// Escape HTML-escapes text for safe embedding.
	Escape(text string) string
	// StripTags removes markup from text before embedding it in captions.
	StripTags(text string) string
}

// Translator resolves a literal string key to a display string for the
// active locale.
type Translator interface {
	Translate(key string) string
}

// AssetRegistry records named script/style bundles a page requires.
// Attach is fire-and-forget and must be safe to invoke redundantly from
// concurrent renders.
type AssetRegistry interface {
	Attach(id string)
}

// PageComposer renders one page at a time from a RegionSet and PageContext.
// It holds no per-render state and is safe for concurrent use.
type PageComposer struct {
	theme      *theme.Theme
	escaper    Escaper
	translator Translator
	assets     AssetRegistry
	allowed    CapabilitySet
}

// New constructs a composer with a fixed operation allow-list. A nil allowed
// set grants all capabilities. Operations the configured theme will need are
// checked here, before any rendering begins: a theme with the slideshow
// enabled needs strip_tags and attach_asset on top of the escape and
// translate operations every page uses. Violations surface as
// *CapabilityError naming the construct that needed the operation.
func New(th *theme.Theme, esc Escaper, tr Translator, assets AssetRegistry, allowed CapabilitySet) (*PageComposer, error) {
	if th == nil {
		th = theme.Default()
	}
	if esc == nil {
		return nil, fmt.Errorf("composer: escaper is required")
	}
	if tr == nil {
		return nil, fmt.Errorf("composer: translator is required")
	}
	if assets == nil {
		return nil, fmt.Errorf("composer: asset registry is required")
	}
	if allowed == nil {
		allowed = AllCapabilities()
	}

	if err := allowed.require(CapEscape, "branding block"); err != nil {
		return nil, err
	}
	if err := allowed.require(CapTranslate, "colophon copyright label"); err != nil {
		return nil, err
	}
	if th.Slideshow.Enabled {
		if err := allowed.require(CapStripTags, "slideshow caption"); err != nil {
			return nil, err
		}
		if err := allowed.require(CapAttachAsset, "front page slider attachment"); err != nil {
			return nil, err
		}
	}

	return &PageComposer{
		theme:      th,
		escaper:    esc,
		translator: tr,
		assets:     assets,
		allowed:    allowed,
	}, nil
}

// Compose renders the page to a string. Missing or unknown region keys are
// treated as absent content and suppressed without error.
func (c *PageComposer) Compose(regions RegionSet, page PageContext) (string, error) {
	var sb strings.Builder
	if err := c.Write(&sb, regions, page); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write renders the page to w. The only error sources are the writer itself
// and a theme slideshow exceeding the construction-time allow-list, which
// New already rules out.
func (c *PageComposer) Write(w io.Writer, regions RegionSet, page PageContext) error {
	pw := &pageWriter{w: w}

	c.writeMasthead(pw, regions)
	c.writeSlideshow(pw, page)
	c.writePreface(pw, regions, page)
	c.writeHighlighted(pw, regions)
	c.writeMainContent(pw, regions)
	c.writeFooterBlock(pw, regions)
	c.writeBottom(pw, regions, page)
	c.writeColophon(pw, page)

	return pw.err
}

// Component exposes one page render as a templ component, so the composed
// page embeds into a templ layout the same way any generated component does.
func (c *PageComposer) Component(regions RegionSet, page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return c.Write(w, regions, page)
	})
}

// writeMasthead emits the masthead wrapper: the branding block when the
// header region has content, then the navigation wrapper unconditionally
// with the main navigation region inside it when present.
func (c *PageComposer) writeMasthead(pw *pageWriter, regions RegionSet) {
	pw.printf("<header id=\"masthead\" class=\"container\">\n")
	if header := regions.Get(RegionHeader); header.Present() {
		pw.printf("<div class=\"branding\">%s</div>\n", c.escaper.Escape(header.String()))
	}
	pw.printf("<nav id=\"main-menu\" class=\"main-menu\">")
	if nav := regions.Get(RegionMainNavigation); nav.Present() {
		pw.printf("%s", nav.String())
	}
	pw.printf("</nav>\n")
	pw.printf("</header>\n")
}

// writeSlideshow handles the front page slider. The asset attachment is a
// declarative "this page needs this script" registration and happens on
// every front-page render, even when the slideshow itself is hidden.
func (c *PageComposer) writeSlideshow(pw *pageWriter, page PageContext) {
	if !page.IsFront || !c.theme.Slideshow.Enabled {
		return
	}

	c.assets.Attach(SliderAsset)

	if !page.SlideshowDisplay {
		return
	}

	pw.printf("<div id=\"slideshow\" class=\"flexslider\">\n<ul class=\"slides\">\n")
	for i, slot := range c.theme.Slideshow.Slides {
		slide := page.SlideAt(i)
		pw.printf("<li>\n<img src=\"%s%s\" alt=\"\" />\n", page.BasePath, slot.Image)
		if slide.HasCaption() {
			// The heading element renders even when only the description
			// is present; stripping an absent heading yields "".
			pw.printf("<div class=\"flex-caption\">\n")
			pw.printf("<h2>%s</h2>\n", c.escaper.Escape(c.escaper.StripTags(slide.Heading)))
			pw.printf("<p>%s</p>\n", c.escaper.Escape(c.escaper.StripTags(slide.Description)))
			pw.printf("<a href=\"%s\" class=\"more-link\">%s</a>\n", c.escaper.Escape(slide.URL), c.slideLabel(slot))
			pw.printf("</div>\n")
		}
		pw.printf("</li>\n")
	}
	pw.printf("</ul>\n</div>\n")
}

// slideLabel resolves the call-to-action label for a slot: the slot's
// configured override, or the localized default.
func (c *PageComposer) slideLabel(slot theme.Slide) string {
	if slot.Label != "" {
		return c.escaper.Escape(slot.Label)
	}
	return c.escaper.Escape(c.translator.Translate("Read More"))
}

// writePreface emits the preface row only when at least one of the three
// preface regions has content, then each present region as its own block.
func (c *PageComposer) writePreface(pw *pageWriter, regions RegionSet, page PageContext) {
	prefaces := []string{RegionPrefaceFirst, RegionPrefaceSecond, RegionPrefaceThird}
	if !regions.AnyPresent(prefaces...) {
		return
	}
	pw.printf("<div id=\"preface\" class=\"row\">\n")
	for _, name := range prefaces {
		if region := regions.Get(name); region.Present() {
			pw.printf("<div class=\"preface-block %s\">%s</div>\n", theme.ColumnClass(page.PrefaceCol), region.String())
		}
	}
	pw.printf("</div>\n")
}

func (c *PageComposer) writeHighlighted(pw *pageWriter, regions RegionSet) {
	if region := regions.Get(RegionHighlighted); region.Present() {
		pw.printf("<div id=\"highlighted\" class=\"well\">%s</div>\n", region.String())
	}
}

// writeMainContent always emits the main content wrapper at the fixed
// primary column width. The content_top heading renders the region's actual
// value; help and content follow concatenated with no wrapper between them.
func (c *PageComposer) writeMainContent(pw *pageWriter, regions RegionSet) {
	pw.printf("<div id=\"main-content\" class=\"%s\">\n", theme.ColumnClass(PrimaryCol))
	if top := regions.Get(RegionContentTop); top.Present() {
		pw.printf("<h1 class=\"page-title\">%s</h1>\n", top.String())
	}
	pw.printf("%s%s", regions.Get(RegionHelp).String(), regions.Get(RegionContent).String())
	pw.printf("</div>\n")
}

// writeFooterBlock emits the single full-width footer block when present.
func (c *PageComposer) writeFooterBlock(pw *pageWriter, regions RegionSet) {
	if region := regions.Get(RegionFooter); region.Present() {
		pw.printf("<div class=\"footer-block %s\">%s</div>\n", theme.ColumnClass(PrimaryCol), region.String())
	}
}

// writeBottom emits the bottom row only when at least one of the four
// footer regions has content.
func (c *PageComposer) writeBottom(pw *pageWriter, regions RegionSet, page PageContext) {
	footers := []string{RegionFooterFirst, RegionFooterSecond, RegionFooterThird, RegionFooterFourth}
	if !regions.AnyPresent(footers...) {
		return
	}
	pw.printf("<div id=\"bottom\" class=\"row\">\n")
	for _, name := range footers {
		if region := regions.Get(name); region.Present() {
			pw.printf("<div class=\"footer-block %s\">%s</div>\n", theme.ColumnClass(page.FooterCol), region.String())
		}
	}
	pw.printf("</div>\n")
}

// writeColophon emits the closing colophon: the localized copyright line
// linking to the front page, the optional theme credit, and the optional
// static links.
func (c *PageComposer) writeColophon(pw *pageWriter, page PageContext) {
	pw.printf("<footer id=\"colophon\" class=\"clearfix\">\n")
	pw.printf("<p class=\"copyright\">%s &copy; %s <a href=\"%s\">%s</a></p>\n",
		c.escaper.Escape(c.translator.Translate("Copyright")),
		c.escaper.Escape(page.ThisYear),
		c.escaper.Escape(page.FrontPage),
		c.escaper.Escape(page.SiteName),
	)
	if c.theme.Footer.ShowCredit {
		pw.printf("<p class=\"credit\">%s %s</p>\n",
			c.escaper.Escape(c.translator.Translate("Theme by")),
			c.escaper.Escape(c.theme.Footer.CreditText),
		)
	}
	if c.theme.Footer.ShowSitemapLink || c.theme.Footer.ShowContactLink {
		pw.printf("<ul class=\"colophon-links\">\n")
		if c.theme.Footer.ShowSitemapLink {
			pw.printf("<li><a href=\"%ssitemap\">%s</a></li>\n", page.BasePath, c.escaper.Escape(c.translator.Translate("Sitemap")))
		}
		if c.theme.Footer.ShowContactLink {
			pw.printf("<li><a href=\"%scontact\">%s</a></li>\n", page.BasePath, c.escaper.Escape(c.translator.Translate("Contact")))
		}
		pw.printf("</ul>\n")
	}
	pw.printf("</footer>\n")
}

// pageWriter accumulates the first write error so the render loop stays
// linear. strings.Builder never errors, so Compose only fails for external
// writers.
type pageWriter struct {
	w   io.Writer
	err error
}

func (pw *pageWriter) printf(format string, args ...any) {
	if pw.err != nil {
		return
	}
	_, pw.err = fmt.Fprintf(pw.w, format, args...)
}
