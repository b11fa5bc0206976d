package composer

import (
	"strings"

	"github.com/a-h/templ"
)

// Region names known to the composer. Keys outside this set carried by a
// RegionSet are treated as absent during composition.
const (
	RegionHeader         = "header"
	RegionMainNavigation = "main_navigation"
	RegionPrefaceFirst   = "preface_first"
	RegionPrefaceSecond  = "preface_second"
	RegionPrefaceThird   = "preface_third"
	RegionHighlighted    = "highlighted"
	RegionContentTop     = "content_top"
	RegionHelp           = "help"
	RegionContent        = "content"
	RegionFooter         = "footer"
	RegionFooterFirst    = "footer_first"
	RegionFooterSecond   = "footer_second"
	RegionFooterThird    = "footer_third"
	RegionFooterFourth   = "footer_fourth"
)

// KnownRegions returns the fixed region keys in page order.
func KnownRegions() []string {
	return []string{
		RegionHeader,
		RegionMainNavigation,
		RegionPrefaceFirst,
		RegionPrefaceSecond,
		RegionPrefaceThird,
		RegionHighlighted,
		RegionContentTop,
		RegionHelp,
		RegionContent,
		RegionFooter,
		RegionFooterFirst,
		RegionFooterSecond,
		RegionFooterThird,
		RegionFooterFourth,
	}
}

// Fragment is an optional pre-rendered markup value for one region. The zero
// value is absent. A fragment is considered present only when it was
// explicitly set and its markup is non-blank, so a literal "0" is present
// while "   " is not.
type Fragment struct {
	markup string
	set    bool
}

// Markup constructs a present fragment from pre-rendered markup.
func Markup(s string) Fragment {
	return Fragment{markup: s, set: true}
}

// Present reports whether the fragment carries renderable content.
func (f Fragment) Present() bool {
	return f.set && strings.TrimSpace(f.markup) != ""
}

// String returns the raw markup, empty for absent fragments.
func (f Fragment) String() string {
	if !f.set {
		return ""
	}
	return f.markup
}

// Component exposes the fragment as a templ component rendering its markup
// verbatim. Absent fragments render nothing.
func (f Fragment) Component() templ.Component {
	if !f.Present() {
		return templ.NopComponent
	}
	return templ.Raw(f.markup)
}

// RegionSet maps region names to their fragments. Missing keys behave as
// absent fragments; the set is read-only input for the duration of one
// compose call.
type RegionSet map[string]Fragment

// Get returns the fragment for a region, absent when the key is missing.
func (rs RegionSet) Get(name string) Fragment {
	return rs[name]
}

// AnyPresent reports whether at least one of the named regions has content.
func (rs RegionSet) AnyPresent(names ...string) bool {
	for _, name := range names {
		if rs.Get(name).Present() {
			return true
		}
	}
	return false
}
