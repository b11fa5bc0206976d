// Package i18n resolves the literal string keys the page layout uses to
// display strings for the active locale. The catalog set is fixed at build
// time; locale selection uses golang.org/x/text language matching so close
// variants (en-GB, es-MX) resolve to their base catalogs.
package i18n

import "golang.org/x/text/language"

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

var catalogs = map[language.Tag]map[string]string{
	language.English: {
		"Copyright": "Copyright",
		"Read More": "Read More",
		"Theme by":  "Theme by",
		"Sitemap":   "Sitemap",
		"Contact":   "Contact",
	},
	language.Spanish: {
		"Copyright": "Derechos de autor",
		"Read More": "Leer más",
		"Theme by":  "Tema por",
		"Sitemap":   "Mapa del sitio",
		"Contact":   "Contacto",
	},
}

// Translator implements composer.Translator for one locale.
type Translator struct {
	catalog map[string]string
}

// New selects the best catalog for the requested locale. Unknown or empty
// locales fall back to English.
func New(locale string) *Translator {
	_, index := language.MatchStrings(matcher, locale)
	return &Translator{catalog: catalogs[supported[index]]}
}

// Translate resolves a key to its localized display string. Keys outside
// the catalog pass through unchanged, so missing translations degrade to
// the source language instead of failing.
func (t *Translator) Translate(key string) string {
	if s, ok := t.catalog[key]; ok {
		return s
	}
	return key
}
