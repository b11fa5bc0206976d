// Package sanitize implements the text-sanitizing operations the composer
// needs: HTML escaping and tag stripping. Both are total functions over
// arbitrary input; absent input behaves as the empty string.
package sanitize

import (
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

// HTML implements composer.Escaper.
type HTML struct{}

// Escape HTML-escapes text for safe embedding.
func (HTML) Escape(text string) string {
	return templ.EscapeString(text)
}

// StripTags removes markup from text, keeping only its text content. The
// contents of script and style elements are dropped entirely since they are
// code, not prose. The tokenizer accepts any byte sequence, so this never
// fails on malformed markup.
func (HTML) StripTags(text string) string {
	if !strings.ContainsRune(text, '<') {
		return text
	}

	var sb strings.Builder
	skipDepth := 0
	z := html.NewTokenizer(strings.NewReader(text))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.StartTagToken:
			if name, _ := z.TagName(); isOpaqueElement(string(name)) {
				skipDepth++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); isOpaqueElement(string(name)) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				sb.Write(z.Text())
			}
		}
	}
}

func isOpaqueElement(name string) bool {
	return name == "script" || name == "style"
}
