// Package i18n provides internationalization support for user-facing messages.
package i18n

import (
	"bytes"
	"strings"
	"text/template"

	"golang.org/x/text/language"
)

// Code is a machine-readable error code (duplicated from the errors package to
// avoid an import cycle).
type Code = string

// DefaultLocale is the canonical source locale for catalogs.
const DefaultLocale = "en-US"

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   string
	tag      language.Tag
	messages map[Code]string
}

// catalogs holds every compiled-in locale, base locale first so the matcher
// falls back to it.
var catalogs = []*Catalog{enUSCatalog, ruRUCatalog}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(catalogs))
	for _, c := range catalogs {
		c.tag = language.MustParse(c.locale)
		tags = append(tags, c.tag)
	}
	return language.NewMatcher(tags)
}()

// GetCatalog returns the catalog best matching the requested locale.
// Falls back to en-US when the locale is empty or unsupported.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = DefaultLocale
	}
	_, index := language.MatchStrings(matcher, requested)
	if index < 0 || index >= len(catalogs) {
		return catalogs[0]
	}
	return catalogs[index]
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		if fallback, ok := enUSCatalog.messages[code]; ok && c != enUSCatalog {
			tmpl = fallback
		} else {
			return code
		}
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}
