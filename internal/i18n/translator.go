package i18n

import (
	"fmt"
	"strings"
)

// Translator resolves a message key against a catalog, interpolating
// {name} placeholders from params. It is passed into the view layer as a
// plain value so tests can substitute a stub catalog.
type Translator func(key string, params map[string]any) string

// NewTranslator returns a Translator over the catalog for lang, falling
// back to Italian (the plant's working language) for unknown languages and
// to the raw key for unknown messages. A missing key is a programming
// error, not a runtime one, so the key itself is the safest display value.
func NewTranslator(lang string) Translator {
	catalog, ok := catalogs[lang]
	if !ok {
		catalog = catalogs["it"]
	}
	return func(key string, params map[string]any) string {
		msg, ok := catalog[key]
		if !ok {
			msg = key
		}
		return interpolate(msg, params)
	}
}

// interpolate replaces {name} placeholders with the matching param value.
func interpolate(msg string, params map[string]any) string {
	if len(params) == 0 {
		return msg
	}
	for name, value := range params {
		msg = strings.ReplaceAll(msg, "{"+name+"}", fmt.Sprintf("%v", value))
	}
	return msg
}
