package i18n

import "testing"

func TestTranslatorLookup(t *testing.T) {
	tr := NewTranslator("it")
	if got := tr("order.status.3", nil); got != "In produzione" {
		t.Errorf("order.status.3 = %q, want In produzione", got)
	}
	tr = NewTranslator("en")
	if got := tr("order.status.3", nil); got != "In progress" {
		t.Errorf("order.status.3 = %q, want In progress", got)
	}
}

func TestTranslatorUnknownLanguageFallsBackToItalian(t *testing.T) {
	tr := NewTranslator("de")
	if got := tr("common.yes", nil); got != "Sì" {
		t.Errorf("common.yes = %q, want the Italian catalog", got)
	}
}

func TestTranslatorUnknownKeyReturnsKey(t *testing.T) {
	tr := NewTranslator("it")
	if got := tr("no.such.key", nil); got != "no.such.key" {
		t.Errorf("unknown key = %q, want the key itself", got)
	}
}

func TestTranslatorInterpolation(t *testing.T) {
	tr := func(key string, params map[string]any) string {
		return interpolate("Articolo {code} riga {line}", params)
	}
	got := tr("", map[string]any{"code": "LAS-7", "line": 3})
	if got != "Articolo LAS-7 riga 3" {
		t.Errorf("interpolated = %q", got)
	}
}
