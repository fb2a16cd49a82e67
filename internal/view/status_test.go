package view

import (
	"strings"
	"testing"

	"github.com/adrirubim/laserpack/internal/i18n"
)

func TestStatusLabelKnownCodes(t *testing.T) {
	labels := StatusLabels(i18n.NewTranslator("en"))
	want := map[int]string{
		0: "Planned",
		1: "Setup",
		2: "Launched",
		3: "In progress",
		4: "Suspended",
		5: "Completed",
	}
	for code, expected := range want {
		if got := StatusLabel(code, labels); got != expected {
			t.Errorf("StatusLabel(%d) = %q, want %q", code, got, expected)
		}
	}
}

func TestStatusLabelFallback(t *testing.T) {
	labels := StatusLabels(i18n.NewTranslator("it"))
	got := StatusLabel(99, labels)
	if !strings.Contains(got, "99") {
		t.Errorf("fallback label %q must embed the raw code", got)
	}

	// Negative codes are equally unknown, equally visible.
	got = StatusLabel(-1, labels)
	if !strings.Contains(got, "-1") {
		t.Errorf("fallback label %q must embed the raw code", got)
	}
}

func TestStatusLabelItalianCatalog(t *testing.T) {
	labels := StatusLabels(i18n.NewTranslator("it"))
	if got := StatusLabel(3, labels); got != "In produzione" {
		t.Errorf("StatusLabel(3) = %q, want In produzione", got)
	}
}
