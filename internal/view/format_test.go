package view

import (
	"strings"
	"testing"
	"time"
)

func TestDecimalNumbers(t *testing.T) {
	cases := []struct {
		value    any
		decimals int
		want     string
	}{
		{1234.5, 1, "1234,5"},
		{1234.5, 2, "1234,50"},
		{10.0, 5, "10,00000"},
		{0.0, 2, "0,00"},
		{-3.14159, 3, "-3,142"},
		{7, 2, "7,00"},
	}
	for _, c := range cases {
		got := Decimal(c.value, c.decimals)
		if got != c.want {
			t.Errorf("Decimal(%v, %d) = %q, want %q", c.value, c.decimals, got, c.want)
		}
	}
}

func TestDecimalSeparatorContract(t *testing.T) {
	// Exactly one comma, the requested digit count after it, no
	// thousands grouping.
	got := Decimal(1234567.891, 2)
	if strings.Count(got, ",") != 1 {
		t.Errorf("expected exactly one comma in %q", got)
	}
	if strings.Contains(got, ".") {
		t.Errorf("unexpected dot separator in %q", got)
	}
	parts := strings.Split(got, ",")
	if len(parts[1]) != 2 {
		t.Errorf("expected 2 fractional digits in %q, got %d", got, len(parts[1]))
	}
}

func TestDecimalNilInputs(t *testing.T) {
	if got := Decimal(nil, 2); got != "" {
		t.Errorf("Decimal(nil) = %q, want empty", got)
	}
	var f *float64
	if got := Decimal(f, 2); got != "" {
		t.Errorf("Decimal(nil *float64) = %q, want empty", got)
	}
	var s *string
	if got := Decimal(s, 2); got != "" {
		t.Errorf("Decimal(nil *string) = %q, want empty", got)
	}
}

func TestDecimalStringNormalization(t *testing.T) {
	// Comma and dot decimal strings normalize identically.
	comma := Decimal("1234,5", 1)
	dot := Decimal("1234.5", 1)
	numeric := Decimal(1234.5, 1)
	if comma != numeric || dot != numeric {
		t.Errorf("string inputs diverge: comma=%q dot=%q numeric=%q", comma, dot, numeric)
	}
}

func TestDecimalUnparseablePassesThrough(t *testing.T) {
	for _, raw := range []string{"abc", "12,34,56", "n/a", ""} {
		if got := Decimal(raw, 2); got != raw {
			t.Errorf("Decimal(%q) = %q, want the input unchanged", raw, got)
		}
	}
}

func TestDecimalPointerValue(t *testing.T) {
	v := 2.5
	if got := Decimal(&v, 2); got != "2,50" {
		t.Errorf("Decimal(&2.5, 2) = %q, want 2,50", got)
	}
}

func TestDateItalianOrder(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 15, 4, 5, 0, time.UTC)
	if got := Date(&ts); got != "07/03/2024" {
		t.Errorf("Date = %q, want 07/03/2024", got)
	}
	if got := Date(nil); got != "" {
		t.Errorf("Date(nil) = %q, want empty", got)
	}
}
