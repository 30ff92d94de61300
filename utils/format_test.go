package utils

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"unicode"
)

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestFormatPriceFallback(t *testing.T) {
	for _, v := range []any{math.NaN(), math.Inf(1), nil, "", "abc", struct{}{}, []int{1}} {
		if got := FormatPrice(v); got != "Consultar" {
			t.Errorf("FormatPrice(%#v) = %q", v, got)
		}
	}
	if got := FormatPriceOr(math.NaN(), "$0"); got != "$0" {
		t.Errorf("got %q", got)
	}
}

func TestFormatPriceNumbers(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{150000, "150000"},
		{150000.4, "150000"},
		{"350000", "350000"},
		{json.Number("99"), "99"},
		{int64(1), "1"},
	}
	for _, tc := range cases {
		got := FormatPrice(tc.in)
		if got == "Consultar" || strings.Contains(got, "NaN") {
			t.Errorf("FormatPrice(%#v) = %q", tc.in, got)
			continue
		}
		if d := digits(got); d != tc.want {
			t.Errorf("FormatPrice(%#v) = %q, digits %q, want %q", tc.in, got, d, tc.want)
		}
	}
}

func TestNewPriceFormatter(t *testing.T) {
	f, err := NewPriceFormatter("USD", "en-US")
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Format(1234); digits(got) != "1234" {
		t.Errorf("got %q", got)
	}
	if _, err := NewPriceFormatter("XX", "es-PY"); err == nil {
		t.Error("expected error for invalid currency")
	}
}

func TestToNumber(t *testing.T) {
	if v, ok := ToNumber(" 12.5 "); !ok || v != 12.5 {
		t.Errorf("got %v %v", v, ok)
	}
	var p *float64
	if _, ok := ToNumber(p); ok {
		t.Error("nil pointer should not coerce")
	}
}
