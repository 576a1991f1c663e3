package assembler

import (
	"reflect"
	"testing"
)

func TestStripBulletMarkers(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"• point one", "point one"},
		{"- dashed", "dashed"},
		{"* starred", "starred"},
		{"– en dashed", "en dashed"},
		{"— em dashed", "em dashed"},
		{"•  - mixed run", "mixed run"},
		{"no marker", "no marker"},
		{"mid • dot stays", "mid • dot stays"},
		{"•", ""},
	}
	for _, tc := range cases {
		if got := StripBulletMarkers(tc.in); got != tc.want {
			t.Fatalf("StripBulletMarkers(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripBulletMarkers_Idempotent(t *testing.T) {
	for _, in := range []string{"• point", "- other", "plain"} {
		once := StripBulletMarkers(in)
		twice := StripBulletMarkers(once)
		if once != twice {
			t.Fatalf("stripping %q twice changed result: %q vs %q", in, once, twice)
		}
	}
}

func TestContentLines_DropsBlankLines(t *testing.T) {
	got := ContentLines("first\n\n  second  \n\n\nthird\n")
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ContentLines = %v, want %v", got, want)
	}
}

func TestContentLines_EmptyContent(t *testing.T) {
	if got := ContentLines(""); got != nil {
		t.Fatalf("expected nil for empty content, got %v", got)
	}
	if got := ContentLines("   \n  "); got != nil {
		t.Fatalf("expected nil for blank content, got %v", got)
	}
}
