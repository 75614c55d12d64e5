package semver

import (
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []struct {
		in string
		ex string
	}{
		{"1.2.3", "1.2.3"},
		{"v1.2.3", "1.2.3"},
		{"0.1.0", "0.1.0"},
		{"1.2.3-alpha", "1.2.3-alpha"},
		{"1.2.3-alpha.1+build.1", "1.2.3-alpha.1+build.1"},
		{"10.20.30-rc.1", "10.20.30-rc.1"},
	}
	for _, c := range cases {
		v, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", c.in, err)
		}
		if s := v.String(); s != c.ex {
			t.Fatalf("Parse(%q).String() = %q; want %q", c.in, s, c.ex)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{"1.2", "1.2.3.4", "a.b.c", "1.2.x", ""}
	for _, c := range cases {
		if _, err := Parse(c); err == nil {
			t.Fatalf("Parse(%q) expected error", c)
		}
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a    string
		b    string
		want int
	}{
		{"1.2.3", "1.2.3", 0},
		{"1.2.3+build1", "1.2.3+build2", 0},
		{"1.0.0", "0.9.9", 1},
		{"1.2.2", "1.2.3", -1},
		{"1.2.3", "1.2.3-alpha", 1},
		{"1.2.3-alpha", "1.2.3-alpha.1", -1},
		{"1.0.0-alpha", "1.0.0-1", 1},
		{"1.0.0-2", "1.0.0-1", 1},
		{"1.0.0-alpha.2", "1.0.0-alpha.10", -1},
	}
	for _, c := range cases {
		a, err := Parse(c.a)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.a, err)
		}
		b, err := Parse(c.b)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.b, err)
		}
		if got := Compare(a, b); got != c.want {
			t.Fatalf("Compare(%q, %q) = %d; want %d", c.a, c.b, got, c.want)
		}
		if a.GT(b) != (c.want > 0) {
			t.Fatalf("GT(%q, %q) inconsistent with Compare", c.a, c.b)
		}
		if a.Equals(b) != (c.want == 0) {
			t.Fatalf("Equals(%q, %q) inconsistent with Compare", c.a, c.b)
		}
	}
}
