package services

import "testing"

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"tamil_nadu":  "Tamil Nadu",
		"shiva":       "Shiva",
		"WEST_BENGAL": "West Bengal",
		"":            "",
	}
	for in, want := range cases {
		if got := displayName(in); got != want {
			t.Errorf("displayName(%q) = %q; want %q", in, got, want)
		}
	}
}
