package ua

import (
	"testing"

	surfer "github.com/avct/uasurfer"
)

func TestParseDesktopChrome(t *testing.T) {
	raw := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/125.0.6422.60 Safari/537.36"

	got := Parse(raw)
	if got.Browser != "Chrome" {
		t.Errorf("Browser = %q, want Chrome", got.Browser)
	}
	if got.Device != "Desktop" {
		t.Errorf("Device = %q, want Desktop", got.Device)
	}
	if got.IsBot {
		t.Error("IsBot = true")
	}
	if got.Raw != raw {
		t.Error("Raw not preserved")
	}
}

func TestVersionToString(t *testing.T) {
	cases := map[surfer.Version]string{
		{}:                              "",
		{Major: 17}:                     "17",
		{Major: 17, Minor: 3}:           "17.3",
		{Major: 17, Minor: 3, Patch: 1}: "17.3.1",
	}
	for in, want := range cases {
		if got := versionToString(in); got != want {
			t.Errorf("versionToString(%+v) = %q, want %q", in, got, want)
		}
	}
}
