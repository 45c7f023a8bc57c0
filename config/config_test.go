package config

import (
	"testing"

	"github.com/spf13/viper"
)

func Test_New(t *testing.T) {
	defer viper.Reset()
	viper.Reset()

	c := New()
	if c.Verbosity != 1 {
		t.Errorf("New() Verbosity = %d, want the default 1", c.Verbosity)
	}
	if c.GapChars != "-.~" {
		t.Errorf("New() GapChars = %q, want the default \"-.~\"", c.GapChars)
	}
	if c.LocateMismatches != 0 {
		t.Errorf("New() LocateMismatches = %d, want the default 0", c.LocateMismatches)
	}
	if c.HistBins != 20 {
		t.Errorf("New() HistBins = %d, want the default 20", c.HistBins)
	}

	// settings bound from flags or a file win over the defaults
	viper.Set("verbosity", 2)
	viper.Set("gap-chars", "-.")
	viper.Set("hist-bins", 40)

	c = New()
	if c.Verbosity != 2 {
		t.Errorf("New() Verbosity = %d, want 2", c.Verbosity)
	}
	if c.GapChars != "-." {
		t.Errorf("New() GapChars = %q, want \"-.\"", c.GapChars)
	}
	if c.HistBins != 40 {
		t.Errorf("New() HistBins = %d, want 40", c.HistBins)
	}
}
