// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gioui.org/x/sideslip/f32"
	"gioui.org/x/sideslip/headless"
	"gioui.org/x/sideslip/widget"
)

// isolate points every config location at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("SIDESLIP_CONFIG", "")
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	want := Config{Direction: "left", Scale: 0.6}
	if c != want {
		t.Errorf("have %+v, want %+v", c, want)
	}
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "sideslip.toml")
	data := "direction = \"right\"\nscale = 0.8\noffset = 150\nlog = \"/tmp/sideslip.log\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		label string
		arg   string
		env   string
	}{
		{"argument", path, ""},
		{"environment", "", path},
	} {
		t.Run(tc.label, func(t *testing.T) {
			t.Setenv("SIDESLIP_CONFIG", tc.env)
			c, err := Load(tc.arg)
			if err != nil {
				t.Fatal(err)
			}
			want := Config{Direction: "right", Scale: 0.8, Offset: 150, Log: "/tmp/sideslip.log"}
			if c != want {
				t.Errorf("have %+v, want %+v", c, want)
			}
		})
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	isolate(t)
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		t.Skip(err)
	}
	if err := os.MkdirAll(filepath.Join(cfgDir, "sideslip"), 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(cfgDir, "sideslip", "config.toml")
	if err := os.WriteFile(path, []byte("offset = 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Offset != 90 {
		t.Errorf("offset: have %v, want 90", c.Offset)
	}
}

func TestLoadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("SIDESLIP_SCALE", "0.5")
	t.Setenv("SIDESLIP_DIRECTION", "right")
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Scale != 0.5 || c.Direction != "right" {
		t.Errorf("have %+v, want scale 0.5 and direction right", c)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := isolate(t)
	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("loading a missing explicit file succeeded")
	}
}

func TestParseDirection(t *testing.T) {
	for _, tc := range []struct {
		name string
		dir  widget.Direction
		ok   bool
	}{
		{"left", widget.Left, true},
		{"Right", widget.Right, true},
		{"up", 0, false},
		{"", 0, false},
	} {
		d, err := ParseDirection(tc.name)
		if (err == nil) != tc.ok || (tc.ok && d != tc.dir) {
			t.Errorf("ParseDirection(%q): have %v, %v", tc.name, d, err)
		}
	}
}

func TestApply(t *testing.T) {
	main := headless.NewSurface(color.NRGBA{})
	s := widget.New(main, nil, headless.NewSurface(color.NRGBA{}), nil)
	s.Layout(f32.Pt(300, 600))

	if err := (Config{Direction: "sideways", Scale: 0.5}).Apply(s); err == nil {
		t.Error("invalid direction applied")
	}
	err := Config{Direction: "right", Scale: 1.5}.Apply(s)
	if !errors.Is(err, widget.ErrInvalidScale) {
		t.Errorf("have %v, want ErrInvalidScale", err)
	}
	if s.Direction() != widget.Left || s.Scale() != 0.6 {
		t.Errorf("invalid config changed the SideSlip: %v %v", s.Direction(), s.Scale())
	}
	if err := (Config{Direction: "right", Scale: 0.5, Offset: 120}).Apply(s); err != nil {
		t.Fatal(err)
	}
	if s.Direction() != widget.Right || s.Scale() != 0.5 || s.Offset() != 120 {
		t.Errorf("have %v %v %v, want Right 0.5 120", s.Direction(), s.Scale(), s.Offset())
	}
}
