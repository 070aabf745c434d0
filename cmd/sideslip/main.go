// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"strconv"
	"strings"

	"gioui.org/x/sideslip/headless"
	"gioui.org/x/sideslip/internal/config"
	"gioui.org/x/sideslip/internal/log"
)

var (
	configPath = flag.String("config", "", "configuration file (TOML).")
	direction  = flag.String("direction", "", "menu side (left, right).")
	scale      = flag.Float64("scale", 0, "scale of the main content while the menu is open, in (0, 1].")
	offset     = flag.Float64("offset", 0, "distance the main content moves when the menu opens.")
	logPath    = flag.String("log", "", "log file.")
	snapshot   = flag.String("png", "", "render the open menu to a PNG file and exit.")
	framesDir  = flag.String("frames", "", "render the opening animation to PNG files in a directory and exit.")
	frameScale = flag.Float64("framescale", 1, "scale factor for rendered images.")
	size       = flag.String("size", "360x640", "window size for -png and -frames.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "sideslip: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	// Flags given on the command line override the configuration.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "direction":
			cfg.Direction = *direction
		case "scale":
			cfg.Scale = *scale
		case "offset":
			cfg.Offset = *offset
		case "log":
			cfg.Log = *logPath
		}
	})
	if _, err := config.ParseDirection(cfg.Direction); err != nil {
		return err
	}
	closer, err := log.Setup(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()
	stdlog.Printf("config: %+v", cfg)

	if *snapshot == "" && *framesDir == "" {
		return runTUI(cfg)
	}
	if *frameScale <= 0 {
		return fmt.Errorf("invalid -framescale %v", *frameScale)
	}
	w, h, err := parseSize(*size)
	if err != nil {
		return err
	}
	if *framesDir != "" {
		host, err := newHost(cfg, w, h)
		if err != nil {
			return err
		}
		frames := recordOpening(host, frameInterval)
		if err := writeFrames(frames, *framesDir, *frameScale); err != nil {
			return err
		}
		stdlog.Printf("wrote %d frames to %s", len(frames), *framesDir)
	}
	if *snapshot != "" {
		host, err := newHost(cfg, w, h)
		if err != nil {
			return err
		}
		if err := writeSnapshot(host, *snapshot, *frameScale); err != nil {
			return err
		}
		stdlog.Printf("wrote %s", *snapshot)
	}
	return nil
}

// newHost returns a configured headless host.
func newHost(cfg config.Config, width, height int) (*headless.Host, error) {
	h := headless.NewHost(width, height)
	if err := cfg.Apply(h.Slip); err != nil {
		return nil, err
	}
	return h, nil
}

// parseSize parses a size of the form <width>x<height>.
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, errors.New("size must be positive")
	}
	return w, h, nil
}
