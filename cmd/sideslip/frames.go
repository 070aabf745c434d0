// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"gioui.org/x/sideslip/headless"
)

const frameInterval = time.Second / 60

// recordOpening opens the menu of h and renders every frame of the
// animation, starting with the closed state and ending with the
// open state.
func recordOpening(h *headless.Host, interval time.Duration) []*image.RGBA {
	frames := []*image.RGBA{h.Frame()}
	h.Slip.OpenMenu()
	var now time.Time
	for h.Tick(now) {
		frames = append(frames, h.Frame())
		now = now.Add(interval)
	}
	return append(frames, h.Frame())
}

// writeSnapshot opens the menu of h without animation and writes
// the result to path.
func writeSnapshot(h *headless.Host, path string, scale float64) error {
	h.Slip.OpenMenu()
	// The second tick is past the end of the animation.
	var now time.Time
	for h.Tick(now) {
		now = now.Add(time.Hour)
	}
	return writePNG(path, resize(h.Frame(), scale))
}

// writeFrames encodes frames in parallel to numbered files in dir.
func writeFrames(frames []*image.RGBA, dir string, scale float64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var encodes errgroup.Group
	for i, img := range frames {
		path := filepath.Join(dir, fmt.Sprintf("frame%03d.png", i))
		img := img
		encodes.Go(func() error {
			return writePNG(path, resize(img, scale))
		})
	}
	return encodes.Wait()
}

func resize(img *image.RGBA, scale float64) image.Image {
	if scale == 1 {
		return img
	}
	b := img.Bounds()
	w := int(float64(b.Dx())*scale + .5)
	h := int(float64(b.Dy())*scale + .5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
