// SPDX-License-Identifier: Unlicense OR MIT

// Package headless implements surfaces that record the properties
// a SideSlip sets on them, and a software window for rendering such
// surfaces to an image.
package headless

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"golang.org/x/image/colornames"
	"golang.org/x/image/vector"

	"gioui.org/x/sideslip/anim"
	"gioui.org/x/sideslip/f32"
	"gioui.org/x/sideslip/widget"
)

// Surface is a solid colored rectangle.
type Surface struct {
	Color        color.NRGBA
	Bounds       f32.Rectangle
	TranslationX float32
	ScaleX       float32
	ScaleY       float32
	Alpha        float32
	Visible      bool
}

// Window is a headless window.
type Window struct {
	size       image.Point
	Background color.NRGBA
}

// Inflater inflates surfaces by looking up their color.
type Inflater map[string]color.NRGBA

// Host wires a SideSlip to headless surfaces, and drives its
// animations from Tick.
type Host struct {
	Main, Menu, Scrim *Surface
	Anim              anim.Group
	Slip              *widget.SideSlip

	win *Window
}

var (
	_ widget.Surface  = (*Surface)(nil)
	_ widget.Inflater = Inflater(nil)
)

// NewSurface returns a visible, untransformed surface.
func NewSurface(c color.NRGBA) *Surface {
	return &Surface{
		Color:   c,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Visible: true,
	}
}

func (s *Surface) Size() f32.Point { return s.Bounds.Size() }
func (s *Surface) SetTranslationX(x float32) { s.TranslationX = x }
func (s *Surface) SetScaleX(v float32) { s.ScaleX = v }
func (s *Surface) SetScaleY(v float32) { s.ScaleY = v }
func (s *Surface) SetAlpha(a float32) { s.Alpha = a }
func (s *Surface) SetVisible(visible bool) { s.Visible = visible }
func (s *Surface) Layout(bounds f32.Rectangle) { s.Bounds = bounds }

// Transform returns the transformation from layout to window
// coordinates: scaling around the center followed by the
// translation.
func (s *Surface) Transform() f32.Affine2D {
	c := s.Bounds.Min.Add(s.Bounds.Max).Mul(.5)
	return f32.Affine2D{}.
		Scale(c, f32.Pt(s.ScaleX, s.ScaleY)).
		Offset(f32.Pt(s.TranslationX, 0))
}

// Rect returns the bounds of s in window coordinates.
func (s *Surface) Rect() f32.Rectangle {
	return s.Transform().TransformRect(s.Bounds)
}

// Inflate implements widget.Inflater.
func (inf Inflater) Inflate(id string) (widget.Surface, error) {
	c, ok := inf[id]
	if !ok {
		return nil, fmt.Errorf("headless: unknown layout %q", id)
	}
	return NewSurface(c), nil
}

// NewWindow creates a new headless window.
func NewWindow(width, height int) *Window {
	return &Window{
		size:       image.Point{X: width, Y: height},
		Background: color.NRGBA(colornames.White),
	}
}

// Size returns the window size.
func (w *Window) Size() image.Point {
	return w.size
}

// Frame renders the surfaces, back to front, into a new image.
// Invisible surfaces are skipped and alpha is applied to each
// surface's color.
func (w *Window) Frame(surfaces ...*Surface) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: w.size})
	draw.Draw(img, img.Bounds(), image.NewUniform(w.Background), image.Point{}, draw.Src)
	win := f32.Rectangle{Max: f32.Pt(float32(w.size.X), float32(w.size.Y))}
	for _, s := range surfaces {
		if !s.Visible || s.Alpha <= 0 {
			continue
		}
		r := s.Rect().Intersect(win)
		if r.Empty() {
			continue
		}
		vr := vector.NewRasterizer(w.size.X, w.size.Y)
		vr.DrawOp = draw.Over
		vr.MoveTo(r.Min.X, r.Min.Y)
		vr.LineTo(r.Max.X, r.Min.Y)
		vr.LineTo(r.Max.X, r.Max.Y)
		vr.LineTo(r.Min.X, r.Max.Y)
		vr.ClosePath()
		col := s.Color
		col.A = uint8(float32(col.A)*clamp1(s.Alpha) + .5)
		vr.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{})
	}
	return img
}

// NewHost returns a host for a window of the given size, with a
// laid out SideSlip.
func NewHost(width, height int) *Host {
	h := &Host{
		Main:  NewSurface(color.NRGBA(colornames.Steelblue)),
		Menu:  NewSurface(color.NRGBA(colornames.Darkslategray)),
		Scrim: NewSurface(color.NRGBA{A: 0x33}),
		win:   NewWindow(width, height),
	}
	h.Slip = widget.New(h.Main, h.Menu, h.Scrim, &h.Anim)
	h.Slip.Layout(f32.Pt(float32(width), float32(height)))
	return h
}

// Resize changes the window size and lays out the SideSlip again.
func (h *Host) Resize(width, height int) {
	h.win.size = image.Point{X: width, Y: height}
	h.Slip.Layout(f32.Pt(float32(width), float32(height)))
}

// Tick advances animations and reports whether more frames are
// needed.
func (h *Host) Tick(now time.Time) bool {
	return h.Anim.Tick(now)
}

// Frame renders the current state of the host.
func (h *Host) Frame() *image.RGBA {
	return h.win.Frame(h.Menu, h.Main, h.Scrim)
}

// Window returns the host window.
func (h *Host) Window() *Window {
	return h.win
}

func clamp1(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
