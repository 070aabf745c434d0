// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"errors"
	"fmt"
	"time"

	"gioui.org/x/sideslip/anim"
	"gioui.org/x/sideslip/f32"
	"gioui.org/x/sideslip/gesture"
	"gioui.org/x/sideslip/io/pointer"
)

// Surface is a host view transformed by a SideSlip.
type Surface interface {
	// Size returns the measured size of the surface.
	Size() f32.Point
	SetTranslationX(x float32)
	// SetScaleX and SetScaleY scale the surface around
	// its center.
	SetScaleX(s float32)
	SetScaleY(s float32)
	SetAlpha(a float32)
	SetVisible(visible bool)
	// Layout positions the surface in the coordinates
	// of the SideSlip.
	Layout(bounds f32.Rectangle)
}

// Listener is notified when the menu has finished opening or
// closing.
type Listener interface {
	OpenMenu()
	CloseMenu()
}

// ListenerFuncs adapts a pair of functions to a Listener. Nil
// functions are ignored.
type ListenerFuncs struct {
	Open, Close func()
}

// Inflater creates surfaces from layout identifiers.
type Inflater interface {
	Inflate(id string) (Surface, error)
}

// Direction is the side the menu is revealed on.
type Direction uint8

// Transition is the state of the menu animation.
type Transition uint8

// SideSlip is a side panel controller. All methods must be called
// from the goroutine that delivers pointer events and animation
// callbacks.
type SideSlip struct {
	main, menu, scrim Surface
	animator          anim.Animator
	listener          Listener
	inflater          Inflater

	direction Direction
	scale     float32
	offset    float32

	size        f32.Point
	scrimBounds f32.Rectangle

	open       bool
	transition Transition
	slide      gesture.Slide
	// pull is the horizontal distance the main content
	// has been dragged from its closed position.
	pull float32
	// press is the position of the press that started the
	// current sequence; pressed is false when that press was
	// dropped.
	press   f32.Point
	pressed bool

	// Current surface properties.
	tx, sx, sy, alpha float32
}

const (
	// Left reveals the menu on the left; the main content
	// slides to the right.
	Left Direction = iota
	Right
)

const (
	TransitionNone Transition = iota
	TransitionOpening
	TransitionClosing
)

const (
	defaultScale = 0.6
	duration     = 250 * time.Millisecond
)

var (
	// ErrInvalidScale is returned for scales outside (0, 1].
	ErrInvalidScale = errors.New("widget: scale out of range (0, 1]")
	// ErrNoInflater is returned by SetMenuLayout without an
	// Inflater.
	ErrNoInflater = errors.New("widget: no inflater")
)

// New returns a closed SideSlip for the main content, menu and
// scrim surfaces. The menu may be nil and set later. A nil
// Animator completes transitions immediately.
func New(main, menu, scrim Surface, a anim.Animator) *SideSlip {
	if a == nil {
		a = anim.Immediate{}
	}
	s := &SideSlip{
		main:     main,
		scrim:    scrim,
		animator: a,
		scale:    defaultScale,
		sx:       1,
		sy:       1,
	}
	scrim.SetVisible(false)
	if menu != nil {
		s.SetMenu(menu)
	}
	return s
}

// SetDirection sets the side of the menu.
func (s *SideSlip) SetDirection(d Direction) {
	s.direction = d
	s.layoutScrim()
}

// SetScale sets the scale of the main content while the menu is
// open. Scales outside (0, 1] are rejected and leave the current
// scale unchanged.
func (s *SideSlip) SetScale(scale float32) error {
	if !(scale > 0 && scale <= 1) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	s.scale = scale
	s.layoutScrim()
	return nil
}

// SetOffset sets the distance the main content moves when the
// menu opens. Negative distances are made positive. A zero
// offset is replaced by two thirds of the container width at the
// next Layout.
func (s *SideSlip) SetOffset(offset float32) {
	if offset < 0 {
		offset = -offset
	}
	s.offset = offset
	s.layoutScrim()
}

// SetMenu replaces the menu surface. The previous menu is hidden.
func (s *SideSlip) SetMenu(menu Surface) {
	if s.menu != nil && s.menu != menu {
		s.menu.SetVisible(false)
	}
	s.menu = menu
	menu.SetVisible(true)
	menu.SetAlpha(s.alpha)
	if s.laidOut() {
		menu.Layout(f32.Rectangle{Max: s.size})
	}
}

// SetInflater sets the Inflater used by SetMenuLayout.
func (s *SideSlip) SetInflater(inf Inflater) {
	s.inflater = inf
}

// SetMenuLayout replaces the menu with a surface inflated from
// the layout identifier id.
func (s *SideSlip) SetMenuLayout(id string) error {
	if s.inflater == nil {
		return ErrNoInflater
	}
	m, err := s.inflater.Inflate(id)
	if err != nil {
		return fmt.Errorf("widget: inflate menu %q: %w", id, err)
	}
	s.SetMenu(m)
	return nil
}

// SetListener sets the listener for open and close notifications,
// replacing any previous listener.
func (s *SideSlip) SetListener(l Listener) {
	s.listener = l
}

// IsOpen reports whether the menu was open at the end of the last
// transition.
func (s *SideSlip) IsOpen() bool {
	return s.open
}

// Transition reports the transition in progress.
func (s *SideSlip) Transition() Transition {
	return s.transition
}

// State reports the state of the slide gesture.
func (s *SideSlip) State() gesture.State {
	return s.slide.State()
}

// Pull returns the signed distance the main content is pulled from
// its closed position.
func (s *SideSlip) Pull() float32 {
	return s.pull
}

// Offset returns the distance the main content moves when the
// menu opens.
func (s *SideSlip) Offset() float32 {
	return s.offset
}

// Scale returns the scale of the open main content.
func (s *SideSlip) Scale() float32 {
	return s.scale
}

// Direction returns the side of the menu.
func (s *SideSlip) Direction() Direction {
	return s.direction
}

// ScrimBounds returns the area covered by the scrim when the menu
// is open.
func (s *SideSlip) ScrimBounds() f32.Rectangle {
	return s.scrimBounds
}

// Layout lays out the surfaces in a container of the given size.
func (s *SideSlip) Layout(size f32.Point) {
	s.size = size
	if s.offset <= 0 {
		s.offset = size.X * 2 / 3
	}
	full := f32.Rectangle{Max: size}
	s.main.Layout(full)
	if s.menu != nil {
		s.menu.Layout(full)
	}
	s.layoutScrim()
}

func (s *SideSlip) laidOut() bool {
	return s.size != (f32.Point{})
}

// layoutScrim places the scrim over the part of the open main
// content the menu leaves visible.
func (s *SideSlip) layoutScrim() {
	if !s.laidOut() {
		return
	}
	w, h := s.size.X, s.size.Y
	top := h/2 - h*s.scale/2
	bottom := h/2 + h*s.scale/2
	var b f32.Rectangle
	switch s.direction {
	case Left:
		b = f32.Rect(s.offset, top, s.offset+w*s.scale, bottom)
	case Right:
		b = f32.Rect(w-s.offset-w*s.scale, top, w-s.offset, bottom)
	}
	s.scrimBounds = b
	s.scrim.Layout(b)
}

// heading returns the drag direction that moves the menu away
// from its current resting state.
func (s *SideSlip) heading() gesture.Heading {
	if s.open == (s.direction == Right) {
		return gesture.Rightward
	}
	return gesture.Leftward
}

func (s *SideSlip) begin(e pointer.Event) {
	s.press = e.Position()
	s.pressed = true
	s.slide.Press(s.press.X)
}

// Intercept reports whether the SideSlip claims the pointer event
// stream from the main content. Hosts call Intercept for events
// delivered to the content, and route the rest of the sequence to
// Touch once it returns true. Nothing is claimed while a
// transition is in progress.
func (s *SideSlip) Intercept(e pointer.Event) bool {
	if e.Kind == pointer.Press {
		s.begin(e)
	}
	if s.transition != TransitionNone {
		return false
	}
	if e.Kind == pointer.Move {
		return s.slide.Detect(e, s.heading())
	}
	return s.slide.State() == gesture.StateDragging
}

// Touch processes a pointer event owned by the SideSlip and reports
// whether it was consumed. Events arriving during a transition are
// consumed and ignored.
func (s *SideSlip) Touch(e pointer.Event) bool {
	if s.transition != TransitionNone {
		if e.Kind == pointer.Press {
			s.pressed = false
		}
		return true
	}
	switch e.Kind {
	case pointer.Press:
		s.begin(e)
	case pointer.PointerPress, pointer.PointerRelease:
		s.slide.Forget()
	case pointer.Move:
		if s.slide.State() != gesture.StateDragging {
			s.slide.Detect(e, s.heading())
			break
		}
		s.drag(s.slide.Drag(e))
	case pointer.Release, pointer.Cancel:
		if s.slide.Release() {
			s.commit()
		} else if e.Kind == pointer.Release {
			s.tap(e.Position())
		}
	}
	return true
}

func (s *SideSlip) drag(dx float32) {
	s.pull += dx
	// The pull never crosses the closed position, but may
	// overshoot the open one.
	switch s.direction {
	case Left:
		if s.pull < 0 {
			s.pull = 0
		}
	case Right:
		if s.pull > 0 {
			s.pull = 0
		}
	}
	s.update()
}

// update applies the transform for the current pull.
func (s *SideSlip) update() {
	if s.offset <= 0 {
		return
	}
	p := abs(s.pull)
	scale := 1 - p*(1-s.scale)/s.offset
	// Scaling is around the center; compensate to keep the
	// inner edge following the pointer.
	dx := s.main.Size().X * (1 - scale) * 0.5
	if s.direction == Right {
		dx = -dx
	}
	s.setTranslationX(s.pull - dx)
	s.setScaleX(scale)
	s.setScaleY(scale)
	s.setAlpha(1 - scale + s.scale*(p/s.offset))
}

func (s *SideSlip) commit() {
	if s.offset > 0 && abs(s.pull) >= s.offset/2 {
		s.OpenMenu()
	} else {
		s.CloseMenu()
	}
}

// tap closes an open menu when a press and release both land on
// the scrim.
func (s *SideSlip) tap(pos f32.Point) {
	pressed := s.pressed
	s.pressed = false
	if pressed && s.open && s.press.In(s.scrimBounds) && pos.In(s.scrimBounds) {
		s.CloseMenu()
	}
}

// OpenMenu animates the menu open. It is ignored while a
// transition is in progress.
func (s *SideSlip) OpenMenu() {
	if s.transition != TransitionNone {
		return
	}
	s.transition = TransitionOpening
	s.scrim.SetVisible(true)
	w := s.main.Size().X
	cw := s.size.X
	if !s.laidOut() {
		cw = w
	}
	var tx float32
	switch s.direction {
	case Left:
		tx = s.offset - w*(1-s.scale)*0.5
	case Right:
		tx = cw - s.offset + w*(1-s.scale)*0.5 - w
	}
	s.animate(tx, s.scale, 1)
}

// CloseMenu animates the menu closed. It is ignored while a
// transition is in progress.
func (s *SideSlip) CloseMenu() {
	if s.transition != TransitionNone {
		return
	}
	s.transition = TransitionClosing
	s.scrim.SetVisible(false)
	s.animate(0, 1, 0)
}

func (s *SideSlip) animate(tx, scale, alpha float32) {
	s.animator.Animate(duration, anim.Linear, []anim.Track{
		{From: s.tx, To: tx, Set: s.setTranslationX},
		{From: s.sx, To: scale, Set: s.setScaleX},
		{From: s.sy, To: scale, Set: s.setScaleY},
		{From: s.alpha, To: alpha, Set: s.setAlpha},
	}, s.finish)
}

func (s *SideSlip) finish() {
	switch s.transition {
	case TransitionOpening:
		s.pull = s.offset
		if s.direction == Right {
			s.pull = -s.offset
		}
		s.transition = TransitionNone
		s.open = true
		s.scrim.SetVisible(true)
		if s.listener != nil {
			s.listener.OpenMenu()
		}
	case TransitionClosing:
		s.pull = 0
		s.transition = TransitionNone
		s.open = false
		s.scrim.SetVisible(false)
		if s.listener != nil {
			s.listener.CloseMenu()
		}
	}
}

func (s *SideSlip) setTranslationX(v float32) {
	s.tx = v
	s.main.SetTranslationX(v)
}

func (s *SideSlip) setScaleX(v float32) {
	s.sx = v
	s.main.SetScaleX(v)
}

func (s *SideSlip) setScaleY(v float32) {
	s.sy = v
	s.main.SetScaleY(v)
}

func (s *SideSlip) setAlpha(v float32) {
	s.alpha = v
	if s.menu != nil {
		s.menu.SetAlpha(v)
	}
}

// OpenMenu implements Listener.
func (l ListenerFuncs) OpenMenu() {
	if l.Open != nil {
		l.Open()
	}
}

// CloseMenu implements Listener.
func (l ListenerFuncs) CloseMenu() {
	if l.Close != nil {
		l.Close()
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		panic("invalid Direction")
	}
}

func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "TransitionNone"
	case TransitionOpening:
		return "TransitionOpening"
	case TransitionClosing:
		return "TransitionClosing"
	default:
		panic("invalid Transition")
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
