// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gioui.org/x/sideslip/f32"
	"gioui.org/x/sideslip/headless"
	"gioui.org/x/sideslip/internal/config"
	"gioui.org/x/sideslip/io/pointer"
	"gioui.org/x/sideslip/widget"
)

// Each terminal cell shows two vertically stacked pixels with the
// upper half block character.
const halfBlock = "▀"

// chromeRows are the rows below the panel used for status and help.
const chromeRows = 2

type frameMsg time.Time

type keyMap struct {
	Open   key.Binding
	Close  key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Open:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
		Close:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "close")),
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Close, k.Toggle, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type model struct {
	cfg  config.Config
	host *headless.Host
	keys keyMap
	help help.Model

	// pressed is set while the mouse button is down.
	pressed bool
	// ticking is set while frame ticks are scheduled.
	ticking bool
	status  string
	err     error
}

var statusStyle = lipgloss.NewStyle().Faint(true)

func runTUI(cfg config.Config) error {
	m := newModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.err
}

func newModel(cfg config.Config) *model {
	return &model{
		cfg:    cfg,
		keys:   newKeyMap(),
		help:   help.New(),
		status: "drag the content sideways",
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, (msg.Height-chromeRows)*2
		if w < 1 || h < 1 {
			return m, nil
		}
		if m.host != nil {
			m.host.Resize(w, h)
			return m, nil
		}
		m.host = headless.NewHost(w, h)
		if err := m.cfg.Apply(m.host.Slip); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.host.Slip.SetListener(widget.ListenerFuncs{
			Open:  func() { m.notify("menu opened") },
			Close: func() { m.notify("menu closed") },
		})
		log.Printf("window %dx%d, offset %v", w, h, m.host.Slip.Offset())
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case m.host == nil:
		case key.Matches(msg, m.keys.Open):
			m.host.Slip.OpenMenu()
		case key.Matches(msg, m.keys.Close):
			m.host.Slip.CloseMenu()
		case key.Matches(msg, m.keys.Toggle):
			if m.host.Slip.IsOpen() {
				m.host.Slip.CloseMenu()
			} else {
				m.host.Slip.OpenMenu()
			}
		}
		return m, m.animate()
	case tea.MouseMsg:
		if m.host == nil {
			return m, nil
		}
		if e, ok := m.pointerEvent(tea.MouseEvent(msg)); ok {
			m.host.Slip.Touch(e)
		}
		return m, m.animate()
	case frameMsg:
		m.ticking = m.host.Tick(time.Time(msg))
		if m.ticking {
			return m, tick()
		}
	}
	return m, nil
}

func (m *model) notify(status string) {
	m.status = status
	log.Print(status)
}

// pointerEvent converts a mouse event to a pointer event in pixel
// coordinates. Only the left button drives the panel.
func (m *model) pointerEvent(me tea.MouseEvent) (pointer.Event, bool) {
	var k pointer.Kind
	switch me.Action {
	case tea.MouseActionPress:
		if me.Button != tea.MouseButtonLeft {
			return pointer.Event{}, false
		}
		m.pressed = true
		k = pointer.Press
	case tea.MouseActionMotion:
		if !m.pressed {
			return pointer.Event{}, false
		}
		k = pointer.Move
	case tea.MouseActionRelease:
		if !m.pressed {
			return pointer.Event{}, false
		}
		m.pressed = false
		k = pointer.Release
	default:
		return pointer.Event{}, false
	}
	// The center of the cell.
	pos := f32.Pt(float32(me.X)+.5, float32(me.Y*2)+1)
	return pointer.Event{
		Kind:     k,
		Source:   pointer.Mouse,
		Pointers: []pointer.Pointer{{Position: pos}},
	}, true
}

// animate schedules frame ticks if an animation started.
func (m *model) animate() tea.Cmd {
	if m.ticking || !m.host.Anim.Active() {
		return nil
	}
	m.ticking = true
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *model) View() string {
	if m.host == nil {
		return ""
	}
	var b strings.Builder
	renderCells(&b, m.host.Frame())
	s := m.host.Slip
	fmt.Fprintf(&b, "%s\n", statusStyle.Render(fmt.Sprintf("%s · %v · open %v · pull %.0f/%.0f",
		m.status, s.Direction(), s.IsOpen(), s.Pull(), s.Offset())))
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderCells draws img with two pixels per cell, merging runs of
// equal cells into one styled string.
func renderCells(b *strings.Builder, img *image.RGBA) {
	r := img.Bounds()
	for y := r.Min.Y; y+1 < r.Max.Y; y += 2 {
		run := 0
		var top, bottom color.RGBA
		flush := func() {
			if run == 0 {
				return
			}
			st := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(top))).
				Background(lipgloss.Color(hex(bottom)))
			b.WriteString(st.Render(strings.Repeat(halfBlock, run)))
			run = 0
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			t, bt := img.RGBAAt(x, y), img.RGBAAt(x, y+1)
			if run > 0 && (t != top || bt != bottom) {
				flush()
			}
			top, bottom = t, bt
			run++
		}
		flush()
		b.WriteByte('\n')
	}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
