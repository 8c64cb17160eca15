// Package host wires a varvara.Machine to an ebiten window: it drives
// the controller and per-frame screen events, composites the two framebuffers,
// and presents the result (§6).
package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"uxngo/varvara"
)

// Window implements ebiten.Game over a running machine.
type Window struct {
	Machine *varvara.Machine
	HUD     bool // overlay PC/stack state on the background plane

	composite   []byte
	lastButtons byte
}

// NewWindow builds a window over m, sized to its screen resolution.
func NewWindow(m *varvara.Machine) *Window {
	scr := m.Screen()
	return &Window{
		Machine:   m,
		composite: make([]byte, scr.Width()*scr.Height()*4),
	}
}

// Layout returns the machine's fixed resolution, forcing ebiten to
// scale the window rather than reflow the framebuffers, mirroring
// gintendo's Bus.Layout.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	scr := w.Machine.Screen()
	return scr.Width(), scr.Height()
}

// Update polls input and fires the controller event only when the
// button mask changed since the last tick or a character was typed
// this tick, per §4.F/§4.G's "fires on change" contract. The previous
// key byte is not tracked, so the same character typed on consecutive
// ticks fires each time. It then fires the screen event
// unconditionally to drive the guest's per-frame redraw.
func (w *Window) Update() error {
	buttons, key := pollButtons(), pollKey()
	if buttons != w.lastButtons || key != 0 {
		w.Machine.FireController(buttons, key)
		w.lastButtons = buttons
	}
	w.Machine.FireScreen()
	return nil
}

// Draw composites background under foreground with straight-alpha
// blending and writes the result to screen.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.HUD {
		DrawHUD(w.Machine.Screen().BG, w.Machine.CPU.String())
	}

	bg := w.Machine.Screen().BG.Pix
	fg := w.Machine.Screen().FG.Pix

	for i := 0; i < len(w.composite); i += 4 {
		a := fg[i+3]
		if a == 0 {
			copy(w.composite[i:i+4], bg[i:i+4])
			continue
		}
		if a == 0xFF {
			copy(w.composite[i:i+4], fg[i:i+4])
			continue
		}
		for c := 0; c < 3; c++ {
			src, dst := uint32(fg[i+c]), uint32(bg[i+c])
			w.composite[i+c] = byte((src*uint32(a) + dst*uint32(0xFF-a)) / 0xFF)
		}
		w.composite[i+3] = 0xFF
	}

	screen.WritePixels(w.composite)
}
