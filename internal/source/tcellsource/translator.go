package tcellsource

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gestureflow/internal/gesture"
)

// DefaultWheelDelta is how many rows one wheel tick scrolls.
const DefaultWheelDelta = 3.0

// Config controls gesture synthesis.
type Config struct {
	// ScrollEndQuiet is how long wheel input must be quiet before the
	// scroll or pinch sequence is considered over.
	ScrollEndQuiet time.Duration

	// SynthesizeFlings emits a fling-start when a scroll sequence ends
	// above VelocityThreshold.
	SynthesizeFlings bool

	// FlingVelocityThreshold is the minimum ending velocity, in rows
	// per second, for a synthesized fling.
	FlingVelocityThreshold float64

	// WheelDelta is the scroll distance of one wheel tick in rows.
	// Zero means DefaultWheelDelta.
	WheelDelta float64
}

// DefaultTranslatorConfig returns translator defaults.
func DefaultTranslatorConfig() Config {
	return Config{
		ScrollEndQuiet:         150 * time.Millisecond,
		SynthesizeFlings:       true,
		FlingVelocityThreshold: 20,
		WheelDelta:             DefaultWheelDelta,
	}
}

// Translator converts tcell mouse events into gesture sequences. It is
// stateful: wheel ticks open and extend a scroll (or pinch, with Ctrl
// held) and Flush closes sequences after a quiet period.
type Translator struct {
	mu     sync.Mutex
	config Config

	scrolling bool
	pinching  bool
	lastWheel time.Time
	lastX     int
	lastY     int
	velX      float64
	velY      float64
	lastBtn   tcell.ButtonMask
}

// NewTranslator creates a translator.
func NewTranslator(config Config) *Translator {
	if config.WheelDelta <= 0 {
		config.WheelDelta = DefaultWheelDelta
	}
	return &Translator{config: config}
}

// Translate converts one mouse event into zero or more gesture events
// in dispatch order.
func (t *Translator) Translate(ev *tcell.EventMouse) []gesture.Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	dx, dy := wheelDeltas(ev.Buttons(), t.config.WheelDelta)
	if dx != 0 || dy != 0 {
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return t.pinchTick(ev, dx, dy)
		}
		return t.scrollTick(ev, dx, dy)
	}

	return t.buttonEvent(ev)
}

// Flush closes any sequence that has been quiet since before the
// deadline allows. It returns the closing events in dispatch order.
func (t *Translator) Flush(now time.Time) []gesture.Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.lastWheel.IsZero() || now.Sub(t.lastWheel) < t.config.ScrollEndQuiet {
		return nil
	}

	var out []gesture.Event
	if t.pinching {
		t.pinching = false
		out = append(out, t.eventAt(gesture.TypePinchEnd, now))
	}
	if t.scrolling {
		t.scrolling = false
		out = append(out, t.eventAt(gesture.TypeScrollEnd, now))
		if t.config.SynthesizeFlings && t.speed() >= t.config.FlingVelocityThreshold {
			fs := t.eventAt(gesture.TypeFlingStart, now)
			fs.VelocityX = t.velX
			fs.VelocityY = t.velY
			out = append(out, fs)
		}
	}
	t.velX, t.velY = 0, 0
	return out
}

// Scrolling reports whether a scroll sequence is open.
func (t *Translator) Scrolling() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scrolling
}

func (t *Translator) scrollTick(ev *tcell.EventMouse, dx, dy float64) []gesture.Event {
	var out []gesture.Event
	if !t.scrolling {
		t.scrolling = true
		t.velX, t.velY = 0, 0
		out = append(out, t.wheelEvent(ev, gesture.TypeScrollBegin, 0, 0))
	}
	t.updateVelocity(ev.When(), dx, dy)
	out = append(out, t.wheelEvent(ev, gesture.TypeScrollUpdate, dx, dy))
	t.noteWheel(ev)
	return out
}

func (t *Translator) pinchTick(ev *tcell.EventMouse, _, dy float64) []gesture.Event {
	var out []gesture.Event
	if !t.pinching {
		t.pinching = true
		out = append(out, t.wheelEvent(ev, gesture.TypePinchBegin, 0, 0))
	}
	// Wheel away zooms in, toward zooms out.
	out = append(out, t.wheelEvent(ev, gesture.TypePinchUpdate, 0, dy))
	t.noteWheel(ev)
	return out
}

func (t *Translator) buttonEvent(ev *tcell.EventMouse) []gesture.Event {
	btn := ev.Buttons() & tcell.ButtonMask(0xff)
	pressed := btn &^ t.lastBtn
	t.lastBtn = btn
	if pressed == 0 {
		return nil
	}
	x, y := ev.Position()
	out := gesture.NewAt(gesture.TypeOther, ev.When())
	out.X, out.Y = float64(x), float64(y)
	return []gesture.Event{out}
}

// updateVelocity derives rows-per-second from tick spacing.
func (t *Translator) updateVelocity(now time.Time, dx, dy float64) {
	if t.lastWheel.IsZero() {
		return
	}
	elapsed := now.Sub(t.lastWheel).Seconds()
	if elapsed <= 0 {
		return
	}
	t.velX = dx / elapsed
	t.velY = dy / elapsed
}

func (t *Translator) noteWheel(ev *tcell.EventMouse) {
	t.lastWheel = ev.When()
	t.lastX, t.lastY = ev.Position()
}

func (t *Translator) wheelEvent(ev *tcell.EventMouse, typ gesture.Type, dx, dy float64) gesture.Event {
	out := gesture.NewAt(typ, ev.When())
	x, y := ev.Position()
	out.X, out.Y = float64(x), float64(y)
	out.DeltaX, out.DeltaY = dx, dy
	return out
}

func (t *Translator) eventAt(typ gesture.Type, now time.Time) gesture.Event {
	out := gesture.NewAt(typ, now)
	out.X, out.Y = float64(t.lastX), float64(t.lastY)
	return out
}

func (t *Translator) speed() float64 {
	vx, vy := t.velX, t.velY
	if vx < 0 {
		vx = -vx
	}
	if vy < 0 {
		vy = -vy
	}
	if vx > vy {
		return vx
	}
	return vy
}

// wheelDeltas maps wheel buttons to scroll deltas. Wheel-down and
// wheel-right are positive.
func wheelDeltas(buttons tcell.ButtonMask, delta float64) (dx, dy float64) {
	if buttons&tcell.WheelUp != 0 {
		dy -= delta
	}
	if buttons&tcell.WheelDown != 0 {
		dy += delta
	}
	if buttons&tcell.WheelLeft != 0 {
		dx -= delta
	}
	if buttons&tcell.WheelRight != 0 {
		dx += delta
	}
	return dx, dy
}
