package tcellsource

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gestureflow/internal/gesture"
)

func testConfig() Config {
	return Config{
		ScrollEndQuiet:         100 * time.Millisecond,
		SynthesizeFlings:       true,
		FlingVelocityThreshold: 20,
		WheelDelta:             3,
	}
}

func wheelAt(x, y int, buttons tcell.ButtonMask, mods tcell.ModMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, mods)
}

func eventTypes(events []gesture.Event) []gesture.Type {
	types := make([]gesture.Type, len(events))
	for i, ev := range events {
		types[i] = ev.Type
	}
	return types
}

func wantTypes(t *testing.T, events []gesture.Event, want ...gesture.Type) {
	t.Helper()
	got := eventTypes(events)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFirstWheelTickOpensScroll(t *testing.T) {
	tr := NewTranslator(testConfig())

	events := tr.Translate(wheelAt(4, 7, tcell.WheelDown, 0))
	wantTypes(t, events, gesture.TypeScrollBegin, gesture.TypeScrollUpdate)

	if events[1].DeltaY != 3 {
		t.Errorf("DeltaY = %g, want 3 (wheel-down is positive)", events[1].DeltaY)
	}
	if events[1].X != 4 || events[1].Y != 7 {
		t.Errorf("position = (%g, %g), want (4, 7)", events[1].X, events[1].Y)
	}
	if !tr.Scrolling() {
		t.Error("Scrolling() = false after a wheel tick")
	}
}

func TestLaterTicksAreUpdatesOnly(t *testing.T) {
	tr := NewTranslator(testConfig())

	tr.Translate(wheelAt(0, 0, tcell.WheelDown, 0))
	events := tr.Translate(wheelAt(0, 0, tcell.WheelUp, 0))
	wantTypes(t, events, gesture.TypeScrollUpdate)

	if events[0].DeltaY != -3 {
		t.Errorf("DeltaY = %g, want -3 (wheel-up is negative)", events[0].DeltaY)
	}
}

func TestHorizontalWheel(t *testing.T) {
	tr := NewTranslator(testConfig())

	events := tr.Translate(wheelAt(0, 0, tcell.WheelRight, 0))
	wantTypes(t, events, gesture.TypeScrollBegin, gesture.TypeScrollUpdate)
	if events[1].DeltaX != 3 {
		t.Errorf("DeltaX = %g, want 3", events[1].DeltaX)
	}
}

func TestCtrlWheelIsPinch(t *testing.T) {
	tr := NewTranslator(testConfig())

	events := tr.Translate(wheelAt(0, 0, tcell.WheelUp, tcell.ModCtrl))
	wantTypes(t, events, gesture.TypePinchBegin, gesture.TypePinchUpdate)

	events = tr.Translate(wheelAt(0, 0, tcell.WheelUp, tcell.ModCtrl))
	wantTypes(t, events, gesture.TypePinchUpdate)
}

func TestFlushBeforeQuietIsEmpty(t *testing.T) {
	tr := NewTranslator(testConfig())
	tr.Translate(wheelAt(0, 0, tcell.WheelDown, 0))

	if events := tr.Flush(time.Now()); events != nil {
		t.Errorf("Flush() inside the quiet window = %v, want nil", eventTypes(events))
	}
}

func TestFlushClosesScroll(t *testing.T) {
	tr := NewTranslator(testConfig())
	tr.Translate(wheelAt(0, 0, tcell.WheelDown, 0))

	events := tr.Flush(time.Now().Add(time.Second))
	wantTypes(t, events, gesture.TypeScrollEnd)
	if tr.Scrolling() {
		t.Error("Scrolling() = true after flush")
	}

	// A later flush has nothing left to close.
	if events := tr.Flush(time.Now().Add(2 * time.Second)); events != nil {
		t.Errorf("second Flush() = %v, want nil", eventTypes(events))
	}
}

func TestFlushSynthesizesFlingForFastScroll(t *testing.T) {
	tr := NewTranslator(testConfig())

	// Two ticks 10ms apart: 3 rows / 0.01s = 300 rows/s, over threshold.
	first := tcell.NewEventMouse(0, 0, tcell.WheelDown, 0)
	tr.Translate(first)
	time.Sleep(10 * time.Millisecond)
	tr.Translate(tcell.NewEventMouse(0, 0, tcell.WheelDown, 0))

	events := tr.Flush(time.Now().Add(time.Second))
	wantTypes(t, events, gesture.TypeScrollEnd, gesture.TypeFlingStart)
	if events[1].VelocityY <= 0 {
		t.Errorf("fling VelocityY = %g, want positive", events[1].VelocityY)
	}
}

func TestFlushSkipsFlingWhenDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.SynthesizeFlings = false
	tr := NewTranslator(cfg)

	tr.Translate(wheelAt(0, 0, tcell.WheelDown, 0))
	time.Sleep(10 * time.Millisecond)
	tr.Translate(wheelAt(0, 0, tcell.WheelDown, 0))

	events := tr.Flush(time.Now().Add(time.Second))
	wantTypes(t, events, gesture.TypeScrollEnd)
}

func TestFlushClosesPinch(t *testing.T) {
	tr := NewTranslator(testConfig())
	tr.Translate(wheelAt(0, 0, tcell.WheelUp, tcell.ModCtrl))

	events := tr.Flush(time.Now().Add(time.Second))
	wantTypes(t, events, gesture.TypePinchEnd)
}

func TestButtonPressIsOtherGesture(t *testing.T) {
	tr := NewTranslator(testConfig())

	events := tr.Translate(tcell.NewEventMouse(3, 5, tcell.Button1, 0))
	wantTypes(t, events, gesture.TypeOther)
	if events[0].X != 3 || events[0].Y != 5 {
		t.Errorf("position = (%g, %g), want (3, 5)", events[0].X, events[0].Y)
	}

	// Holding the button produces no further events.
	if events := tr.Translate(tcell.NewEventMouse(3, 6, tcell.Button1, 0)); events != nil {
		t.Errorf("held button produced %v", eventTypes(events))
	}

	// Release produces nothing either.
	if events := tr.Translate(tcell.NewEventMouse(3, 6, tcell.ButtonNone, 0)); events != nil {
		t.Errorf("release produced %v", eventTypes(events))
	}
}
