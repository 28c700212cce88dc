package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gestureflow/internal/gesture"
	"github.com/dshills/gestureflow/internal/gesture/queue"
)

const displayHistory = 32

// display is the demo consumer: it renders forwarded events to the
// terminal and acknowledges each one locally. Acknowledging from inside
// the send callback exercises the queue's synchronous ack path.
type display struct {
	mu     sync.Mutex
	screen tcell.Screen
	queue  *queue.Queue
	lines  []string
}

func newDisplay(screen tcell.Screen) *display {
	return &display{screen: screen}
}

// attach hands the display its queue. Needed because the queue itself
// requires the client at construction.
func (d *display) attach(q *queue.Queue) {
	d.mu.Lock()
	d.queue = q
	d.mu.Unlock()
}

// SendEventImmediately implements queue.Client.
func (d *display) SendEventImmediately(ev gesture.Event) {
	d.push(fmt.Sprintf("-> %-13s pos=(%3.0f,%3.0f) d=(%+4.0f,%+4.0f)",
		ev.Type, ev.X, ev.Y, ev.DeltaX, ev.DeltaY))

	d.mu.Lock()
	q := d.queue
	d.mu.Unlock()
	if q == nil {
		return
	}

	trace := gesture.Trace{}
	trace.Add("display")
	q.AcknowledgeEvent(queue.AckSourceLocal, queue.AckResultConsumed, ev.Type, trace)
}

// OnEventAck implements queue.Client.
func (d *display) OnEventAck(ev gesture.Event, source queue.AckSource, result queue.AckResult) {
	d.push(fmt.Sprintf("<- %-13s %s/%s marks=%d",
		ev.Type, source, result, ev.Trace.Len()))
	d.redraw()
}

func (d *display) push(line string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	stamp := time.Now().Format("15:04:05.000")
	d.lines = append(d.lines, stamp+" "+line)
	if len(d.lines) > displayHistory {
		d.lines = d.lines[len(d.lines)-displayHistory:]
	}
}

func (d *display) redraw() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.screen.Clear()
	row := 0
	drawString(d.screen, 0, row, "gestureflow  (wheel: scroll, ctrl+wheel: pinch, f: stop fling, q: quit)")
	row++

	if d.queue != nil {
		if m := d.queue.Metrics(); m != nil {
			s := m.Snapshot()
			drawString(d.screen, 0, row, fmt.Sprintf(
				"forwarded=%d deferred=%d absorbed=%d flushed=%d acked=%d unexpected=%d",
				s.Forwarded, s.Deferred, s.Absorbed, s.Flushed, s.Acked, s.UnexpectedAcks))
			row++
		}
	}
	row++

	for _, line := range d.lines {
		drawString(d.screen, 0, row, line)
		row++
	}
	d.screen.Show()
}

func drawString(s tcell.Screen, x, y int, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
