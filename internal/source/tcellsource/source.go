package tcellsource

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gestureflow/internal/gesture"
)

// Submitter receives translated gesture events, typically the dispatch
// queue.
type Submitter interface {
	SubmitEvent(ev gesture.Event) bool
}

// KeyHandler receives raw key events the source does not translate.
type KeyHandler func(ev *tcell.EventKey)

// Source pumps a tcell screen's mouse events through a Translator into
// a Submitter. A background ticker flushes quiescent sequences so a
// scroll still ends when the wheel simply stops.
type Source struct {
	screen     tcell.Screen
	translator *Translator
	submitter  Submitter
	onKey      KeyHandler

	stopOnce sync.Once
	stopCh   chan struct{}
	done     sync.WaitGroup
}

// NewSource creates a source. onKey may be nil.
func NewSource(screen tcell.Screen, translator *Translator, submitter Submitter, onKey KeyHandler) *Source {
	return &Source{
		screen:     screen,
		translator: translator,
		submitter:  submitter,
		onKey:      onKey,
		stopCh:     make(chan struct{}),
	}
}

// Run pumps events until Stop is called. It blocks; run it on its own
// goroutine when the caller has other work.
func (s *Source) Run() {
	s.done.Add(1)
	go s.flushLoop()
	defer s.done.Wait()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			s.stop()
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			s.stop()
			return
		case *tcell.EventMouse:
			s.submitAll(s.translator.Translate(ev))
		case *tcell.EventKey:
			if s.onKey != nil {
				s.onKey(ev)
			}
		}
	}
}

// Stop unblocks Run. Safe to call from any goroutine, more than once.
func (s *Source) Stop() {
	// PollEvent only returns when an event arrives, so post one.
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (s *Source) stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

// flushLoop closes quiescent sequences while the wheel is idle.
func (s *Source) flushLoop() {
	defer s.done.Done()
	ticker := time.NewTicker(25 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopCh:
			return
		case now := <-ticker.C:
			s.submitAll(s.translator.Flush(now))
		}
	}
}

func (s *Source) submitAll(events []gesture.Event) {
	for _, ev := range events {
		s.submitter.SubmitEvent(ev)
	}
}
