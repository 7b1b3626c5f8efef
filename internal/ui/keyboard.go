package ui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/raymaze/internal/entity"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals report presses and auto-repeats, never releases.
const DefaultHoldWindow = 150 * time.Millisecond

// Action is a movement command bound to one or more keys.
type Action int

const (
	ActionForward Action = iota
	ActionBackward
	ActionTurnLeft
	ActionTurnRight
	actionCount
)

// Keyboard turns terminal key presses into per-frame held-key snapshots.
type Keyboard struct {
	screen   *Screen
	events   chan tcell.Event
	lastSeen [actionCount]time.Time
	window   time.Duration
	quit     bool
	now      func() time.Time

	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

// NewKeyboard creates a keyboard reading events from screen.
func NewKeyboard(screen *Screen, window time.Duration) *Keyboard {
	return &Keyboard{
		screen:  screen,
		events:  make(chan tcell.Event, 100),
		window:  window,
		now:     time.Now,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start pumps screen events into the keyboard's queue until the screen is
// closed or Stop is called. PollEvent blocks, so it runs on its own
// goroutine; the game loop drains the queue with Poll.
func (k *Keyboard) Start() {
	go func() {
		defer close(k.stopped)
		for {
			ev := k.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case k.events <- ev:
			case <-k.done:
				return
			}
		}
	}()
}

// Stop releases the event pump once nothing drains the queue any more.
// It is safe to call more than once.
func (k *Keyboard) Stop() {
	k.stopOnce.Do(func() { close(k.done) })
}

// Poll drains queued events and returns the keys held this frame and
// whether a quit was requested.
func (k *Keyboard) Poll() (entity.Input, bool) {
drain:
	for {
		select {
		case ev := <-k.events:
			k.handleEvent(ev)
		default:
			break drain
		}
	}

	now := k.now()
	return entity.Input{
		Forward:   k.held(ActionForward, now),
		Backward:  k.held(ActionBackward, now),
		TurnLeft:  k.held(ActionTurnLeft, now),
		TurnRight: k.held(ActionTurnRight, now),
	}, k.quit
}

// handleEvent processes a single terminal event.
func (k *Keyboard) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k.press(ev.Key(), ev.Rune(), k.now())
	case *tcell.EventResize:
		if k.screen != nil {
			k.screen.Sync()
		}
	}
}

// press records a key press.
func (k *Keyboard) press(key tcell.Key, r rune, at time.Time) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true

	case tcell.KeyUp:
		k.lastSeen[ActionForward] = at
	case tcell.KeyDown:
		k.lastSeen[ActionBackward] = at
	case tcell.KeyLeft:
		k.lastSeen[ActionTurnLeft] = at
	case tcell.KeyRight:
		k.lastSeen[ActionTurnRight] = at

	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			k.lastSeen[ActionForward] = at
		case 's', 'S':
			k.lastSeen[ActionBackward] = at
		case 'a', 'A':
			k.lastSeen[ActionTurnLeft] = at
		case 'd', 'D':
			k.lastSeen[ActionTurnRight] = at
		case 'q', 'Q':
			k.quit = true
		}
	}
}

// held returns true if the action's key was seen within the hold window.
func (k *Keyboard) held(a Action, now time.Time) bool {
	last := k.lastSeen[a]
	return !last.IsZero() && now.Sub(last) < k.window
}
