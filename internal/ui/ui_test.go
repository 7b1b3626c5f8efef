package ui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func newTestScreen(t *testing.T, cols, rows int) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := WrapScreen(sim)
	if err != nil {
		t.Fatalf("WrapScreen() error = %v", err)
	}
	sim.SetSize(cols, rows)
	t.Cleanup(s.Close)
	return s
}

func cellBackground(s *Screen, x, y int) tcell.Color {
	_, _, style, _ := s.screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func cellRune(s *Screen, x, y int) rune {
	r, _, _, _ := s.screen.GetContent(x, y)
	return r
}

func TestRendererFill(t *testing.T) {
	s := newTestScreen(t, 80, 24)
	r := NewRenderer(s, 800, 600)

	red := colorful.Color{R: 1}
	r.Fill(red)

	want := tcell.NewRGBColor(255, 0, 0)
	for _, p := range [][2]int{{0, 0}, {79, 23}, {40, 12}} {
		if got := cellBackground(s, p[0], p[1]); got != want {
			t.Errorf("cell %v background = %v, want %v", p, got, want)
		}
	}
}

func TestRendererFillRectScales(t *testing.T) {
	s := newTestScreen(t, 80, 24)
	r := NewRenderer(s, 800, 600)

	r.Fill(colorful.Color{})
	// Surface (400,300)-(600,450) maps to cells (40,12)-(60,18).
	r.FillRect(400, 300, 200, 150, colorful.Color{G: 1})

	green := tcell.NewRGBColor(0, 255, 0)
	black := tcell.NewRGBColor(0, 0, 0)

	tests := []struct {
		x, y int
		want tcell.Color
	}{
		{40, 12, green},
		{59, 17, green},
		{60, 12, black},
		{40, 18, black},
		{39, 11, black},
	}

	for _, tt := range tests {
		if got := cellBackground(s, tt.x, tt.y); got != tt.want {
			t.Errorf("cell (%d,%d) background = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRendererThinStripCoversACell(t *testing.T) {
	s := newTestScreen(t, 80, 24)
	r := NewRenderer(s, 800, 600)

	r.Fill(colorful.Color{})
	// 4 pixels is less than one 10-pixel-wide cell.
	r.FillRect(4, 0, 4, 600, colorful.Color{B: 1})

	if got := cellBackground(s, 0, 5); got != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("thin strip background = %v, want blue", got)
	}
}

func TestRendererEmptyRect(t *testing.T) {
	s := newTestScreen(t, 80, 24)
	r := NewRenderer(s, 800, 600)

	r.Fill(colorful.Color{})
	r.FillRect(400, 300, 4, 0, colorful.Color{R: 1})

	if got := cellBackground(s, 40, 12); got != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("zero-height rect painted cell, background = %v", got)
	}
}

func TestRendererDrawTextCentered(t *testing.T) {
	s := newTestScreen(t, 80, 24)
	r := NewRenderer(s, 800, 600)

	r.DrawText("You Win!", 400, 300, colorful.Color{G: 1})

	// 8 cells wide, centered on column 40 of row 12.
	for i, want := range "You Win!" {
		if got := cellRune(s, 36+i, 12); got != want {
			t.Errorf("cell (%d,12) = %q, want %q", 36+i, got, want)
		}
	}
}

func TestKeyboardHeldWindow(t *testing.T) {
	k := NewKeyboard(nil, DefaultHoldWindow)
	start := time.Unix(1000, 0)
	now := start
	k.now = func() time.Time { return now }

	k.press(tcell.KeyRune, 'w', start)
	k.press(tcell.KeyLeft, 0, start)

	in, quit := k.Poll()
	if quit {
		t.Error("Poll() reported quit without a quit key")
	}
	if !in.Forward || !in.TurnLeft {
		t.Errorf("Poll() = %+v, want forward and turn left held", in)
	}
	if in.Backward || in.TurnRight {
		t.Errorf("Poll() = %+v, want backward and turn right released", in)
	}

	now = start.Add(DefaultHoldWindow)
	in, _ = k.Poll()
	if in.Forward || in.TurnLeft {
		t.Errorf("Poll() after hold window = %+v, want all released", in)
	}
}

func TestKeyboardBindings(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Action
	}{
		{"w", tcell.KeyRune, 'w', ActionForward},
		{"up", tcell.KeyUp, 0, ActionForward},
		{"s", tcell.KeyRune, 'S', ActionBackward},
		{"down", tcell.KeyDown, 0, ActionBackward},
		{"a", tcell.KeyRune, 'a', ActionTurnLeft},
		{"left", tcell.KeyLeft, 0, ActionTurnLeft},
		{"d", tcell.KeyRune, 'd', ActionTurnRight},
		{"right", tcell.KeyRight, 0, ActionTurnRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := NewKeyboard(nil, DefaultHoldWindow)
			now := time.Unix(1000, 0)
			k.now = func() time.Time { return now }

			k.press(tt.key, tt.r, now)
			for a := ActionForward; a < actionCount; a++ {
				if got := k.held(a, now); got != (a == tt.want) {
					t.Errorf("held(%d) = %v, want %v", a, got, a == tt.want)
				}
			}
		})
	}
}

func TestKeyboardQuit(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"escape", tcell.KeyEscape, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
		{"q", tcell.KeyRune, 'q'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := NewKeyboard(nil, DefaultHoldWindow)
			k.press(tt.key, tt.r, time.Now())
			if _, quit := k.Poll(); !quit {
				t.Error("Poll() quit = false, want true")
			}
		})
	}
}

func TestKeyboardStopReleasesBlockedPump(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := WrapScreen(sim)
	if err != nil {
		t.Fatalf("WrapScreen() error = %v", err)
	}
	t.Cleanup(s.Close)

	k := NewKeyboard(s, DefaultHoldWindow)
	for len(k.events) < cap(k.events) {
		k.events <- tcell.NewEventResize(80, 24)
	}
	k.Start()
	sim.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)

	select {
	case <-k.stopped:
		t.Fatal("pump exited before Stop")
	case <-time.After(50 * time.Millisecond):
	}

	k.Stop()
	k.Stop()
	select {
	case <-k.stopped:
	case <-time.After(time.Second):
		t.Fatal("pump still blocked after Stop")
	}
}

func TestKeyboardDrainsQueuedEvents(t *testing.T) {
	k := NewKeyboard(nil, DefaultHoldWindow)
	k.events <- tcell.NewEventResize(100, 40)

	if _, quit := k.Poll(); quit {
		t.Error("resize should not quit")
	}
	if len(k.events) != 0 {
		t.Errorf("Poll() left %d events queued", len(k.events))
	}
}
