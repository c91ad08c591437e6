package engine

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-elevator/parameter"
	"github.com/lixenwraith/vi-elevator/physics"
	"github.com/lixenwraith/vi-elevator/system"
	"github.com/lixenwraith/vi-elevator/world"
)

type fakeSounds struct {
	chimes int
	clicks int
	muted  bool
}

func (f *fakeSounds) PlayChime()       { f.chimes++ }
func (f *fakeSounds) PlayClick()       { f.clicks++ }
func (f *fakeSounds) ToggleMute() bool { f.muted = !f.muted; return f.muted }
func (f *fakeSounds) Muted() bool      { return f.muted }

// neverRand never turns walkers around
type neverRand struct{}

func (neverRand) IntN(int) int { return 0 }

func newTestGame(t *testing.T) (*Game, tcell.SimulationScreen, *fakeSounds) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 40)

	sounds := &fakeSounds{}
	g := NewGame(screen, Options{
		TickInterval: time.Millisecond,
		Resizable:    true,
		HUD:          true,
		Profile:      physics.DefaultProfile(),
		Actors:       system.DefaultActorConfig(),
		Rand:         neverRand{},
		Sounds:       sounds,
	})
	return g, screen, sounds
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTickMovesCabToScenarioTarget(t *testing.T) {
	g, screen, sounds := newTestGame(t)
	defer screen.Fini()

	g.Tick()
	if g.State().Elevator.Y <= parameter.ElevatorStartY {
		t.Fatalf("Expected cab to move down from %v, got %v", parameter.ElevatorStartY, g.State().Elevator.Y)
	}

	for i := 0; i < 400 && !g.State().Elevator.Idle(); i++ {
		g.Tick()
	}

	e := g.State().Elevator
	if !e.Idle() {
		t.Fatalf("Expected cab to arrive, still at %v", e.Y)
	}
	if e.Y < float32(parameter.ElevatorScenarioTarget) {
		t.Errorf("Expected cab at or past %d, got %v", parameter.ElevatorScenarioTarget, e.Y)
	}
	if e.YVelocity != 0 {
		t.Errorf("Expected zero velocity after arrival, got %v", e.YVelocity)
	}
	if sounds.chimes != 1 {
		t.Errorf("Expected one arrival chime, got %d", sounds.chimes)
	}

	rider := g.State().StickFigures[0]
	if rider.X != parameter.RiderX || rider.Y != e.Y+parameter.RiderOffsetY {
		t.Errorf("Expected rider pinned to cab, got (%v, %v)", rider.X, rider.Y)
	}
}

func TestPauseFreezesCab(t *testing.T) {
	g, screen, _ := newTestGame(t)
	defer screen.Fini()

	g.Tick()
	g.HandleEvent(key(' '))
	y := g.State().Elevator.Y
	walkerX := g.State().StickFigures[1].X

	for i := 0; i < 10; i++ {
		g.Tick()
	}
	if g.State().Elevator.Y != y {
		t.Errorf("Expected paused cab at %v, got %v", y, g.State().Elevator.Y)
	}
	if g.State().StickFigures[1].X != walkerX {
		t.Errorf("Expected paused walker at %v, got %v", walkerX, g.State().StickFigures[1].X)
	}

	g.HandleEvent(key('.'))
	g.Tick()
	if g.State().Elevator.Y == y {
		t.Error("Expected single step to move the cab")
	}
	y = g.State().Elevator.Y
	g.Tick()
	if g.State().Elevator.Y != y {
		t.Error("Expected cab frozen again after the step")
	}

	g.HandleEvent(key(' '))
	g.Tick()
	if g.State().Elevator.Y == y {
		t.Error("Expected cab to move after resume")
	}
}

func TestPausedHUD(t *testing.T) {
	g, screen, _ := newTestGame(t)
	defer screen.Fini()

	g.HandleEvent(key(' '))
	g.Tick()

	want := "PAUSED"
	for i, r := range want {
		got, _, _, _ := screen.GetContent(i, 1)
		if got != r {
			t.Fatalf("Expected %q on row 1, got %q at col %d", want, got, i)
		}
	}

	first, _, _, _ := screen.GetContent(0, 0)
	if first != 'y' {
		t.Errorf("Expected status line on row 0, got %q", first)
	}

	g.HandleEvent(key('h'))
	g.Tick()
	first, _, _, _ = screen.GetContent(0, 0)
	if first == 'y' {
		t.Error("Expected status line hidden after toggle")
	}
}

func TestKeyboardCall(t *testing.T) {
	g, screen, sounds := newTestGame(t)
	defer screen.Fini()

	g.HandleEvent(key('7'))
	target, ok := g.State().Elevator.Target()
	want := g.State().Floors[0].CabTarget()
	if !ok || target != want {
		t.Fatalf("Expected target %d, got %d (set %v)", want, target, ok)
	}
	if g.State().Elevator.YOld != parameter.ElevatorStartY {
		t.Errorf("Expected YOld captured at %v, got %v", parameter.ElevatorStartY, g.State().Elevator.YOld)
	}
	if sounds.clicks != 1 {
		t.Errorf("Expected one click, got %d", sounds.clicks)
	}

	g.HandleEvent(key('9'))
	if sounds.clicks != 1 {
		t.Error("Expected out-of-range level to be ignored")
	}
}

func TestMouseClickCallsFloor(t *testing.T) {
	g, screen, sounds := newTestGame(t)
	defer screen.Fini()

	// Pick a row whose center lies between two floor slabs
	row := -1
	var wy float32
	for r := 0; r < 40; r++ {
		_, y := g.raster.ToWorld(0, r)
		if y > 300 && y < 340 {
			row, wy = r, y
			break
		}
	}
	if row < 0 {
		t.Fatal("No row projects between 300 and 340")
	}

	var want int
	for _, f := range g.State().Floors {
		if float32(f.Y) >= wy {
			want = f.CabTarget()
			break
		}
	}

	g.HandleEvent(tcell.NewEventMouse(60, row, tcell.Button1, tcell.ModNone))
	g.HandleEvent(tcell.NewEventMouse(60, row, tcell.ButtonNone, tcell.ModNone))
	g.Tick()

	target, ok := g.State().Elevator.Target()
	if !ok || target != want {
		t.Errorf("Expected target %d, got %d (set %v)", want, target, ok)
	}
	if sounds.clicks != 1 {
		t.Errorf("Expected one click, got %d", sounds.clicks)
	}
}

func TestResetRestoresScenario(t *testing.T) {
	g, screen, _ := newTestGame(t)
	defer screen.Fini()

	for i := 0; i < 50; i++ {
		g.Tick()
	}
	g.HandleEvent(key('r'))

	fresh := world.NewScenario()
	got := g.State()
	if got.Elevator.Y != fresh.Elevator.Y {
		t.Errorf("Expected cab at %v after reset, got %v", fresh.Elevator.Y, got.Elevator.Y)
	}
	if target, _ := got.Elevator.Target(); target != parameter.ElevatorScenarioTarget {
		t.Errorf("Expected target %d after reset, got %d", parameter.ElevatorScenarioTarget, target)
	}
	if g.Clock().SimTicks() != 0 {
		t.Errorf("Expected tick count reset, got %d", g.Clock().SimTicks())
	}
}

func TestMuteToggle(t *testing.T) {
	g, screen, sounds := newTestGame(t)
	defer screen.Fini()

	g.HandleEvent(key('m'))
	if !sounds.muted {
		t.Error("Expected muted after m")
	}
	g.HandleEvent(key('m'))
	if sounds.muted {
		t.Error("Expected unmuted after second m")
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
	}{
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
		{"q", key('q')},
		{"Ctrl+C", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, screen, _ := newTestGame(t)
			defer screen.Fini()

			g.HandleEvent(tt.ev)
			if !g.Quitting() {
				t.Error("Expected quit signal")
			}
		})
	}
}

func TestRunExitsOnEscape(t *testing.T) {
	g, screen, _ := newTestGame(t)
	defer screen.Fini()

	done := make(chan error, 1)
	go func() { done <- g.Run(context.Background()) }()

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected nil error, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Escape")
	}
}

func TestRunExitsOnCancel(t *testing.T) {
	g, screen, _ := newTestGame(t)
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected nil error, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if g.Clock().Frames() == 0 {
		t.Error("Expected frames to run before cancel")
	}
}

func TestResizeReprojects(t *testing.T) {
	g, screen, _ := newTestGame(t)
	defer screen.Fini()

	screen.SetSize(120, 50)
	g.HandleEvent(tcell.NewEventResize(120, 50))

	cols, rows := g.raster.Size()
	if cols != 120 || rows != 50 {
		t.Errorf("Expected raster 120x50, got %dx%d", cols, rows)
	}
}

func TestZeroProfileUsesDefault(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 40)

	g := NewGame(screen, Options{Rand: neverRand{}})
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	if g.State().Elevator.Y <= parameter.ElevatorStartY {
		t.Errorf("Expected cab to move with default profile, still at %v", g.State().Elevator.Y)
	}
}
