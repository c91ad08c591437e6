// Package engine runs the fixed-rate frame loop: event pump, input routing, systems, rendering
package engine

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-elevator/core"
	"github.com/lixenwraith/vi-elevator/input"
	"github.com/lixenwraith/vi-elevator/logger"
	"github.com/lixenwraith/vi-elevator/parameter"
	"github.com/lixenwraith/vi-elevator/physics"
	"github.com/lixenwraith/vi-elevator/render"
	"github.com/lixenwraith/vi-elevator/system"
	"github.com/lixenwraith/vi-elevator/world"
)

// Sounds is the audio surface the loop drives; satisfied by audio.SoundManager
type Sounds interface {
	PlayChime()
	PlayClick()
	ToggleMute() bool
	Muted() bool
}

// Options configures a Game
type Options struct {
	TickInterval time.Duration
	WorldWidth   float32
	WorldHeight  float32
	Resizable    bool
	HUD          bool

	Profile physics.Profile // Zero value uses physics.DefaultProfile
	Actors  system.ActorConfig
	Rand    system.Rand // nil seeds from the clock

	// Sounds may be nil for a silent run
	Sounds Sounds

	// Scenario builds the world at start and on reset; nil uses world.NewScenario
	Scenario func() *world.State

	// TimeProvider backs the pause clock; nil uses the system clock
	TimeProvider TimeProvider
}

// Game owns the world and every per-frame collaborator
type Game struct {
	screen tcell.Screen
	opts   Options
	log    zerolog.Logger

	state        *world.State
	raster       *render.Raster
	tracker      *input.Tracker
	machine      *input.Machine
	pipeline     *system.Pipeline
	orchestrator *render.RenderOrchestrator
	hud          *render.HUDRenderer
	clock        *PausableClock

	quit bool
}

// NewGame wires a game onto an initialized screen
func NewGame(screen tcell.Screen, opts Options) *Game {
	if opts.TickInterval <= 0 {
		opts.TickInterval = parameter.TickInterval
	}
	if opts.WorldWidth <= 0 || opts.WorldHeight <= 0 {
		opts.WorldWidth, opts.WorldHeight = parameter.WorldWidth, parameter.WorldHeight
	}
	if opts.Profile.MaxSpeed <= 0 {
		opts.Profile = physics.DefaultProfile()
	}
	if opts.Scenario == nil {
		opts.Scenario = world.NewScenario
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	g := &Game{
		screen: screen,
		opts:   opts,
		log:    logger.With("engine"),
		state:  opts.Scenario(),
		clock:  NewPausableClock(opts.TimeProvider),
	}

	cols, rows := screen.Size()
	g.raster = render.NewRaster(cols, rows, opts.WorldWidth, opts.WorldHeight)
	g.tracker = input.NewTracker(g.raster)
	g.machine = input.NewMachine(g.tracker)

	motion := system.NewMotionSystem(opts.Profile)
	motion.OnArrive(g.onArrive)
	g.pipeline = system.NewPipeline(
		motion,
		system.NewActorSystem(opts.Rand, opts.Actors),
	)

	g.hud = render.NewHUDRenderer(opts.HUD)
	g.orchestrator = render.NewRenderOrchestrator(screen, g.raster, opts.Resizable)
	g.orchestrator.RegisterDefaults(g.hud)

	return g
}

// State returns the live world
func (g *Game) State() *world.State {
	return g.state
}

// Clock returns the pause clock
func (g *Game) Clock() *PausableClock {
	return g.clock
}

// Quitting reports whether a close signal has been seen
func (g *Game) Quitting() bool {
	return g.quit
}

// Run drives the loop until a close signal, screen closure or ctx cancellation
// The in-flight tick always completes before Run returns
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, parameter.EventQueueSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(g.opts.TickInterval)
	defer ticker.Stop()

	g.log.Info().Dur("interval", g.opts.TickInterval).Msg("loop started")

	for {
		select {
		case <-ctx.Done():
			g.log.Info().Err(ctx.Err()).Msg("loop cancelled")
			return nil

		case ev, ok := <-events:
			if !ok {
				g.log.Info().Msg("screen closed")
				return nil
			}
			g.HandleEvent(ev)

		case <-ticker.C:
			g.Tick()
		}

		if g.quit {
			g.log.Info().Uint64("ticks", g.clock.SimTicks()).Msg("loop stopped")
			return nil
		}
	}
}

// HandleEvent folds one terminal event into the game
func (g *Game) HandleEvent(ev tcell.Event) {
	intent := g.machine.Process(ev)
	if intent == nil {
		return
	}

	switch intent.Type {
	case input.IntentQuit:
		g.quit = true

	case input.IntentPause:
		paused := g.clock.Toggle()
		g.log.Debug().Bool("paused", paused).Msg("pause toggled")

	case input.IntentStep:
		g.clock.Step()

	case input.IntentReset:
		g.state = g.opts.Scenario()
		g.tracker.Reset()
		g.clock.ResetTicks()
		g.log.Debug().Msg("scene reset")

	case input.IntentMute:
		if g.opts.Sounds != nil {
			muted := g.opts.Sounds.ToggleMute()
			g.log.Debug().Bool("muted", muted).Msg("mute toggled")
		}

	case input.IntentHUD:
		g.hud.Toggle()

	case input.IntentCall:
		if input.Call(g.state, intent.Level) {
			g.onCall()
		}

	case input.IntentResize:
		cols, rows := g.screen.Size()
		g.orchestrator.Resize(cols, rows)
		g.log.Debug().Int("cols", cols).Int("rows", rows).Msg("resized")
	}
}

// Tick runs one frame: route the pointer, advance systems unless paused, render
func (g *Game) Tick() {
	p := g.tracker.Snapshot()
	switch input.Route(g.state, p) {
	case input.CommandCall:
		g.onCall()
	case input.CommandDrag:
		g.log.Trace().Float32("y", g.state.Elevator.Y).Msg("drag")
	}

	if g.clock.Advance() {
		g.pipeline.Update(g.state)
	}

	muted := g.opts.Sounds == nil || g.opts.Sounds.Muted()
	g.orchestrator.RenderFrame(render.RenderContext{
		State:  g.state,
		Tick:   g.clock.SimTicks(),
		Paused: g.clock.IsPaused(),
		Muted:  muted,
	})
}

func (g *Game) onCall() {
	target, _ := g.state.Elevator.Target()
	g.log.Debug().Int("target", target).Float32("from", g.state.Elevator.Y).Msg("call")
	if g.opts.Sounds != nil {
		g.opts.Sounds.PlayClick()
	}
}

func (g *Game) onArrive(y float32) {
	g.log.Debug().Float32("y", y).Uint64("tick", g.clock.SimTicks()).Msg("arrived")
	if g.opts.Sounds != nil {
		g.opts.Sounds.PlayChime()
	}
}
