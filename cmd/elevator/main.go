package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-elevator/audio"
	"github.com/lixenwraith/vi-elevator/config"
	"github.com/lixenwraith/vi-elevator/core"
	"github.com/lixenwraith/vi-elevator/engine"
	"github.com/lixenwraith/vi-elevator/logger"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	envFlag    = flag.String("env", ".env", "Path to a .env file with ELEVATOR_* settings")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/elevator.log")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
)

var errNoTerminal = errors.New("stdout is not a terminal")

func main() {
	flag.Parse()
	os.Exit(run())
}

// loadConfig layers defaults, the YAML file, the .env file, the environment and flags
func loadConfig(path, envFile string, debug, mute bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.LoadEnv(envFile); err != nil {
		return nil, err
	}
	if debug {
		cfg.Debug = true
	}
	if mute {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run() int {
	cfg, err := loadConfig(*configFlag, *envFlag, *debugFlag, *muteFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	if logFile := logger.Setup(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log := logger.With("main")

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", errNoTerminal)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the trace
	core.RegisterScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()
	screen.SetTitle(cfg.Window.Title)
	screen.Clear()

	sounds := audio.NewSoundManager(cfg.AudioConfig())
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, the simulator runs silent
		log.Warn().Err(err).Msg("audio initialization failed")
	} else {
		defer sounds.Cleanup()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	game := engine.NewGame(screen, engine.Options{
		TickInterval: cfg.TickInterval(),
		WorldWidth:   float32(cfg.Window.Width),
		WorldHeight:  float32(cfg.Window.Height),
		Resizable:    cfg.Window.Resizable,
		HUD:          cfg.HUD,
		Profile:      cfg.Motion,
		Actors:       cfg.ActorConfig(),
		Rand:         rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid()))),
		Sounds:       sounds,
	})

	log.Info().
		Str("title", cfg.Window.Title).
		Int("tick_rate", cfg.TickRate).
		Bool("muted", sounds.Muted()).
		Msg("starting")

	if err := game.Run(ctx); err != nil {
		log.Error().Err(err).Msg("loop failed")
		return 1
	}

	core.RegisterScreen(nil)
	return 0
}
