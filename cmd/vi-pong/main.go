package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/manifest"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/registry"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/status"
)

var (
	configFlag      = flag.String("config", "", "Path to a TOML config file")
	variantFlag     = flag.String("variant", string(config.VariantClassic), "Game variant: classic, simple")
	debugFlag       = flag.Bool("debug", false, "Write debug log to the log directory")
	profileFlag     = flag.String("profile", "", "Profile mode: cpu, mem")
	headlessFlag    = flag.Bool("headless", false, "Run without a terminal and print metrics")
	framesFlag      = flag.Int("frames", parameter.HeadlessFrames, "Tick count for -headless")
	listSystemsFlag = flag.Bool("list-systems", false, "Print registered systems, marking those active for the config, and exit")
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup finishes before exit
func run() int {
	// Panic Recovery: terminal reset is installed as crash cleanup once the screen exists
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag, config.Variant(*variantFlag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 2
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}

	if *listSystemsFlag {
		listSystems(os.Stdout, cfg)
		return 0
	}

	if logFile := setupLogging(cfg.Log.Dir, cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	switch *profileFlag {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		fmt.Fprintf(os.Stderr, "Unknown profile mode %q\n", *profileFlag)
		return 2
	}

	game, err := manifest.Build(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build game: %v\n", err)
		return 1
	}

	if *headlessFlag {
		runHeadless(os.Stdout, game, *framesFlag)
		return 0
	}

	if err := runTerminal(game, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

// listSystems prints every registered system, "*" marks the ones cfg activates
func listSystems(out io.Writer, cfg config.Config) {
	manifest.RegisterSystems()
	active := make(map[string]bool)
	for _, name := range manifest.ActiveSystems(cfg) {
		active[name] = true
	}
	for _, name := range registry.SystemNames() {
		mark := " "
		if active[name] {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %s\n", mark, name)
	}
}

// runHeadless ticks the game without a screen and prints the final metrics
func runHeadless(out io.Writer, game *manifest.Game, frames int) {
	game.Scheduler.RunFrames(frames)
	reg := engine.MustGetResource[*status.Registry](game.World.Resources)
	for _, m := range reg.Snapshot() {
		fmt.Fprintf(out, "%s=%s\n", m.Key, m.Value)
	}
}

func runTerminal(game *manifest.Game, cfg config.Config) error {
	keys := input.DefaultKeyTable()
	if len(cfg.Input.Bindings) > 0 {
		override, err := input.LoadBindings(cfg.Input.Bindings)
		if err != nil {
			return fmt.Errorf("key bindings: %w", err)
		}
		keys.Merge(override)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.EnableFocus()

	renderer := render.NewTerminalRenderer(screen, cfg.Board.HalfWidth, cfg.Board.HalfHeight)

	eventChan := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	})
	defer close(quit)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	world := game.World
	inputRes := engine.MustGetResource[*engine.InputResource](world.Resources)
	held := input.NewState(cfg.Input.HoldFrames)

	// Before the first tick
	renderer.RenderFrame(world)

	err = game.Scheduler.Run(ctx, func() {
		next := world.FrameNumber() + 1

	drain:
		for {
			select {
			case ev := <-eventChan:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					switch action := keys.Lookup(ev); action {
					case input.ActionQuit:
						log.Printf("quit at frame %d", world.FrameNumber())
						cancel()
						return
					case input.ActionRestart:
						held.Reset()
						game.Restart()
					default:
						held.Press(action, next)
					}
				case *tcell.EventResize:
					screen.Sync()
					renderer.Resize()
					// Drop holds across a resize
					held.Reset()
					v := renderer.Viewport()
					log.Printf("resize to %dx%d cells", v.Cols, v.Rows)
				case *tcell.EventFocus:
					if !ev.Focused {
						held.Reset()
					}
				}
			default:
				break drain
			}
		}

		inputRes.Up = held.Held(input.ActionUp, next)
		inputRes.Down = held.Held(input.ActionDown, next)

		renderer.RenderFrame(world)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
