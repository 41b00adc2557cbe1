package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fluxframe/frame/internal/asset"
	"github.com/fluxframe/frame/internal/config"
	"github.com/fluxframe/frame/internal/core/dispatch"
	"github.com/fluxframe/frame/internal/core/store"
	"github.com/fluxframe/frame/internal/data"
	"github.com/fluxframe/frame/internal/game"
	"github.com/fluxframe/frame/internal/menu"
	"github.com/fluxframe/frame/internal/render"
	"github.com/fluxframe/frame/internal/render/window"
	"github.com/fluxframe/frame/internal/scripting"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(title string, w, h int) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m             fluxframe  v0.1.0             \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1m%s\033[0m \033[90m(%dx%d)\033[0m\n\n", title, w, h)
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

// ── Main loop ─────────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/frame.toml"
	if p := os.Getenv("FLUXFRAME_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Canvas.Title, cfg.Canvas.Width, cfg.Canvas.Height)

	// 3. Output device
	printSection("Renderer")

	var (
		backend render.Backend
		win     *window.Window
		hl      *render.Headless
	)
	if cfg.Window.Headless {
		hl = render.NewHeadless()
		backend = hl
		printOK("headless backend")
	} else {
		win, err = window.New(window.Config{
			Title:     cfg.Canvas.Title,
			Width:     cfg.Canvas.Width,
			Height:    cfg.Canvas.Height,
			QueueSize: cfg.Window.EventQueue,
		}, log)
		if err != nil {
			return fmt.Errorf("window: %w", err)
		}
		backend = win
		printOK("window backend")
	}

	rcfg := render.Config{
		Width:     cfg.Canvas.Width,
		Height:    cfg.Canvas.Height,
		PixelSize: cfg.Canvas.PixelSize,
	}
	colors, err := cfg.Palette.RGBA()
	if err != nil {
		return err
	}
	if colors != nil {
		pal, err := render.PaletteFrom(colors)
		if err != nil {
			return fmt.Errorf("palette: %w", err)
		}
		rcfg.Palette = &pal
		printOK("custom palette")
	}
	renderer, err := render.NewRenderer(backend, rcfg, log)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	fmt.Println()

	// 4. Stores
	printSection("Stores")

	layout, err := data.LoadMenuLayout(cfg.Assets.MenuLayout)
	if err != nil {
		return fmt.Errorf("load menu layout: %w", err)
	}
	scenes, err := menu.FromLayout(layout, log)
	if err != nil {
		return fmt.Errorf("build menu: %w", err)
	}
	printStat("menu scenes", scenes.Scenes())

	sprite := asset.LoadSpriteOrEmpty(cfg.Assets.DrifterSprite, cfg.Assets.DrifterPixPerFrame,
		0, 0, nil, cfg.Assets.DrifterFramerate, log)
	drifter := game.NewDrifter(sprite, cfg.Assets.DrifterSpeed)
	printStat("drifter frames", sprite.Frames())

	scripts, err := scripting.LoadDir(cfg.Scripting.Dir, log)
	if err != nil {
		return fmt.Errorf("load scripts: %w", err)
	}
	defer func() {
		for _, s := range scripts {
			s.Close()
		}
	}()
	printStat("lua stores", len(scripts))

	stores := []store.Store{renderer, scenes, drifter}
	for _, s := range scripts {
		stores = append(stores, s)
	}
	fmt.Println()

	// 5. Dispatch until quit or signal
	d := dispatch.New(cfg.Dispatch.MaxStackTime, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if hl != nil {
		// A renderer waiting for menu input only wakes on a closed queue.
		go func() {
			<-ctx.Done()
			hl.Close()
		}()
		err = dispatch.Run(ctx, d, stores...)
	} else {
		errCh := make(chan error, 1)
		go func() {
			errCh <- dispatch.Run(ctx, d, stores...)
			win.Close()
		}()
		go func() {
			<-ctx.Done()
			win.Close()
		}()
		if werr := win.Run(); werr != nil {
			log.Error("window stopped", zap.Error(werr))
		}
		stop()
		err = <-errCh
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
