package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scraps/internal/clock"
	"scraps/internal/config"
	"scraps/internal/events"
	"scraps/internal/service"
	"scraps/internal/ui"
	"scraps/internal/ui/layout"
	"scraps/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML producer config (defaults to the built-in chain)")
	headless := flag.Bool("headless", false, "log snapshots instead of opening a window")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("load config", "path", *configPath, "err", err)
			os.Exit(1)
		}
		cfg = *loaded
	}

	clk := clock.RealClock{}
	svc, err := service.NewGameService(cfg, clk, clk.Now())
	if err != nil {
		logger.Error("build game", "err", err)
		os.Exit(1)
	}
	events.SubscribeAll(svc.Events(), events.LogListener{Logger: logger})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *headless {
		renderer := &view.LogRenderer{Logger: logger, Clock: clk, Every: time.Second}
		service.NewRunner(svc, cfg.TickInterval, renderer, logger).Run(ctx)
		return
	}

	game := ui.New(svc, svc.Snapshot(), logger)
	go service.NewRunner(svc, cfg.TickInterval, game, logger).Run(ctx)

	ebiten.SetWindowSize(layout.ScreenWidth, layout.ScreenHeight)
	ebiten.SetWindowTitle("Scraps")
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run game", "err", err)
		stop()
		os.Exit(1)
	}
}
