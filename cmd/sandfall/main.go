//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"sandfall/internal/app"
	"sandfall/internal/config"
	"sandfall/internal/scene"
	"sandfall/internal/sim"
)

func main() {
	cfg := config.NewConfig()
	if path := config.PathFromArgs(os.Args[1:]); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	flag.String("config", "", "optional YAML config file")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := buildLogger(cfg.Debug)
	defer logger.Sync()

	u := sim.New(cfg.Width, cfg.Height, cfg.Seed)
	if err := scene.Apply(cfg.Scene, u, cfg.Seed); err != nil {
		logger.Fatal("unknown scene",
			zap.String("scene", cfg.Scene),
			zap.String("available", strings.Join(scene.Names(), ", ")))
	}
	logger.Info("universe ready",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.String("scene", cfg.Scene),
		zap.Int64("seed", cfg.Seed))

	game := app.New(u, cfg.Scene, cfg.Seed, cfg.Scale, cfg.Brush, logger)

	ebiten.SetWindowTitle("sandfall — " + cfg.Scene)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}

func buildLogger(debug bool) *zap.Logger {
	zapCfg := zap.NewDevelopmentConfig()
	if !debug {
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	return logger
}
