package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"SketchPad/internal/config"
	"SketchPad/internal/render"
	"SketchPad/internal/ui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "Path to the TOML config file")
	verbose := flag.Bool("v", false, "Log debug output")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	render.SetLogger(logger)

	initializeConfigIfNot(*configPath)

	conf, err := config.Load(*configPath)
	if err != nil {
		logger.Error("loading config", "err", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "path", *configPath,
		"strokeColor", conf.StrokeColor,
		"strokeWidth", conf.StrokeWidth,
		"easeFactor", conf.EaseFactor,
		"throttleDelayMs", conf.ThrottleDelayMs)

	ui.RunApp(conf)
}

// initializeConfigIfNot writes the defaults on first run so there is a file
// to edit.
func initializeConfigIfNot(path string) {
	_, err := os.Stat(path)
	if err == nil {
		return
	}
	if !errors.Is(err, os.ErrNotExist) {
		slog.Warn("checking config file", "path", path, "err", err)
		return
	}

	slog.Info("initializing config", "path", path)
	if err := config.Save(path, config.Default()); err != nil {
		slog.Warn("writing default config", "path", path, "err", err)
	}
}
