package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"passwordStrength/internal/config"
	"passwordStrength/internal/generator"
	"passwordStrength/internal/logger"
	"passwordStrength/internal/strength"
	"passwordStrength/internal/tips"
	"passwordStrength/internal/ui"
)

func main() {
	cfg, cfgFile, err := config.Load(os.Getenv(config.EnvPrefix + "_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка конфигурации: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.App.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка логгера: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting", zap.String("env", cfg.App.Env), zap.String("config", cfgFile))

	myApp := app.NewWithID(cfg.App.ID)
	window := myApp.NewWindow(cfg.App.Title)

	ui.StartUI(window, ui.Options{
		Scorer:    strength.NewScorer(cfg.Scorer.SpecialChars),
		Generator: generator.New(nil, cfg.Generator.Classes()),
		Tips:      tips.New(cfg.Tips),
		Logger:    log,
		Animate:   cfg.UI.Animate,
	})

	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.ShowAndRun()
}
