package main

import (
	"github.com/VladPetriv/busbooker/config"
	"github.com/VladPetriv/busbooker/internal/app"
	"github.com/VladPetriv/busbooker/pkg/logger"
)

func main() {
	cfg := config.Get()

	logger := logger.New(logger.Options{
		LogLevel:        cfg.Logger.LogLevel,
		LogFile:         cfg.Logger.LogFilename,
		PrettyLogOutput: cfg.Logger.PrettyLogOutput,
	})

	app.Run(cfg, logger)
}
