package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/malusev998/rates-exporter/cli/cmd"
	"github.com/malusev998/rates-exporter/logger"
)

func main() {
	ctx := context.Background()

	// the flag is parsed again by cobra; peeking here lets the logger exist
	// before command execution starts
	debug := false

	for _, arg := range os.Args[1:] {
		if arg == "--debug" {
			debug = true
		}
	}

	zapLogger, err := logger.New(debug)

	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	defer zapLogger.Sync()

	config := &cmd.Config{
		Ctx:        ctx,
		Logger:     zapLogger,
		NewFetcher: getFetcher,
	}

	if err := cmd.Execute(config); err != nil {
		zapLogger.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}
