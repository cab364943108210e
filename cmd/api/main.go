package main

import (
	"context"
	"flag"
	"os"

	_ "github.com/yigit/curricuforge/docs"
	"github.com/yigit/curricuforge/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/curricuforge/internal/server"
)

// @title CurricuForge API
// @version 1.0
// @description Curriculum design service: generate, edit, validate and export eight-semester curricula.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default configs/config.yaml)")
	flag.Parse()

	srv, err := server.NewServer(*configPath)
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal
	if err := srv.Run(context.Background()); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
