package main

import (
	"os"

	"github.com/kranthik10/campusconnect/internal/pkg/logger"
	"github.com/kranthik10/campusconnect/internal/server"
)

// @title CampusConnect API
// @version 1.0
// @description Engagement and matching engine for the CampusConnect student network

// @contact.name API Support
// @contact.email support@campusconnect.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
