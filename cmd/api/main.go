package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/tpcell/launchpad/internal/pkg/logger"
	"github.com/tpcell/launchpad/internal/server"
)

// @title Launchpad API
// @version 1.0
// @description Placement cell backend: student profiles, resumes, internships, job posts, applications, and staff analytics.

// @contact.name API Support
// @contact.email placement-cell@launchpad.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Local development convenience; the file is optional
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
