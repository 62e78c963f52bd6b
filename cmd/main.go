// Package main is the entry point for the carton-service application.
//
// @title           Carton Service API
// @version         1.0.0
// @description     API for recommending the best shipping carton for an order.
//
//	The service combines a volumetric fit calculation with learned packer
//	feedback, preferring human-confirmed choices over the heuristic.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/carton-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Recommendations
// @tag.description Carton recommendation operations
//
// @tag.name        Boxes
// @tag.description Carton catalog management
//
// @tag.name        Feedback
// @tag.description Packer feedback rules
//
// @tag.name        Settings
// @tag.description Packing configuration
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/carton-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/guttosm/carton-service/config"
	"github.com/guttosm/carton-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
