package main

import (
	_ "staffing_service/docs"
	"staffing_service/internal/adapter/http/routes"
	"staffing_service/internal/infrastructure/config"
	"staffing_service/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Staffing Service API
// @version         1.0
// @description     Service orders with extension and substitution approvals, and service requests and offers driven by a BPM engine.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("[config] failed to load configuration")
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	routes.Run(cfg)
}
