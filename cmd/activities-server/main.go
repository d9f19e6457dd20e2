package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mergington-high/activities/internal/config"
	"github.com/mergington-high/activities/internal/logger"
	"github.com/mergington-high/activities/internal/registry"
	"github.com/mergington-high/activities/internal/server"
	"github.com/mergington-high/activities/internal/version"
)

//	@title			activities-server
//	@description	activities-server is the Mergington High School extracurricular activities API:
//	@description	it lists school activities and lets students sign up or unregister by email.
//	@description
//	@description	## Common Error Responses
//	@description	All endpoints may return:
//	@description	- `413` Request body exceeds size limit
//	@description	- `429` Rate limit exceeded
//	@description	- `500` Internal server error
//	@description
//	@description	Individual endpoints document their specific business logic errors.
//	@description	Error bodies carry a human-readable `detail` field.
//	@description
//	@description	## Request Limits
//	@description	All endpoints are protected by:
//	@description	- **Rate limiting**: Configurable requests per second (see env vars) - default 100 rps (set to 0 to disable)
//	@description	- **Request size limits**: Configurable (see env vars) - default 64KB
//	@description
//	@description	Check the X-Max-Request-Size response header for the configured limit.
//	@description
//	@description	## Authentication & Authorization
//	@description	The activities API does not require credentials - there is no
//	@description	authentication or authorization layer.
//	@description
//	@license.name	MIT

//	@servers.url			http://localhost:8080
//	@servers.description	Development server

//	@accept		json
//	@produce	json

//	@tag.name			Activities
//	@tag.description	Activity listing, signup, and unregister endpoints

//	@tag.name			Common
//	@tag.description	Server API endpoints (health, version, etc.)

func main() {
	cmd := &cobra.Command{
		Use:   "activities-server",
		Short: "Mergington High School activities API server",
		Long:  `activities-server serves the extracurricular activities signup API: list activities, sign students up, and unregister them`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		log.Printf("failed to load configuration: %v", err.Error())
		os.Exit(1)
	}

	appLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	appLogger.Info("configuration loaded",
		slog.String("ENVIRONMENT", cfg.Environment),
		slog.String("HOST", cfg.Host),
		slog.Int("PORT", cfg.Port),
		slog.String("LOG_LEVEL", cfg.LogLevel),
	)

	// the registry is seeded once at startup; entries are never created or
	// deleted at runtime, only participant lists change
	reg := registry.New(registry.DefaultActivities())

	appLogger.Info("activity registry seeded", slog.Int("activities", reg.Len()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(reg, cfg, appLogger)

	if err := srv.Start(ctx); err != nil {
		appLogger.Error("server error", slog.String("error", err.Error()))
		return err
	}

	appLogger.Info("server shutdown complete")
	return nil
}
