package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moodgarden/internal/facade"
	"moodgarden/internal/handlers"
	"moodgarden/internal/logger"
	"moodgarden/internal/registry"
	"moodgarden/internal/repository"
	"moodgarden/internal/repository/db"
	"moodgarden/internal/server"
	"moodgarden/internal/service"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/viper"
)

const defaultSchedulerTick = 30 * time.Second

func main() {
	// load config.yml first so the log level comes from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	// open DB
	sqlDB, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// time policy: registry owns one adapter per feature
	clock := clockwork.NewRealClock()
	reg := registry.New(clock, log)
	defer reg.Close()
	applyTimeConfig(reg, log)

	// wire dependencies
	router := facade.NewRouter(reg, clock)
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, router, reg, signingKey(log), log)
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start report scheduler
	go services.Scheduler.Run(ctx, defaultSchedulerTick)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "moodgarden.db")
		dbPath = "moodgarden.db"
	}
	return db.InitDB(dbPath)
}

// applyTimeConfig feeds the config file's time section into the registry.
func applyTimeConfig(reg *registry.Registry, log *logger.Logger) {
	if !viper.IsSet("time") {
		return
	}
	var patch registry.Patch
	if err := viper.UnmarshalKey("time", &patch); err != nil {
		log.Fatalw("invalid time config", "err", err)
	}
	reg.Configure(patch)
}

// signingKey reads the JWT signing key; refusing to boot without one beats a
// hardcoded default.
func signingKey(log *logger.Logger) string {
	key := viper.GetString("auth.signing_key")
	if key == "" {
		log.Fatalw("auth.signing_key not set in config")
	}
	return key
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
