package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/bio-survey/auth"
	"github.com/danielhkuo/bio-survey/cliparse"
	"github.com/danielhkuo/bio-survey/db"
	"github.com/danielhkuo/bio-survey/router"
)

func main() {
	var err error

	// Load .env if present; real environment variables take precedence
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database (sqlite by default, postgres via -t)
	dbConn, err := sql.Open(db.DriverName(cfg.DatabaseType), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	store := db.NewStore(dbConn, cfg.DatabaseType)

	// Seed the admin password hash on first boot
	if err := seedAdminPassword(store, cfg); err != nil {
		slog.Error("admin password seed failed", "error", err)
		os.Exit(1)
	}

	// Sweep expired login sessions hourly
	go sessionSweeper(store)

	// Create router
	mux := router.NewRouter(store, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// seedAdminPassword stores the hash of the configured admin password unless
// one is already present (an operator may have changed it via the API).
func seedAdminPassword(store *db.Store, cfg cliparse.Config) error {
	_, err := store.Setting(db.SettingAdminPassword)
	if err == db.ErrNotFound {
		return store.SetSetting(db.SettingAdminPassword, auth.HashPassword(cfg.AdminPassword, cfg.PasswordSalt))
	}
	return err
}

func sessionSweeper(store *db.Store) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		if err := store.PurgeExpiredSessions(time.Now()); err != nil {
			slog.Error("session sweep failed", "error", err)
		}
	}
}
