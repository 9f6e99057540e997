// Package server parses Tomekeeper server flags and launches the service.
package server

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	entrypoint "github.com/feywood/tomekeeper/internal/platform/cmd"
	"github.com/feywood/tomekeeper/internal/platform/logging"
	"github.com/feywood/tomekeeper/internal/server"
)

// Config holds server command configuration.
type Config struct {
	HTTPAddr  string `env:"TOMEKEEPER_HTTP_ADDR" envDefault:":8080"`
	DBPath    string `env:"TOMEKEEPER_DB_PATH" envDefault:"data/tomekeeper.db"`
	LogLevel  string `env:"TOMEKEEPER_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"TOMEKEEPER_LOG_FORMAT" envDefault:"console"`
}

// ParseConfig parses environment and flags into Config. A .env file in the
// working directory supplies environment defaults when present.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Path to the sqlite database file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (console or json)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the Tomekeeper HTTP service.
func Run(ctx context.Context, cfg Config) error {
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceServer, func(ctx context.Context) error {
		srv, err := server.New(ctx, server.Config{
			HTTPAddr: cfg.HTTPAddr,
			DBPath:   cfg.DBPath,
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("init server: %w", err)
		}
		defer srv.Close()

		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
}
