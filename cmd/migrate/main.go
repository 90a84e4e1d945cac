package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/bhslighting/backend/internal/infrastructure/config"
	"github.com/bhslighting/backend/internal/infrastructure/logger"
)

const defaultMigrationsPath = "migrations"

func main() {
	var (
		migrationsPath string
		logLevel       string
	)
	flag.StringVar(&migrationsPath, "path", defaultMigrationsPath, "path to migrations directory")
	flag.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	log, err := logger.New(config.LogConfig{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		log.Fatal("failed to resolve migrations path", zap.Error(err))
	}

	m, err := migrate.New("file://"+absPath, cfg.Database.DSN())
	if err != nil {
		log.Fatal("failed to initialize migrator", zap.Error(err))
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Error("error closing migration source", zap.Error(srcErr))
		}
		if dbErr != nil {
			log.Error("error closing migration database", zap.Error(dbErr))
		}
	}()

	switch command {
	case "up":
		report(log, "up", m.Up())
	case "down":
		report(log, "down", m.Steps(-1))
	case "drop":
		report(log, "drop", m.Drop())
	case "force":
		if len(args) < 2 {
			log.Fatal("version required. Usage: migrate force <version>")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("version must be a number", zap.Error(err))
		}
		if err := m.Force(version); err != nil {
			log.Fatal("force failed", zap.Error(err))
		}
		log.Info("version forced", zap.Int("version", version))
	case "version":
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatal("failed to read version", zap.Error(err))
		}
		log.Info("current schema version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty))
	default:
		printUsage()
		os.Exit(1)
	}
}

func report(log *zap.Logger, name string, err error) {
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Info("no pending migrations", zap.String("command", name))
	case err != nil:
		log.Fatal("migration failed", zap.String("command", name), zap.Error(err))
	default:
		log.Info("migrations applied", zap.String("command", name))
	}
}

func printUsage() {
	fmt.Println(`Usage: migrate [flags] <command>

Commands:
  up        apply all pending migrations
  down      roll back the most recent migration
  drop      drop everything in the database
  force <v> set the schema version without running migrations
  version   print the current schema version

Flags:
  -path       migrations directory (default "migrations")
  -log-level  log level (default "info")`)
}
