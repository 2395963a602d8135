package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	_ "github.com/lib/pq"
	"github.com/limbo/studyquest/internal/repository"
	"github.com/limbo/studyquest/pkg/config"
	"github.com/limbo/studyquest/pkg/logger"
	"github.com/pressly/goose"
)

type Globals struct {
	Dir string `help:"Migrations directory." default:"${migrations_dir}" type:"path"`
	DSN string `help:"Postgres connection string. Built from POSTGRES_* variables when empty." env:"DATABASE_URL"`
}

type UpCmd struct{}

func (c *UpCmd) Run(db *sql.DB, g *Globals) error {
	return goose.Up(db, g.Dir)
}

type DownCmd struct{}

func (c *DownCmd) Run(db *sql.DB, g *Globals) error {
	return goose.Down(db, g.Dir)
}

type StatusCmd struct{}

func (c *StatusCmd) Run(db *sql.DB, g *Globals) error {
	return goose.Status(db, g.Dir)
}

type VersionCmd struct{}

func (c *VersionCmd) Run(db *sql.DB) error {
	version, err := goose.GetDBVersion(db)
	if err != nil {
		return err
	}
	fmt.Println(version)
	return nil
}

var CLI struct {
	Globals

	Up      UpCmd      `cmd:"" help:"Apply all pending migrations." default:"1"`
	Down    DownCmd    `cmd:"" help:"Roll back the latest migration."`
	Status  StatusCmd  `cmd:"" help:"Show migration status."`
	Version VersionCmd `cmd:"" help:"Print the current schema version."`
}

func main() {
	cfg := config.New()
	logger.Setup(logger.Config{Level: cfg.GetString("LOG_LEVEL")})
	ctx := kong.Parse(&CLI,
		kong.Name("migrate"),
		kong.Description("Applies studyquest database migrations"),
		kong.UsageOnError(),
		kong.Vars{"migrations_dir": cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")},
	)
	dsn := CLI.DSN
	if dsn == "" {
		dbCfg := repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		}
		dsn = dbCfg.ConnString() + "?sslmode=disable"
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		slog.Error("opening database error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		slog.Error("setting dialect error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err = ctx.Run(db, &CLI.Globals); err != nil {
		slog.Error("migration failed", slog.String("command", ctx.Command()), slog.String("error", err.Error()))
		db.Close()
		os.Exit(1)
	}
	slog.Info("migration finished", slog.String("command", ctx.Command()))
}
