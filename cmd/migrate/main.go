package main

import (
	"context"
	"database/sql"
	"flag"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jhoicas/pos-admin-api/pkg/config"
	"github.com/jhoicas/pos-admin-api/pkg/logger"
	"github.com/pressly/goose/v3"
)

// Runner de migraciones con goose. Uso:
//
//	go run ./cmd/migrate -command up
//	go run ./cmd/migrate -command status
//	go run ./cmd/migrate -command down
func main() {
	command := flag.String("command", "up", "comando de migración (up|down|status)")
	timeout := flag.Duration("timeout", time.Minute, "timeout del comando")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: "migrate",
	})

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión a PostgreSQL")
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("configurar goose")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	dir := cfg.DB.MigrationsDir
	switch *command {
	case "up":
		err = goose.UpContext(ctx, db, dir)
	case "down":
		err = goose.DownContext(ctx, db, dir)
	case "status":
		err = goose.StatusContext(ctx, db, dir)
	default:
		log.Fatal().Str("command", *command).Msg("comando no soportado")
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", *command).Msg("migración fallida")
	}

	log.Info().Str("command", *command).Str("dir", dir).Msg("migración completada")
}
