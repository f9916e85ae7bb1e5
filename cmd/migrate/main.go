package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Gunvolt24/cinema_tickets/config"
	"github.com/Gunvolt24/cinema_tickets/migrations"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver name = "pgx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
)

// Миграции базы учёта оплат и бронирований: migrate [-dsn DSN] up|down|status|version.
func main() {
	_ = godotenv.Load(".env.local")

	dsnFlag := flag.String("dsn", "", "postgres DSN (default: TICKETS_POSTGRES_DSN)")
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	dsn := *dsnFlag
	if dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		dsn = cfg.Postgres.DSN
	}

	if err := run(dsn, command); err != nil {
		fmt.Fprintf(os.Stderr, "migrate %s: %v\n", command, err)
		os.Exit(1)
	}
}

func run(dsn, command string) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	return goose.Run(command, db, ".")
}
