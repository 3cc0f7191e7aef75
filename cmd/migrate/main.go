package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"booksapi/internal/config"
	"booksapi/internal/platform/postgres"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	if !isKnownCommand(*command) {
		log.Printf("Unknown command: %s. Use: %s", *command, strings.Join(commands, ", "))
		os.Exit(2)
	}

	config.LoadEnvFiles()
	if err := run(*command, *name, migrationsDir()); err != nil {
		log.Fatal(err)
	}
}

// run executes a known migration command. Connections opened here are
// closed before it returns.
func run(command, name, dir string) error {
	if command == "create" {
		if name == "" {
			return fmt.Errorf("name is required for 'create' command")
		}
		if err := goose.Create(nil, dir, name, "sql"); err != nil {
			return fmt.Errorf("create migration: %w", err)
		}
		fmt.Printf("Migration created: %s\n", name)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	pool, err := postgres.Open(context.Background(), postgres.Config{DSN: cfg.DatabaseDSN, MaxConns: 2})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	switch command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		fmt.Println("Migrations applied successfully")
	case "down":
		if err := goose.Down(db, dir); err != nil {
			return fmt.Errorf("rollback migrations: %w", err)
		}
		fmt.Println("Migrations rolled back successfully")
	case "status":
		if err := goose.Status(db, dir); err != nil {
			return fmt.Errorf("check migration status: %w", err)
		}
	}
	return nil
}
