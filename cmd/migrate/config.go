package main

import (
	"os"
	"slices"
)

var commands = []string{"up", "down", "status", "create"}

func isKnownCommand(command string) bool {
	return slices.Contains(commands, command)
}

func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return "db/migrations"
}
