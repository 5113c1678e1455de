package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/fintrack-dev/fintrack/internal/commands"
)

func main() {
	// Optional .env for FINTRACK_HOME / LOG_LEVEL overrides.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
