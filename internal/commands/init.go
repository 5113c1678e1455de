package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/store"
)

func newInitCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the fintrack data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(*dataDir)
			if err != nil {
				return err
			}
			return runInit(dir)
		},
	}
}

func runInit(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	cfgPath := filepath.Join(dir, "fintrack.yaml")
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("already initialized: %s exists", cfgPath)
	}

	cfg := config.Default(dir)
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	// Create the database and the empty store blob up front.
	kv, err := store.OpenKV(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer kv.Close()

	st, err := store.Open(kv)
	if err != nil {
		return err
	}
	if err := st.ClearAll(); err != nil {
		return err
	}

	fmt.Printf("Initialized fintrack at %s\n", dir)
	return nil
}
