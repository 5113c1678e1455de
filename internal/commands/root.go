// Package commands wires the CLI surface. Commands stay thin: they parse
// flags, call into the store/report/alerts/export packages, and print.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/buildinfo"
	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/logging"
	"github.com/fintrack-dev/fintrack/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dataDir string

	rootCmd := &cobra.Command{
		Use:     "fintrack",
		Short:   "Personal income, expense, budget, and bill tracking",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(dataDir)
			if err != nil {
				return err
			}
			cfg, err := config.Resolve(dir)
			if err != nil {
				return err
			}
			level := cfg.Log.Level
			if env := os.Getenv("LOG_LEVEL"); env != "" {
				level = env
			}
			logging.Setup(level)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "", "data directory (default ~/.fintrack)")

	rootCmd.AddCommand(
		newInitCommand(&dataDir),
		newLoginCommand(&dataDir),
		newLogoutCommand(&dataDir),
		newProfileCommand(&dataDir),
		newTxCommand(&dataDir),
		newBudgetCommand(&dataDir),
		newGoalCommand(&dataDir),
		newBillCommand(&dataDir),
		newDashboardCommand(&dataDir),
		newReportCommand(&dataDir),
		newExportCommand(&dataDir),
		newImportCommand(&dataDir),
		newSettingsCommand(&dataDir),
		newClearCommand(&dataDir),
	)

	return rootCmd
}

// resolveDir picks the data directory: the --dir flag when set, otherwise
// the default (~/.fintrack, or FINTRACK_HOME).
func resolveDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	return config.DefaultDir()
}

// openStore resolves config and opens the store. The caller must Close the
// returned KV when done.
func openStore(dataDir string) (*store.Store, *store.SQLiteKV, error) {
	dir, err := resolveDir(dataDir)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, nil, err
	}
	kv, err := store.OpenKV(cfg.Storage.Path)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(kv)
	if err != nil {
		kv.Close()
		return nil, nil, err
	}
	return st, kv, nil
}
