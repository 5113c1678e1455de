package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/export"
)

func newExportCommand(dataDir *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as a JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			doc := export.BuildDocument(st.Data(), st.CurrentUser(), time.Now())
			blob, err := export.MarshalDocument(doc)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, blob, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Printf("Exported data to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "fintrack-data.json", "output file")

	return cmd
}

func newImportCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON document, replacing all collections",
		Long: `Import replaces transactions, budgets, goals, and bills with the file's
contents and merges settings field-by-field. A file that does not parse as
the expected structure is rejected and the store is left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			doc, err := export.ParseDocument(blob)
			if err != nil {
				return err
			}

			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := export.Import(st, doc); err != nil {
				return err
			}
			fmt.Printf("Imported %d transactions, %d budgets, %d goals, %d bills\n",
				len(doc.Transactions), len(doc.Budgets), len(doc.Goals), len(doc.Bills))
			return nil
		},
	}
}

func newClearCommand(dataDir *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all records and reset settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to delete all data without --force")
			}

			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := st.ClearAll(); err != nil {
				return err
			}
			fmt.Println("All data cleared")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm deleting everything")

	return cmd
}
