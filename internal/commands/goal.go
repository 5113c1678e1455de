package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/store"
)

func newGoalCommand(dataDir *string) *cobra.Command {
	goalCmd := &cobra.Command{
		Use:   "goal",
		Short: "Savings goal operations",
	}
	goalCmd.AddCommand(newGoalAddCommand(dataDir))
	goalCmd.AddCommand(newGoalListCommand(dataDir))
	goalCmd.AddCommand(newGoalProgressCommand(dataDir))
	goalCmd.AddCommand(newGoalDeleteCommand(dataDir))
	return goalCmd
}

func newGoalAddCommand(dataDir *string) *cobra.Command {
	var (
		name        string
		target      string
		current     string
		deadline    string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a savings goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			targetAmt, err := parseAmountFlag(target, "target")
			if err != nil {
				return err
			}
			currentAmt := decimal.Zero
			if current != "" {
				currentAmt, err = parseAmountFlag(current, "current")
				if err != nil {
					return err
				}
			}
			deadlineDate, err := parseDateFlag(deadline, "deadline")
			if err != nil {
				return err
			}

			goal, err := st.AddGoal(store.GoalParams{
				Name:        name,
				Target:      targetAmt,
				Current:     currentAmt,
				Deadline:    deadlineDate,
				Description: description,
			}, model.DateOf(time.Now()))
			if err != nil {
				return err
			}

			fmt.Printf("Created goal %q: %s by %s [%s]\n",
				goal.Name, goal.Target.StringFixed(2), goal.Deadline, goal.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "goal name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&target, "target", "", "target amount (required)")
	_ = cmd.MarkFlagRequired("target")
	cmd.Flags().StringVar(&current, "current", "", "amount saved so far")
	cmd.Flags().StringVar(&deadline, "deadline", "", "target date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("deadline")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")

	return cmd
}

func newGoalListCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals with progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			goals := st.Goals()
			if len(goals) == 0 {
				fmt.Println("No goals set. Create your first goal!")
				return nil
			}

			currency := st.Settings().Currency
			today := model.DateOf(time.Now())
			for _, g := range goals {
				pct := decimal.Zero
				if g.Target.IsPositive() {
					pct = g.Current.Div(g.Target).Mul(decimal.NewFromInt(100))
				}
				daysLeft := today.DaysUntil(g.Deadline)
				deadline := fmt.Sprintf("%d days left", daysLeft)
				if daysLeft < 0 {
					deadline = "overdue"
				}
				fmt.Printf("%-20s  %s / %s  (%s%% complete, %s)  [%s]\n",
					g.Name,
					model.FormatAmount(g.Current, currency),
					model.FormatAmount(g.Target, currency),
					pct.Round(0), deadline, g.ID)
			}
			return nil
		},
	}
}

func newGoalProgressCommand(dataDir *string) *cobra.Command {
	var current string

	cmd := &cobra.Command{
		Use:   "progress <id>",
		Short: "Update a goal's saved amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			amt, err := parseAmountFlag(current, "current")
			if err != nil {
				return err
			}

			goal, err := st.UpdateGoalProgress(args[0], amt)
			if err != nil {
				return err
			}
			fmt.Printf("Updated %q: %s / %s\n",
				goal.Name, goal.Current.StringFixed(2), goal.Target.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "new saved amount (required)")
	_ = cmd.MarkFlagRequired("current")

	return cmd
}

func newGoalDeleteCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := st.DeleteGoal(args[0]); err != nil {
				return err
			}
			fmt.Println("Goal deleted")
			return nil
		},
	}
}
