package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSettingsCommand(dataDir *string) *cobra.Command {
	var (
		currency      string
		budgetAlerts  bool
		billReminders bool
		emailNotifs   bool
		theme         string
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or update settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			settings := st.Settings()
			changed := false
			if cmd.Flags().Changed("currency") {
				settings.Currency = currency
				changed = true
			}
			if cmd.Flags().Changed("budget-alerts") {
				settings.BudgetAlerts = budgetAlerts
				changed = true
			}
			if cmd.Flags().Changed("bill-reminders") {
				settings.BillReminders = billReminders
				changed = true
			}
			if cmd.Flags().Changed("email-notifications") {
				settings.EmailNotifications = emailNotifs
				changed = true
			}
			if cmd.Flags().Changed("theme") {
				settings.Theme = theme
				changed = true
			}

			if changed {
				if err := st.UpdateSettings(settings); err != nil {
					return err
				}
				fmt.Println("Settings updated")
			}

			fmt.Printf("Currency:            %s\n", settings.Currency)
			fmt.Printf("Budget alerts:       %t\n", settings.BudgetAlerts)
			fmt.Printf("Bill reminders:      %t\n", settings.BillReminders)
			fmt.Printf("Email notifications: %t\n", settings.EmailNotifications)
			fmt.Printf("Theme:               %s\n", settings.Theme)
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "currency code (USD, EUR, GBP, CAD, AUD, INR)")
	cmd.Flags().BoolVar(&budgetAlerts, "budget-alerts", true, "enable budget alerts")
	cmd.Flags().BoolVar(&billReminders, "bill-reminders", true, "enable bill reminders")
	cmd.Flags().BoolVar(&emailNotifs, "email-notifications", true, "enable email notifications")
	cmd.Flags().StringVar(&theme, "theme", "", "UI theme (light or dark)")

	return cmd
}
