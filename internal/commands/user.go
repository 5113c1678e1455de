package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newLoginCommand(dataDir *string) *cobra.Command {
	var email string
	var name string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Record the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			user, err := st.Login(email, name, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "user email (required)")
	_ = cmd.MarkFlagRequired("email")
	cmd.Flags().StringVar(&name, "name", "", "display name")

	return cmd
}

func newLogoutCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := st.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newProfileCommand(dataDir *string) *cobra.Command {
	var name string
	var email string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the current user's profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("email") {
				user := st.CurrentUser()
				if user == nil {
					fmt.Println("Not logged in")
					return nil
				}
				fmt.Printf("%s <%s> (logged in %s)\n", user.Name, user.Email, user.LoginTime.Format(time.RFC3339))
				return nil
			}

			current := st.CurrentUser()
			if current == nil {
				return fmt.Errorf("not logged in")
			}
			if !cmd.Flags().Changed("name") {
				name = current.Name
			}
			if !cmd.Flags().Changed("email") {
				email = current.Email
			}

			user, err := st.UpdateProfile(name, email)
			if err != nil {
				return err
			}
			fmt.Printf("Profile updated: %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&email, "email", "", "new email")

	return cmd
}
