package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unijobs/unijobs/internal/authz"
	"github.com/unijobs/unijobs/internal/tui"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the job board",
	Long: `Log in to the job board with your username and password.

The session token is saved in your user config directory and attached to
every subsequent request. Without flags, the command asks interactively.

Examples:
  unijobs login
  unijobs login --username ivan --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		if username == "" || password == "" {
			if err := tui.LoginForm(&username, &password).Run(); err != nil {
				return err
			}
		}

		session, err := app.gateway.Login(cmd.Context(), username, password)
		if err != nil {
			app.logger.WithError(err).Warn("login failed", "username", username)
			return err
		}

		cmd.Printf("Logged in as %s (%s)\n", session.Username, session.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the saved session",
	Long: `Log out and remove the saved session token.

The token is only removed locally; logging out while offline works fine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		if !app.session.IsAuthenticated() {
			cmd.Println("Not logged in.")
			return nil
		}

		username, _ := app.session.Username()
		if err := app.gateway.Logout(); err != nil {
			return fmt.Errorf("remove session: %w", err)
		}

		cmd.Printf("Logged out %s.\n", username)
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		if app.session.IsAuthenticated() {
			username, _ := app.session.Username()
			cmd.Printf("%s (%s)\n", username, app.session.Role())
		} else {
			cmd.Println("Not logged in.")
		}

		// The navigation line mirrors what the role can reach.
		decision := authz.Decide(app.session.Subject(nil), authz.ContextNavigation)
		cmd.Println(app.renderer.Navbar(decision))
		return nil
	},
}

func init() {
	loginCmd.Flags().String("username", "", "account username")
	loginCmd.Flags().String("password", "", "account password")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
