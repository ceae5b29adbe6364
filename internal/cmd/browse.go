package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/unijobs/unijobs/internal/authz"
	"github.com/unijobs/unijobs/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse vacancies interactively",
	Long: `Browse vacancies in an interactive terminal UI.

Navigate with the arrow keys, press enter to open a vacancy, and / to
filter. Inside a vacancy the available keys follow your role: students get
"a" to apply, employers get "e" and "d" on their own postings.

Anyone can browse; logging in unlocks the role actions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		filter, err := vacancyFilterFromFlags(cmd)
		if err != nil {
			return err
		}

		model := tui.NewModel(cmd.Context(), app.client, app.session, filter)
		program := tea.NewProgram(model, tea.WithContext(cmd.Context()), tea.WithAltScreen())

		final, err := program.Run()
		if err != nil {
			return err
		}

		result := final.(tui.Model).Result()
		switch result.Intent {
		case tui.IntentApply:
			return applyToVacancy(cmd, app, result.Vacancy.ID)
		case tui.IntentEdit:
			if err := app.requireRole(authz.RoleEmployer, fmt.Sprintf("/vacancies/%d/edit/", result.Vacancy.ID)); err != nil {
				return err
			}
			return editVacancy(cmd, app, result.Vacancy.ID)
		case tui.IntentDelete:
			if err := app.requireRole(authz.RoleEmployer, fmt.Sprintf("/vacancies/%d/", result.Vacancy.ID)); err != nil {
				return err
			}
			var yes bool
			if err := tui.ConfirmForm(fmt.Sprintf("Delete vacancy #%d?", result.Vacancy.ID), &yes).Run(); err != nil {
				return err
			}
			if !yes {
				return nil
			}
			if err := app.client.DeleteVacancy(cmd.Context(), result.Vacancy.ID); err != nil {
				return err
			}
			cmd.Printf("Vacancy #%d deleted.\n", result.Vacancy.ID)
			return nil
		case tui.IntentLogin:
			next := "/vacancies/"
			if result.Vacancy != nil {
				next = fmt.Sprintf("/vacancies/%d/", result.Vacancy.ID)
			}
			return app.requireAuth(next)
		default:
			return nil
		}
	},
}

func init() {
	browseCmd.Flags().String("search", "", "search in title and description")
	browseCmd.Flags().String("type", "", "filter by type: work or internship")
	browseCmd.Flags().Int64("category", 0, "filter by category id")
	browseCmd.Flags().Bool("with-salary", false, "only vacancies that state a salary")
	browseCmd.Flags().Bool("all", false, "include inactive vacancies (employers)")
	browseCmd.Flags().Bool("my", false, "only your own vacancies (employers)")

	rootCmd.AddCommand(browseCmd)
}
