package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unijobs/unijobs/internal/api"
	"github.com/unijobs/unijobs/internal/authz"
)

var applicationCmd = &cobra.Command{
	Use:     "application",
	Aliases: []string{"app"},
	Short:   "Track and manage applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var applicationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your applications",
	Long: `List applications.

Students see their own applications; employers see applications to their
vacancies. Pass --vacancy to narrow to one posting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth("/applications/"); err != nil {
			return err
		}

		vacancyID, _ := cmd.Flags().GetInt64("vacancy")
		applications, err := app.client.Applications(cmd.Context(), vacancyID)
		if err != nil {
			return err
		}

		cmd.Println(app.renderer.ApplicationList(applications))
		return nil
	},
}

var applicationShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an application with its interview and review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := app.requireAuth(fmt.Sprintf("/applications/%d/", id)); err != nil {
			return err
		}

		application, err := app.client.Application(cmd.Context(), id)
		if err != nil {
			return err
		}

		cmd.Println(app.renderer.ApplicationDetail(application))
		return nil
	},
}

var applicationSetStatusCmd = &cobra.Command{
	Use:   "set-status <id> <status>",
	Short: "Change an application's status (employers)",
	Long: fmt.Sprintf(`Change an application's status.

Valid statuses: %s.

The applicant is notified about the change.`, statusList()),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		status, ok := authz.ParseApplicationStatus(args[1])
		if !ok {
			return fmt.Errorf("invalid status %q (valid: %s)", args[1], statusList())
		}

		if err := app.requireRole(authz.RoleEmployer, fmt.Sprintf("/applications/%d/", id)); err != nil {
			return err
		}

		updated, err := app.client.UpdateApplicationStatus(cmd.Context(), id, status)
		if err != nil {
			return err
		}

		cmd.Printf("Application #%d is now %s.\n", updated.ID, updated.Status)
		return nil
	},
}

var applicationReviewCmd = &cobra.Command{
	Use:   "review <id>",
	Short: "Leave a review on an application",
	Long: `Leave a review on an application you are part of.

The rating is 1 to 5 stars. Employers review students after an interview;
students review the company.

Examples:
  unijobs application review 3 --rating 5 --comment "Great candidate"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := app.requireAuth(fmt.Sprintf("/applications/%d/", id)); err != nil {
			return err
		}

		rating, _ := cmd.Flags().GetInt("rating")
		if rating < 1 || rating > 5 {
			return fmt.Errorf("--rating must be between 1 and 5")
		}
		comment, _ := cmd.Flags().GetString("comment")

		draft := api.ReviewDraft{
			Rating:   rating,
			Comment:  comment,
			FromRole: string(app.session.Role()),
		}
		if _, err := app.client.AddReview(cmd.Context(), id, draft); err != nil {
			return err
		}

		cmd.Println("Review saved.")
		return nil
	},
}

func statusList() string {
	statuses := authz.ApplicationStatuses()
	parts := make([]string, 0, len(statuses))
	for _, s := range statuses {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}

func init() {
	applicationListCmd.Flags().Int64("vacancy", 0, "only applications to this vacancy")

	applicationReviewCmd.Flags().Int("rating", 0, "rating from 1 to 5")
	applicationReviewCmd.Flags().String("comment", "", "review text")

	applicationCmd.AddCommand(applicationListCmd)
	applicationCmd.AddCommand(applicationShowCmd)
	applicationCmd.AddCommand(applicationSetStatusCmd)
	applicationCmd.AddCommand(applicationReviewCmd)
	rootCmd.AddCommand(applicationCmd)
}
