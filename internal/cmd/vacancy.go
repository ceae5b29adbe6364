package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/unijobs/unijobs/internal/api"
	"github.com/unijobs/unijobs/internal/authz"
	"github.com/unijobs/unijobs/internal/tui"
)

var vacancyCmd = &cobra.Command{
	Use:   "vacancy",
	Short: "Browse and manage vacancies",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var vacancyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vacancies",
	Long: `List vacancies, newest first.

Filters combine. Employers can pass --my to see only their own postings and
--all to include inactive ones.

Examples:
  unijobs vacancy list
  unijobs vacancy list --search "go developer" --type internship
  unijobs vacancy list --my --all`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		filter, err := vacancyFilterFromFlags(cmd)
		if err != nil {
			return err
		}

		vacancies, err := app.client.Vacancies(cmd.Context(), filter)
		if err != nil {
			return err
		}

		cmd.Println(app.renderer.VacancyList(vacancies, func(v *api.Vacancy) authz.Decision {
			owner := v.Owner()
			return authz.Decide(app.session.Subject(&owner), authz.ContextVacancyRow)
		}))
		return nil
	},
}

var vacancyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a vacancy",
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

		vacancy, err := app.client.Vacancy(cmd.Context(), id)
		if err != nil {
			return err
		}

		owner := vacancy.Owner()
		decision := authz.Decide(app.session.Subject(&owner), authz.ContextVacancyDetail)
		cmd.Println(app.renderer.VacancyDetail(vacancy, decision))
		return nil
	},
}

var vacancyCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Post a new vacancy (employers)",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireRole(authz.RoleEmployer, "/vacancies/create/"); err != nil {
			return err
		}

		draft := api.VacancyDraft{VacancyType: api.VacancyTypeWork, IsActive: true}
		filled, err := runVacancyForm(cmd, app, &draft)
		if err != nil {
			return err
		}

		created, err := app.client.CreateVacancy(cmd.Context(), *filled)
		if err != nil {
			return err
		}
		cmd.Printf("Vacancy #%d created.\n", created.ID)
		return nil
	},
}

var vacancyEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit one of your vacancies (employers)",
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
		if err := app.requireRole(authz.RoleEmployer, fmt.Sprintf("/vacancies/%d/edit/", id)); err != nil {
			return err
		}

		return editVacancy(cmd, app, id)
	},
}

var vacancyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one of your vacancies (employers)",
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
		if err := app.requireRole(authz.RoleEmployer, fmt.Sprintf("/vacancies/%d/", id)); err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			if err := tui.ConfirmForm(fmt.Sprintf("Delete vacancy #%d? Applications to it are removed too.", id), &yes).Run(); err != nil {
				return err
			}
			if !yes {
				cmd.Println("Cancelled.")
				return nil
			}
		}

		if err := app.client.DeleteVacancy(cmd.Context(), id); err != nil {
			return err
		}
		cmd.Printf("Vacancy #%d deleted.\n", id)
		return nil
	},
}

var vacancyApplyCmd = &cobra.Command{
	Use:   "apply <id>",
	Short: "Apply to a vacancy (students)",
	Long: `Apply to a vacancy with a resume link and a cover letter.

Only students can apply, and only once per vacancy; the backend rejects a
second application.

Examples:
  unijobs vacancy apply 5
  unijobs vacancy apply 5 --resume https://cv.example/ivan --letter "..."`,
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
		return applyToVacancy(cmd, app, id)
	},
}

// applyToVacancy runs the local gate, collects missing fields, and submits.
// Shared by the apply command and the browser's apply intent.
func applyToVacancy(cmd *cobra.Command, app *app, id int64) error {
	path := fmt.Sprintf("/vacancies/%d/apply/", id)
	if err := app.requireAuth(path); err != nil {
		return err
	}

	// The decision gate runs before any request: a non-student never
	// reaches the backend.
	decision := authz.Decide(app.session.Subject(nil), authz.ContextVacancyDetail)
	if !decision.Allows(authz.ActionApply) {
		if err := app.requireRole(authz.RoleStudent, path); err != nil {
			return err
		}
	}

	draft := api.ApplicationDraft{}
	draft.ResumeURL, _ = cmd.Flags().GetString("resume")
	draft.CoverLetter, _ = cmd.Flags().GetString("letter")
	if draft.ResumeURL == "" || draft.CoverLetter == "" {
		if err := tui.ApplyForm(&draft).Run(); err != nil {
			return err
		}
	}

	if _, err := app.client.Apply(cmd.Context(), id, draft); err != nil {
		return err
	}
	cmd.Println("Application sent.")
	return nil
}

// editVacancy fetches the current state, pre-fills the form, and submits the
// update. Shared by the edit command and the browser's edit intent.
func editVacancy(cmd *cobra.Command, app *app, id int64) error {
	current, err := app.client.Vacancy(cmd.Context(), id)
	if err != nil {
		return err
	}

	draft := api.VacancyDraft{
		Title:        current.Title,
		Description:  current.Description,
		Requirements: current.Requirements,
		VacancyType:  current.VacancyType,
		Salary:       current.Salary,
		Location:     current.Location,
		IsActive:     current.IsActive,
	}
	if current.Category != nil {
		draft.CategoryID = &current.Category.ID
	}
	for _, s := range current.Skills {
		draft.SkillIDs = append(draft.SkillIDs, s.ID)
	}

	filled, err := runVacancyForm(cmd, app, &draft)
	if err != nil {
		return err
	}

	if _, err := app.client.UpdateVacancy(cmd.Context(), id, *filled); err != nil {
		return err
	}
	cmd.Printf("Vacancy #%d updated.\n", id)
	return nil
}

// runVacancyForm loads the taxonomy, runs the interactive form, and folds
// the salary and category selections back into the draft.
func runVacancyForm(cmd *cobra.Command, app *app, draft *api.VacancyDraft) (*api.VacancyDraft, error) {
	categories, err := app.client.Categories(cmd.Context())
	if err != nil {
		return nil, err
	}
	skills, err := app.client.Skills(cmd.Context())
	if err != nil {
		return nil, err
	}

	var salary string
	if draft.Salary != nil {
		salary = draft.Salary.String()
	}
	var categoryID int64

	if err := tui.VacancyForm(draft, &salary, &categoryID, categories, skills).Run(); err != nil {
		return nil, err
	}
	if err := tui.ApplyDraftSalary(draft, salary); err != nil {
		return nil, err
	}
	tui.DraftCategory(draft, categoryID)
	return draft, nil
}

func vacancyFilterFromFlags(cmd *cobra.Command) (api.VacancyFilter, error) {
	filter := api.VacancyFilter{}
	filter.Search, _ = cmd.Flags().GetString("search")
	filter.Type, _ = cmd.Flags().GetString("type")
	filter.CategoryID, _ = cmd.Flags().GetInt64("category")
	filter.WithSalary, _ = cmd.Flags().GetBool("with-salary")
	filter.All, _ = cmd.Flags().GetBool("all")
	filter.My, _ = cmd.Flags().GetBool("my")

	if filter.Type != "" && filter.Type != api.VacancyTypeWork && filter.Type != api.VacancyTypeInternship {
		return filter, fmt.Errorf("--type must be %q or %q", api.VacancyTypeWork, api.VacancyTypeInternship)
	}
	return filter, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func init() {
	vacancyListCmd.Flags().String("search", "", "search in title and description")
	vacancyListCmd.Flags().String("type", "", "filter by type: work or internship")
	vacancyListCmd.Flags().Int64("category", 0, "filter by category id")
	vacancyListCmd.Flags().Bool("with-salary", false, "only vacancies that state a salary")
	vacancyListCmd.Flags().Bool("all", false, "include inactive vacancies (employers)")
	vacancyListCmd.Flags().Bool("my", false, "only your own vacancies (employers)")

	vacancyApplyCmd.Flags().String("resume", "", "resume URL")
	vacancyApplyCmd.Flags().String("letter", "", "cover letter text")

	vacancyDeleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	vacancyCmd.AddCommand(vacancyListCmd)
	vacancyCmd.AddCommand(vacancyShowCmd)
	vacancyCmd.AddCommand(vacancyCreateCmd)
	vacancyCmd.AddCommand(vacancyEditCmd)
	vacancyCmd.AddCommand(vacancyDeleteCmd)
	vacancyCmd.AddCommand(vacancyApplyCmd)
	rootCmd.AddCommand(vacancyCmd)
}
