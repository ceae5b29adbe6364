package cmd

import (
	"github.com/spf13/cobra"

	"github.com/unijobs/unijobs/internal/api"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show and edit your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth("/profile/"); err != nil {
			return err
		}

		me, err := app.client.Me(cmd.Context())
		if err != nil {
			return err
		}

		cmd.Println(app.renderer.Profile(me))
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	Long: `Update profile fields. Only the flags you pass are changed; the backend
ignores fields that do not belong to your role.

Examples:
  unijobs profile update --first-name Ivan --faculty "Computer Science" --course 3
  unijobs profile update --company-name "Acme" --contact-person "Anna"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth("/profile/"); err != nil {
			return err
		}

		update := api.ProfileUpdate{}
		set := func(name string, target **string) {
			if cmd.Flags().Changed(name) {
				v, _ := cmd.Flags().GetString(name)
				*target = &v
			}
		}
		set("first-name", &update.FirstName)
		set("last-name", &update.LastName)
		set("phone", &update.Phone)
		set("faculty", &update.Faculty)
		set("resume", &update.ResumeURL)
		set("company-name", &update.CompanyName)
		set("department", &update.Department)
		set("contact-person", &update.ContactPerson)
		set("description", &update.Description)
		if cmd.Flags().Changed("course") {
			course, _ := cmd.Flags().GetInt("course")
			update.Course = &course
		}
		if cmd.Flags().Changed("skills") {
			update.SkillIDs, _ = cmd.Flags().GetInt64Slice("skills")
		}

		if err := app.client.UpdateProfile(cmd.Context(), update); err != nil {
			return err
		}
		cmd.Println("Profile updated.")
		return nil
	},
}

func init() {
	flags := profileUpdateCmd.Flags()
	flags.String("first-name", "", "first name")
	flags.String("last-name", "", "last name")
	flags.String("phone", "", "phone number")
	flags.String("faculty", "", "faculty (students)")
	flags.Int("course", 0, "course year (students)")
	flags.String("resume", "", "resume URL (students)")
	flags.Int64Slice("skills", nil, "skill ids (students)")
	flags.String("company-name", "", "company name (employers)")
	flags.String("department", "", "department (employers)")
	flags.String("contact-person", "", "contact person (employers)")
	flags.String("description", "", "company description (employers)")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}
