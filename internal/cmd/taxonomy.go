package cmd

import (
	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "List vacancy categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		categories, err := app.client.Categories(cmd.Context())
		if err != nil {
			return err
		}

		for _, c := range categories {
			cmd.Printf("%d\t%s\n", c.ID, c.Name)
		}
		return nil
	},
}

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "List known skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		skills, err := app.client.Skills(cmd.Context())
		if err != nil {
			return err
		}

		for _, s := range skills {
			cmd.Printf("%d\t%s\n", s.ID, s.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(skillCmd)
}
