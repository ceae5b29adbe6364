package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/unijobs/unijobs/internal/version"
)

var (
	cfgFile  string
	apiURL   string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "unijobs",
	Short: "Terminal client for the university job board",
	Long: `unijobs is a terminal client for the university job board.

Students browse vacancies and internships, apply with a resume link and a
cover letter, and follow their application status. Employers post vacancies,
review incoming applications, and schedule interviews.

Start by logging in:
  unijobs login

Then browse:
  unijobs browse`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.GetInfo().String())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/unijobs/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend API root (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(versionCmd)
}
