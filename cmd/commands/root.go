// Package commands implements the interview-coach CLI.
package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"interview_coach/internal/config"
	"interview_coach/internal/platform/logger"
)

// v holds configuration from flags, the environment and .env.
var v = config.New()

// rootCmd serves HTTP when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "interview-coach",
	Short: "Interview practice API with AI feedback",
	Long: `interview-coach serves random interview questions and relays answers to a
large language model that replies with short coaching feedback.

Running it without a subcommand is the same as "interview-coach serve".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.LoadEnvFile(); err != nil {
			return err
		}

		l := logger.New(v.GetBool(config.KeyVerbose), v.GetBool(config.KeyLogJSON))
		cmd.SetContext(logger.WithContext(cmd.Context(), l))
		return nil
	},
	RunE: runServe,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Bool("verbose", false, "Enable debug logging")
	flags.Bool("json", false, "Write logs as JSON")

	_ = v.BindPFlag(config.KeyVerbose, flags.Lookup("verbose"))
	_ = v.BindPFlag(config.KeyLogJSON, flags.Lookup("json"))

	addServeFlags(rootCmd)
}

// Execute runs the root command. Returns an error if the command fails.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		color.Red("❌ %v", err)
	}
	return err
}
