package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dcmaster",
	Short: "DC circuit practice with an AI tutor",
	Long: `DC Circuit Master generates series, parallel and combination resistor
circuits, checks your total resistance and current answers, and can ask an
LLM tutor to walk through the solution.

Set one of DC_GEMINI_API_KEY, DC_OPENAI_API_KEY, DC_ANTHROPIC_API_KEY or
DC_OPENROUTER_API_KEY (or the vendor's usual variable) to enable the tutor.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides DC_CONFIG env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DC_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
