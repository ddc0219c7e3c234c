package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeffreywbertke/DC/internal/app"
	"github.com/jeffreywbertke/DC/internal/circuit"
	"github.com/jeffreywbertke/DC/internal/logging"
	"github.com/jeffreywbertke/DC/internal/practice"
	"github.com/jeffreywbertke/DC/internal/screens/home"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the interactive practice TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	addProblemFlags(playCmd)
	playCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")
}

// runPlay opens the store, builds the tutor, and launches the TUI.
func runPlay(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	topology, err := problemTopology(cmd, cfg)
	if err != nil {
		return err
	}

	logPath, err := tuiLogPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	logger, err := logging.NewFile(cfg.LogLevel, logPath)
	if err != nil {
		return err
	}
	defer logger.Sync()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	svc, model, err := newTutor(cmd.Context(), cfg, st.EventRepo(), logger)
	if err != nil {
		return err
	}

	src := problemSource(cmd, cfg)
	skipSplash, _ := cmd.Flags().GetBool("no-splash")

	return app.Run(cmd.Context(), app.Options{
		Home: home.Deps{
			NewSession: func(t circuit.Topology) *practice.Session {
				return practice.New(t, src)
			},
			Explainer:  svc,
			TutorModel: model,
		},
		Topology:   topology,
		SkipSplash: skipSplash,
	})
}
