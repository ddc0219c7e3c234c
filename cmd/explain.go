package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeffreywbertke/DC/internal/circuit"
	"github.com/jeffreywbertke/DC/internal/logging"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Generate a problem and print the tutor's walkthrough",
	RunE:  runExplain,
}

func init() {
	addProblemFlags(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	topology, err := problemTopology(cmd, cfg)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, true)
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

	p := circuit.Generate(topology, problemSource(cmd, cfg))
	out := cmd.OutOrStdout()

	printProblem(out, p)
	printSolution(out, p)
	fmt.Fprintln(out)

	if model == "" {
		fmt.Fprintln(out, "AI tutor:")
	} else {
		fmt.Fprintf(out, "AI tutor (%s):\n", model)
	}
	fmt.Fprintln(out, svc.Explain(cmd.Context(), p))
	return nil
}
