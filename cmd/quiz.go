package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeffreywbertke/DC/internal/logging"
	"github.com/jeffreywbertke/DC/internal/practice"
	"github.com/jeffreywbertke/DC/internal/tutor"
	"github.com/jeffreywbertke/DC/internal/ui/theme"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer a run of problems on the command line",
	Long: `Ask a fixed number of problems on stdin/stdout without the TUI.

Blank answers skip the problem. With --explain the tutor walks through every
problem you get wrong.`,
	RunE: runQuiz,
}

func init() {
	addProblemFlags(quizCmd)
	quizCmd.Flags().Int("count", 5, "Number of problems")
	quizCmd.Flags().Bool("explain", false, "Ask the tutor to explain wrong answers")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	withExplain, _ := cmd.Flags().GetBool("explain")
	if count < 1 {
		return fmt.Errorf("--count must be at least 1")
	}

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

	var explainer tutor.Explainer
	if withExplain {
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		svc, model, err := newTutor(cmd.Context(), cfg, st.EventRepo(), logger)
		if err != nil {
			return err
		}
		if model == "" {
			logger.Warn("--explain requested but no LLM provider is configured")
		}
		explainer = svc
	}

	sess := practice.New(topology, problemSource(cmd, cfg))
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for i := 1; i <= count; i++ {
		round := sess.Round()
		if i > 1 {
			round = sess.NewProblem()
		}

		fmt.Fprintf(out, "── Problem %d/%d ──\n", i, count)
		printProblem(out, round.Problem)

		fmt.Fprintf(out, "\nYour answer (%s): ", round.Problem.Target.Unit())
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())

		fb, ok := sess.Submit(answer)
		if !ok {
			fmt.Fprintln(out, "(skipped)")
			fmt.Fprintln(out)
			continue
		}
		if fb.Correct {
			fmt.Fprintln(out, theme.Correct.Render("✓ "+fb.Message))
		} else {
			fmt.Fprintln(out, theme.Incorrect.Render("✗ "+fb.Message))
			if explainer != nil {
				roundID, problem := sess.BeginExplain()
				fmt.Fprintln(out, "Consulting...")
				text := explainer.Explain(cmd.Context(), problem)
				sess.SetExplanation(roundID, text)
				fmt.Fprintln(out, text)
			}
		}
		fmt.Fprintln(out)
	}

	stats := sess.Stats()
	fmt.Fprintf(out, "Score: %d/%d correct (best streak %d)\n", stats.Correct, stats.Attempted, stats.BestStreak)
	logger.Debug("quiz finished",
		zap.Int("attempted", stats.Attempted),
		zap.Int("correct", stats.Correct),
		zap.Stringer("topology", topology),
	)
	return nil
}
