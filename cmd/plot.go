package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeffreywbertke/DC/internal/chart"
	"github.com/jeffreywbertke/DC/internal/circuit"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot the I-V line and operating point of a problem",
	Long: `Generate a problem and draw I = V / Req from 0 to 30 V with the
problem's operating point marked. The format follows the --out extension
(png, svg or pdf).`,
	RunE: runPlot,
}

func init() {
	addProblemFlags(plotCmd)
	plotCmd.Flags().StringP("out", "o", "circuit.png", "Output file")
}

func runPlot(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("out")
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(outPath)), ".")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	topology, err := problemTopology(cmd, cfg)
	if err != nil {
		return err
	}
	p := circuit.Generate(topology, problemSource(cmd, cfg))

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	if err := chart.WriteIV(f, p, format); err != nil {
		f.Close()
		os.Remove(outPath)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outPath, err)
	}

	out := cmd.OutOrStdout()
	printProblem(out, p)
	printSolution(out, p)
	fmt.Fprintf(out, "\nWrote %s\n", outPath)
	return nil
}
