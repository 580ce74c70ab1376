package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/guimove/pewfit/internal/orchestrator"
	"github.com/guimove/pewfit/internal/roster"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare seating outcomes across household margins",
	Long: `Seats the same reservations once per margin and ranks the results by
households seated, people seated and unused seats. Useful for deciding how
much distancing the venue can afford.`,
	RunE: runCompare,
}

func init() {
	f := compareCmd.Flags()
	f.IntSlice("margins", nil, "margins to compare (default 0-6)")
	f.Int("parallelism", 0, "scenarios run concurrently, 0 for one per CPU")
	f.Int("top", 0, "number of ranked scenarios to print (default 5)")
	f.String("output", "", "output format: table, csv, json, yaml, markdown (default table)")
	f.String("output-file", "", "write output to a file instead of stdout")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if m, _ := cmd.Flags().GetIntSlice("margins"); cmd.Flags().Changed("margins") {
		cfg.Compare.Margins = m
	}
	if p, _ := cmd.Flags().GetInt("parallelism"); cmd.Flags().Changed("parallelism") {
		cfg.Compare.Parallelism = p
	}
	if n, _ := cmd.Flags().GetInt("top"); cmd.Flags().Changed("top") {
		cfg.Compare.TopN = n
	}
	// The arrangement CSV only makes sense for a single plan.
	if !cmd.Flags().Changed("output") && cfg.Output.Format == "csv" {
		cfg.Output.Format = "table"
	}
	if err := applyOutputFlags(cmd); err != nil {
		return err
	}
	if err := requireInputs(); err != nil {
		return err
	}

	w, closeFn, err := openOutput(cfg.Output.File)
	if err != nil {
		return err
	}
	defer closeFn()

	orch := orchestrator.New(roster.NewFileSource(cfg.Input.Households, cfg.Input.Pews), cfg)
	orch.Writer = w
	orch.Logger = logger
	orch.Meta = reportMeta()

	recs, err := orch.Compare(ctx)
	if err != nil {
		return err
	}
	if len(recs) > 0 {
		logger.Info("comparison complete", "scenarios", len(recs), "best_margin", recs[0].Outcome.Margin)
	}
	return nil
}
