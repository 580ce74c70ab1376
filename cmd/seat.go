package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/guimove/pewfit/internal/orchestrator"
	"github.com/guimove/pewfit/internal/report"
	"github.com/guimove/pewfit/internal/roster"
)

var seatCmd = &cobra.Command{
	Use:   "seat",
	Short: "Seat household reservations and write the arrangement",
	Long: `Reads the household reservations and pew seating CSV files, seats as
many households as possible and writes one line per household with its
door, section, row and seat numbers.

Households beyond the venue limit (--max-capacity minus --reserved) are
listed without a location, as are households no row could take.`,
	RunE: runSeat,
}

func init() {
	f := seatCmd.Flags()
	f.String("output", "", "output format: csv, table, json, yaml, markdown (default csv)")
	f.String("output-file", "", "write output to a file instead of stdout")

	rootCmd.AddCommand(seatCmd)
}

func runSeat(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

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

	plan, err := orch.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("seating complete",
		"plan", plan.ID,
		"seated", plan.Stats.SeatedHouseholds,
		"overflow", plan.Stats.OverflowHouseholds,
		"unassigned", plan.Stats.UnassignedHouseholds)
	return nil
}

func applyOutputFlags(cmd *cobra.Command) error {
	if f, _ := cmd.Flags().GetString("output"); cmd.Flags().Changed("output") {
		cfg.Output.Format = f
	}
	if f, _ := cmd.Flags().GetString("output-file"); cmd.Flags().Changed("output-file") {
		cfg.Output.File = f
	}
	return cfg.Validate()
}

func requireInputs() error {
	if cfg.Input.Households == "" || cfg.Input.Pews == "" {
		return fmt.Errorf("both --households and --pews are required")
	}
	return nil
}

func reportMeta() report.ReportMeta {
	return report.ReportMeta{
		HouseholdsFile:  cfg.Input.Households,
		PewsFile:        cfg.Input.Pews,
		MaxCapacity:     cfg.Seating.MaxCapacity,
		ReservedSeats:   cfg.Seating.ReservedSeats,
		SeparationFeet:  cfg.Seating.SeparationFeet,
		SeatWidthInches: cfg.Seating.SeatWidthInches,
	}
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
