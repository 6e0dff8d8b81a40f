package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/accrue-dev/accrue/internal/casefile"
	"github.com/accrue-dev/accrue/internal/entries"
	"github.com/accrue-dev/accrue/internal/export"
	"github.com/accrue-dev/accrue/internal/ledger"
	"github.com/accrue-dev/accrue/internal/render"
)

type scheduleOptions struct {
	dir       string
	asOf      string
	basis     int
	csvPath   string
	reportOut string
}

func newScheduleCommand() *cobra.Command {
	var opts scheduleOptions

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Compute and display the amortization schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(opts.dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			basisSet := cmd.Flags().Changed("basis")
			return runSchedule(cmd, absDir, opts, basisSet)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", ".", "case directory")
	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "project interest to this date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&opts.basis, "basis", ledger.Basis365, "override day-count basis (360 or 365)")
	cmd.Flags().StringVar(&opts.csvPath, "csv", "", "also write the schedule as CSV to this file")
	cmd.Flags().StringVar(&opts.reportOut, "report", "", "also write the printable statement to this file")

	return cmd
}

func runSchedule(cmd *cobra.Command, dir string, opts scheduleOptions, basisSet bool) error {
	cfg, err := casefile.Load(filepath.Join(dir, casefile.FileName))
	if err != nil {
		return fmt.Errorf("loading case: %w", err)
	}

	ents, err := entries.NewService(dir).Load()
	if err != nil {
		return fmt.Errorf("loading entries: %w", err)
	}

	in := cfg.EngineInput(ents)
	if opts.asOf != "" {
		in.AsOf, err = time.Parse("2006-01-02", opts.asOf)
		if err != nil {
			return fmt.Errorf("parsing as-of date: %w", err)
		}
	}
	if basisSet {
		if opts.basis != ledger.Basis360 && opts.basis != ledger.Basis365 {
			return fmt.Errorf("basis must be %d or %d, got %d", ledger.Basis360, ledger.Basis365, opts.basis)
		}
		in.Basis = opts.basis
	}

	sched := ledger.Compute(in)

	if err := render.Table(cmd.OutOrStdout(), sched, in.AsOf); err != nil {
		return err
	}

	if opts.csvPath != "" {
		if err := writeTo(opts.csvPath, func(f *os.File) error {
			return export.WriteCSV(f, sched.Rows)
		}); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nWrote %s\n", opts.csvPath)
	}

	if opts.reportOut != "" {
		if err := writeTo(opts.reportOut, func(f *os.File) error {
			return export.WriteReport(f, cfg, sched)
		}); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.reportOut)
	}

	return nil
}

func writeTo(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
