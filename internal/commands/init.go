package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/accrue-dev/accrue/internal/audit"
	"github.com/accrue-dev/accrue/internal/casefile"
	"github.com/accrue-dev/accrue/internal/entries"
	"github.com/accrue-dev/accrue/internal/forms"
	"github.com/accrue-dev/accrue/internal/gitops"
	"github.com/accrue-dev/accrue/internal/ledger"
)

type initOptions struct {
	caseName  string
	debtor    string
	principal string
	startDate string
	rate      string
	basis     int
}

func newInitCommand() *cobra.Command {
	var opts initOptions

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new case directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.caseName, "case-name", "", "case name / file number (required)")
	_ = cmd.MarkFlagRequired("case-name")
	cmd.Flags().StringVar(&opts.debtor, "debtor", "", "judgment debtor")
	cmd.Flags().StringVar(&opts.principal, "principal", "", "starting principal, e.g. \"$10,000.00\"")
	cmd.Flags().StringVar(&opts.startDate, "start-date", "", "judgment date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.rate, "rate", "9.000", "annual interest rate percent")
	cmd.Flags().IntVar(&opts.basis, "basis", ledger.Basis365, "day-count basis (360 or 365)")

	return cmd
}

func runInit(dir string, opts initOptions) error {
	if opts.basis != ledger.Basis360 && opts.basis != ledger.Basis365 {
		return fmt.Errorf("basis must be %d or %d, got %d", ledger.Basis360, ledger.Basis365, opts.basis)
	}
	if opts.startDate != "" {
		if _, err := time.Parse("2006-01-02", opts.startDate); err != nil {
			return fmt.Errorf("parsing start date: %w", err)
		}
	}

	for _, d := range []string{"logs", "exports", "forms"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := casefile.Default(opts.caseName, opts.debtor)
	cfg.Ledger.Principal = opts.principal
	cfg.Ledger.StartDate = opts.startDate
	cfg.Ledger.AnnualRatePct = opts.rate
	cfg.Ledger.Basis = opts.basis
	if err := casefile.Save(filepath.Join(dir, casefile.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := entries.NewService(dir).Init(); err != nil {
		return fmt.Errorf("writing entries file: %w", err)
	}

	if err := forms.SaveTemplate(filepath.Join(dir, "forms", "garnishment.yaml"), forms.DefaultTemplate()); err != nil {
		return fmt.Errorf("writing form template: %w", err)
	}

	gitignore := "exports/\n.env\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	hash, err := gitops.CommitAll(dir, "init: Open case "+opts.caseName, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	logEntry := audit.Entry{
		Timestamp:  time.Now().UTC(),
		Action:     "init",
		Details:    opts.caseName,
		CommitHash: hash,
	}
	if err := audit.Append(dir, []audit.Entry{logEntry}); err != nil {
		return fmt.Errorf("writing history log: %w", err)
	}

	fmt.Printf("Initialized case at %s (%s)\n", dir, hash)
	return nil
}
