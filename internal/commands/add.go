package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/accrue-dev/accrue/internal/audit"
	"github.com/accrue-dev/accrue/internal/casefile"
	"github.com/accrue-dev/accrue/internal/entries"
	"github.com/accrue-dev/accrue/internal/gitops"
	"github.com/accrue-dev/accrue/internal/model"
)

type addOptions struct {
	dir    string
	date   string
	typ    string
	amount string
	note   string
	source string
}

func newAddCommand() *cobra.Command {
	var opts addOptions

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a payment or expense to the case ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(opts.dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runAdd(absDir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", ".", "case directory")
	cmd.Flags().StringVar(&opts.date, "date", "", "event date (YYYY-MM-DD); omit for a draft row")
	cmd.Flags().StringVar(&opts.typ, "type", string(model.TypePayment), "payment or expense")
	cmd.Flags().StringVar(&opts.amount, "amount", "", "amount, free text (e.g. \"$250.00\")")
	cmd.Flags().StringVar(&opts.note, "note", "", "optional note")
	cmd.Flags().StringVar(&opts.source, "source", string(model.SourceDirect), "direct or garnishee")

	return cmd
}

func runAdd(dir string, opts addOptions) error {
	cfg, err := casefile.Load(filepath.Join(dir, casefile.FileName))
	if err != nil {
		return fmt.Errorf("loading case: %w", err)
	}

	e := model.LedgerEntry{
		Type:   model.EntryType(opts.typ),
		Amount: opts.amount,
		Note:   opts.note,
		Source: model.Source(opts.source),
	}

	switch e.Type {
	case model.TypePayment, model.TypeExpense:
	default:
		return fmt.Errorf("type must be %s or %s, got %q", model.TypePayment, model.TypeExpense, opts.typ)
	}
	switch e.Source {
	case model.SourceDirect, model.SourceGarnishee:
	default:
		return fmt.Errorf("source must be %s or %s, got %q", model.SourceDirect, model.SourceGarnishee, opts.source)
	}
	if opts.date != "" {
		e.Date, err = time.Parse("2006-01-02", opts.date)
		if err != nil {
			return fmt.Errorf("parsing date: %w", err)
		}
	}

	added, err := entries.NewService(dir).Add(e)
	if err != nil {
		return fmt.Errorf("adding entry: %w", err)
	}

	hash := ""
	if cfg.Git.AutoCommit && gitops.IsRepo(dir) {
		msg := fmt.Sprintf("add: %s %s on %s", added.Type, added.Amount, opts.date)
		hash, err = gitops.CommitAll(dir, msg, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("committing entry: %w", err)
		}
	}

	logEntry := audit.Entry{
		Timestamp:  time.Now().UTC(),
		Action:     "add",
		Details:    fmt.Sprintf("%s %s on %s", added.Type, added.Amount, opts.date),
		EntryID:    added.ID,
		CommitHash: hash,
	}
	if err := audit.Append(dir, []audit.Entry{logEntry}); err != nil {
		return fmt.Errorf("writing history log: %w", err)
	}

	fmt.Printf("Added %s %s (%s)\n", added.Type, added.Amount, added.ID)
	return nil
}
