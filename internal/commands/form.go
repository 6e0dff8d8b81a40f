package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/accrue-dev/accrue/internal/casefile"
	"github.com/accrue-dev/accrue/internal/entries"
	"github.com/accrue-dev/accrue/internal/forms"
	"github.com/accrue-dev/accrue/internal/ledger"
)

type formOptions struct {
	dir      string
	template string
	outPath  string
}

func newFormCommand() *cobra.Command {
	var opts formOptions

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Fill a court-form template with case subtotals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(opts.dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runForm(cmd, absDir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", ".", "case directory")
	cmd.Flags().StringVar(&opts.template, "template", "", "template file (default forms/garnishment.yaml)")
	cmd.Flags().StringVar(&opts.outPath, "out", "", "write to this file instead of stdout")

	return cmd
}

func runForm(cmd *cobra.Command, dir string, opts formOptions) error {
	cfg, err := casefile.Load(filepath.Join(dir, casefile.FileName))
	if err != nil {
		return fmt.Errorf("loading case: %w", err)
	}

	ents, err := entries.NewService(dir).Load()
	if err != nil {
		return fmt.Errorf("loading entries: %w", err)
	}

	tplPath := opts.template
	if tplPath == "" {
		tplPath = filepath.Join(dir, "forms", "garnishment.yaml")
	}
	tpl, err := forms.LoadTemplate(tplPath)
	if err != nil {
		return fmt.Errorf("loading template: %w", err)
	}

	sched := ledger.Compute(cfg.EngineInput(ents))
	filled := forms.Fill(tpl, forms.Values(cfg, ents, sched))

	var out io.Writer = cmd.OutOrStdout()
	if opts.outPath != "" {
		f, err := os.Create(opts.outPath)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		out = f
	}

	fmt.Fprintln(out, tpl.Name)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, field := range filled {
		fmt.Fprintf(tw, "%s:\t%s\n", field.Label, field.Value)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing form: %w", err)
	}

	if opts.outPath != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.outPath)
	}
	return nil
}
