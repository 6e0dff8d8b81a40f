// Package forms positions case values onto jurisdiction-specific court-form
// templates. It re-derives payment subtotals by filtering entries on the
// source tag; the calculation engine never sees any of this.
package forms

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/accrue-dev/accrue/internal/casefile"
	"github.com/accrue-dev/accrue/internal/ledger"
	"github.com/accrue-dev/accrue/internal/model"
)

// Template describes one form: an ordered list of labeled fields, each naming
// a derived value by key.
type Template struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// Field maps one labeled slot on the form to a value key.
type Field struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Filled is one resolved field, in template order.
type Filled struct {
	Label string
	Value string
}

// Value keys a Template may reference.
const (
	KeyCaseName          = "case_name"
	KeyDebtor            = "debtor"
	KeyPaymentsDirect    = "payments_direct"
	KeyPaymentsGarnishee = "payments_garnishee"
	KeyPaymentsTotal     = "payments_total"
	KeyExpensesTotal     = "expenses_total"
	KeyPrincipal         = "principal"
	KeyUnpaidInterest    = "unpaid_interest"
	KeyBalance           = "balance"
)

// LoadTemplate reads a form template from YAML.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	if len(t.Fields) == 0 {
		return nil, fmt.Errorf("template %q has no fields", path)
	}
	return &t, nil
}

// SaveTemplate writes a template to a YAML file.
func SaveTemplate(path string, t *Template) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshaling template: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing template: %w", err)
	}
	return nil
}

// DefaultTemplate returns the garnishment summary form bundled with new cases.
func DefaultTemplate() *Template {
	return &Template{
		Name: "Garnishment summary",
		Fields: []Field{
			{Label: "Case name / file number", Value: KeyCaseName},
			{Label: "Judgment debtor", Value: KeyDebtor},
			{Label: "Payments received directly", Value: KeyPaymentsDirect},
			{Label: "Payments received from garnishee", Value: KeyPaymentsGarnishee},
			{Label: "Total payments received", Value: KeyPaymentsTotal},
			{Label: "Post-judgment expenses claimed", Value: KeyExpensesTotal},
			{Label: "Principal remaining", Value: KeyPrincipal},
			{Label: "Interest remaining", Value: KeyUnpaidInterest},
			{Label: "Total amount owing", Value: KeyBalance},
		},
	}
}

// Values derives the fillable value set from the case header, its entries,
// and a computed schedule. Draft rows are excluded by the same rules the
// engine uses, so form subtotals always agree with the schedule.
func Values(cfg *casefile.Config, entries []model.LedgerEntry, sched ledger.Schedule) map[string]string {
	direct := decimal.Zero
	garnishee := decimal.Zero
	expenses := decimal.Zero
	for _, ev := range ledger.Normalize(entries) {
		switch ev.Type {
		case model.TypePayment:
			if ev.Source == model.SourceGarnishee {
				garnishee = garnishee.Add(ev.Amount)
			} else {
				direct = direct.Add(ev.Amount)
			}
		case model.TypeExpense:
			expenses = expenses.Add(ev.Amount)
		}
	}

	return map[string]string{
		KeyCaseName:          cfg.Case.Name,
		KeyDebtor:            cfg.Case.Debtor,
		KeyPaymentsDirect:    direct.StringFixed(2),
		KeyPaymentsGarnishee: garnishee.StringFixed(2),
		KeyPaymentsTotal:     direct.Add(garnishee).StringFixed(2),
		KeyExpensesTotal:     expenses.StringFixed(2),
		KeyPrincipal:         sched.Totals.Principal.StringFixed(2),
		KeyUnpaidInterest:    sched.Totals.CarryInterest.StringFixed(2),
		KeyBalance:           sched.Totals.Balance.StringFixed(2),
	}
}

// Fill resolves each template field against the derived values, preserving
// template order. Unknown keys resolve to an empty string so a newer template
// still fills on an older binary.
func Fill(t *Template, values map[string]string) []Filled {
	filled := make([]Filled, 0, len(t.Fields))
	for _, f := range t.Fields {
		filled = append(filled, Filled{Label: f.Label, Value: values[f.Value]})
	}
	return filled
}
