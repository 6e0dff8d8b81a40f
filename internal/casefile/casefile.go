// Package casefile reads and writes case.yaml, the per-case header: who the
// debt belongs to, the starting principal and rate, and how the case directory
// is versioned.
package casefile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/accrue-dev/accrue/internal/ledger"
	"github.com/accrue-dev/accrue/internal/model"
)

const dateFormat = "2006-01-02"

// FileName is the config file inside a case directory.
const FileName = "case.yaml"

// Config represents the top-level case.yaml configuration.
type Config struct {
	Case   CaseConfig   `yaml:"case"`
	Ledger LedgerConfig `yaml:"ledger"`
	Git    GitConfig    `yaml:"git"`
}

// CaseConfig identifies the matter.
type CaseConfig struct {
	Name   string `yaml:"name"`
	Debtor string `yaml:"debtor"`
}

// LedgerConfig holds the calculation header. Principal and the rate stay free
// text so a half-filled file still loads; parsing happens in EngineInput.
type LedgerConfig struct {
	Principal     string `yaml:"principal"`
	StartDate     string `yaml:"start_date"` // "YYYY-MM-DD"
	AnnualRatePct string `yaml:"annual_rate_pct"`
	Basis         int    `yaml:"basis"` // 360 or 365
	AsOfDate      string `yaml:"as_of_date,omitempty"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a case.yaml file from disk. A .env file next to it may override
// the git author via ACCRUE_AUTHOR_NAME / ACCRUE_AUTHOR_EMAIL.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	switch cfg.Ledger.Basis {
	case 0, ledger.Basis360, ledger.Basis365:
	default:
		return nil, fmt.Errorf("basis must be %d or %d, got %d", ledger.Basis360, ledger.Basis365, cfg.Ledger.Basis)
	}

	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))
	if v := os.Getenv("ACCRUE_AUTHOR_NAME"); v != "" {
		cfg.Git.AuthorName = v
	}
	if v := os.Getenv("ACCRUE_AUTHOR_EMAIL"); v != "" {
		cfg.Git.AuthorEmail = v
	}

	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new case.
func Default(caseName, debtor string) *Config {
	return &Config{
		Case: CaseConfig{
			Name:   caseName,
			Debtor: debtor,
		},
		Ledger: LedgerConfig{
			AnnualRatePct: "9.000",
			Basis:         ledger.Basis365,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Accrue CLI",
			AuthorEmail: "cli@accrue.dev",
		},
	}
}

// EngineInput assembles the pure-engine input from the case header plus
// loaded entries. Missing or unparseable header fields become zero values,
// which the engine treats as "not ready" rather than an error.
func (c *Config) EngineInput(entries []model.LedgerEntry) ledger.Input {
	in := ledger.Input{Basis: c.Ledger.Basis, Entries: entries}
	if p, ok := ledger.ParseMoney(c.Ledger.Principal); ok {
		in.Principal = p
	}
	if r, ok := ledger.ParseMoney(c.Ledger.AnnualRatePct); ok {
		in.AnnualRatePct = r
	}
	if t, err := time.Parse(dateFormat, c.Ledger.StartDate); err == nil {
		in.StartDate = t
	}
	if c.Ledger.AsOfDate != "" {
		if t, err := time.Parse(dateFormat, c.Ledger.AsOfDate); err == nil {
			in.AsOf = t
		}
	}
	return in
}
