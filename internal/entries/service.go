package entries

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/accrue-dev/accrue/internal/id"
	"github.com/accrue-dev/accrue/internal/model"
)

// FileName is the entries file inside a case directory.
const FileName = "entries.csv"

// Service manages the entries file for one case directory.
type Service struct {
	caseRoot string
}

// NewService creates an entries Service rooted at a case directory.
func NewService(caseRoot string) *Service {
	return &Service{caseRoot: caseRoot}
}

// Path returns the absolute path of the entries file.
func (s *Service) Path() string {
	return filepath.Join(s.caseRoot, FileName)
}

// Init writes an empty entries file (header only). Fails if one exists.
func (s *Service) Init() error {
	f, err := os.OpenFile(s.Path(), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating entries file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

// Load reads all entries. A missing file is an empty ledger, not an error.
func (s *Service) Load() ([]model.LedgerEntry, error) {
	f, err := os.Open(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening entries: %w", err)
	}
	defer f.Close()

	ents, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path(), err)
	}
	return ents, nil
}

// Add appends one entry, assigning an ID when the caller left it blank.
// Returns the stored entry. Creates the file with a header if needed.
func (s *Service) Add(e model.LedgerEntry) (model.LedgerEntry, error) {
	if e.ID == "" {
		e.ID = id.New()
	}

	isNew := false
	if _, err := os.Stat(s.Path()); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(s.Path(), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return model.LedgerEntry{}, fmt.Errorf("opening entries: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return model.LedgerEntry{}, fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendEntries(f, []model.LedgerEntry{e}); err != nil {
		return model.LedgerEntry{}, fmt.Errorf("appending entry: %w", err)
	}
	return e, nil
}
