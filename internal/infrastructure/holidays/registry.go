package holidays

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/dithetoauditflow-toolset/email-tracker/internal/domain/entity"
	"github.com/dithetoauditflow-toolset/email-tracker/internal/domain/repository"
)

// FileRegistry reads the holiday registry from a JSON file shaped as
//
//	{ "2025": ["2025-01-01", "2025-03-21"], "2026": [...] }
//
// The file is admin-maintained and may change between runs; each Load
// returns a fresh snapshot.
type FileRegistry struct {
	path string
}

// NewFileRegistry creates a registry backed by the given JSON file.
func NewFileRegistry(path string) repository.HolidayRegistry {
	return &FileRegistry{path: path}
}

// Load reads and parses the registry file. A missing or unreadable file is
// a hard error: classifying against an empty holiday set would silently
// shift overdue boundaries.
func (r *FileRegistry) Load() (map[int][]string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: holiday registry %s: %v", entity.ErrMissingSetting, r.path, err)
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse holiday registry %s: %w", r.path, err)
	}

	registry := make(map[int][]string, len(raw))
	for yearStr, dates := range raw {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, fmt.Errorf("parse holiday registry %s: bad year key %q", r.path, yearStr)
		}
		registry[year] = dates
	}

	return registry, nil
}
