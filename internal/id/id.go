package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatEntryID returns a ledger entry ID like "2026-08-001".
func FormatEntryID(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// ParseEntryID parses "2026-08-001" into year, month, seq.
func ParseEntryID(id string) (year, month, seq int, err error) {
	parts := strings.SplitN(id, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid entry ID format: %q", id)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in entry ID %q: %w", id, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in entry ID %q: %w", id, err)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in entry ID %q: %w", id, err)
	}

	return year, month, seq, nil
}
