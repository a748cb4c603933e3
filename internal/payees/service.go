// Package payees manages the registry mapping vendor names to payment
// provider payee references, backed by payees.csv in the fund dir.
package payees

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Payee is a row in payees.csv.
type Payee struct {
	Reference  string
	VendorName string
	Notes      string
}

// Service provides in-memory lookup over the payee registry.
type Service struct {
	payees []Payee
	byRef  map[string]Payee
}

// NewService creates a Service from a slice of payees.
func NewService(payees []Payee) *Service {
	byRef := make(map[string]Payee, len(payees))
	for _, p := range payees {
		byRef[p.Reference] = p
	}
	return &Service{payees: payees, byRef: byRef}
}

// Load reads payees.csv from a fund dir and returns a Service. A
// missing file yields an empty registry.
func Load(dir string) (*Service, error) {
	f, err := os.Open(filepath.Join(dir, fileName))
	if os.IsNotExist(err) {
		return NewService(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening payee registry: %w", err)
	}
	defer f.Close()

	list, err := ReadPayees(f)
	if err != nil {
		return nil, fmt.Errorf("reading payee registry: %w", err)
	}
	return NewService(list), nil
}

// All returns all registered payees.
func (s *Service) All() []Payee {
	return s.payees
}

// Get returns a payee by reference.
func (s *Service) Get(reference string) (Payee, bool) {
	p, ok := s.byRef[reference]
	return p, ok
}

// Exists reports whether a reference is registered.
func (s *Service) Exists(reference string) bool {
	_, ok := s.byRef[reference]
	return ok
}

// Resolve finds a payee reference by vendor name (case-insensitive).
// Returns empty when no vendor matches.
func (s *Service) Resolve(vendorName string) string {
	for _, p := range s.payees {
		if strings.EqualFold(p.VendorName, vendorName) {
			return p.Reference
		}
	}
	return ""
}

// Add registers a payee, replacing any existing entry with the same
// reference.
func (s *Service) Add(p Payee) {
	if _, ok := s.byRef[p.Reference]; ok {
		for i := range s.payees {
			if s.payees[i].Reference == p.Reference {
				s.payees[i] = p
				break
			}
		}
	} else {
		s.payees = append(s.payees, p)
	}
	s.byRef[p.Reference] = p
}

// Save writes the registry to <dir>/payees.csv.
func (s *Service) Save(dir string) error {
	f, err := os.Create(filepath.Join(dir, fileName))
	if err != nil {
		return fmt.Errorf("creating payee registry: %w", err)
	}
	defer f.Close()

	if err := WritePayees(f, s.payees); err != nil {
		return fmt.Errorf("writing payee registry: %w", err)
	}
	return nil
}
