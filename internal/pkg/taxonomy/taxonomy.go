package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2/log"
)

// SubCasteNone is the sentinel sub-caste for groups without named
// subdivisions.
const SubCasteNone = "NILL"

// Table maps a caste name to its ordered sub-caste options.
type Table map[string][]string

// ErrCorruptSource is returned when a fetched sheet parses but fails the
// sanity check; the previous table stays in effect.
var ErrCorruptSource = errors.New("taxonomy: fetched caste data failed sanity check")

// Service resolves caste and sub-caste options. It always starts from the
// built-in fallback table and atomically swaps in a remote sheet only when
// the fetched data parses cleanly.
type Service struct {
	mu     sync.RWMutex
	table  Table
	client *resty.Client
	url    string
}

// New creates a service seeded with the fallback table. sourceURL may be
// empty, in which case LoadRemote is a no-op.
func New(sourceURL string) *Service {
	return &Service{
		table:  fallbackTable(),
		client: resty.New().SetTimeout(10 * time.Second),
		url:    sourceURL,
	}
}

// LoadRemote fetches the caste sheet and replaces the in-memory table if the
// result is non-empty and passes the corruption check. On any failure the
// current table is left untouched and the error is returned for logging.
func (s *Service) LoadRemote(ctx context.Context) error {
	if s.url == "" {
		return nil
	}

	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return fmt.Errorf("taxonomy: fetch caste sheet: %w", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("taxonomy: fetch caste sheet: unexpected status %d", resp.StatusCode())
	}

	parsed := ParseSheet(string(resp.Body()))
	if len(parsed) == 0 || hasCorruptKeys(parsed) {
		return ErrCorruptSource
	}

	s.mu.Lock()
	s.table = parsed
	s.mu.Unlock()
	log.Infof("[Taxonomy] loaded %d caste groups from remote sheet", len(parsed))
	return nil
}

// ParseSheet parses the CSV caste sheet. Caste names live in column five and
// sub-castes in column six; a row with an empty caste column continues the
// group opened by the most recent named row. A named row with an empty
// sub-caste column opens a group holding only the NILL sentinel.
func ParseSheet(text string) Table {
	lines := strings.Split(text, "\n")
	table := Table{}
	current := ""

	for i := 1; i < len(lines); i++ { // skip header
		columns := strings.Split(lines[i], ",")
		caste := column(columns, 4)
		subCaste := column(columns, 5)

		if caste != "" {
			current = caste
			if subCaste != "" {
				table[current] = []string{subCaste}
			} else {
				table[current] = []string{SubCasteNone}
			}
		} else if subCaste != "" && current != "" {
			table[current] = append(table[current], subCaste)
		}
	}

	return table
}

func column(columns []string, i int) string {
	if i >= len(columns) {
		return ""
	}
	return strings.TrimSpace(columns[i])
}

// hasCorruptKeys flags tables whose keys carry spreadsheet artifacts. Keys
// containing a semicolon, "300" or "0" indicate a mis-split or numeric export
// and the whole table is rejected.
func hasCorruptKeys(t Table) bool {
	for key := range t {
		if strings.Contains(key, ";") || strings.Contains(key, "300") || strings.Contains(key, "0") {
			return true
		}
	}
	return false
}

// IsValid reports whether the caste exists in the current table.
func (s *Service) IsValid(caste string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.table[caste]
	return ok
}

// SubCastes returns the sub-caste options for a caste. Unknown castes get the
// NILL sentinel so a selector is never empty.
func (s *Service) SubCastes(caste string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subCastes, ok := s.table[caste]
	if !ok {
		return []string{SubCasteNone}
	}
	out := make([]string, len(subCastes))
	copy(out, subCastes)
	return out
}

// Castes returns all caste names in sorted order.
func (s *Service) Castes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.table))
	for name := range s.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
