// Package vendors resolves free-text vendor fragments against the
// shop's vendor directory (a Google Sheets webapp the staff maintain).
package vendors

import (
	"context"
	"strings"
)

// Directory answers vendor-name queries. A miss returns "" with a nil
// error.
type Directory interface {
	BestMatch(ctx context.Context, query string) (string, error)
}

// Lister exposes the full vendor roster, for implementations that
// match locally against a fetched list.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// BestMatch applies the directory matching policy to a fetched roster:
// exact case-insensitive match first, then substring containment, then
// last-whitespace-token membership. First hit wins, in that priority
// order.
func BestMatch(names []string, query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}

	for _, name := range names {
		if strings.ToLower(name) == q {
			return name
		}
	}

	for _, name := range names {
		if strings.Contains(strings.ToLower(name), q) {
			return name
		}
	}

	tokens := strings.Fields(q)
	if len(tokens) == 0 {
		return ""
	}
	last := tokens[len(tokens)-1]
	for _, name := range names {
		for _, tok := range strings.Fields(strings.ToLower(name)) {
			if tok == last {
				return name
			}
		}
	}

	return ""
}
