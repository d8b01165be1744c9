// Package permissions maps routes to the staff roles allowed to call them.
package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var embedded []byte

// Rule guards one route. Public routes accept anonymous callers; otherwise the caller's
// role must be listed in Roles.
type Rule struct {
	Method string   `json:"method"`
	Path   string   `json:"path"`
	Roles  []string `json:"roles"`
	Public bool     `json:"public"`
}

// Allows reports whether role may call the route. An empty role list admits any
// authenticated caller.
func (r Rule) Allows(role string) bool {
	return r.Public || len(r.Roles) == 0 || slices.Contains(r.Roles, role)
}

// Table indexes rules by method and chi route pattern.
type Table struct {
	Enforce bool   `json:"enforce"`
	Rules   []Rule `json:"rules"`

	index map[string]Rule
}

// Parse decodes a rule table. Duplicate routes are rejected.
func Parse(data []byte) (*Table, error) {
	table := &Table{}
	if err := json.Unmarshal(data, table); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	table.index = make(map[string]Rule, len(table.Rules))

	for _, rule := range table.Rules {
		key := routeKey(rule.Method, rule.Path)
		if _, exists := table.index[key]; exists {
			return nil, fmt.Errorf("duplicate permission rule for %s", key)
		}

		table.index[key] = rule
	}

	return table, nil
}

// Get loads the embedded table. It returns nil when the table is invalid, which denies
// every guarded route.
func Get() *Table {
	table, err := Parse(embedded)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("rules", len(table.Rules)).Bool("enforce", table.Enforce).Msg("Permissions loaded")

	return table
}

// Find returns the rule for a route pattern, ignoring a trailing slash.
func (t *Table) Find(method, path string) (Rule, bool) {
	rule, ok := t.index[routeKey(method, path)]

	return rule, ok
}

func routeKey(method, path string) string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	return strings.ToUpper(method) + " " + path
}
