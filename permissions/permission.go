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

var knownRoles = []string{"admin", "manager", "staff"}

// Permission lists the roles allowed on one route pattern. Skip marks a public route.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether role may call the route. An empty role list admits any authenticated caller.
func (p Permission) Allows(role string) bool {
	return p.Skip || len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

// PermissionData is the route table. Skip disables role checks for every route.
type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

func routeKey(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

// FindPermissions looks up a chi route pattern. The boolean is false for routes missing from the table.
func (r *PermissionData) FindPermissions(path, method string) (Permission, bool) {
	permission, ok := r.index[routeKey(method, path)]

	return permission, ok
}

// Parse decodes a permission table, rejecting duplicate routes and unknown roles.
func Parse(data []byte) (*PermissionData, error) {
	var table PermissionData

	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decode permissions: %w", err)
	}

	table.index = make(map[string]Permission, len(table.Endpoints))

	for _, endpoint := range table.Endpoints {
		key := routeKey(endpoint.Method, endpoint.Path)
		if _, dup := table.index[key]; dup {
			return nil, fmt.Errorf("duplicate permission entry %q", key)
		}

		for _, role := range endpoint.Permissions {
			if !slices.Contains(knownRoles, role) {
				return nil, fmt.Errorf("unknown role %q on %q", role, key)
			}
		}

		table.index[key] = endpoint
	}

	return &table, nil
}

// Get loads the embedded table. A broken table is a build defect, so it stops the process.
func Get() *PermissionData {
	table, err := Parse(embedded)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load embedded permissions")
	}

	log.Info().Int("endpoints", len(table.Endpoints)).Msg("Loaded embedded permissions")

	return table
}
