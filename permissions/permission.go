package permissions

import (
	"cowork/shared/constant"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var methods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

var knownRoles = []string{
	constant.RoleMember,
	constant.RoleStaff,
	constant.RoleAdmin,
	constant.RoleSuperAdmin,
}

// Permission is one route entry. Path is the chi route pattern, not the request path.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether role may call the route. An entry without roles admits any authenticated caller.
func (p Permission) Allows(role string) bool {
	return p.Skip || len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]int
}

func routeKey(path, method string) string {
	return strings.ToUpper(method) + " " + path
}

func (r *PermissionData) FindPermissions(path, method string) Permission {
	if idx, ok := r.index[routeKey(path, method)]; ok {
		return r.Endpoints[idx]
	}

	return Permission{}
}

// Load decodes a permission table and rejects duplicate routes, unknown methods and unknown roles.
func Load(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	permissions.index = make(map[string]int, len(permissions.Endpoints))

	for i, endpoint := range permissions.Endpoints {
		if !slices.Contains(methods, endpoint.Method) {
			return nil, fmt.Errorf("endpoint %s: unsupported method %q", endpoint.Path, endpoint.Method)
		}

		for _, role := range endpoint.Permissions {
			if !slices.Contains(knownRoles, role) {
				return nil, fmt.Errorf("endpoint %s %s: unknown role %q", endpoint.Method, endpoint.Path, role)
			}
		}

		key := routeKey(endpoint.Path, endpoint.Method)
		if _, exists := permissions.index[key]; exists {
			return nil, fmt.Errorf("duplicate permission entry for %s", key)
		}

		permissions.index[key] = i
	}

	return &permissions, nil
}

// Get loads the embedded table. A nil result makes RBAC refuse every guarded route.
func Get() *PermissionData {
	permissions, err := Load(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
