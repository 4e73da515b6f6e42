package permissions

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var embedded []byte

// Permission lists the roles admitted on one route. Skip marks a public
// route; an empty role list only requires authentication.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	once  sync.Once
	index map[string]Permission
}

func routeKey(method, path string) string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	return strings.ToUpper(method) + " " + path
}

// FindPermissions looks up the entry of a chi route pattern. Patterns of
// grouped routes end with a slash, entries are matched without it. The
// first entry of a duplicated route wins.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	r.once.Do(func() {
		r.index = make(map[string]Permission, len(r.Endpoints))

		for _, endpoint := range r.Endpoints {
			key := routeKey(endpoint.Method, endpoint.Path)
			if _, ok := r.index[key]; !ok {
				r.index[key] = endpoint
			}
		}
	})

	return r.index[routeKey(method, path)]
}

// Parse decodes a permissions document.
func Parse(raw []byte) (*PermissionData, error) {
	var data PermissionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err //nolint:wrapcheck
	}

	for _, endpoint := range data.Endpoints {
		if endpoint.Path == "" || endpoint.Method == "" {
			log.Warn().Str("path", endpoint.Path).Str("method", endpoint.Method).Msg("Permission entry without path or method")
		}
	}

	return &data, nil
}

// Get loads the embedded permissions. A broken document yields nil, which
// the RBAC middleware treats as deny-all.
func Get() *PermissionData {
	data, err := Parse(embedded)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(data.Endpoints)).Msg("Loaded embedded permissions")

	return data
}
