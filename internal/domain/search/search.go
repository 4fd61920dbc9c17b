package search

import (
	"context"
	"errors"

	"github.com/khoahotran/me-api/internal/domain/profile"
)

// ErrBackendUnavailable is returned by a Repository that has no live
// connection. Callers treat it as a routing decision, not a failure.
var ErrBackendUnavailable = errors.New("search backend unavailable")

// Result is the response of a free-text search. A hit is either the profile
// itself or one matching project.
type Result struct {
	Profile  *profile.Profile  `json:"profile"`
	Projects []profile.Project `json:"projects"`
	Hits     int               `json:"hits"`
}

func EmptyResult() Result {
	return Result{Profile: nil, Projects: []profile.Project{}, Hits: 0}
}

// NewResult counts hits from the included profile and matched projects.
func NewResult(p *profile.Profile, projects []profile.Project) Result {
	if projects == nil {
		projects = []profile.Project{}
	}
	hits := len(projects)
	if p != nil {
		hits++
	}
	return Result{Profile: p, Projects: projects, Hits: hits}
}

type Repository interface {
	// SearchProfile runs the store-native text search and returns the
	// best-ranked profile, or nil when nothing matches.
	SearchProfile(ctx context.Context, query string) (*profile.Profile, error)
}
