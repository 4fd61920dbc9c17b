package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/me-api/pkg/apperror"
)

type Links struct {
	Github    string `json:"github,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Website   string `json:"website,omitempty"`
}

type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Links       []string `json:"links"`
	Skills      []string `json:"skills"`
}

type WorkEntry struct {
	Company     string   `json:"company"`
	Role        string   `json:"role,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	Skills      []string `json:"skills"`
}

type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartYear   *int   `json:"startYear,omitempty"`
	EndYear     *int   `json:"endYear,omitempty"`
	Location    string `json:"location,omitempty"`
	Details     string `json:"details,omitempty"`
}

// Profile is the one document the API serves. Projects, work and education are
// embedded and have no identity of their own.
type Profile struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Headline  string           `json:"headline,omitempty"`
	Summary   string           `json:"summary,omitempty"`
	Location  string           `json:"location,omitempty"`
	Skills    []string         `json:"skills"`
	Projects  []Project        `json:"projects"`
	Work      []WorkEntry      `json:"work"`
	Education []EducationEntry `json:"education"`
	Links     *Links           `json:"links,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// Patch carries the fields of a write. A nil field is left untouched by Apply
// and is omitted from the JSON merge document sent to the durable store.
type Patch struct {
	Name      *string           `json:"name,omitempty"`
	Email     *string           `json:"email,omitempty"`
	Headline  *string           `json:"headline,omitempty"`
	Summary   *string           `json:"summary,omitempty"`
	Location  *string           `json:"location,omitempty"`
	Skills    *[]string         `json:"skills,omitempty"`
	Projects  *[]Project        `json:"projects,omitempty"`
	Work      *[]WorkEntry      `json:"work,omitempty"`
	Education *[]EducationEntry `json:"education,omitempty"`
	Links     *Links            `json:"links,omitempty"`
}

// EmailValue returns the trimmed email or "" when absent.
func (p Patch) EmailValue() string {
	if p.Email == nil {
		return ""
	}
	return strings.TrimSpace(*p.Email)
}

// NameValue returns the trimmed name or "" when absent.
func (p Patch) NameValue() string {
	if p.Name == nil {
		return ""
	}
	return strings.TrimSpace(*p.Name)
}

// Apply merges the present fields of the patch into pr. Timestamps are the
// caller's job.
func (p Patch) Apply(pr *Profile) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Email != nil {
		pr.Email = *p.Email
	}
	if p.Headline != nil {
		pr.Headline = *p.Headline
	}
	if p.Summary != nil {
		pr.Summary = *p.Summary
	}
	if p.Location != nil {
		pr.Location = *p.Location
	}
	if p.Skills != nil {
		pr.Skills = append([]string(nil), (*p.Skills)...)
	}
	if p.Projects != nil {
		pr.Projects = append([]Project(nil), (*p.Projects)...)
	}
	if p.Work != nil {
		pr.Work = append([]WorkEntry(nil), (*p.Work)...)
	}
	if p.Education != nil {
		pr.Education = append([]EducationEntry(nil), (*p.Education)...)
	}
	if p.Links != nil {
		l := *p.Links
		pr.Links = &l
	}
	pr.Normalize()
}

// PatchFrom builds a patch that sets every field of pr.
func PatchFrom(pr *Profile) Patch {
	skills := pr.Skills
	projects := pr.Projects
	work := pr.Work
	education := pr.Education
	return Patch{
		Name:      &pr.Name,
		Email:     &pr.Email,
		Headline:  &pr.Headline,
		Summary:   &pr.Summary,
		Location:  &pr.Location,
		Skills:    &skills,
		Projects:  &projects,
		Work:      &work,
		Education: &education,
		Links:     pr.Links,
	}
}

// Normalize replaces nil sequences with empty ones so the JSON form always
// carries arrays.
func (pr *Profile) Normalize() {
	if pr.Skills == nil {
		pr.Skills = []string{}
	}
	if pr.Projects == nil {
		pr.Projects = []Project{}
	}
	for i := range pr.Projects {
		if pr.Projects[i].Links == nil {
			pr.Projects[i].Links = []string{}
		}
		if pr.Projects[i].Skills == nil {
			pr.Projects[i].Skills = []string{}
		}
	}
	if pr.Work == nil {
		pr.Work = []WorkEntry{}
	}
	for i := range pr.Work {
		if pr.Work[i].Skills == nil {
			pr.Work[i].Skills = []string{}
		}
	}
	if pr.Education == nil {
		pr.Education = []EducationEntry{}
	}
}

// Clone returns a deep copy, so callers of the in-memory holder never share
// slices with the stored value.
func (pr *Profile) Clone() *Profile {
	if pr == nil {
		return nil
	}
	c := *pr
	c.Skills = append([]string(nil), pr.Skills...)
	c.Projects = make([]Project, len(pr.Projects))
	for i, p := range pr.Projects {
		p.Links = append([]string(nil), p.Links...)
		p.Skills = append([]string(nil), p.Skills...)
		c.Projects[i] = p
	}
	c.Work = make([]WorkEntry, len(pr.Work))
	for i, w := range pr.Work {
		w.Skills = append([]string(nil), w.Skills...)
		c.Work[i] = w
	}
	c.Education = append([]EducationEntry(nil), pr.Education...)
	if pr.Links != nil {
		l := *pr.Links
		c.Links = &l
	}
	c.Normalize()
	return &c
}

// Repository is the single-profile store. Implementations return an error
// wrapping apperror.ErrNotFound when no matching profile exists.
type Repository interface {
	// Get returns the one profile document.
	Get(ctx context.Context) (*Profile, error)
	// Upsert creates the profile matched by email or merges patch into it.
	Upsert(ctx context.Context, email string, patch Patch) (*Profile, error)
	// Update merges patch into the profile matched by email. It never creates.
	Update(ctx context.Context, email string, patch Patch) (*Profile, error)
	// SeedIfEmpty stores p only when no profile exists. The bool reports
	// whether p was written.
	SeedIfEmpty(ctx context.Context, p *Profile) (*Profile, bool, error)
}

// Find is Get with "no profile" mapped to (nil, nil), for readers that treat an
// absent profile as an empty one.
func Find(ctx context.Context, repo Repository) (*Profile, error) {
	p, err := repo.Get(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}
