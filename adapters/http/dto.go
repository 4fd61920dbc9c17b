package http

import (
	"github.com/khoahotran/me-api/internal/domain/profile"
)

// Profile request DTOs. Absent fields stay nil and are left untouched by the
// write; an explicit empty array clears the sequence.

type LinksRequest struct {
	Github    string `json:"github"`
	Linkedin  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
	Twitter   string `json:"twitter"`
	Website   string `json:"website"`
}

type ProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Links       []string `json:"links"`
	Skills      []string `json:"skills"`
}

type WorkEntryRequest struct {
	Company     string   `json:"company" binding:"required"`
	Role        string   `json:"role"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

type EducationEntryRequest struct {
	Institution string `json:"institution" binding:"required"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartYear   *int   `json:"startYear"`
	EndYear     *int   `json:"endYear"`
	Location    string `json:"location"`
	Details     string `json:"details"`
}

type ProfileRequest struct {
	Name      *string                 `json:"name"`
	Email     *string                 `json:"email"`
	Headline  *string                 `json:"headline"`
	Summary   *string                 `json:"summary"`
	Location  *string                 `json:"location"`
	Skills    []string                `json:"skills"`
	Projects  []ProjectRequest        `json:"projects" binding:"omitempty,dive"`
	Work      []WorkEntryRequest      `json:"work" binding:"omitempty,dive"`
	Education []EducationEntryRequest `json:"education" binding:"omitempty,dive"`
	Links     *LinksRequest           `json:"links"`
}

func (r *ProfileRequest) ToPatch() profile.Patch {
	patch := profile.Patch{
		Name:     r.Name,
		Email:    r.Email,
		Headline: r.Headline,
		Summary:  r.Summary,
		Location: r.Location,
	}
	if r.Skills != nil {
		skills := append([]string{}, r.Skills...)
		patch.Skills = &skills
	}
	if r.Projects != nil {
		projects := make([]profile.Project, len(r.Projects))
		for i, p := range r.Projects {
			projects[i] = profile.Project{
				Title:       p.Title,
				Description: p.Description,
				Links:       p.Links,
				Skills:      p.Skills,
			}
		}
		patch.Projects = &projects
	}
	if r.Work != nil {
		work := make([]profile.WorkEntry, len(r.Work))
		for i, w := range r.Work {
			work[i] = profile.WorkEntry{
				Company:     w.Company,
				Role:        w.Role,
				StartDate:   w.StartDate,
				EndDate:     w.EndDate,
				Location:    w.Location,
				Description: w.Description,
				Skills:      w.Skills,
			}
		}
		patch.Work = &work
	}
	if r.Education != nil {
		education := make([]profile.EducationEntry, len(r.Education))
		for i, e := range r.Education {
			education[i] = profile.EducationEntry{
				Institution: e.Institution,
				Degree:      e.Degree,
				Field:       e.Field,
				StartYear:   e.StartYear,
				EndYear:     e.EndYear,
				Location:    e.Location,
				Details:     e.Details,
			}
		}
		patch.Education = &education
	}
	if r.Links != nil {
		patch.Links = &profile.Links{
			Github:    r.Links.Github,
			Linkedin:  r.Links.Linkedin,
			Portfolio: r.Links.Portfolio,
			Twitter:   r.Links.Twitter,
			Website:   r.Links.Website,
		}
	}
	return patch
}

// Response DTOs

type SkillCountDTO struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func ToSkillCountDTOs(skills []profile.SkillCount) []SkillCountDTO {
	dtos := make([]SkillCountDTO, len(skills))
	for i, s := range skills {
		dtos[i] = SkillCountDTO{Name: s.Name, Count: s.Count}
	}
	return dtos
}

type SeedResponse struct {
	Seeded  bool             `json:"seeded"`
	Message string           `json:"message,omitempty"`
	Profile *profile.Profile `json:"profile,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Store     string `json:"store"`
}
