package profile

import "strings"

// ProjectsBySkill returns the projects listing skill, compared case-insensitively
// as a whole token. An empty skill returns every project in order.
func ProjectsBySkill(p *Profile, skill string) []Project {
	if p == nil {
		return []Project{}
	}
	if skill == "" {
		return append([]Project{}, p.Projects...)
	}

	want := strings.ToLower(skill)
	out := []Project{}
	for _, pr := range p.Projects {
		for _, s := range pr.Skills {
			if strings.ToLower(s) == want {
				out = append(out, pr)
				break
			}
		}
	}
	return out
}

// MatchProjects returns the projects whose title, description and skills,
// joined by spaces, contain query case-insensitively.
func MatchProjects(p *Profile, query string) []Project {
	if p == nil {
		return []Project{}
	}
	q := strings.ToLower(query)
	out := []Project{}
	for _, pr := range p.Projects {
		if strings.Contains(pr.searchText(), q) {
			out = append(out, pr)
		}
	}
	return out
}

func (pr Project) searchText() string {
	parts := make([]string, 0, len(pr.Skills)+2)
	parts = append(parts, pr.Title, pr.Description)
	parts = append(parts, pr.Skills...)
	return strings.ToLower(strings.Join(parts, " "))
}
