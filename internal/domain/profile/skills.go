package profile

import (
	"slices"
	"strings"
)

type SkillCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TopSkills counts every skill occurrence across the profile's own skills, then
// its projects, then its work entries. Names are lower-cased; the result is
// ordered by count descending and ties keep first-seen order. A nil profile
// yields an empty slice.
func TopSkills(p *Profile) []SkillCount {
	result := []SkillCount{}
	if p == nil {
		return result
	}

	index := make(map[string]int)
	add := func(skills []string) {
		for _, s := range skills {
			key := strings.ToLower(s)
			if i, ok := index[key]; ok {
				result[i].Count++
				continue
			}
			index[key] = len(result)
			result = append(result, SkillCount{Name: key, Count: 1})
		}
	}

	add(p.Skills)
	for _, pr := range p.Projects {
		add(pr.Skills)
	}
	for _, w := range p.Work {
		add(w.Skills)
	}

	slices.SortStableFunc(result, func(a, b SkillCount) int {
		return b.Count - a.Count
	})
	return result
}
