package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func titles(ps []Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Title
	}
	return out
}

func TestProjectsBySkill(t *testing.T) {
	p := &Profile{Projects: []Project{
		{Title: "one", Skills: []string{"React", "Go"}},
		{Title: "two", Skills: []string{"Reactive"}},
		{Title: "three", Skills: []string{"react"}},
		{Title: "four"},
	}}

	tests := []struct {
		name  string
		skill string
		want  []string
	}{
		{name: "empty skill returns all", skill: "", want: []string{"one", "two", "three", "four"}},
		{name: "case insensitive exact token", skill: "REACT", want: []string{"one", "three"}},
		{name: "no substring match", skill: "reac", want: []string{}},
		{name: "unknown skill", skill: "rust", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(ProjectsBySkill(p, tt.skill)))
		})
	}
}

func TestProjectsBySkill_NilProfile(t *testing.T) {
	assert.Empty(t, ProjectsBySkill(nil, ""))
	assert.NotNil(t, ProjectsBySkill(nil, "go"))
}

func TestMatchProjects(t *testing.T) {
	p := SampleProfile()

	assert.Equal(t, []string{"Poker Game"}, titles(MatchProjects(p, "poker")))
	assert.Equal(t, []string{"Poker Game"}, titles(MatchProjects(p, "SOCKET.io")))
	assert.Equal(t, []string{"Alumni Connect: Bridging Futures"}, titles(MatchProjects(p, "cloudinary")))
	assert.Len(t, MatchProjects(p, "mongodb"), 3)
	assert.Empty(t, MatchProjects(p, "kubernetes"))
	assert.Empty(t, MatchProjects(nil, "poker"))
}
