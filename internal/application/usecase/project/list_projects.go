package project

import (
	"context"
	"fmt"

	"github.com/khoahotran/me-api/internal/domain/profile"
)

type ListProjectsUseCase struct {
	profileRepo profile.Repository
}

func NewListProjectsUseCase(repo profile.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{profileRepo: repo}
}

type ListProjectsInput struct {
	// Skill filters by exact, case-insensitive skill name. Only an empty
	// string lists all; whitespace is matched as given.
	Skill string
}

type ListProjectsOutput struct {
	Projects []profile.Project
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	p, err := profile.Find(ctx, uc.profileRepo)
	if err != nil {
		return nil, fmt.Errorf("load profile for projects failed: %w", err)
	}
	return &ListProjectsOutput{Projects: profile.ProjectsBySkill(p, input.Skill)}, nil
}
