package skill

import (
	"context"
	"fmt"

	"github.com/khoahotran/me-api/internal/domain/profile"
)

type TopSkillsUseCase struct {
	profileRepo profile.Repository
}

func NewTopSkillsUseCase(repo profile.Repository) *TopSkillsUseCase {
	return &TopSkillsUseCase{profileRepo: repo}
}

type TopSkillsOutput struct {
	Skills []profile.SkillCount
}

func (uc *TopSkillsUseCase) Execute(ctx context.Context) (*TopSkillsOutput, error) {
	p, err := profile.Find(ctx, uc.profileRepo)
	if err != nil {
		return nil, fmt.Errorf("load profile for skills failed: %w", err)
	}
	return &TopSkillsOutput{Skills: profile.TopSkills(p)}, nil
}
