package skill

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/me-api/adapters/persistence"
	"github.com/khoahotran/me-api/internal/domain/profile"
)

func TestTopSkills_NoProfile(t *testing.T) {
	uc := NewTopSkillsUseCase(persistence.NewMemoryProfileRepo())

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.Skills)
	assert.NotNil(t, out.Skills)
}

func TestTopSkills_SampleProfile(t *testing.T) {
	repo := persistence.NewMemoryProfileRepo()
	_, _, err := repo.SeedIfEmpty(context.Background(), profile.SampleProfile())
	require.NoError(t, err)

	out, err := NewTopSkillsUseCase(repo).Execute(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, out.Skills)

	assert.Equal(t, profile.SkillCount{Name: "node.js", Count: 6}, out.Skills[0])
	for i := 1; i < len(out.Skills); i++ {
		assert.GreaterOrEqual(t, out.Skills[i-1].Count, out.Skills[i].Count)
	}
}
