package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/me-api/internal/domain/profile"
	"github.com/khoahotran/me-api/pkg/apperror"
)

func strPtr(s string) *string { return &s }

func fixedClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestMemoryProfileRepo_GetEmpty(t *testing.T) {
	repo := NewMemoryProfileRepo()

	p, err := repo.Get(context.Background())
	assert.Nil(t, p)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestMemoryProfileRepo_UpsertMergesPresentFields(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProfileRepo()
	repo.now = fixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	skills := []string{"Go"}
	first, err := repo.Upsert(ctx, "a@b.com", profile.Patch{Name: strPtr("A"), Summary: strPtr("first"), Skills: &skills})
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, "a@b.com", profile.Patch{Name: strPtr("B")})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "B", second.Name)
	assert.Equal(t, "first", second.Summary)
	assert.Equal(t, []string{"Go"}, second.Skills)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestMemoryProfileRepo_UpsertOtherEmailReplacesSlot(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProfileRepo()

	first, err := repo.Upsert(ctx, "a@b.com", profile.Patch{Name: strPtr("A"), Summary: strPtr("old")})
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, "c@d.com", profile.Patch{Name: strPtr("C")})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Empty(t, second.Summary)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c@d.com", got.Email)
}

func TestMemoryProfileRepo_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProfileRepo()

	_, err := repo.Update(ctx, "a@b.com", profile.Patch{Name: strPtr("X")})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = repo.Upsert(ctx, "a@b.com", profile.Patch{Name: strPtr("A")})
	require.NoError(t, err)

	_, err = repo.Update(ctx, "nonexistent@x.com", profile.Patch{Name: strPtr("X")})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	updated, err := repo.Update(ctx, "a@b.com", profile.Patch{Headline: strPtr("Engineer")})
	require.NoError(t, err)
	assert.Equal(t, "A", updated.Name)
	assert.Equal(t, "Engineer", updated.Headline)
}

func TestMemoryProfileRepo_SeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProfileRepo()

	seeded, ok, err := repo.SeedIfEmpty(ctx, profile.SampleProfile())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Gulab Chand Meena", seeded.Name)

	again, ok, err := repo.SeedIfEmpty(ctx, profile.SampleProfile())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, seeded.ID, again.ID)
}

func TestMemoryProfileRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProfileRepo()

	skills := []string{"Go"}
	p, err := repo.Upsert(ctx, "a@b.com", profile.Patch{Name: strPtr("A"), Skills: &skills})
	require.NoError(t, err)
	p.Skills[0] = "mutated"

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, got.Skills)
}
