package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/me-api/adapters/event"
	"github.com/khoahotran/me-api/adapters/persistence"
	"github.com/khoahotran/me-api/internal/domain/profile"
	"github.com/khoahotran/me-api/pkg/logger"
)

type fakeUploader struct {
	folder   string
	publicID string
	body     []byte
	err      error
	calls    int
}

func (u *fakeUploader) UploadRaw(_ context.Context, r io.Reader, folder, publicID string) (string, error) {
	u.calls++
	if u.err != nil {
		return "", u.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	u.folder, u.publicID, u.body = folder, publicID, b
	return "https://res.cloudinary.com/demo/raw/upload/" + folder + "/" + publicID, nil
}

func seeded(t *testing.T) (*persistence.MemoryProfileRepo, *profile.Profile) {
	t.Helper()
	repo := persistence.NewMemoryProfileRepo()
	p, _, err := repo.SeedIfEmpty(context.Background(), profile.SampleProfile())
	require.NoError(t, err)
	return repo, p
}

func TestSnapshot_UploadsProfileJSON(t *testing.T) {
	repo, p := seeded(t)
	up := &fakeUploader{}
	uc := NewSnapshotUseCase(repo, up, logger.NewNopLogger())

	occurred := time.Unix(1700000000, 0).UTC()
	url, err := uc.Execute(context.Background(), event.ProfileEventPayload{
		EventType:  event.ProfileEventSeeded,
		ProfileID:  p.ID,
		Backend:    persistence.BackendPostgres,
		OccurredAt: occurred,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, url)
	assert.Equal(t, SnapshotFolder, up.folder)
	assert.Equal(t, p.ID.String()+"-1700000000.json", up.publicID)

	var got profile.Profile
	require.NoError(t, json.Unmarshal(up.body, &got))
	assert.Equal(t, p.Email, got.Email)
	assert.Len(t, got.Projects, 3)
}

func TestSnapshot_Skips(t *testing.T) {
	repo, p := seeded(t)

	tests := []struct {
		name    string
		repo    profile.Repository
		payload event.ProfileEventPayload
	}{
		{
			name:    "memory backend",
			repo:    repo,
			payload: event.ProfileEventPayload{ProfileID: p.ID, Backend: persistence.BackendMemory},
		},
		{
			name:    "stale profile id",
			repo:    repo,
			payload: event.ProfileEventPayload{ProfileID: uuid.New(), Backend: persistence.BackendPostgres},
		},
		{
			name:    "no profile",
			repo:    persistence.NewMemoryProfileRepo(),
			payload: event.ProfileEventPayload{ProfileID: p.ID, Backend: persistence.BackendPostgres},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := &fakeUploader{}
			url, err := NewSnapshotUseCase(tt.repo, up, logger.NewNopLogger()).Execute(context.Background(), tt.payload)
			require.NoError(t, err)
			assert.Empty(t, url)
			assert.Equal(t, 0, up.calls)
		})
	}
}

func TestSnapshot_UploadError(t *testing.T) {
	repo, p := seeded(t)
	up := &fakeUploader{err: errors.New("cloudinary down")}

	_, err := NewSnapshotUseCase(repo, up, logger.NewNopLogger()).Execute(context.Background(), event.ProfileEventPayload{
		ProfileID: p.ID,
		Backend:   persistence.BackendPostgres,
	})
	assert.ErrorContains(t, err, "cloudinary down")
}
