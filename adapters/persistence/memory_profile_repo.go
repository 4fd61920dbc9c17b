package persistence

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/me-api/internal/domain/profile"
	"github.com/khoahotran/me-api/pkg/apperror"
)

// MemoryProfileRepo is the single-slot fallback holder used while no durable
// connection exists. Its content lives as long as the process. Concurrent
// writers are serialized but not compared: the last write wins.
type MemoryProfileRepo struct {
	mu      sync.RWMutex
	profile *profile.Profile
	now     func() time.Time
}

func NewMemoryProfileRepo() *MemoryProfileRepo {
	return &MemoryProfileRepo{now: func() time.Time { return time.Now().UTC() }}
}

func (r *MemoryProfileRepo) Get(_ context.Context) (*profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.profile == nil {
		return nil, apperror.NewNotFound("Profile", "")
	}
	return r.profile.Clone(), nil
}

// Upsert merges into the held profile when its email matches. Any other email
// replaces the slot with a fresh profile, since the holder keeps only one.
func (r *MemoryProfileRepo) Upsert(_ context.Context, email string, patch profile.Patch) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	p := r.profile
	if p == nil || p.Email != email {
		p = &profile.Profile{ID: uuid.New(), CreatedAt: now}
	} else {
		p = p.Clone()
	}

	patch.Apply(p)
	p.Email = email
	p.UpdatedAt = now

	r.profile = p
	return p.Clone(), nil
}

func (r *MemoryProfileRepo) Update(_ context.Context, email string, patch profile.Patch) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.profile == nil || r.profile.Email != email {
		return nil, apperror.NewNotFound("Profile", email)
	}

	p := r.profile.Clone()
	patch.Apply(p)
	p.UpdatedAt = r.now()

	r.profile = p
	return p.Clone(), nil
}

func (r *MemoryProfileRepo) SeedIfEmpty(_ context.Context, seed *profile.Profile) (*profile.Profile, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.profile != nil {
		return r.profile.Clone(), false, nil
	}

	now := r.now()
	p := seed.Clone()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	r.profile = p
	return p.Clone(), true, nil
}
