package persistence

import (
	"context"

	"github.com/khoahotran/me-api/internal/domain/profile"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Connectivity reports whether the durable store is reachable. It never fails.
type Connectivity interface {
	Connected() bool
}

// ProfileStore routes every call to the durable repository when a connection is
// established and to the fallback holder otherwise. The two never sync.
type ProfileStore struct {
	conn    Connectivity
	durable profile.Repository
	memory  profile.Repository
}

func NewProfileStore(conn Connectivity, durable, memory profile.Repository) *ProfileStore {
	return &ProfileStore{conn: conn, durable: durable, memory: memory}
}

func (s *ProfileStore) active() profile.Repository {
	if s.conn != nil && s.conn.Connected() {
		return s.durable
	}
	return s.memory
}

// Backend names the repository the next call will use.
func (s *ProfileStore) Backend() string {
	if s.conn != nil && s.conn.Connected() {
		return BackendPostgres
	}
	return BackendMemory
}

func (s *ProfileStore) Connected() bool {
	return s.Backend() == BackendPostgres
}

func (s *ProfileStore) Get(ctx context.Context) (*profile.Profile, error) {
	return s.active().Get(ctx)
}

func (s *ProfileStore) Upsert(ctx context.Context, email string, patch profile.Patch) (*profile.Profile, error) {
	return s.active().Upsert(ctx, email, patch)
}

func (s *ProfileStore) Update(ctx context.Context, email string, patch profile.Patch) (*profile.Profile, error) {
	return s.active().Update(ctx, email, patch)
}

func (s *ProfileStore) SeedIfEmpty(ctx context.Context, p *profile.Profile) (*profile.Profile, bool, error) {
	return s.active().SeedIfEmpty(ctx, p)
}
