package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/me-api/internal/domain/profile"
	"github.com/khoahotran/me-api/internal/domain/search"
)

type switchConn struct{ up bool }

func (c *switchConn) Connected() bool { return c.up }

var errDurableCalled = errors.New("durable repository called")

type failingRepo struct{}

func (failingRepo) Get(context.Context) (*profile.Profile, error) { return nil, errDurableCalled }
func (failingRepo) Upsert(context.Context, string, profile.Patch) (*profile.Profile, error) {
	return nil, errDurableCalled
}
func (failingRepo) Update(context.Context, string, profile.Patch) (*profile.Profile, error) {
	return nil, errDurableCalled
}
func (failingRepo) SeedIfEmpty(context.Context, *profile.Profile) (*profile.Profile, bool, error) {
	return nil, false, errDurableCalled
}

func TestProfileStore_RoutesByConnectivity(t *testing.T) {
	ctx := context.Background()
	conn := &switchConn{}
	memory := NewMemoryProfileRepo()
	store := NewProfileStore(conn, failingRepo{}, memory)

	assert.Equal(t, BackendMemory, store.Backend())
	assert.False(t, store.Connected())

	p, err := store.Upsert(ctx, "a@b.com", profile.Patch{Name: strPtr("A")})
	require.NoError(t, err)
	assert.Equal(t, "A", p.Name)

	conn.up = true
	assert.Equal(t, BackendPostgres, store.Backend())
	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, errDurableCalled)
	_, _, err = store.SeedIfEmpty(ctx, profile.SampleProfile())
	assert.ErrorIs(t, err, errDurableCalled)

	conn.up = false
	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestProfileStore_DisconnectedPostgresHolder(t *testing.T) {
	pg := &Postgres{}
	store := NewProfileStore(pg, NewPostgresProfileRepo(pg, nil), NewMemoryProfileRepo())

	assert.Equal(t, BackendMemory, store.Backend())

	_, err := NewPostgresSearchRepo(pg, nil).SearchProfile(context.Background(), "go")
	assert.ErrorIs(t, err, search.ErrBackendUnavailable)
}
