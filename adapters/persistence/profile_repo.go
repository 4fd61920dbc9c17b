package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/khoahotran/me-api/internal/domain/profile"
	"github.com/khoahotran/me-api/pkg/apperror"
	"github.com/khoahotran/me-api/pkg/logger"
)

var errNotConnected = errors.New("postgres is not connected")

// postgresProfileRepo keeps the profile as a JSONB document keyed by email.
// Writes merge the patch with jsonb || so omitted fields stay untouched.
type postgresProfileRepo struct {
	pg     *Postgres
	logger logger.Logger
}

func NewPostgresProfileRepo(pg *Postgres, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{pg: pg, logger: logger}
}

var psqlProfile = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const profileColumns = "id, doc, created_at, updated_at"

func scanProfile(row pgx.Row, l logger.Logger) (*profile.Profile, error) {
	var (
		id       uuid.UUID
		docBytes []byte
		created  time.Time
		updated  time.Time
	)
	if err := row.Scan(&id, &docBytes, &created, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("Profile", "")
		}
		return nil, apperror.NewInternal("failed to scan profile row", err)
	}

	p := &profile.Profile{}
	if err := json.Unmarshal(docBytes, p); err != nil {
		l.Warn("Failed to unmarshal profile document", zap.String("profile_id", id.String()), zap.Error(err))
		return nil, apperror.NewInternal("failed to decode profile document", err)
	}
	p.ID = id
	p.CreatedAt = created
	p.UpdatedAt = updated
	p.Normalize()
	return p, nil
}

func (r *postgresProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	pool := r.pg.Pool()
	if pool == nil {
		return nil, apperror.NewInternal("failed to query profile", errNotConnected)
	}

	query, args, err := psqlProfile.Select(profileColumns).
		From("profiles").
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build profile query", err)
	}

	return scanProfile(pool.QueryRow(ctx, query, args...), r.logger)
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, email string, patch profile.Patch) (*profile.Profile, error) {
	pool := r.pg.Pool()
	if pool == nil {
		return nil, apperror.NewInternal("failed to upsert profile", errNotConnected)
	}

	patch.Email = &email
	docBytes, err := json.Marshal(patch)
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal profile patch", err)
	}

	query := `
		INSERT INTO profiles (id, email, doc, created_at, updated_at)
		VALUES ($1, $2, $3::jsonb, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE SET
			doc = profiles.doc || EXCLUDED.doc,
			updated_at = NOW()
		RETURNING ` + profileColumns

	p, err := scanProfile(pool.QueryRow(ctx, query, uuid.New(), email, docBytes), r.logger)
	if err != nil {
		return nil, apperror.NewInternal("failed to upsert profile", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Update(ctx context.Context, email string, patch profile.Patch) (*profile.Profile, error) {
	pool := r.pg.Pool()
	if pool == nil {
		return nil, apperror.NewInternal("failed to update profile", errNotConnected)
	}

	docBytes, err := json.Marshal(patch)
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal profile patch", err)
	}

	query := `
		UPDATE profiles SET
			doc = doc || $2::jsonb,
			updated_at = NOW()
		WHERE email = $1
		RETURNING ` + profileColumns

	p, err := scanProfile(pool.QueryRow(ctx, query, email, docBytes), r.logger)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("Profile", email)
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresProfileRepo) SeedIfEmpty(ctx context.Context, p *profile.Profile) (*profile.Profile, bool, error) {
	pool := r.pg.Pool()
	if pool == nil {
		return nil, false, apperror.NewInternal("failed to seed profile", errNotConnected)
	}

	docBytes, err := json.Marshal(profile.PatchFrom(p))
	if err != nil {
		return nil, false, apperror.NewInternal("failed to marshal seed profile", err)
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := `
		INSERT INTO profiles (id, email, doc, created_at, updated_at)
		SELECT $1::uuid, $2::text, $3::jsonb, NOW(), NOW()
		WHERE NOT EXISTS (SELECT 1 FROM profiles)
		ON CONFLICT (email) DO NOTHING
		RETURNING ` + profileColumns

	created, err := scanProfile(pool.QueryRow(ctx, query, id, p.Email, docBytes), r.logger)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, false, err
	}

	existing, err := r.Get(ctx)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}
