package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/khoahotran/me-api/internal/domain/profile"
	"github.com/khoahotran/me-api/internal/domain/search"
	"github.com/khoahotran/me-api/pkg/apperror"
	"github.com/khoahotran/me-api/pkg/logger"
)

type postgresSearchRepo struct {
	pg     *Postgres
	logger logger.Logger
}

func NewPostgresSearchRepo(pg *Postgres, logger logger.Logger) search.Repository {
	return &postgresSearchRepo{pg: pg, logger: logger}
}

var psqlSearch = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// SearchProfile ranks profiles by ts_rank_cd over the trigger-maintained ts
// column and returns the best one.
func (r *postgresSearchRepo) SearchProfile(ctx context.Context, query string) (*profile.Profile, error) {
	pool := r.pg.Pool()
	if pool == nil {
		return nil, search.ErrBackendUnavailable
	}

	sql, args, err := psqlSearch.Select(profileColumns).
		From("profiles").
		Where("ts @@ websearch_to_tsquery('simple', ?)", query).
		OrderByClause("ts_rank_cd(ts, websearch_to_tsquery('simple', ?)) DESC", query).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build search query", err)
	}

	p, err := scanProfile(pool.QueryRow(ctx, sql, args...), r.logger)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to execute profile search", err)
	}
	return p, nil
}
