package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/khoahotran/me-api/internal/domain/profile"
	"github.com/khoahotran/me-api/internal/domain/search"
	"github.com/khoahotran/me-api/pkg/logger"
)

var tracer = otel.Tracer("search_usecase")

type SearchUseCase struct {
	searchRepo  search.Repository
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewSearchUseCase(sr search.Repository, pr profile.Repository, log logger.Logger) *SearchUseCase {
	return &SearchUseCase{
		searchRepo:  sr,
		profileRepo: pr,
		logger:      log,
	}
}

type SearchInput struct {
	Query string
}

type SearchOutput struct {
	Result search.Result
}

// Execute ranks the profile with the store's text search when it is reachable
// and includes it only if it matched. Otherwise the profile is read through the
// store and included whenever it exists. Projects are always picked by a
// case-insensitive substring test on the included or read profile.
func (uc *SearchUseCase) Execute(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return &SearchOutput{Result: search.EmptyResult()}, nil
	}

	ctx, span := tracer.Start(ctx, "Execute", trace.WithAttributes(attribute.String("query", query)))
	defer span.End()

	matched, err := uc.searchRepo.SearchProfile(ctx, query)
	if err == nil {
		span.SetAttributes(attribute.String("search.path", "native"))
		return &SearchOutput{Result: search.NewResult(matched, profile.MatchProjects(matched, query))}, nil
	}

	if errors.Is(err, search.ErrBackendUnavailable) {
		uc.logger.Debug("Native search unavailable, filtering locally", zap.String("query", query))
	} else {
		span.RecordError(err)
		uc.logger.Warn("Native search failed, filtering locally", zap.String("query", query), zap.Error(err))
	}
	span.SetAttributes(attribute.String("search.path", "fallback"))

	p, err := profile.Find(ctx, uc.profileRepo)
	if err != nil {
		return nil, fmt.Errorf("load profile for search failed: %w", err)
	}
	return &SearchOutput{Result: search.NewResult(p, profile.MatchProjects(p, query))}, nil
}
