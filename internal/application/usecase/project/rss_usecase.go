package project

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/khoahotran/me-api/internal/domain/profile"
	"github.com/khoahotran/me-api/pkg/logger"
)

type RSSUseCase struct {
	profileRepo profile.Repository
	baseURL     string
	logger      logger.Logger
}

func NewRSSUseCase(repo profile.Repository, baseURL string, log logger.Logger) *RSSUseCase {
	return &RSSUseCase{
		profileRepo: repo,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		logger:      log,
	}
}

// Execute builds a feed with one item per project, in profile order. An absent
// profile yields an empty feed.
func (uc *RSSUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	p, err := profile.Find(ctx, uc.profileRepo)
	if err != nil {
		uc.logger.Error("Failed to load profile for RSS", err)
		return nil, fmt.Errorf("load profile for feed failed: %w", err)
	}

	feed := &feeds.Feed{
		Title:       "Projects",
		Link:        &feeds.Link{Href: uc.baseURL + "/api/projects"},
		Description: "Portfolio projects.",
		Created:     time.Now().UTC(),
	}
	if p == nil {
		return feed, nil
	}

	feed.Title = p.Name + " - Projects"
	if p.Headline != "" {
		feed.Description = p.Headline
	}
	feed.Author = &feeds.Author{Name: p.Name, Email: p.Email}
	feed.Updated = p.UpdatedAt

	items := make([]*feeds.Item, 0, len(p.Projects))
	for i, pr := range p.Projects {
		link := uc.baseURL + "/api/projects"
		if len(pr.Links) > 0 {
			link = pr.Links[0]
		}
		items = append(items, &feeds.Item{
			Title:       pr.Title,
			Link:        &feeds.Link{Href: link},
			Description: pr.Description,
			Id:          projectGUID(p, i),
			Created:     p.UpdatedAt,
		})
	}
	feed.Items = items

	uc.logger.Debug("RSS feed generated", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}

// projectGUID identifies a project by its profile and position, since projects
// have no id of their own and links may be absent or shared.
func projectGUID(p *profile.Profile, index int) string {
	return fmt.Sprintf("urn:uuid:%s:project:%d", p.ID.String(), index)
}
