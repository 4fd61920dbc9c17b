package http

import (
	"github.com/gin-gonic/gin"

	"github.com/khoahotran/me-api/pkg/logger"
)

type Handlers struct {
	Health  *HealthHandler
	Profile *ProfileHandler
	Project *ProjectHandler
	Skill   *SkillHandler
	Search  *SearchHandler
}

type RouterOptions struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
}

// NewRouter wires every route. Mutating routes go through the rate limiter;
// limiter may be nil.
func NewRouter(h Handlers, opts RouterOptions, limiter RateLimiter, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		CORS(opts.AllowedOrigins),
		gin.Recovery(),
		RequestLogger(log),
		ErrorMiddleware(log),
		BodyLimit(opts.MaxBodyBytes),
	)

	router.GET("/health", h.Health.Health)

	api := router.Group("/api")
	{
		api.GET("/profile", h.Profile.GetProfile)
		api.GET("/projects", h.Project.ListProjects)
		api.GET("/projects/rss", h.Project.GenerateRSS)
		api.GET("/skills/top", h.Skill.TopSkills)
		api.GET("/search", h.Search.Search)

		write := api.Group("/")
		write.Use(RateLimitMiddleware(limiter, log))
		{
			write.POST("/profile", h.Profile.UpsertProfile)
			write.PUT("/profile", h.Profile.UpdateProfile)
			write.POST("/seed", h.Profile.Seed)
		}
	}

	return router
}
