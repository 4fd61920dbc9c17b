package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/me-api/adapters/event"
	"github.com/khoahotran/me-api/adapters/persistence"
	profileUC "github.com/khoahotran/me-api/internal/application/usecase/profile"
	projectUC "github.com/khoahotran/me-api/internal/application/usecase/project"
	searchUC "github.com/khoahotran/me-api/internal/application/usecase/search"
	skillUC "github.com/khoahotran/me-api/internal/application/usecase/skill"
	"github.com/khoahotran/me-api/internal/domain/profile"
	"github.com/khoahotran/me-api/internal/domain/search"
	"github.com/khoahotran/me-api/pkg/logger"
)

type countingLimiter struct {
	limit int
	hits  int
}

func (l *countingLimiter) Allow(_ context.Context, _ string) (bool, int, error) {
	l.hits++
	remaining := l.limit - l.hits
	if remaining < 0 {
		remaining = 0
	}
	return l.hits <= l.limit, remaining, nil
}

type HandlersTestSuite struct {
	suite.Suite
	Router  *gin.Engine
	memory  *persistence.MemoryProfileRepo
	limiter *countingLimiter
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	log := logger.NewNopLogger()

	pg := &persistence.Postgres{}
	s.memory = persistence.NewMemoryProfileRepo()
	store := persistence.NewProfileStore(pg, persistence.NewPostgresProfileRepo(pg, log), s.memory)
	searchRepo := persistence.NewPostgresSearchRepo(pg, log)
	s.limiter = &countingLimiter{limit: 100}

	s.Router = NewRouter(Handlers{
		Health:  NewHealthHandler(store),
		Profile: NewProfileHandler(profileUC.NewProfileUseCase(store, event.NoopPublisher{}, log), log),
		Project: NewProjectHandler(
			projectUC.NewListProjectsUseCase(store),
			projectUC.NewRSSUseCase(store, "http://localhost:3000", log),
			log,
		),
		Skill:  NewSkillHandler(skillUC.NewTopSkillsUseCase(store), log),
		Search: NewSearchHandler(searchUC.NewSearchUseCase(searchRepo, store, log), log),
	}, RouterOptions{
		AllowedOrigins: []string{"*"},
		MaxBodyBytes:   1 << 20,
	}, s.limiter, log)
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(s.T(), json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func (s *HandlersTestSuite) seed() {
	rr := s.do(http.MethodPost, "/api/seed", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
}

func (s *HandlersTestSuite) Test_Health() {
	rr := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, rr.Code)

	body := decode[HealthResponse](s.T(), rr)
	s.Equal("ok", body.Status)
	s.Equal(persistence.BackendMemory, body.Store)
	s.NotEmpty(body.Timestamp)
	s.NotEmpty(rr.Header().Get(HeaderRequestID))
}

func (s *HandlersTestSuite) Test_GetProfile_NotFound() {
	rr := s.do(http.MethodGet, "/api/profile", nil)
	s.Equal(http.StatusNotFound, rr.Code)
	s.JSONEq(`{"error":"Profile not found"}`, rr.Body.String())
}

func (s *HandlersTestSuite) Test_UpsertProfile() {
	rr := s.do(http.MethodPost, "/api/profile", gin.H{"name": "A"})
	s.Equal(http.StatusBadRequest, rr.Code)
	s.JSONEq(`{"error":"name and email are required"}`, rr.Body.String())

	rr = s.do(http.MethodPost, "/api/profile", gin.H{
		"name":   "A",
		"email":  "a@b.com",
		"skills": []string{"Go"},
		"projects": []gin.H{
			{"title": "api", "skills": []string{"Go"}},
		},
	})
	s.Require().Equal(http.StatusOK, rr.Code)
	created := decode[profile.Profile](s.T(), rr)
	s.Equal("A", created.Name)
	s.Equal("a@b.com", created.Email)
	s.Equal([]string{"Go"}, created.Skills)
	s.Equal([]string{}, created.Projects[0].Links)

	rr = s.do(http.MethodGet, "/api/profile", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	got := decode[profile.Profile](s.T(), rr)
	s.Equal(created.ID, got.ID)
	s.False(got.UpdatedAt.Before(got.CreatedAt))
}

func (s *HandlersTestSuite) Test_UpsertProfile_NestedRequiredFields() {
	rr := s.do(http.MethodPost, "/api/profile", gin.H{
		"name":     "A",
		"email":    "a@b.com",
		"projects": []gin.H{{"description": "no title"}},
	})
	s.Equal(http.StatusBadRequest, rr.Code)

	rr = s.do(http.MethodPost, "/api/profile", `{"name":`)
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Contains(rr.Body.String(), "error")
}

func (s *HandlersTestSuite) Test_EmptyBody_ReportsMissingFields() {
	rr := s.do(http.MethodPost, "/api/profile", "")
	s.Equal(http.StatusBadRequest, rr.Code)
	s.JSONEq(`{"error":"name and email are required"}`, rr.Body.String())

	rr = s.do(http.MethodPut, "/api/profile", "")
	s.Equal(http.StatusBadRequest, rr.Code)
	s.JSONEq(`{"error":"email is required"}`, rr.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/api/profile", nil)
	rr = httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	s.Equal(http.StatusBadRequest, rr.Code)
	s.JSONEq(`{"error":"name and email are required"}`, rr.Body.String())
}

func (s *HandlersTestSuite) Test_BodyTooLarge() {
	body := `{"name":"A","email":"a@b.com","summary":"` + strings.Repeat("x", 2<<20) + `"}`
	rr := s.do(http.MethodPost, "/api/profile", body)
	s.Equal(http.StatusRequestEntityTooLarge, rr.Code)
	s.JSONEq(`{"error":"Request body too large"}`, rr.Body.String())

	_, err := s.memory.Get(context.Background())
	s.Error(err)
}

func (s *HandlersTestSuite) Test_CORS() {
	req := httptest.NewRequest(http.MethodOptions, "/api/profile", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	s.Equal(http.StatusNoContent, rr.Code)
	s.Equal("*", rr.Header().Get("Access-Control-Allow-Origin"))
	s.Contains(rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)

	req = httptest.NewRequest(http.MethodGet, "/api/skills/top", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr = httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	s.Equal(http.StatusOK, rr.Code)
	s.Equal("*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func (s *HandlersTestSuite) Test_UpdateProfile() {
	rr := s.do(http.MethodPut, "/api/profile", gin.H{"name": "X"})
	s.Equal(http.StatusBadRequest, rr.Code)
	s.JSONEq(`{"error":"email is required"}`, rr.Body.String())

	rr = s.do(http.MethodPut, "/api/profile", gin.H{"email": "nonexistent@x.com", "name": "X"})
	s.Equal(http.StatusNotFound, rr.Code)
	s.JSONEq(`{"error":"Profile not found"}`, rr.Body.String())

	s.seed()
	rr = s.do(http.MethodPut, "/api/profile", gin.H{"email": "chndshara@gmail.com", "headline": "Backend Engineer"})
	s.Require().Equal(http.StatusOK, rr.Code)
	updated := decode[profile.Profile](s.T(), rr)
	s.Equal("Backend Engineer", updated.Headline)
	s.Equal("Gulab Chand Meena", updated.Name)
	s.Len(updated.Projects, 3)
}

func (s *HandlersTestSuite) Test_Seed_Idempotent() {
	rr := s.do(http.MethodPost, "/api/seed", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	first := decode[SeedResponse](s.T(), rr)
	s.True(first.Seeded)
	s.NotNil(first.Profile)

	rr = s.do(http.MethodPost, "/api/seed", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{"seeded":false,"message":"Profile already exists"}`, rr.Body.String())
}

func (s *HandlersTestSuite) Test_Projects() {
	rr := s.do(http.MethodGet, "/api/projects", nil)
	s.Equal(http.StatusOK, rr.Code)
	s.JSONEq(`[]`, rr.Body.String())

	s.seed()

	rr = s.do(http.MethodGet, "/api/projects", nil)
	s.Equal(http.StatusOK, rr.Code)
	s.Len(decode[[]profile.Project](s.T(), rr), 3)

	rr = s.do(http.MethodGet, "/api/projects?skill=%20", nil)
	s.Equal(http.StatusOK, rr.Code)
	s.JSONEq(`[]`, rr.Body.String())

	rr = s.do(http.MethodGet, "/api/projects?skill=socket.io", nil)
	s.Equal(http.StatusOK, rr.Code)
	projects := decode[[]profile.Project](s.T(), rr)
	s.Require().Len(projects, 1)
	s.Equal("Poker Game", projects[0].Title)
}

func (s *HandlersTestSuite) Test_ProjectsRSS() {
	s.seed()

	rr := s.do(http.MethodGet, "/api/projects/rss", nil)
	s.Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Header().Get("Content-Type"), "application/xml")
	s.True(strings.Contains(rr.Body.String(), "Alumni Connect"))
}

func (s *HandlersTestSuite) Test_TopSkills() {
	rr := s.do(http.MethodGet, "/api/skills/top", nil)
	s.Equal(http.StatusOK, rr.Code)
	s.JSONEq(`[]`, rr.Body.String())

	s.seed()
	rr = s.do(http.MethodGet, "/api/skills/top", nil)
	s.Equal(http.StatusOK, rr.Code)
	skills := decode[[]SkillCountDTO](s.T(), rr)
	s.Require().NotEmpty(skills)
	s.Equal(SkillCountDTO{Name: "node.js", Count: 6}, skills[0])
}

func (s *HandlersTestSuite) Test_Search() {
	rr := s.do(http.MethodGet, "/api/search?q=%20%20", nil)
	s.Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{"profile":null,"projects":[],"hits":0}`, rr.Body.String())

	s.seed()
	rr = s.do(http.MethodGet, "/api/search?q=poker", nil)
	s.Equal(http.StatusOK, rr.Code)
	result := decode[search.Result](s.T(), rr)
	s.NotNil(result.Profile)
	s.Require().Len(result.Projects, 1)
	s.Equal("Poker Game", result.Projects[0].Title)
	s.Equal(2, result.Hits)
}

func (s *HandlersTestSuite) Test_RateLimit() {
	s.limiter.limit = 1

	rr := s.do(http.MethodPost, "/api/seed", nil)
	s.Equal(http.StatusOK, rr.Code)
	s.Equal("0", rr.Header().Get(HeaderRateLimitRemaining))

	rr = s.do(http.MethodPost, "/api/seed", nil)
	s.Equal(http.StatusTooManyRequests, rr.Code)
	s.JSONEq(`{"error":"Too many requests"}`, rr.Body.String())

	rr = s.do(http.MethodGet, "/api/profile", nil)
	s.Equal(http.StatusOK, rr.Code)
}

func TestRateLimitMiddleware_NilLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(logger.NewNopLogger()), RateLimitMiddleware(nil, logger.NewNopLogger()))
	router.POST("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
