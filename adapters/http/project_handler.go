package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectUC "github.com/khoahotran/me-api/internal/application/usecase/project"
	"github.com/khoahotran/me-api/pkg/apperror"
	"github.com/khoahotran/me-api/pkg/logger"
)

type ProjectHandler struct {
	listProjectsUseCase *projectUC.ListProjectsUseCase
	rssUseCase          *projectUC.RSSUseCase
	logger              logger.Logger
}

func NewProjectHandler(listUC *projectUC.ListProjectsUseCase, rssUC *projectUC.RSSUseCase, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		listProjectsUseCase: listUC,
		rssUseCase:          rssUC,
		logger:              log,
	}
}

// ListProjects returns every project, or those tagged with ?skill= when set.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	input := projectUC.ListProjectsInput{Skill: c.Query("skill")}
	output, err := h.listProjectsUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Projects)
}

func (h *ProjectHandler) GenerateRSS(c *gin.Context) {
	feed, err := h.rssUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewInternal("failed to generate RSS feed", err))
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	if err := feed.WriteRss(c.Writer); err != nil {
		h.logger.Error("Failed to write RSS feed to response", err)
	}
}
