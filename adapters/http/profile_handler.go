package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/khoahotran/me-api/internal/application/usecase/profile"
	"github.com/khoahotran/me-api/pkg/apperror"
	"github.com/khoahotran/me-api/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Profile)
}

func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	var req ProfileRequest
	if err := bindProfileRequest(c, &req); err != nil {
		c.Error(err)
		return
	}

	input := profileUC.UpsertProfileInput{Patch: req.ToPatch()}
	output, err := h.profileUseCase.ExecuteUpsertProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := bindProfileRequest(c, &req); err != nil {
		c.Error(err)
		return
	}

	input := profileUC.UpdateProfileInput{Patch: req.ToPatch()}
	output, err := h.profileUseCase.ExecuteUpdateProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Profile)
}

func (h *ProfileHandler) Seed(c *gin.Context) {
	output, err := h.profileUseCase.ExecuteSeedIfEmpty(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SeedResponse{
		Seeded:  output.Seeded,
		Message: output.Message,
		Profile: output.Profile,
	})
}

// bindProfileRequest treats an empty body as an empty request, so the missing
// fields are reported by the use case.
func bindProfileRequest(c *gin.Context, req *ProfileRequest) error {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperror.NewPayloadTooLarge(tooLarge.Limit)
	}
	return apperror.NewInvalidInput("invalid JSON body for profile", err)
}
