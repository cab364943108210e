package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/curricuforge/internal/app/models/dto"
)

// HealthController reports liveness
type HealthController struct {
	provider      string
	hasCredential bool
	sessions      func() int
}

// NewHealthController creates a new HealthController
func NewHealthController(provider string, hasCredential bool, sessions func() int) *HealthController {
	return &HealthController{provider: provider, hasCredential: hasCredential, sessions: sessions}
}

// Health reports liveness
// @Summary Health check
// @Description Reports liveness and whether a generation credential is configured
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse} "Service is up"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HealthResponse{
		Status:             "ok",
		Provider:           c.provider,
		CredentialPresent:  c.hasCredential,
		ActiveSessionCount: c.sessions(),
	}))
}
