package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/curricuforge/internal/app/models/dto"
	"github.com/yigit/curricuforge/internal/app/services"
	"github.com/yigit/curricuforge/internal/middleware"
)

// SessionController handles session lifecycle and view navigation
type SessionController struct {
	sessionService services.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService services.SessionService) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// CreateSession opens a session
// @Summary Create a session
// @Description Opens a workspace on the landing view with default form parameters
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.APIResponse{data=dto.SessionResponse} "Session created"
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	snap := c.sessionService.CreateSession(ctx.Request.Context())
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewSessionResponse(snap)))
}

// GetSession returns the session state
// @Summary Get a session
// @Description Returns view state, form parameters, the current curriculum and its warnings
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Session"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	snap, err := c.sessionService.GetSession(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewSessionResponse(*snap)))
}

// Navigate applies a view transition
// @Summary Navigate between views
// @Description Applies a view event such as open_generate or select_mode. Generation events are driven by the generate endpoint.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.NavigateRequest true "View event"
// @Success 200 {object} dto.APIResponse{data=dto.StateResponse} "New state"
// @Failure 400 {object} dto.ErrorResponse "Unknown event"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed from the current view"
// @Router /sessions/{id}/navigate [post]
func (c *SessionController) Navigate(ctx *gin.Context) {
	var req dto.NavigateRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	st, err := c.sessionService.Navigate(ctx.Request.Context(), ctx.Param("id"), req.ToEvent())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.StateResponse{State: st}))
}
