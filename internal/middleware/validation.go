package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/curricuforge/internal/app/models/dto"
	"github.com/yigit/curricuforge/internal/pkg/logger"
	"github.com/yigit/curricuforge/internal/pkg/validation"
)

// BindJSON binds the request body into obj and runs its binding tags. On
// failure the validation errors are written and false is returned.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := validation.RegisterWithGin(); err != nil {
		logger.Error().Err(err).Msg("Failed to register custom validation rules")
	}
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
