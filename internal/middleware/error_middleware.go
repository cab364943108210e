package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/curricuforge/internal/app/models/dto"
	"github.com/yigit/curricuforge/internal/pkg/apperrors"
	"github.com/yigit/curricuforge/internal/pkg/logger"
)

// --- Central Error Handling Middleware/Function ---

// HandleAPIError maps service errors to status codes and error details
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetail(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func errorDetail(err error) (int, *dto.ErrorDetail) {
	var parseErr *apperrors.GenerationParseError
	var custom *apperrors.CustomError

	switch {
	case errors.As(err, &parseErr):
		detail := dto.NewErrorDetail(dto.ErrorCodeGenerationParse, "The generated curriculum could not be read, please try again")
		if parseErr.Offset >= 0 {
			detail.WithDetails(gin.H{"reason": parseErr.Reason, "offset": parseErr.Offset})
		} else {
			detail.WithDetails(gin.H{"reason": parseErr.Reason})
		}
		return http.StatusUnprocessableEntity, detail
	case errors.Is(err, apperrors.ErrGenerationTimeout):
		return http.StatusGatewayTimeout, dto.NewErrorDetail(dto.ErrorCodeGenerationTimeout, err.Error())
	case errors.Is(err, apperrors.ErrMissingCredential):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeMissingCredential, "Generation is not configured: "+err.Error())
	case errors.Is(err, apperrors.ErrGenerationInProgress):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeGenerationInProgress, "A curriculum is already being generated for this session")
	case errors.Is(err, apperrors.ErrNetwork):
		return http.StatusBadGateway, dto.NewErrorDetail(dto.ErrorCodeNetwork, "Could not reach the generation provider")
	case errors.Is(err, apperrors.ErrSessionNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeSessionNotFound, "Session not found")
	case errors.Is(err, apperrors.ErrInvalidTransition):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeInvalidTransition, err.Error())
	case errors.Is(err, apperrors.ErrNoCurriculum):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeNoCurriculum, "No curriculum has been generated yet")
	case errors.Is(err, apperrors.ErrIndexOutOfRange):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeIndexOutOfRange, err.Error())
	case errors.Is(err, apperrors.ErrUnsupportedFormat):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeUnsupportedFormat, err.Error())
	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
		if errors.As(err, &custom) {
			if field, ok := custom.Details["field"].(string); ok {
				detail.WithField(field)
			}
		}
		return http.StatusBadRequest, detail
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeBadRequest, err.Error())
	default:
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
		if gin.Mode() != gin.ReleaseMode {
			detail.WithDebugInfo("%v", err)
		}
		return http.StatusInternalServerError, detail
	}
}
