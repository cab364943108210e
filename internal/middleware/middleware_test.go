package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/curricuforge/internal/app/models/dto"
	"github.com/yigit/curricuforge/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"parse", apperrors.NewGenerationParseError("no JSON object", nil), http.StatusUnprocessableEntity, dto.ErrorCodeGenerationParse},
		{"timeout", &apperrors.GenerationTimeoutError{After: 90 * time.Second}, http.StatusGatewayTimeout, dto.ErrorCodeGenerationTimeout},
		{"credential", fmt.Errorf("%w: set GEMINI_API_KEY", apperrors.ErrMissingCredential), http.StatusServiceUnavailable, dto.ErrorCodeMissingCredential},
		{"in progress", apperrors.ErrGenerationInProgress, http.StatusConflict, dto.ErrorCodeGenerationInProgress},
		{"network", &apperrors.NetworkError{Op: "generate", Err: errors.New("dial tcp")}, http.StatusBadGateway, dto.ErrorCodeNetwork},
		{"session", apperrors.ErrSessionNotFound, http.StatusNotFound, dto.ErrorCodeSessionNotFound},
		{"transition", apperrors.ErrInvalidTransition, http.StatusConflict, dto.ErrorCodeInvalidTransition},
		{"no curriculum", apperrors.ErrNoCurriculum, http.StatusConflict, dto.ErrorCodeNoCurriculum},
		{"index", fmt.Errorf("%w: semester 9", apperrors.ErrIndexOutOfRange), http.StatusNotFound, dto.ErrorCodeIndexOutOfRange},
		{"format", apperrors.ErrUnsupportedFormat, http.StatusBadRequest, dto.ErrorCodeUnsupportedFormat},
		{"validation", apperrors.NewValidationError("credits", "credits must be a whole number"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad request", apperrors.NewBadRequestError("empty file"), http.StatusBadRequest, dto.ErrorCodeBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/test", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			var resp dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Success || resp.Error == nil || resp.Error.Code != tt.code {
				t.Errorf("response = %+v", resp)
			}
		})
	}
}

func TestValidationErrorCarriesField(t *testing.T) {
	_, detail := errorDetail(apperrors.NewValidationError("type", "unknown subject type"))
	if detail.Field != "type" {
		t.Errorf("field = %q, want type", detail.Field)
	}
}

func TestUnknownErrorIsCritical(t *testing.T) {
	_, detail := errorDetail(errors.New("boom"))
	if detail.Severity != dto.ErrorSeverityCritical {
		t.Errorf("severity = %q", detail.Severity)
	}
	if detail.DebugInfo != "boom" {
		t.Errorf("debug info = %q, want boom outside release mode", detail.DebugInfo)
	}
}

func TestBindJSONReportsFields(t *testing.T) {
	type body struct {
		Mode string `json:"mode" binding:"required,oneof=institutional external"`
	}

	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var b body
		if !BindJSON(c, &b) {
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"mode":"hybrid"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error.Field != "Mode" {
		t.Errorf("field = %q, want Mode", resp.Error.Field)
	}
}

func TestRequestIDAndLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(zerolog.Nop()))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("missing X-Request-Id")
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-Id", "abc")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-Id"); got != "abc" {
		t.Errorf("X-Request-Id = %q, want abc", got)
	}
}

func TestCORSAllowAll(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"*"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://example.com")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
