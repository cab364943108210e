package controllers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/curricuforge/internal/app/export"
	"github.com/yigit/curricuforge/internal/app/models"
	"github.com/yigit/curricuforge/internal/app/models/dto"
	"github.com/yigit/curricuforge/internal/app/services"
	"github.com/yigit/curricuforge/internal/middleware"
	"github.com/yigit/curricuforge/internal/pkg/apperrors"
)

// CurriculumController handles generation, editing and export of a session's curriculum
type CurriculumController struct {
	curriculumService services.CurriculumService
	maxUploadBytes    int64
}

// NewCurriculumController creates a new CurriculumController
func NewCurriculumController(curriculumService services.CurriculumService, maxUploadBytes int64) *CurriculumController {
	return &CurriculumController{
		curriculumService: curriculumService,
		maxUploadBytes:    maxUploadBytes,
	}
}

// Generate handles curriculum generation
// @Summary Generate a curriculum
// @Description Sends the form parameters to the generation provider and replaces the session curriculum on success. A failed generation leaves the previous curriculum untouched.
// @Tags curriculum
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.GenerationParams true "Form parameters"
// @Success 200 {object} dto.APIResponse{data=session.Snapshot} "Curriculum generated"
// @Failure 400 {object} dto.ErrorResponse "Invalid form parameters"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Generation already in progress"
// @Failure 422 {object} dto.ErrorResponse "Generated output could not be parsed"
// @Failure 502 {object} dto.ErrorResponse "Provider unreachable"
// @Failure 503 {object} dto.ErrorResponse "Provider credential missing"
// @Failure 504 {object} dto.ErrorResponse "Generation timed out"
// @Router /sessions/{id}/generate [post]
func (c *CurriculumController) Generate(ctx *gin.Context) {
	var params models.GenerationParams
	if !middleware.BindJSON(ctx, &params) {
		return
	}

	snap, err := c.curriculumService.Generate(ctx.Request.Context(), ctx.Param("id"), params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(snap))
}

// EditSubjectField handles a single cell edit
// @Summary Edit a subject field
// @Description Replaces one field of a subject and recomputes the semester total. Credit drift is reported as warnings, never rejected.
// @Tags curriculum
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param sem path int true "Semester index (0-based)"
// @Param sub path int true "Subject index (0-based)"
// @Param request body dto.EditSubjectRequest true "Field and value"
// @Success 200 {object} dto.APIResponse{data=curriculum.EditResult} "Edit applied"
// @Failure 400 {object} dto.ErrorResponse "Invalid field or value"
// @Failure 404 {object} dto.ErrorResponse "Session or index not found"
// @Router /sessions/{id}/semesters/{sem}/subjects/{sub} [patch]
func (c *CurriculumController) EditSubjectField(ctx *gin.Context) {
	semIdx, subIdx, ok := subjectIndexes(ctx)
	if !ok {
		return
	}
	var req dto.EditSubjectRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	res, err := c.curriculumService.EditSubjectField(ctx.Request.Context(), ctx.Param("id"), semIdx, subIdx, req.SubjectField(), req.Value)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(res))
}

// AddSubject appends a placeholder subject
// @Summary Add a subject
// @Description Appends a placeholder subject to the semester
// @Tags curriculum
// @Produce json
// @Param id path string true "Session ID"
// @Param sem path int true "Semester index (0-based)"
// @Success 201 {object} dto.APIResponse{data=curriculum.EditResult} "Subject added"
// @Failure 404 {object} dto.ErrorResponse "Session or semester not found"
// @Router /sessions/{id}/semesters/{sem}/subjects [post]
func (c *CurriculumController) AddSubject(ctx *gin.Context) {
	semIdx, ok := pathIndex(ctx, "sem")
	if !ok {
		return
	}

	res, err := c.curriculumService.AddSubject(ctx.Request.Context(), ctx.Param("id"), semIdx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusCreated
	if !res.Applied {
		status = http.StatusOK
	}
	ctx.JSON(status, dto.NewSuccessResponse(res))
}

// RemoveSubject deletes a subject
// @Summary Remove a subject
// @Description Removes the subject at the index and recomputes the semester total
// @Tags curriculum
// @Produce json
// @Param id path string true "Session ID"
// @Param sem path int true "Semester index (0-based)"
// @Param sub path int true "Subject index (0-based)"
// @Success 200 {object} dto.APIResponse{data=curriculum.EditResult} "Subject removed"
// @Failure 404 {object} dto.ErrorResponse "Session or index not found"
// @Router /sessions/{id}/semesters/{sem}/subjects/{sub} [delete]
func (c *CurriculumController) RemoveSubject(ctx *gin.Context) {
	semIdx, subIdx, ok := subjectIndexes(ctx)
	if !ok {
		return
	}

	res, err := c.curriculumService.RemoveSubject(ctx.Request.Context(), ctx.Param("id"), semIdx, subIdx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(res))
}

// Validate reports the violations of the current curriculum
// @Summary Validate the curriculum
// @Description Lists every structural rule the current curriculum breaks. An empty list means the curriculum is well-formed.
// @Tags curriculum
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse{data=[]curriculum.Violation} "Violations"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "No curriculum generated yet"
// @Router /sessions/{id}/validation [get]
func (c *CurriculumController) Validate(ctx *gin.Context) {
	vs, err := c.curriculumService.Validate(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(vs))
}

// Export downloads the curriculum
// @Summary Export the curriculum
// @Description Renders the curriculum as a PDF report, JSON or YAML file
// @Tags curriculum
// @Produce application/pdf,application/json,application/yaml
// @Param id path string true "Session ID"
// @Param format query string false "Export format" Enums(pdf, json, yaml) default(pdf)
// @Success 200 {file} file "Exported document"
// @Failure 400 {object} dto.ErrorResponse "Unsupported format"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "No curriculum generated yet"
// @Router /sessions/{id}/export [get]
func (c *CurriculumController) Export(ctx *gin.Context) {
	format, err := export.ParseFormat(ctx.Query("format"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	artifact, err := c.curriculumService.Export(ctx.Request.Context(), ctx.Param("id"), format)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	ctx.Data(http.StatusOK, artifact.ContentType, artifact.Body)
}

// UploadPreviousCurriculum extracts the text of an existing curriculum
// @Summary Upload a previous curriculum
// @Description Extracts text from a PDF or plain-text file and stores it as the previousCurriculum parameter for the next generation
// @Tags curriculum
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID"
// @Param file formData file true "PDF or text file"
// @Success 200 {object} dto.APIResponse{data=dto.PreviousCurriculumResponse} "Text extracted"
// @Failure 400 {object} dto.ErrorResponse "Missing, oversized or unreadable file"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/previous-curriculum [post]
func (c *CurriculumController) UploadPreviousCurriculum(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("file is required"))
		return
	}
	if c.maxUploadBytes > 0 && fileHeader.Size > c.maxUploadBytes {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(fmt.Sprintf("file exceeds %d bytes", c.maxUploadBytes)))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, fmt.Errorf("failed to open uploaded file: %w", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		middleware.HandleAPIError(ctx, fmt.Errorf("failed to read uploaded file: %w", err))
		return
	}

	text, err := c.curriculumService.ImportPreviousCurriculum(ctx.Request.Context(), ctx.Param("id"), fileHeader.Filename, data)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PreviousCurriculumResponse{
		Filename: fileHeader.Filename,
		Text:     text,
		Chars:    len(text),
	}))
}

func subjectIndexes(ctx *gin.Context) (int, int, bool) {
	semIdx, ok := pathIndex(ctx, "sem")
	if !ok {
		return 0, 0, false
	}
	subIdx, ok := pathIndex(ctx, "sub")
	if !ok {
		return 0, 0, false
	}
	return semIdx, subIdx, true
}

func pathIndex(ctx *gin.Context, name string) (int, bool) {
	idx, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" index")
		errorDetail = errorDetail.WithField(name).WithDetails("index must be a whole number")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return idx, true
}
