package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/middleware"
	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

// JobTypeHandler serves the job type catalog and job sheet routes.
type JobTypeHandler struct {
	jobTypes service.JobTypeService
	audit    middleware.LogSink
	paging   Paging
}

// NewJobTypeHandler creates a new job type handler.
func NewJobTypeHandler(jobTypes service.JobTypeService, audit middleware.LogSink, paging Paging) *JobTypeHandler {
	return &JobTypeHandler{jobTypes: jobTypes, audit: audit, paging: paging}
}

// ListTypes handles GET /api/job-types.
//
// @Summary      List job types
// @Tags         Job types
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.SuccessResponse{data=dto.ListResponse} "Catalog"
// @Router       /api/job-types [get]
func (h *JobTypeHandler) ListTypes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	types, err := h.jobTypes.ListTypes(c.Request.Context())
	if err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessOK(dto.ListResponse{Items: types, Count: len(types)})
}

// CreateType handles POST /api/job-types.
//
// @Summary      Create job type
// @Description  Defines a job type priced by a registered formula (PAINT or POTHOLE)
// @Tags         Job types
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateJobTypeRequest true "Job type"
// @Success      201 {object} dto.SuccessResponse "Created"
// @Failure      400 {object} dto.ErrorResponse "Invalid body"
// @Failure      409 {object} dto.ErrorResponse "Name already used"
// @Failure      422 {object} dto.ErrorResponse "Unknown formula"
// @Router       /api/job-types [post]
func (h *JobTypeHandler) CreateType(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateJobTypeRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	jt, err := h.jobTypes.CreateType(c.Request.Context(), *req)
	if err != nil {
		respondError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionCreateJobType, "Job type created",
		map[string]interface{}{"job_type_id": jt.ID.Hex(), "formula": jt.Formula})
	builder.SuccessCreated(jt)
}

// SubmitSheet handles POST /api/job-sheets.
//
// @Summary      Submit job sheet
// @Description  Computes the sheet outputs from its inputs with the job type's formula
// @Tags         Job sheets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key header string false "Idempotency key"
// @Param        request body dto.CreateJobSheetRequest true "Inputs"
// @Success      201 {object} dto.SuccessResponse "Stored sheet"
// @Failure      400 {object} dto.ErrorResponse "Invalid body"
// @Failure      404 {object} dto.ErrorResponse "Job type not found"
// @Failure      422 {object} dto.ErrorResponse "Missing input or unknown formula"
// @Router       /api/job-sheets [post]
func (h *JobTypeHandler) SubmitSheet(c *gin.Context) {
	builder := NewResponseBuilder(c)
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.CreateJobSheetRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	sheet, err := h.jobTypes.SubmitSheet(c.Request.Context(), actor, *req)
	if err != nil {
		respondError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionCreateJobSheet, "Job sheet submitted",
		map[string]interface{}{"job_sheet_id": sheet.ID.Hex(), "job_type_id": req.JobType})
	builder.SuccessCreated(sheet)
}

// ListSheets handles GET /api/job-sheets.
//
// @Summary      List job sheets
// @Description  Newest first. Laborers only see their own sheets.
// @Tags         Job sheets
// @Produce      json
// @Security     BearerAuth
// @Param        jobType query string false "Job type id"
// @Param        userId  query string false "Submitting user id"
// @Param        company query string false "Exact company"
// @Param        limit   query int    false "Page size"
// @Param        offset  query int    false "Records to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.ListResponse} "Sheets"
// @Failure      400 {object} dto.ErrorResponse "Invalid filter"
// @Router       /api/job-sheets [get]
func (h *JobTypeHandler) ListSheets(c *gin.Context) {
	builder := NewResponseBuilder(c)
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	opts, ok := h.paging.listOptions(c)
	if !ok {
		return
	}

	sheets, err := h.jobTypes.ListSheets(c.Request.Context(), actor, filterParams(c), opts)
	if err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessOK(listResponse(sheets, len(sheets), opts))
}
