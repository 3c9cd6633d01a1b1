package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/metrics"
	"github.com/Zafar-Sheik/roadworks-service/internal/middleware"
	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// ExportRowsHeader reports how many sheets an export contains.
	ExportRowsHeader = "X-Export-Rows"
)

// PotholeHandler serves the pothole job sheet routes.
type PotholeHandler struct {
	potholes service.PotholeService
	audit    middleware.LogSink
	paging   Paging
	now      func() time.Time
}

// NewPotholeHandler creates a new pothole handler.
func NewPotholeHandler(potholes service.PotholeService, audit middleware.LogSink, paging Paging) *PotholeHandler {
	return &PotholeHandler{potholes: potholes, audit: audit, paging: paging, now: time.Now}
}

// Record handles POST /api/potholes.
//
// @Summary      Record pothole repair
// @Description  Validates the measurements and stores the sheet with server-computed area, volume and material mass
// @Tags         Potholes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key header string false "Idempotency key"
// @Param        request body dto.CreatePotholeRequest true "Measurements"
// @Success      201 {object} dto.SuccessResponse "Recorded sheet"
// @Failure      400 {object} dto.ErrorResponse "Invalid body or non-positive measurement"
// @Failure      403 {object} dto.ErrorResponse "Job assigned to someone else"
// @Failure      404 {object} dto.ErrorResponse "Job not found"
// @Router       /api/potholes [post]
func (h *PotholeHandler) Record(c *gin.Context) {
	builder := NewResponseBuilder(c)
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.CreatePotholeRequest](c)
	if err != nil {
		metrics.RecordPotholeSheet("create", "invalid", 0)
		respondBindError(builder, err)
		return
	}

	sheet, err := h.potholes.Record(c.Request.Context(), actor, *req)
	if err != nil {
		middleware.AuditLogError(h.audit, c, model.ActionRecordPothole, "Pothole sheet rejected", err,
			map[string]interface{}{"job_id": req.Job})
		respondError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionRecordPothole, "Pothole sheet recorded",
		map[string]interface{}{"pothole_id": sheet.ID.Hex(), "job_id": req.Job, "materials_kg": sheet.MaterialsInKg})
	c.Header("Location", "/api/potholes/"+sheet.ID.Hex())
	builder.SuccessCreated(sheet)
}

// List handles GET /api/potholes.
//
// @Summary      List pothole sheets
// @Description  Lists sheets newest first. Laborers only see sheets of their own jobs.
// @Tags         Potholes
// @Produce      json
// @Security     BearerAuth
// @Param        job    query string false "Job id"
// @Param        search query string false "Substring of weather"
// @Param        limit  query int    false "Page size"
// @Param        offset query int    false "Records to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.ListResponse} "Sheets"
// @Failure      400 {object} dto.ErrorResponse "Invalid filter"
// @Router       /api/potholes [get]
func (h *PotholeHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	opts, ok := h.paging.listOptions(c)
	if !ok {
		return
	}

	sheets, err := h.potholes.List(c.Request.Context(), actor, filterParams(c), opts)
	if err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessOK(listResponse(sheets, len(sheets), opts))
}

// ListByJob handles GET /api/jobs/:id/potholes.
//
// @Summary      List a job's pothole sheets
// @Description  Newest first. A job without sheets, or an unknown job, yields an empty list.
// @Tags         Potholes
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  string true  "Job id"
// @Param        limit  query int    false "Page size"
// @Param        offset query int    false "Records to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.ListResponse} "Sheets"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      403 {object} dto.ErrorResponse "Job assigned to someone else"
// @Router       /api/jobs/{id}/potholes [get]
func (h *PotholeHandler) ListByJob(c *gin.Context) {
	builder := NewResponseBuilder(c)
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	jobID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	opts, ok := h.paging.listOptions(c)
	if !ok {
		return
	}

	sheets, err := h.potholes.ListByJob(c.Request.Context(), actor, jobID, opts)
	if err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessOK(listResponse(sheets, len(sheets), opts))
}

// Get handles GET /api/potholes/:id.
//
// @Summary      Get pothole sheet
// @Tags         Potholes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Sheet id"
// @Success      200 {object} dto.SuccessResponse "Sheet"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Sheet not found"
// @Router       /api/potholes/{id} [get]
func (h *PotholeHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	sheet, err := h.potholes.Get(c.Request.Context(), actor, id)
	if err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessOK(sheet)
}

// Update handles PATCH /api/potholes/:id.
//
// @Summary      Update pothole sheet
// @Description  Merges the given measurements and recomputes the derived metrics
// @Tags         Potholes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                   true "Sheet id"
// @Param        request body dto.UpdatePotholeRequest true "Fields to change"
// @Success      200 {object} dto.SuccessResponse "Updated sheet"
// @Failure      400 {object} dto.ErrorResponse "Invalid id, body or measurement"
// @Failure      404 {object} dto.ErrorResponse "Sheet not found"
// @Router       /api/potholes/{id} [patch]
func (h *PotholeHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.UpdatePotholeRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	sheet, err := h.potholes.Update(c.Request.Context(), actor, id, *req)
	if err != nil {
		respondError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionUpdatePothole, "Pothole sheet updated",
		map[string]interface{}{"pothole_id": id.Hex(), "materials_kg": sheet.MaterialsInKg})
	builder.SuccessOK(sheet)
}

// Delete handles DELETE /api/potholes/:id.
//
// @Summary      Delete pothole sheet
// @Tags         Potholes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Sheet id"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Sheet not found"
// @Router       /api/potholes/{id} [delete]
func (h *PotholeHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.potholes.Delete(c.Request.Context(), id); err != nil {
		respondError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionDeletePothole, "Pothole sheet deleted",
		map[string]interface{}{"pothole_id": id.Hex()})
	builder.SuccessOK(map[string]string{"id": id.Hex()})
}

// Export handles GET /api/potholes/export.
//
// @Summary      Export pothole sheets
// @Description  Downloads the sheets matching the filter as an XLSX workbook
// @Tags         Potholes
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        job    query string false "Job id"
// @Param        search query string false "Substring of weather"
// @Success      200 {file} file "Workbook"
// @Failure      400 {object} dto.ErrorResponse "Invalid filter"
// @Router       /api/potholes/export [get]
func (h *PotholeHandler) Export(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var buf bytes.Buffer
	rows, err := h.potholes.Export(c.Request.Context(), filterParams(c), &buf)
	if err != nil {
		respondError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionExportPotholes, "Pothole sheets exported",
		map[string]interface{}{"rows": rows})

	filename := fmt.Sprintf("potholes-%s.xlsx", h.now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header(ExportRowsHeader, strconv.Itoa(rows))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
