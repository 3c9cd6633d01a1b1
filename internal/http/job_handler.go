package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/middleware"
	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

// JobHandler serves the job (work order) routes.
type JobHandler struct {
	jobs   service.JobService
	audit  middleware.LogSink
	paging Paging
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobs service.JobService, audit middleware.LogSink, paging Paging) *JobHandler {
	return &JobHandler{jobs: jobs, audit: audit, paging: paging}
}

// List handles GET /api/jobs.
//
// @Summary      List jobs
// @Description  Lists jobs newest first. Laborers only see jobs assigned to them.
// @Tags         Jobs
// @Produce      json
// @Security     BearerAuth
// @Param        search                query string false "Substring of name, company or job type"
// @Param        userId                query string false "Assignee id"
// @Param        company               query string false "Exact company"
// @Param        isComplete            query bool   false "Completion flag"
// @Param        isActive              query bool   false "Active flag"
// @Param        isContractorSignature query bool   false "Contractor signed"
// @Param        isEngineerSignature   query bool   false "Engineer signed"
// @Param        limit                 query int    false "Page size"
// @Param        offset                query int    false "Records to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.ListResponse} "Jobs"
// @Failure      400 {object} dto.ErrorResponse "Invalid filter"
// @Router       /api/jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	opts, ok := h.paging.listOptions(c)
	if !ok {
		return
	}

	jobs, err := h.jobs.List(c.Request.Context(), actor, filterParams(c), opts)
	if err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessOK(listResponse(jobs, len(jobs), opts))
}

// ListForUser handles GET /api/users/:id/jobs.
//
// @Summary      List a user's jobs
// @Description  Lists the jobs assigned to one user. Laborers may only list their own.
// @Tags         Jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id         path  string true  "User id"
// @Param        search     query string false "Substring of name, company or job type"
// @Param        isComplete query bool   false "Completion flag"
// @Param        limit      query int    false "Page size"
// @Param        offset     query int    false "Records to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.ListResponse} "Jobs"
// @Failure      400 {object} dto.ErrorResponse "Invalid id or filter"
// @Failure      403 {object} dto.ErrorResponse "Another user's jobs"
// @Router       /api/users/{id}/jobs [get]
func (h *JobHandler) ListForUser(c *gin.Context) {
	builder := NewResponseBuilder(c)
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	userID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	opts, ok := h.paging.listOptions(c)
	if !ok {
		return
	}

	jobs, err := h.jobs.ListForUser(c.Request.Context(), actor, userID, filterParams(c), opts)
	if err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessOK(listResponse(jobs, len(jobs), opts))
}

// Get handles GET /api/jobs/:id.
//
// @Summary      Get job
// @Tags         Jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Job id"
// @Success      200 {object} dto.SuccessResponse "Job"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      403 {object} dto.ErrorResponse "Job assigned to someone else"
// @Failure      404 {object} dto.ErrorResponse "Job not found"
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	job, err := h.jobs.Get(c.Request.Context(), actor, id)
	if err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessOK(job)
}

// Create handles POST /api/jobs.
//
// @Summary      Create job
// @Description  Creates a job and assigns it to an active user
// @Tags         Jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key header string false "Idempotency key"
// @Param        request body dto.CreateJobRequest true "Job"
// @Success      201 {object} dto.SuccessResponse "Created"
// @Failure      400 {object} dto.ErrorResponse "Invalid body"
// @Failure      422 {object} dto.ErrorResponse "Assignee not found"
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateJobRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), *req)
	if err != nil {
		respondError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionCreateJob, "Job created",
		map[string]interface{}{"job_id": job.ID.Hex(), "assignee": job.User})
	c.Header("Location", "/api/jobs/"+job.ID.Hex())
	builder.SuccessCreated(job)
}

// Update handles PATCH /api/jobs/:id.
//
// @Summary      Update job
// @Description  Admins may change any field. The assignee may only set completion and signature flags.
// @Tags         Jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string               true "Job id"
// @Param        request body dto.UpdateJobRequest true "Fields to change"
// @Success      200 {object} dto.SuccessResponse "Updated"
// @Failure      400 {object} dto.ErrorResponse "Invalid id or body"
// @Failure      403 {object} dto.ErrorResponse "Not allowed"
// @Failure      404 {object} dto.ErrorResponse "Job not found"
// @Router       /api/jobs/{id} [patch]
func (h *JobHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.UpdateJobRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), actor, id, model.JobUpdate{
		Name:                  req.Name,
		IsActive:              req.IsActive,
		IsComplete:            req.IsComplete,
		IsContractorSignature: req.IsContractorSignature,
		IsEngineerSignature:   req.IsEngineerSignature,
	})
	if err != nil {
		respondError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionUpdateJob, "Job updated",
		map[string]interface{}{"job_id": id.Hex()})
	builder.SuccessOK(job)
}

// Delete handles DELETE /api/jobs/:id.
//
// @Summary      Delete job
// @Description  Deletes the job and its pothole sheets
// @Tags         Jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Job id"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Job not found"
// @Router       /api/jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), id); err != nil {
		respondError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionDeleteJob, "Job deleted",
		map[string]interface{}{"job_id": id.Hex()})
	builder.SuccessOK(map[string]string{"id": id.Hex()})
}
