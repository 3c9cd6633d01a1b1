package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/middleware"
	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

var (
	adminOnly = middleware.RequireRole(model.RoleAdmin)
	anyRole   = middleware.RequireRole(model.RoleAdmin, model.RoleLaborer)
)

// UserRoutes registers the admin user management routes.
type UserRoutes struct {
	handler *UserHandler
}

// NewUserRoutes creates a new UserRoutes instance.
func NewUserRoutes(users service.UserService, audit middleware.LogSink, paging Paging) *UserRoutes {
	return &UserRoutes{handler: NewUserHandler(users, audit, paging)}
}

func (r *UserRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users", adminOnly)
	users.GET("", r.handler.List)
	users.POST("", r.handler.Create)
	users.PUT("/:id", r.handler.UpdateEmail)
	users.DELETE("/:id", r.handler.Delete)
}

// JobRoutes registers the job routes.
type JobRoutes struct {
	handler *JobHandler
}

// NewJobRoutes creates a new JobRoutes instance.
func NewJobRoutes(jobs service.JobService, audit middleware.LogSink, paging Paging) *JobRoutes {
	return &JobRoutes{handler: NewJobHandler(jobs, audit, paging)}
}

func (r *JobRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/:id/jobs", anyRole, r.handler.ListForUser)

	jobs := rg.Group("/jobs")
	jobs.GET("", anyRole, r.handler.List)
	jobs.POST("", adminOnly, r.handler.Create)
	jobs.GET("/:id", anyRole, r.handler.Get)
	jobs.PATCH("/:id", anyRole, r.handler.Update)
	jobs.DELETE("/:id", adminOnly, r.handler.Delete)
}

// PotholeRoutes registers the pothole job sheet routes.
type PotholeRoutes struct {
	handler *PotholeHandler
}

// NewPotholeRoutes creates a new PotholeRoutes instance.
func NewPotholeRoutes(potholes service.PotholeService, audit middleware.LogSink, paging Paging) *PotholeRoutes {
	return &PotholeRoutes{handler: NewPotholeHandler(potholes, audit, paging)}
}

func (r *PotholeRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs/:id/potholes", anyRole, r.handler.ListByJob)

	potholes := rg.Group("/potholes")
	potholes.GET("", anyRole, r.handler.List)
	potholes.POST("", anyRole, r.handler.Record)
	potholes.GET("/export", adminOnly, r.handler.Export)
	potholes.GET("/:id", anyRole, r.handler.Get)
	potholes.PATCH("/:id", anyRole, r.handler.Update)
	potholes.DELETE("/:id", adminOnly, r.handler.Delete)
}

// JobTypeRoutes registers the job type catalog and job sheet routes.
type JobTypeRoutes struct {
	handler *JobTypeHandler
}

// NewJobTypeRoutes creates a new JobTypeRoutes instance.
func NewJobTypeRoutes(jobTypes service.JobTypeService, audit middleware.LogSink, paging Paging) *JobTypeRoutes {
	return &JobTypeRoutes{handler: NewJobTypeHandler(jobTypes, audit, paging)}
}

func (r *JobTypeRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/job-types", anyRole, r.handler.ListTypes)
	rg.POST("/job-types", adminOnly, r.handler.CreateType)
	rg.GET("/job-sheets", anyRole, r.handler.ListSheets)
	rg.POST("/job-sheets", anyRole, r.handler.SubmitSheet)
}

// LogRoutes registers the audit log route.
type LogRoutes struct {
	handler *LogHandler
}

// NewLogRoutes creates a new LogRoutes instance.
func NewLogRoutes(logs service.LoggingService, paging Paging) *LogRoutes {
	return &LogRoutes{handler: NewLogHandler(logs, paging)}
}

func (r *LogRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/logs", adminOnly, r.handler.List)
}
