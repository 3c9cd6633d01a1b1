package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

// LogHandler serves the audit log query route.
type LogHandler struct {
	logs   service.LoggingService
	paging Paging
}

// NewLogHandler creates a new audit log handler.
func NewLogHandler(logs service.LoggingService, paging Paging) *LogHandler {
	return &LogHandler{logs: logs, paging: paging}
}

// List handles GET /api/logs.
//
// @Summary      List audit and request logs
// @Tags         Logs
// @Produce      json
// @Security     BearerAuth
// @Param        search    query string false "Substring of message, path or user email"
// @Param        action    query string false "Action type, e.g. record_pothole"
// @Param        userId    query string false "Acting user id"
// @Param        requestId query string false "Request id"
// @Param        level     query string false "info, warn or error"
// @Param        limit     query int    false "Page size"
// @Param        offset    query int    false "Records to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.ListResponse} "Entries"
// @Failure      403 {object} dto.ErrorResponse "Admins only"
// @Router       /api/logs [get]
func (h *LogHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)
	opts, ok := h.paging.listOptions(c)
	if !ok {
		return
	}

	entries, err := h.logs.ListLogs(c.Request.Context(), filterParams(c), opts)
	if err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessOK(listResponse(entries, len(entries), opts))
}
