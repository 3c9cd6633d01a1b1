package middleware

import (
	"github.com/gin-gonic/gin"
)

// AuditLog records a successful user action such as a login or a pothole sheet change.
func AuditLog(sink LogSink, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if sink == nil {
		return
	}
	entry := newEntry(c, "info", message)
	entry.ActionType = actionType
	entry.WithFields(fields)
	sink.Log(entry)
}

// AuditLogError records a failed user action.
func AuditLogError(sink LogSink, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if sink == nil {
		return
	}
	entry := newEntry(c, "error", message)
	entry.ActionType = actionType
	if err != nil {
		entry.Error = err.Error()
	}
	entry.WithFields(fields)
	sink.Log(entry)
}
