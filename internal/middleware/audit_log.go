package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/warewise/packaging-service/internal/domain/model"
	"github.com/warewise/packaging-service/internal/service"
)

// AuditLog records an engine action worth tracing back: pick plans,
// pallet selections, catalog changes. Entries are persisted off the
// request path.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	persistEntry(loggingService, auditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed engine action together with the error.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := auditEntry(c, "error", actionType, message, fields)
	entry.Error = err.Error()
	persistEntry(loggingService, entry)
}

func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Fields:     fields,
	}

	if productID, exists := c.Get("product_id"); exists {
		if id, ok := productID.(string); ok {
			entry.ProductID = id
		}
	}
	return entry
}
