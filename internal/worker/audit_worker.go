package worker

import (
	"github.com/spec-kit/inventory-service/internal/service"
)

// StartAuditWorker registers the audit trail handlers on the dispatcher.
func StartAuditWorker(auditService *service.AuditService) {
	if auditService == nil {
		return
	}
	auditService.RegisterHandlers()
}
