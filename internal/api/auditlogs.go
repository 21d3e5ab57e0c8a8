package api

import (
	"context"
	"fmt"
)

// auditLogPageSize caps audit log reads; there is no paging beyond it.
const auditLogPageSize = 200

func (c *Client) ListAuditLogs(ctx context.Context) ([]AuditLog, error) {
	return getList(ctx, c, fmt.Sprintf("/api/v1/audit-logs?limit=%d", auditLogPageSize), validAuditLog)
}
