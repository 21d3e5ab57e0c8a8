package console

import "net/http"

func (c *Console) handleAuditLogsLoad(w http.ResponseWriter, r *http.Request) {
	c.AuditLogs.Load(r.Context())
	redirectHome(w, r)
}
