package console

import "net/http"

func (c *Console) handleApprovalsLoad(w http.ResponseWriter, r *http.Request) {
	c.Approvals.Load(r.Context())
	redirectHome(w, r)
}

func (c *Console) handleApprove(w http.ResponseWriter, r *http.Request) {
	c.Approvals.Approve(r.Context(), r.PathValue("id"))
	redirectHome(w, r)
}
