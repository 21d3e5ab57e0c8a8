package console

import "net/http"

func (c *Console) handleUsersLoad(w http.ResponseWriter, r *http.Request) {
	c.Users.Load(r.Context())
	redirectHome(w, r)
}

func (c *Console) handleUserRole(w http.ResponseWriter, r *http.Request) {
	c.Users.UpdateRole(r.Context(), r.PathValue("id"), r.FormValue("role"))
	redirectHome(w, r)
}
