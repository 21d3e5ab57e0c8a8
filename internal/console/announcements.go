package console

import (
	"net/http"

	"jnv/console/internal/api"
)

func (c *Console) handleAnnouncementsLoad(w http.ResponseWriter, r *http.Request) {
	c.Announcements.Load(r.Context())
	redirectHome(w, r)
}

func (c *Console) handleAnnouncementCreate(w http.ResponseWriter, r *http.Request) {
	c.Announcements.Create(r.Context(), api.CreateAnnouncementInput{
		Title:    r.FormValue("title"),
		Content:  r.FormValue("content"),
		Category: r.FormValue("category"),
		Priority: r.FormValue("priority"),
	})
	redirectHome(w, r)
}

func (c *Console) handleAnnouncementPublish(w http.ResponseWriter, r *http.Request) {
	c.Announcements.Publish(r.Context(), r.PathValue("id"))
	redirectHome(w, r)
}

// The confirm page is rendered locally; the backend sees nothing until
// the deletion is confirmed.
func (c *Console) handleAnnouncementDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	title := id
	for _, a := range c.Announcements.Items() {
		if a.ID == id {
			title = a.Title
		}
	}
	renderTemplate(w, "confirm.html", confirmData{
		Kind:   "announcement",
		Title:  title,
		Action: "/announcements/" + id + "/delete",
	})
}

func (c *Console) handleAnnouncementDelete(w http.ResponseWriter, r *http.Request) {
	if r.FormValue("confirm") != "yes" {
		c.Status.Set("Deletion cancelled.")
		redirectHome(w, r)
		return
	}
	c.Announcements.Delete(r.Context(), r.PathValue("id"))
	redirectHome(w, r)
}
