package console

import (
	"net/http"

	"jnv/console/internal/api"
)

func (c *Console) handleEventsLoad(w http.ResponseWriter, r *http.Request) {
	c.Events.Load(r.Context())
	redirectHome(w, r)
}

func (c *Console) handleEventCreate(w http.ResponseWriter, r *http.Request) {
	c.Events.Create(r.Context(), api.CreateEventInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		EventDate:   r.FormValue("event_date"),
		StartTime:   r.FormValue("start_time"),
		EndTime:     r.FormValue("end_time"),
		Location:    r.FormValue("location"),
		Audience:    r.FormValue("audience"),
		Category:    r.FormValue("category"),
	})
	redirectHome(w, r)
}

func (c *Console) handleEventPublish(w http.ResponseWriter, r *http.Request) {
	c.Events.Publish(r.Context(), r.PathValue("id"))
	redirectHome(w, r)
}

func (c *Console) handleEventDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	title := id
	for _, e := range c.Events.Items() {
		if e.ID == id {
			title = e.Title
		}
	}
	renderTemplate(w, "confirm.html", confirmData{
		Kind:   "event",
		Title:  title,
		Action: "/events/" + id + "/delete",
	})
}

func (c *Console) handleEventDelete(w http.ResponseWriter, r *http.Request) {
	if r.FormValue("confirm") != "yes" {
		c.Status.Set("Deletion cancelled.")
		redirectHome(w, r)
		return
	}
	c.Events.Delete(r.Context(), r.PathValue("id"))
	redirectHome(w, r)
}
