package console

import (
	"net/http"

	"jnv/console/internal/api"
)

func (c *Console) handleAppConfigLoad(w http.ResponseWriter, r *http.Request) {
	c.AppConfig.Load(r.Context())
	redirectHome(w, r)
}

// The form posts every flag name alongside its checkbox and the full
// widget table, so the saved document always carries the whole state.
func (c *Console) handleAppConfigSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		c.Status.Fail(err)
		redirectHome(w, r)
		return
	}

	for _, name := range r.PostForm["flag_key"] {
		c.AppConfig.SetFlag(name, r.FormValue("flag_"+name) != "")
	}

	keys := r.PostForm["widget_key"]
	labels := r.PostForm["widget_label"]
	values := r.PostForm["widget_value"]
	hints := r.PostForm["widget_hint"]
	icons := r.PostForm["widget_icon"]
	for i, key := range keys {
		c.AppConfig.UpdateWidget(i, api.DashboardWidget{
			Key:   key,
			Label: at(labels, i),
			Value: at(values, i),
			Hint:  at(hints, i),
			Icon:  at(icons, i),
		})
	}

	c.AppConfig.SetVersionInfo(r.FormValue("min_supported_version"), r.FormValue("force_update_message"))
	c.AppConfig.Save(r.Context())
	redirectHome(w, r)
}
