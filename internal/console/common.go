package console

import "net/http"

// Every form action lands back on the single page; the status line
// carries the outcome.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
