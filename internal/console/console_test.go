package console

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jnv/console/internal/api"
	"jnv/console/internal/session"
)

type backendStub struct {
	srv *httptest.Server

	mu    sync.Mutex
	calls map[string]int
}

func newBackendStub(t *testing.T, handler http.HandlerFunc) *backendStub {
	t.Helper()
	b := &backendStub{calls: map[string]int{}}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls[r.Method+" "+r.URL.Path]++
		b.mu.Unlock()
		if handler != nil {
			handler(w, r)
		}
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *backendStub) count(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[key]
}

func (b *backendStub) total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, v := range b.calls {
		n += v
	}
	return n
}

func newConsole(t *testing.T, backend *backendStub, token string) *Console {
	t.Helper()
	sess := session.NewStatic(token)
	return New(api.New(backend.srv.URL, sess), sess)
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHomePageRenders(t *testing.T) {
	backend := newBackendStub(t, nil)
	c := newConsole(t, backend, "")
	rec := get(t, c.Router(), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "JNV Admin Console")
	assert.Contains(t, body, "Use token", "signed-out page offers token sign-in")
	assert.NotContains(t, body, "Sign out")
	assert.Zero(t, backend.total(), "rendering the page never touches the backend")
}

func TestTokenSignInAndSignOut(t *testing.T) {
	backend := newBackendStub(t, nil)
	c := newConsole(t, backend, "")
	router := c.Router()

	rec := postForm(t, router, "/session/token", url.Values{"token": {"dev:9876543210:admin"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Contains(t, c.Status.Text(), "Signed in as 9876543210")

	rec = postForm(t, router, "/session/signout", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "Signed out.", c.Status.Text())
	assert.Empty(t, c.Session.Token())
}

func TestSignedOutActionsNeverReachBackend(t *testing.T) {
	backend := newBackendStub(t, nil)
	c := newConsole(t, backend, "")
	router := c.Router()

	postForm(t, router, "/announcements/load", nil)
	assert.Equal(t, "Error: please sign in first", c.Status.Text())

	postForm(t, router, "/users/load", nil)
	postForm(t, router, "/students/load", url.Values{"class": {"Class 9"}})

	assert.Zero(t, backend.total())
}

func TestDeleteConfirmFlow(t *testing.T) {
	backend := newBackendStub(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"id":"ann-1","title":"Sports Day"}]`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	c := newConsole(t, backend, "test-token")
	router := c.Router()

	postForm(t, router, "/announcements/load", nil)
	require.Len(t, c.Announcements.Items(), 1)
	before := backend.total()

	// The confirm page is local.
	rec := get(t, router, "/announcements/ann-1/delete")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sports Day")
	assert.Equal(t, before, backend.total())

	// Declining still costs nothing.
	postForm(t, router, "/announcements/ann-1/delete", nil)
	assert.Equal(t, "Deletion cancelled.", c.Status.Text())
	assert.Equal(t, before, backend.total())

	postForm(t, router, "/announcements/ann-1/delete", url.Values{"confirm": {"yes"}})
	assert.Equal(t, 1, backend.count("DELETE /api/v1/announcements/ann-1"))
	assert.Equal(t, "Announcement deleted.", c.Status.Text())
}

func TestCSVTemplateDownloads(t *testing.T) {
	backend := newBackendStub(t, nil)
	c := newConsole(t, backend, "")
	router := c.Router()

	rec := get(t, router, "/templates/students.csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "student_upload_template.csv")
	assert.Contains(t, rec.Body.String(), "full_name,class_label")

	rec = get(t, router, "/templates/scores.csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "score_upload_template.csv")
	assert.Contains(t, rec.Body.String(), "subject,roll_no")

	assert.Zero(t, backend.total(), "templates are generated locally")
}

func TestManualScoreFormRows(t *testing.T) {
	var scoresPath string
	backend := newBackendStub(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/exams":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"exam-1"}`))
		case "/api/v1/students/lookup":
			_, _ = w.Write([]byte(`{"id":"student-12","full_name":"Aarav Sharma"}`))
		default:
			scoresPath = r.URL.Path
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"status":"uploaded"}`))
		}
	})
	c := newConsole(t, backend, "test-token")

	postForm(t, c.Router(), "/scores/manual", url.Values{
		"class":     {"Class 10"},
		"subject":   {"Mathematics"},
		"exam":      {"Term 1 - Quarterly"},
		"term":      {"Term 1"},
		"date":      {"2025-03-01"},
		"max_marks": {"100"},
		"roll":      {"12", ""},
		"name":      {"Aarav Sharma", ""},
		"score":     {"95", ""},
		"grade":     {"A+", ""},
	})

	assert.Equal(t, "/api/v1/exams/exam-1/scores", scoresPath)
	assert.Equal(t, 1, backend.count("GET /api/v1/students/lookup"), "empty rows are skipped")
	assert.Equal(t, "Manual scores submitted for approval.", c.Status.Text())
}

func TestAppConfigSaveFromForm(t *testing.T) {
	saved := ""
	backend := newBackendStub(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			body, _ := io.ReadAll(r.Body)
			saved = string(body)
		}
		w.WriteHeader(http.StatusOK)
	})
	c := newConsole(t, backend, "test-token")

	postForm(t, c.Router(), "/app-config", url.Values{
		"flag_key":              {"show_events", "show_attendance"},
		"flag_show_attendance":  {"on"},
		"widget_key":            {"gpa"},
		"widget_label":          {"GPA"},
		"widget_value":          {"8.7"},
		"widget_hint":           {"This term"},
		"widget_icon":           {"school"},
		"min_supported_version": {"1.4.0"},
	})

	assert.Equal(t, 1, backend.count("POST /api/v1/app-config"))
	assert.Contains(t, saved, `"show_events":false`, "unchecked flags are turned off")
	assert.Contains(t, saved, `"show_attendance":true`)
	assert.Contains(t, saved, `"8.7"`)
	assert.Contains(t, saved, `"1.4.0"`)
	assert.Equal(t, "App config saved.", c.Status.Text())
}

func TestHealthz(t *testing.T) {
	backend := newBackendStub(t, nil)
	c := newConsole(t, backend, "")
	rec := get(t, c.Router(), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
