package console

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/google/uuid"

	"jnv/console/internal/api"
	"jnv/console/internal/session"
)

//go:embed page.html confirm.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "page.html", "confirm.html"))

var classOptions = []string{
	"Class 6", "Class 7", "Class 8", "Class 9", "Class 10", "Class 11", "Class 12",
}

type pageData struct {
	SignedIn  bool
	AuthLabel string
	PhoneAuth bool
	TokenAuth bool
	Challenge string
	Status    string

	Class        string
	ClassOptions []string

	Students      []api.Student
	Announcements []api.Announcement
	Events        []api.Event
	AppConfig     api.AppConfig
	Users         []api.User
	AuditLogs     []api.AuditLog
	Pending       []api.ParentLink
}

type confirmData struct {
	Kind   string
	Title  string
	Action string
}

func (c *Console) handleHome(w http.ResponseWriter, _ *http.Request) {
	_, phoneAuth := c.Session.(session.PhoneSignIn)
	_, tokenAuth := c.Session.(session.TokenPaste)

	data := pageData{
		SignedIn:  c.Session.Token() != "",
		AuthLabel: c.Session.Label(),
		PhoneAuth: phoneAuth,
		TokenAuth: tokenAuth,
		// The OTP challenge is bound to this render of the page.
		Challenge: uuid.NewString(),
		Status:    c.Status.Text(),

		Class:        c.Students.Class(),
		ClassOptions: classOptions,

		Students:      c.Students.Items(),
		Announcements: c.Announcements.Items(),
		Events:        c.Events.Items(),
		AppConfig:     c.AppConfig.Doc(),
		Users:         c.Users.Items(),
		AuditLogs:     c.AuditLogs.Items(),
		Pending:       c.Approvals.Items(),
	}
	renderTemplate(w, "page.html", data)
}

func renderTemplate(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[console] render %s: %v", name, err)
	}
}
