package console

import (
	"jnv/console/internal/api"
	"jnv/console/internal/panels"
	"jnv/console/internal/session"
)

// Console is the admin web console: a small local server that renders
// the panels and forwards their actions to the school backend API.
type Console struct {
	Session session.Session
	Status  *panels.StatusLine

	Students      *panels.Students
	Scores        *panels.Scores
	Announcements *panels.Announcements
	Events        *panels.Events
	AppConfig     *panels.AppConfigPanel
	Users         *panels.Users
	AuditLogs     *panels.AuditLogs
	Approvals     *panels.Approvals
}

func New(client *api.Client, sess session.Session) *Console {
	status := &panels.StatusLine{}
	return &Console{
		Session:       sess,
		Status:        status,
		Students:      panels.NewStudents(client, status),
		Scores:        panels.NewScores(client, status),
		Announcements: panels.NewAnnouncements(client, status),
		Events:        panels.NewEvents(client, status),
		AppConfig:     panels.NewAppConfig(client, status),
		Users:         panels.NewUsers(client, status),
		AuditLogs:     panels.NewAuditLogs(client, status),
		Approvals:     panels.NewApprovals(client, status),
	}
}
