package console

import "net/http"

func (c *Console) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /{$}", c.handleHome)

	mux.HandleFunc("POST /session/token", c.handleTokenSignIn)
	mux.HandleFunc("POST /session/phone", c.handlePhoneStart)
	mux.HandleFunc("POST /session/phone/confirm", c.handlePhoneConfirm)
	mux.HandleFunc("POST /session/signout", c.handleSignOut)

	mux.HandleFunc("POST /students/load", c.handleStudentsLoad)
	mux.HandleFunc("POST /students", c.handleStudentCreate)
	mux.HandleFunc("POST /students/upload", c.handleStudentUpload)
	mux.HandleFunc("GET /templates/students.csv", c.handleStudentTemplate)

	mux.HandleFunc("POST /scores/upload", c.handleScoreUpload)
	mux.HandleFunc("POST /scores/manual", c.handleManualScores)
	mux.HandleFunc("GET /templates/scores.csv", c.handleScoreTemplate)

	mux.HandleFunc("POST /announcements/load", c.handleAnnouncementsLoad)
	mux.HandleFunc("POST /announcements", c.handleAnnouncementCreate)
	mux.HandleFunc("POST /announcements/{id}/publish", c.handleAnnouncementPublish)
	mux.HandleFunc("GET /announcements/{id}/delete", c.handleAnnouncementDeleteConfirm)
	mux.HandleFunc("POST /announcements/{id}/delete", c.handleAnnouncementDelete)

	mux.HandleFunc("POST /events/load", c.handleEventsLoad)
	mux.HandleFunc("POST /events", c.handleEventCreate)
	mux.HandleFunc("POST /events/{id}/publish", c.handleEventPublish)
	mux.HandleFunc("GET /events/{id}/delete", c.handleEventDeleteConfirm)
	mux.HandleFunc("POST /events/{id}/delete", c.handleEventDelete)

	mux.HandleFunc("POST /app-config/load", c.handleAppConfigLoad)
	mux.HandleFunc("POST /app-config", c.handleAppConfigSave)

	mux.HandleFunc("POST /users/load", c.handleUsersLoad)
	mux.HandleFunc("POST /users/{id}/role", c.handleUserRole)

	mux.HandleFunc("POST /audit-logs/load", c.handleAuditLogsLoad)

	mux.HandleFunc("POST /parent-links/load", c.handleApprovalsLoad)
	mux.HandleFunc("POST /parent-links/{id}/approve", c.handleApprove)

	return mux
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
