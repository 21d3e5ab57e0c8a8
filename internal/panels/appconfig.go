package panels

import (
	"context"
	"strings"
	"sync"

	"jnv/console/internal/api"
)

// AppConfigPanel edits the singleton mobile-app config document. The
// document is loaded and saved wholesale; a save always sends every
// field currently in local state, untouched ones included.
type AppConfigPanel struct {
	api    *api.Client
	status *StatusLine

	mu  sync.Mutex
	doc api.AppConfig
}

func NewAppConfig(client *api.Client, status *StatusLine) *AppConfigPanel {
	return &AppConfigPanel{
		api:    client,
		status: status,
		doc: api.AppConfig{
			FeatureFlags: map[string]bool{
				"show_events":        true,
				"show_announcements": true,
				"show_attendance":    false,
				"show_academic_tab":  true,
			},
			DashboardWidgets: []api.DashboardWidget{
				{Key: "gpa", Label: "GPA", Value: "9.2", Hint: "This term", Icon: "school"},
				{Key: "attendance", Label: "Attend", Value: "94.5%", Hint: "Monthly avg", Icon: "check_circle"},
				{Key: "rank", Label: "Rank", Value: "#3", Hint: "Class standing", Icon: "emoji_events"},
			},
		},
	}
}

func (p *AppConfigPanel) Load(ctx context.Context) {
	p.status.Set("Loading app config...")
	cfg, err := p.api.GetAppConfig(ctx)
	if err != nil {
		p.status.Fail(err)
		return
	}

	p.mu.Lock()
	p.doc = *cfg
	p.mu.Unlock()
	p.status.Set("App config loaded.")
}

func (p *AppConfigPanel) Save(ctx context.Context) {
	p.mu.Lock()
	doc := p.snapshotLocked()
	doc.MinSupportedVersion = strings.TrimSpace(doc.MinSupportedVersion)
	doc.ForceUpdateMessage = strings.TrimSpace(doc.ForceUpdateMessage)
	p.mu.Unlock()

	p.status.Set("Saving app config...")
	if err := p.api.SaveAppConfig(ctx, doc); err != nil {
		p.status.Fail(err)
		return
	}
	p.status.Set("App config saved.")
}

func (p *AppConfigPanel) SetFlag(name string, on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doc.FeatureFlags == nil {
		p.doc.FeatureFlags = map[string]bool{}
	}
	p.doc.FeatureFlags[name] = on
}

func (p *AppConfigPanel) UpdateWidget(index int, widget api.DashboardWidget) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= len(p.doc.DashboardWidgets) {
		return
	}
	p.doc.DashboardWidgets[index] = widget
}

func (p *AppConfigPanel) SetVersionInfo(minVersion, forceMessage string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.doc.MinSupportedVersion = minVersion
	p.doc.ForceUpdateMessage = forceMessage
}

func (p *AppConfigPanel) Doc() api.AppConfig {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *AppConfigPanel) snapshotLocked() api.AppConfig {
	doc := p.doc
	doc.FeatureFlags = make(map[string]bool, len(p.doc.FeatureFlags))
	for name, on := range p.doc.FeatureFlags {
		doc.FeatureFlags[name] = on
	}
	doc.DashboardWidgets = make([]api.DashboardWidget, len(p.doc.DashboardWidgets))
	copy(doc.DashboardWidgets, p.doc.DashboardWidgets)
	return doc
}
