package api

import "context"

// GetAppConfig loads the singleton mobile-app config wholesale.
func (c *Client) GetAppConfig(ctx context.Context) (*AppConfig, error) {
	var cfg AppConfig
	if err := c.get(ctx, "/api/v1/app-config", &cfg); err != nil {
		return nil, err
	}
	if cfg.FeatureFlags == nil {
		cfg.FeatureFlags = map[string]bool{}
	}
	if cfg.DashboardWidgets == nil {
		cfg.DashboardWidgets = []DashboardWidget{}
	}
	return &cfg, nil
}

// SaveAppConfig writes the whole document back, untouched fields
// included. The backend has no version stamp; last writer wins.
func (c *Client) SaveAppConfig(ctx context.Context, cfg AppConfig) error {
	return c.post(ctx, "/api/v1/app-config", cfg, nil)
}
