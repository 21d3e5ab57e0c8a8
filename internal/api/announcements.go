package api

import (
	"context"
	"fmt"
	"net/url"
)

type CreateAnnouncementInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Priority string `json:"priority"`
}

func (c *Client) ListAnnouncements(ctx context.Context) ([]Announcement, error) {
	return getList(ctx, c, "/api/v1/announcements", validAnnouncement)
}

func (c *Client) CreateAnnouncement(ctx context.Context, in CreateAnnouncementInput) (*Announcement, error) {
	var created Announcement
	if err := c.post(ctx, "/api/v1/announcements", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) PublishAnnouncement(ctx context.Context, id string) error {
	return c.post(ctx, fmt.Sprintf("/api/v1/announcements/%s/publish", url.PathEscape(id)), struct{}{}, nil)
}

func (c *Client) DeleteAnnouncement(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/announcements/"+url.PathEscape(id))
}
