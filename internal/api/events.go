package api

import (
	"context"
	"fmt"
	"net/url"
)

type CreateEventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"event_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location"`
	Audience    string `json:"audience"`
	Category    string `json:"category"`
}

func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	return getList(ctx, c, "/api/v1/events", validEvent)
}

func (c *Client) CreateEvent(ctx context.Context, in CreateEventInput) (*Event, error) {
	var created Event
	if err := c.post(ctx, "/api/v1/events", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) PublishEvent(ctx context.Context, id string) error {
	return c.post(ctx, fmt.Sprintf("/api/v1/events/%s/publish", url.PathEscape(id)), struct{}{}, nil)
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/events/"+url.PathEscape(id))
}
