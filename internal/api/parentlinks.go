package api

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) ListPendingLinks(ctx context.Context) ([]ParentLink, error) {
	return getList(ctx, c, "/api/v1/parent-links/pending", validParentLink)
}

func (c *Client) ApproveParentLink(ctx context.Context, id string) error {
	return c.post(ctx, fmt.Sprintf("/api/v1/parent-links/%s/approve", url.PathEscape(id)), struct{}{}, nil)
}
