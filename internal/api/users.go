package api

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	return getList(ctx, c, "/api/v1/users", validUser)
}

func (c *Client) UpdateUserRole(ctx context.Context, id, role string) error {
	payload := struct {
		Role string `json:"role"`
	}{Role: role}
	return c.post(ctx, fmt.Sprintf("/api/v1/users/%s/role", url.PathEscape(id)), payload, nil)
}
