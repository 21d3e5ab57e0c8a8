package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ErrSignInRequired is returned before any network I/O when no bearer
// token is available.
var ErrSignInRequired = errors.New("please sign in first")

// TokenSource yields the current bearer token; empty means signed out.
type TokenSource interface {
	Token() string
}

// StatusError is a non-2xx response. The message is the response body
// verbatim, falling back to the status text when the body is empty.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if strings.TrimSpace(e.Body) != "" {
		return e.Body
	}
	return http.StatusText(e.Status)
}

// Client wraps the backend REST surface. All calls attach the bearer
// token and an X-Request-ID; failures surface the response body.
type Client struct {
	baseURL string
	tokens  TokenSource
	hc      *http.Client
}

func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		hc:      http.DefaultClient,
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(body), "application/json", out)
}

func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	token := c.tokens.Token()
	if token == "" {
		return ErrSignInRequired
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &StatusError{Status: res.StatusCode, Body: string(raw)}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// UploadSummary is the bulk-endpoint outcome. Missing fields decode to
// zero values so partial responses still summarize.
type UploadSummary struct {
	Inserted int      `json:"inserted"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors"`
}

// upload posts a single file as a multipart body. The JSON content
// type is deliberately omitted; the multipart writer sets its own.
// The summary body is decoded on failure too, so callers see the
// server's row errors rather than a bare status.
func (c *Client) upload(ctx context.Context, path, filename string, file io.Reader) (UploadSummary, error) {
	token := c.tokens.Token()
	if token == "" {
		return UploadSummary{}, ErrSignInRequired
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return UploadSummary{}, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return UploadSummary{}, err
	}
	if err := mw.Close(); err != nil {
		return UploadSummary{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return UploadSummary{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", uuid.NewString())
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := c.hc.Do(req)
	if err != nil {
		return UploadSummary{}, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return UploadSummary{}, err
	}

	var summary UploadSummary
	_ = json.Unmarshal(raw, &summary)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		if len(summary.Errors) > 0 {
			return summary, fmt.Errorf("%s", strings.Join(summary.Errors, ", "))
		}
		return summary, &StatusError{Status: res.StatusCode, Body: string(raw)}
	}
	return summary, nil
}

// decodeList normalizes the two list shapes the backend returns: a
// bare array, or an object wrapping the array under "items". Anything
// else normalizes to an empty list.
func decodeList(raw json.RawMessage) []json.RawMessage {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		return items
	}
	var wrapped struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Items != nil {
		return wrapped.Items
	}
	return nil
}

// getList fetches a list endpoint, normalizes the shape, and keeps
// only elements that decode and pass the guard.
func getList[T any](ctx context.Context, c *Client, path string, valid func(T) bool) ([]T, error) {
	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}

	items := decodeList(raw)
	out := make([]T, 0, len(items))
	for _, item := range items {
		var record T
		if err := json.Unmarshal(item, &record); err != nil {
			continue
		}
		if valid != nil && !valid(record) {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}
