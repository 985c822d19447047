package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"talentlink/internal/logger"
	"talentlink/pkg/apperrors"
)

// Client is a thin wrapper over the marketplace REST API. All marketplace
// data is remote-owned; the client returns parsed JSON or an AppError.
type Client struct {
	baseURL string
	http    *http.Client
	bearer  string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// WithToken returns a copy of the client that sends the given access token
// as a bearer credential on every request.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.bearer = token
	return &cp
}

// BaseURL returns the configured upstream base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues a request with a JSON body and decodes a JSON response into out.
// A nil body sends no payload; a nil out discards the response body.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.InternalError(fmt.Errorf("marshal %s %s: %w", method, path, err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperrors.InternalError(fmt.Errorf("build %s %s: %w", method, path, err))
	}
	req.Header.Set("Content-Type", "application/json")
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.UpstreamLog(method, path, 0, time.Since(start), err)
		return apperrors.Wrap(err, apperrors.CodeUpstreamUnreachable, "marketplace",
			"Marketplace is unreachable", http.StatusBadGateway)
	}
	defer resp.Body.Close()

	logger.UpstreamLog(method, path, resp.StatusCode, time.Since(start), nil)

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return apperrors.UpstreamError(
			fmt.Errorf("%s %s returned %d: %s", method, path, resp.StatusCode, string(data)),
			resp.StatusCode,
			fmt.Sprintf("Marketplace rejected %s %s", method, path),
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(err, apperrors.CodeUpstreamError, "marketplace",
			"Marketplace returned a malformed response", http.StatusBadGateway)
	}
	return nil
}
