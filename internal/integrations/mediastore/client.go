package mediastore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger logging interface used by the client
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client HTTP client for the hosted media store. Orders only hold opaque
// object keys; the store turns them into time-limited download URLs.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a media store client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSignedURL resolves an object key into a signed download URL
func (c *Client) GetSignedURL(ctx context.Context, objectKey string) (*SignedURL, error) {
	reqURL := fmt.Sprintf("%s/internal/objects/%s/signed-url", c.baseURL, url.PathEscape(objectKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrObjectNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var signed SignedURL
	if err := json.NewDecoder(resp.Body).Decode(&signed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &signed, nil
}

// ResolveImageURL resolves an order's image key with graceful degradation:
// when the media store is unavailable the detail view simply renders
// without the image instead of failing the whole request.
func (c *Client) ResolveImageURL(ctx context.Context, objectKey string) *string {
	signed, err := c.GetSignedURL(ctx, objectKey)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			c.log.Warn("Image object key=%s not found in media store", objectKey)
			return nil
		}
		c.log.Error("Media store unavailable, rendering order without image: key=%s, error=%v", objectKey, err)
		return nil
	}
	return &signed.URL
}
