package metlink

import (
	"context"
	"io"
	"net/http"
)

// FormatJSON and FormatProtobuf select how the feed body is decoded.
// Metlink's open-data API serves GTFS-RT as JSON; generic GTFS-RT servers
// serve protobuf. Both decode into the same Envelope.
const (
	FormatJSON     = "json"
	FormatProtobuf = "protobuf"
)

// Client fetches the vehicle positions feed. One GET per call, no retries,
// no timeout beyond the transport defaults; the invoking scheduler owns the
// deadline.
type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
	format     string
}

// NewClient creates a feed client for the given endpoint. An empty format
// means JSON.
func NewClient(url, apiKey, format string) *Client {
	if format == "" {
		format = FormatJSON
	}
	return &Client{
		httpClient: &http.Client{},
		url:        url,
		apiKey:     apiKey,
		format:     format,
	}
}

// Fetch performs a single authenticated GET against the feed endpoint and
// returns the decoded envelope. Every failure mode comes back as an
// *UpstreamError.
func (c *Client) Fetch(ctx context.Context) (*Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &UpstreamError{Reason: "request", Err: err}
	}
	if c.format == FormatProtobuf {
		req.Header.Set("accept", "application/x-protobuf")
	} else {
		req.Header.Set("accept", "application/json")
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Reason: "request", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Reason: "status", Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Reason: "request", Err: err}
	}

	if c.format == FormatProtobuf {
		return DecodeProtobuf(body)
	}
	return DecodeJSON(body)
}
