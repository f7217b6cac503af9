package converter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/theoremus-urban-solutions/metlink-to-cot/cot"
)

// Submitter is the host collaborator that receives the finished feature
// collection. The pipeline calls it exactly once per invocation, empty
// collections included.
type Submitter interface {
	Submit(ctx context.Context, fc cot.FeatureCollection) error
}

// HTTPSubmitter posts the collection as JSON to the map backend.
type HTTPSubmitter struct {
	httpClient *http.Client
	url        string
}

// NewHTTPSubmitter creates a submitter for the given endpoint.
func NewHTTPSubmitter(url string) *HTTPSubmitter {
	return &HTTPSubmitter{httpClient: &http.Client{}, url: url}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, fc cot.FeatureCollection) error {
	body, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("encode feature collection: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("submit to %s: %w", s.url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("submit to %s: HTTP %d", s.url, resp.StatusCode)
	}
	return nil
}

// WriterSubmitter prints the collection instead of sending it; used by the
// CLI dry-run mode.
type WriterSubmitter struct {
	W io.Writer
}

func (s WriterSubmitter) Submit(_ context.Context, fc cot.FeatureCollection) error {
	enc := json.NewEncoder(s.W)
	enc.SetIndent("", "  ")
	return enc.Encode(fc)
}
