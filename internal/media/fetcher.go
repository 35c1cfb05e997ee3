package media

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrMediaFetchFailure is returned when an animation payload cannot be
// retrieved or is not JSON. Callers absorb it into a fallback.
var ErrMediaFetchFailure = errors.New("media fetch failed")

// Animation payloads are small; anything past this is not an animation.
const maxPayloadBytes = 8 << 20

// Fetcher retrieves the payload behind an animation locator.
type Fetcher interface {
	Fetch(ctx context.Context, locator string) (json.RawMessage, error)
}

// HTTPFetcher fetches animation payloads over HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher uses http.DefaultClient when client is nil.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{client: client}
}

// Fetch GETs locator and returns the body if it is valid JSON.
func (f *HTTPFetcher) Fetch(ctx context.Context, locator string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaFetchFailure, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s: status %d", ErrMediaFetchFailure, locator, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrMediaFetchFailure, locator, err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s: payload is not JSON", ErrMediaFetchFailure, locator)
	}
	return json.RawMessage(body), nil
}
