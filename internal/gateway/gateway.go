// Package gateway translates domain requests into calls against the
// third-party reference and exercise APIs.
package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Error constants for the gateway layer.
var (
	ErrNetworkFailure = GatewayError("network failure") // transport error, non-2xx or unreadable body
	ErrNotFound       = GatewayError("not found")       // successful response with an empty body
)

// GatewayError helps distinguish gateway errors.
type GatewayError string

func (e GatewayError) Error() string {
	return string(e)
}

// Upper bound on a response body we are willing to buffer.
const maxBodyBytes = 16 << 20

// NewHTTPClient builds the outbound client shared by the gateways.
// A zero timeout means requests may wait forever.
func NewHTTPClient(timeout time.Duration, transport http.RoundTripper) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// get performs a GET and returns the body of a 2xx response. Any other
// status is ErrNetworkFailure and the body is not read.
func get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrNetworkFailure, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrNetworkFailure, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrNetworkFailure, url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrNetworkFailure, url, err)
	}
	return body, nil
}
