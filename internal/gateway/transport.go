package gateway

import "net/http"

// RapidAPITransport is an http.RoundTripper that adds the RapidAPI
// credentials to every request.
type RapidAPITransport struct {
	Key  string
	Host string

	// Base is the base RoundTripper used to make the actual HTTP requests.
	// If nil, http.DefaultTransport is used.
	Base http.RoundTripper
}

func (t *RapidAPITransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	// RoundTrippers must not modify the caller's request.
	req2 := req.Clone(req.Context())
	if t.Key != "" {
		req2.Header.Set("X-RapidAPI-Key", t.Key)
	}
	if t.Host != "" {
		req2.Header.Set("X-RapidAPI-Host", t.Host)
	}
	return base.RoundTrip(req2)
}
