package xhttp

import (
	"fmt"
	"net/http"

	"github.com/nutrisync/nutrisync/internal/version"
)

type clientTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*clientTransport)(nil)

func (t *clientTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set(version.Header, version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard client headers.
func NewTransport() http.RoundTripper {
	return &clientTransport{base: http.DefaultTransport}
}
