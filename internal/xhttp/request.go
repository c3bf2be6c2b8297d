package xhttp

import (
	"errors"
	"io"
	"net"
	"net/http"

	go_json "github.com/goccy/go-json"
)

// ReadJSON decodes the request body into dst. An empty body is not an
// error; dst is left untouched so callers can apply defaults.
func ReadJSON(r *http.Request, dst any) error {
	err := go_json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func GetRequestIP(r *http.Request) string {
	if xff := r.Header.Get(XForwardedFor); xff != "" {
		if ip, _, err := net.SplitHostPort(xff); err == nil {
			return ip
		}
		return xff
	}
	if ip, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return ip
	}
	return r.RemoteAddr
}
