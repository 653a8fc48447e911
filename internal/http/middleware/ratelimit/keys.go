package ratelimit

import (
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// KeyFunc derives the bucket key of a request.
type KeyFunc func(r *http.Request) string

// ByClientIP keys requests by the client address only.
func ByClientIP(r *http.Request) string {
	return clientIP(r)
}

// ByClientAndParam keys requests by client address and a chi URL parameter,
// so one client refreshing many checkouts does not starve a single checkout.
// Falls back to the client address when the parameter is absent.
func ByClientAndParam(param string) KeyFunc {
	return func(r *http.Request) string {
		ip := clientIP(r)
		v := strings.TrimSpace(chi.URLParam(r, param))
		if v == "" {
			return ip
		}
		return ip + "|" + strings.ToLower(v)
	}
}

// clientIP expects chi's RealIP middleware to have normalized RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
