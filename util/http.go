package util

import (
	"net/http"
)

// HttpError lets a handler panic with a specific status code; the recoverer
// middleware unwraps it. Anything else that escapes a handler is a 500.
type HttpError struct {
	Status int
	Inner  error
}

func (e HttpError) Error() string {
	return e.Inner.Error()
}

func UserIp(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}
