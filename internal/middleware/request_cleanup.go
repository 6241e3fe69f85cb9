package middleware

import (
	"io"
	"net/http"
)

// the rest of an oversized body is not worth reading, the connection is dropped instead
const maxDrainBytes = 64 << 10

// LimitAndDrainRequest caps the request body at maxBodyBytes (0 means no cap) and, after the
// handler returns, drains and closes whatever it left unread so the connection can be reused.
func LimitAndDrainRequest(maxBodyBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body := r.Body
			if body == nil || body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			if maxBodyBytes > 0 {
				r.Body = http.MaxBytesReader(w, body, maxBodyBytes)
			}
			next.ServeHTTP(w, r)

			_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDrainBytes))
			_ = body.Close()
		})
	}
}
