// SPDX-License-Identifier: GPL-2.0-or-later

package http

import (
	"net/http"
	"time"

	"github.com/schnusch/limdberator/internal/logger"
)

// withLogging writes one access-log line per request, carrying the trace id
// fields the upstream middleware put on the context logger.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			// nothing was written, net/http answers 200
			status = http.StatusOK
		}

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}
