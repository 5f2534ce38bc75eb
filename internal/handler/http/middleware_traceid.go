// SPDX-License-Identifier: GPL-2.0-or-later

package http

import (
	"net/http"

	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags every request with a trace id, reusing the caller's when
// the header is present and minting one otherwise. The id is stamped on the
// request-scoped logger and echoed in the response header, so one grep
// through the journal follows a scrape end to end.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		w.Header().Set(traceIDHeader, traceID)

		reqLogger := h.logger.With().Str("trace_id", traceID).Logger()
		next.ServeHTTP(w, r.WithContext(reqLogger.WithContext(r.Context())))
	})
}
