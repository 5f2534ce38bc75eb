// SPDX-License-Identifier: GPL-2.0-or-later

package http

import (
	"net/http"
	"strconv"
	"time"
)

func (h *Handler) withRequestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		mw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(mw, r)

		status := mw.status
		if status == 0 {
			status = http.StatusOK
		}

		h.metrics.RequestDuration.
			WithLabelValues(r.Method, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}
