// SPDX-License-Identifier: GPL-2.0-or-later

package http

import (
	"net/http"

	"github.com/schnusch/limdberator/internal/logger"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.PingContext(r.Context()); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("database ping failed")
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}
