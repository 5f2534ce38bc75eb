// SPDX-License-Identifier: GPL-2.0-or-later

package http

import (
	"io"
	"net/http"

	"github.com/schnusch/limdberator/internal/logger"
)

// maxScrapeBodySize bounds the accepted request body. Scrapes of even the
// longest filmographies stay well below this.
const maxScrapeBodySize = 8 << 20

func (h *Handler) ingest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxScrapeBodySize))
	if err != nil {
		log.Err(err).Str("func", "*Handler.ingest").Msg("error reading request body")
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}

	result, err := h.validator.Validate(body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.ingest").Msg("scrape result rejected")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if err := h.services.Ingest.StoreScrapeResult(r.Context(), result); err != nil {
		log.Err(err).Str("func", "*Handler.ingest").Msg("error storing scrape result")
		http.Error(w, "error storing scrape result", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
