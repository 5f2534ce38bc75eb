// SPDX-License-Identifier: GPL-2.0-or-later

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/schnusch/limdberator/internal/logger"
)

func (h *Handler) getTitle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	titleID := chi.URLParam(r, "id")

	title, err := h.services.Catalog.GetTitle(r.Context(), titleID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTitle").Str("title_id", titleID).Msg("error getting title")
		http.Error(w, "error getting title", statusFromError(err))
		return
	}

	writeJSON(w, title, log)
}

func (h *Handler) getPerson(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	personID := chi.URLParam(r, "id")

	person, err := h.services.Catalog.GetPerson(r.Context(), personID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPerson").Str("person_id", personID).Msg("error getting person")
		http.Error(w, "error getting person", statusFromError(err))
		return
	}

	writeJSON(w, person, log)
}

func writeJSON(w http.ResponseWriter, v any, log *logger.Logger) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Msg("error encoding response body")
	}
}
