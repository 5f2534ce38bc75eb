// SPDX-License-Identifier: GPL-2.0-or-later

package http

import (
	"errors"
	"net/http"

	"github.com/schnusch/limdberator/internal/service"
	"github.com/schnusch/limdberator/internal/store"
	"github.com/schnusch/limdberator/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrMalformedJSON:   http.StatusBadRequest,
	validators.ErrSchemaViolation: http.StatusBadRequest,

	service.ErrInvalidScrapePayload: http.StatusBadRequest,

	store.ErrTitleNotFound:  http.StatusNotFound,
	store.ErrPersonNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
