// SPDX-License-Identifier: GPL-2.0-or-later

package validators

import "errors"

// Sentinel errors returned by [ScrapeValidator.Validate]. Callers can match
// against them with [errors.Is] to distinguish client mistakes from internal
// failures.
var (
	// ErrMalformedJSON is returned when the request body is not valid JSON
	// at all.
	ErrMalformedJSON = errors.New("malformed JSON")

	// ErrSchemaViolation is returned when the payload is valid JSON but does
	// not match the scrape-result schema.
	ErrSchemaViolation = errors.New("payload does not match the scrape schema")
)
