// SPDX-License-Identifier: GPL-2.0-or-later

package validators

import "github.com/schnusch/limdberator/models"

// ScrapeValidator checks a raw scrape payload against the wire schema and
// decodes it into the typed envelope.
type ScrapeValidator interface {
	Validate(raw []byte) (models.ScrapeResult, error)
}
