// SPDX-License-Identifier: GPL-2.0-or-later

package service

import "errors"

// ErrInvalidScrapePayload is returned by [IngestService.StoreScrapeResult]
// when the envelope carries neither a title nor a person. The HTTP layer
// validates payloads before calling the service, so hitting this error means
// a caller bypassed validation.
var ErrInvalidScrapePayload = errors.New("invalid scrape payload")
