// SPDX-License-Identifier: GPL-2.0-or-later

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the
// ingest and catalog APIs. Cross-cutting concerns such as request tracing,
// access logging, and latency metrics are handled in this package before
// requests are delegated to the service layer.
package http
