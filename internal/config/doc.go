// SPDX-License-Identifier: GPL-2.0-or-later

// Package config provides configuration loading, merging, and validation
// facilities for the limdberator server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. The package also owns the
// listen-endpoint grammar: explicit listen specifications ("host:port",
// "[v6]:port", or a filesystem socket path), the address/port expansion used
// by deployment modules, and the systemd socket-activation switch.
package config
