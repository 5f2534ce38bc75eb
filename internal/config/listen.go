// SPDX-License-Identifier: GPL-2.0-or-later

package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ListenAddress is one parsed listen specification. Either Path is non-empty
// (a Unix domain socket) or Host/Port are set (a TCP endpoint).
type ListenAddress struct {
	Path string
	Host string
	Port int
}

// IsUnix reports whether the address is a filesystem socket path.
func (a ListenAddress) IsUnix() bool {
	return a.Path != ""
}

// String renders the address back into listen-specification form:
// the socket path, "[v6addr]:port" for IPv6 hosts, or "host:port".
func (a ListenAddress) String() string {
	if a.IsUnix() {
		return a.Path
	}
	if isIPv6Host(a.Host) {
		return "[" + a.Host + "]:" + strconv.Itoa(a.Port)
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// listenAddressRe recognises the three accepted endpoint shapes: anything
// with a "/" is a socket path, "[v6addr]:port" is a bracketed IPv6 endpoint,
// and "host:port" is a plain TCP endpoint.
var listenAddressRe = regexp.MustCompile(`^(?:(?P<socket>.*/.*)|(?:(?:\[(?P<ipv6>.*)\]|(?P<host>.*)):(?P<port>\d+)))$`)

// ParseListenAddress parses one listen specification.
//
// Values containing "/" are interpreted as filesystem socket paths. TCP
// endpoints require a ":port" suffix; IPv6 hosts must be bracketed.
func ParseListenAddress(arg string) (ListenAddress, error) {
	m := listenAddressRe.FindStringSubmatch(arg)
	if m == nil {
		return ListenAddress{}, fmt.Errorf("%w: %q", ErrInvalidListenAddress, arg)
	}

	groups := make(map[string]string, 4)
	for i, name := range listenAddressRe.SubexpNames() {
		if name != "" {
			groups[name] = m[i]
		}
	}

	if groups["port"] != "" {
		port, err := strconv.Atoi(groups["port"])
		if err != nil {
			return ListenAddress{}, fmt.Errorf("%w: %q", ErrInvalidListenAddress, arg)
		}
		host := groups["host"]
		if groups["ipv6"] != "" {
			host = groups["ipv6"]
		}
		return ListenAddress{Host: host, Port: port}, nil
	}

	return ListenAddress{Path: groups["socket"]}, nil
}

// ListenSpecs expands a module-style address/port pair into the set of
// listen specifications:
//
//   - address containing "/" → exactly that path (a filesystem socket);
//   - address containing ":" → "[address]:port" (an IPv6 address);
//   - any other non-empty address → "address:port";
//   - empty address → both loopback endpoints, "[::1]:port" and
//     "127.0.0.1:port".
func ListenSpecs(address string, port int) []string {
	switch {
	case address == "":
		return []string{
			fmt.Sprintf("[::1]:%d", port),
			fmt.Sprintf("127.0.0.1:%d", port),
		}
	case strings.Contains(address, "/"):
		return []string{address}
	case strings.Contains(address, ":"):
		return []string{fmt.Sprintf("[%s]:%d", address, port)}
	default:
		return []string{fmt.Sprintf("%s:%d", address, port)}
	}
}

// ReverseProxyTarget derives the upstream target a fronting reverse proxy
// should forward to, given the server's listen specifications: "unix:<path>:"
// when the first specification is a filesystem socket, otherwise the first
// specification itself. Returns "" when no specifications are configured.
func ReverseProxyTarget(specs []string) string {
	if len(specs) == 0 {
		return ""
	}
	if strings.Contains(specs[0], "/") {
		return "unix:" + specs[0] + ":"
	}
	return specs[0]
}

// ListenSpecs resolves the server's effective listen specifications:
// the explicit Listen list when present, otherwise the module-style
// expansion of Address and Port.
func (s Server) ListenSpecs() []string {
	if len(s.Listen) > 0 {
		return s.Listen
	}
	return ListenSpecs(s.Address, s.Port)
}

func isIPv6Host(host string) bool {
	return strings.Contains(host, ":")
}
