// SPDX-License-Identifier: GPL-2.0-or-later

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListenAddress(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		expected ListenAddress
		wantErr  bool
	}{
		{
			name:     "host and port",
			arg:      "localhost:8080",
			expected: ListenAddress{Host: "localhost", Port: 8080},
		},
		{
			name:     "ipv4 and port",
			arg:      "127.0.0.1:9090",
			expected: ListenAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:     "bracketed ipv6 and port",
			arg:      "[::1]:8080",
			expected: ListenAddress{Host: "::1", Port: 8080},
		},
		{
			name:     "empty host with port",
			arg:      ":8080",
			expected: ListenAddress{Host: "", Port: 8080},
		},
		{
			name:     "absolute socket path",
			arg:      "/run/limdberator/http.sock",
			expected: ListenAddress{Path: "/run/limdberator/http.sock"},
		},
		{
			name:     "relative socket path",
			arg:      "./limdberator.sock",
			expected: ListenAddress{Path: "./limdberator.sock"},
		},
		{
			name:     "socket path with colon still parses as path",
			arg:      "/tmp/odd:name.sock",
			expected: ListenAddress{Path: "/tmp/odd:name.sock"},
		},
		{
			name:    "bare hostname without port",
			arg:     "localhost",
			wantErr: true,
		},
		{
			name:    "non-numeric port",
			arg:     "localhost:http",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseListenAddress(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidListenAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestListenAddress_String_RoundTrip(t *testing.T) {
	specs := []string{
		"localhost:8080",
		"[::1]:8080",
		"/run/limdberator/http.sock",
	}

	for _, spec := range specs {
		addr, err := ParseListenAddress(spec)
		require.NoError(t, err)
		assert.Equal(t, spec, addr.String())
	}
}

func TestListenSpecs(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		port     int
		expected []string
	}{
		{
			name:     "empty address expands to both loopbacks",
			address:  "",
			port:     8080,
			expected: []string{"[::1]:8080", "127.0.0.1:8080"},
		},
		{
			name:     "socket path is passed through and ignores port",
			address:  "/run/limdberator/http.sock",
			port:     8080,
			expected: []string{"/run/limdberator/http.sock"},
		},
		{
			name:     "ipv6 address is bracketed",
			address:  "::1",
			port:     8080,
			expected: []string{"[::1]:8080"},
		},
		{
			name:     "plain host",
			address:  "127.0.0.1",
			port:     3000,
			expected: []string{"127.0.0.1:3000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ListenSpecs(tt.address, tt.port))
		})
	}
}

func TestServer_ListenSpecs_PrefersExplicitList(t *testing.T) {
	s := Server{
		Listen:  []string{"0.0.0.0:9999"},
		Address: "127.0.0.1",
		Port:    8080,
	}
	assert.Equal(t, []string{"0.0.0.0:9999"}, s.ListenSpecs())

	s.Listen = nil
	assert.Equal(t, []string{"127.0.0.1:8080"}, s.ListenSpecs())
}

func TestReverseProxyTarget(t *testing.T) {
	tests := []struct {
		name     string
		specs    []string
		expected string
	}{
		{
			name:     "unix socket target",
			specs:    []string{"/run/limdberator/http.sock"},
			expected: "unix:/run/limdberator/http.sock:",
		},
		{
			name:     "tcp target",
			specs:    []string{"[::1]:8080", "127.0.0.1:8080"},
			expected: "[::1]:8080",
		},
		{
			name:     "no specs",
			specs:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReverseProxyTarget(tt.specs))
		})
	}
}
