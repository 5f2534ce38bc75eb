// SPDX-License-Identifier: GPL-2.0-or-later

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg := parseFlags([]string{
		"-d", "/var/lib/limdberator/limdberator.sqlite",
		"-l", "[::1]:8080",
		"-l", "127.0.0.1:8080",
		"-request-timeout", "45s",
		"-maintenance-interval", "30m",
		"-log-level", "warn",
		"-c", "/etc/limdberator/config.json",
	})

	require.NotNil(t, cfg)
	assert.Equal(t, "/var/lib/limdberator/limdberator.sqlite", cfg.Storage.DB.Path)
	assert.Equal(t, []string{"[::1]:8080", "127.0.0.1:8080"}, cfg.Server.Listen)
	assert.False(t, cfg.Server.Systemd)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Workers.MaintenanceInterval)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "/etc/limdberator/config.json", cfg.JSONFilePath)
}

func TestParseFlags_Aliases(t *testing.T) {
	cfg := parseFlags([]string{
		"-database", "/tmp/db.sqlite",
		"-listen", "/run/limdberator/http.sock",
		"-config", "/tmp/config.json",
	})

	assert.Equal(t, "/tmp/db.sqlite", cfg.Storage.DB.Path)
	assert.Equal(t, []string{"/run/limdberator/http.sock"}, cfg.Server.Listen)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
}

func TestParseFlags_SystemdAndModuleStyle(t *testing.T) {
	cfg := parseFlags([]string{
		"-d", "/tmp/db.sqlite",
		"-systemd",
	})
	assert.True(t, cfg.Server.Systemd)
	assert.Empty(t, cfg.Server.Listen)

	cfg = parseFlags([]string{
		"-d", "/tmp/db.sqlite",
		"-address", "::1",
		"-port", "8080",
	})
	assert.Equal(t, "::1", cfg.Server.Address)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg := parseFlags(nil)

	require.NotNil(t, cfg)
	assert.Empty(t, cfg.Storage.DB.Path)
	assert.Empty(t, cfg.Server.Listen)
	assert.False(t, cfg.Server.Systemd)
}

func TestListenList_StringAndSet(t *testing.T) {
	var l listenList

	require.NoError(t, l.Set("127.0.0.1:8080"))
	require.NoError(t, l.Set("/tmp/http.sock"))

	assert.Equal(t, "127.0.0.1:8080,/tmp/http.sock", l.String())
}
