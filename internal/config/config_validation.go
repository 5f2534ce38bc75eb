// SPDX-License-Identifier: GPL-2.0-or-later

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Rules:
//   - the SQLite database path is mandatory;
//   - the server needs exactly one listen source: systemd socket activation,
//     explicit listen specifications, or a module-style address/port pair;
//   - every explicit listen specification must parse.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.Path == "" {
		return ErrNoDatabasePath
	}

	hasExplicitListen := len(cfg.Server.Listen) > 0 || cfg.Server.Address != "" || cfg.Server.Port != 0

	if cfg.Server.Systemd && hasExplicitListen {
		return ErrConflictingListenConfigs
	}
	if !cfg.Server.Systemd && !hasExplicitListen {
		return ErrNoListenConfigured
	}

	for _, spec := range cfg.Server.Listen {
		if _, err := ParseListenAddress(spec); err != nil {
			return err
		}
	}

	return nil
}
