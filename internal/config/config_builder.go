// SPDX-License-Identifier: GPL-2.0-or-later

package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// configBuilder accumulates configuration sources by merging each one into
// the running result as it is added. Earlier sources win: mergo only fills
// fields the result still has at their zero value, which gives environment
// variables priority over flags and flags priority over the JSON file.
type configBuilder struct {
	cfg *StructuredConfig
	err error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{cfg: new(StructuredConfig)}
}

// merge folds next into the running result. Once an error is recorded the
// builder ignores further sources.
func (b *configBuilder) merge(next *StructuredConfig, source string) *configBuilder {
	if b.err != nil {
		return b
	}
	if err := mergo.Merge(b.cfg, next); err != nil {
		b.err = fmt.Errorf("error merging %s configs: %w", source, err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	if b.err != nil {
		return b
	}

	envCfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		b.err = fmt.Errorf("error reading environment configuration: %w", err)
		return b
	}

	return b.merge(&envCfg, "environment")
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.merge(ParseFlags(), "flag")
}

// withJSON loads the optional JSON file. Its path can only come from the
// sources merged before it, so it must be added last.
func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil || b.cfg.JSONFilePath == "" {
		return b
	}

	jsonCfg, err := parseJSON(b.cfg.JSONFilePath)
	if err != nil {
		b.err = err
		return b
	}

	return b.merge(jsonCfg, "json file")
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	return b.cfg, b.cfg.validate()
}
