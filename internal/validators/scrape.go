// SPDX-License-Identifier: GPL-2.0-or-later

package validators

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/schnusch/limdberator/models"
)

//go:embed scrape_result.schema.json
var scrapeResultSchema []byte

const schemaResourceName = "scrape_result.schema.json"

// scrapeValidator is the JSON-Schema-backed implementation of
// [ScrapeValidator]. The schema is embedded at build time and compiled once
// at construction.
type scrapeValidator struct {
	schema *jsonschema.Schema
}

// NewScrapeValidator compiles the embedded scrape-result schema and returns
// a ready-to-use validator. Compilation can only fail if the embedded schema
// itself is broken, so an error here is a programming mistake.
func NewScrapeValidator() (ScrapeValidator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(scrapeResultSchema))
	if err != nil {
		return nil, fmt.Errorf("error parsing embedded scrape schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResourceName, doc); err != nil {
		return nil, fmt.Errorf("error registering scrape schema: %w", err)
	}

	schema, err := compiler.Compile(schemaResourceName)
	if err != nil {
		return nil, fmt.Errorf("error compiling scrape schema: %w", err)
	}

	return &scrapeValidator{schema: schema}, nil
}

// Validate checks raw against the scrape-result schema and decodes it.
//
// Returns [ErrMalformedJSON] when the body is not JSON, [ErrSchemaViolation]
// (wrapping the validator's detailed message) when it is JSON of the wrong
// shape.
func (v *scrapeValidator) Validate(raw []byte) (models.ScrapeResult, error) {
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return models.ScrapeResult{}, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}

	if err := v.schema.Validate(instance); err != nil {
		return models.ScrapeResult{}, fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}

	var result models.ScrapeResult
	if err := json.Unmarshal(raw, &result); err != nil {
		// the schema guarantees the shape, so a decode failure here means
		// the schema and the Go types have drifted apart
		return models.ScrapeResult{}, fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}

	return result, nil
}
