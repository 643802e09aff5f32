// Package schemas provides JSON Schema validation for semi-trusted model output.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed enrichment.schema.json
var enrichmentSchema string

// InvalidEnrichmentFields validates a parsed model response against the
// enrichment response schema and returns the top-level fields that violate
// it. The model is treated as an untrusted peer: a field of the wrong type is
// reported here so the decoder can reset it to its default instead of passing
// it through. Missing fields are not violations; the schema has no required
// properties.
func InvalidEnrichmentFields(doc map[string]any) (map[string]bool, error) {
	schemaLoader := gojsonschema.NewStringLoader(enrichmentSchema)
	docLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	invalid := make(map[string]bool)
	for _, violation := range result.Errors() {
		field := violation.Field()
		if field == "(root)" {
			continue
		}
		// An item violation like "whatTheyDo.1" taints the whole field.
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[:idx]
		}
		invalid[field] = true
	}
	return invalid, nil
}
