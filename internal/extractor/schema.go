package extractor

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"cropai/internal/domain"
)

// Output schema descriptors for the completion service contract. Service
// output failing these is an extraction failure, not a server error.
const (
	lineItemsSchema = `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["name", "quantity", "unit", "total"],
			"properties": {
				"name": {"type": "string"},
				"quantity": {"type": "number"},
				"unit": {"type": "string"},
				"price": {"type": "number"},
				"total": {"type": "number"}
			}
		}
	}`

	salesSchema = `{
		"type": "object",
		"required": ["date", "items", "total"],
		"properties": {
			"date": {"type": "string"},
			"items": ` + lineItemsSchema + `,
			"total": {"type": "number"},
			"currency": {"type": "string"},
			"vendor": {"type": "string"}
		}
	}`

	invoiceSchema = `{
		"type": "object",
		"required": ["date", "items", "total"],
		"properties": {
			"date": {"type": "string"},
			"items": ` + lineItemsSchema + `,
			"total": {"type": "number"}
		}
	}`
)

var compiledSchemas = map[domain.RecordKind]*jsonschema.Schema{
	domain.RecordKindSale:    jsonschema.MustCompileString("sales.json", salesSchema),
	domain.RecordKindInvoice: jsonschema.MustCompileString("invoice.json", invoiceSchema),
}

// ValidateOutput checks raw completion-service output against the schema
// descriptor for the kind.
func ValidateOutput(kind domain.RecordKind, raw []byte) error {
	schema, ok := compiledSchemas[kind]
	if !ok {
		return fmt.Errorf("no output schema for kind %q", kind)
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshaling output: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("output does not match %s schema: %w", kind, err)
	}
	return nil
}
