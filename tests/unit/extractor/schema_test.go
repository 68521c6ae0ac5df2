package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropai/internal/domain"
	"cropai/internal/extractor"
)

func TestValidateOutput_Sale(t *testing.T) {
	raw := []byte(`{"date":"2026-08-12","items":[{"name":"seed","quantity":1,"unit":"bag","total":10}],"total":10,"currency":"KES","vendor":"agrovet"}`)

	assert.NoError(t, extractor.ValidateOutput(domain.RecordKindSale, raw))
}

func TestValidateOutput_Invoice(t *testing.T) {
	raw := []byte(`{"date":"2026-08-12","items":[],"total":0}`)

	assert.NoError(t, extractor.ValidateOutput(domain.RecordKindInvoice, raw))
}

func TestValidateOutput_MissingRequiredField(t *testing.T) {
	raw := []byte(`{"date":"2026-08-12","total":10}`)

	err := extractor.ValidateOutput(domain.RecordKindSale, raw)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sale schema")
}

func TestValidateOutput_ItemMissingUnit(t *testing.T) {
	raw := []byte(`{"date":"2026-08-12","items":[{"name":"seed","quantity":1,"total":10}],"total":10}`)

	assert.Error(t, extractor.ValidateOutput(domain.RecordKindInvoice, raw))
}

func TestValidateOutput_UnknownKind(t *testing.T) {
	err := extractor.ValidateOutput(domain.RecordKind("receipt"), []byte(`{}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no output schema")
}

func TestValidateOutput_NotJSON(t *testing.T) {
	assert.Error(t, extractor.ValidateOutput(domain.RecordKindSale, []byte("sorry")))
}
