package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropai/internal/domain"
)

func TestDataURI_RoundTrip(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0xff}

	uri := domain.EncodeDataURI("image/png", payload)
	contentType, data, err := domain.DecodeDataURI(uri)

	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, payload, data)
}

func TestDecodeDataURI_NotADataURI(t *testing.T) {
	_, _, err := domain.DecodeDataURI("https://example.com/image.png")

	assert.ErrorContains(t, err, "not a data URI")
}

func TestDecodeDataURI_MissingPayload(t *testing.T) {
	_, _, err := domain.DecodeDataURI("data:image/png;base64")

	assert.ErrorContains(t, err, "missing payload")
}

func TestDecodeDataURI_NotBase64Form(t *testing.T) {
	_, _, err := domain.DecodeDataURI("data:text/plain,hello")

	assert.ErrorContains(t, err, "not base64 encoded")
}

func TestDecodeDataURI_CorruptPayload(t *testing.T) {
	_, _, err := domain.DecodeDataURI("data:image/png;base64,!!!")

	assert.ErrorContains(t, err, "decoding data URI payload")
}
