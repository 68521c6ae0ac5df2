package port

import (
	"context"

	"cropai/internal/domain"
)

// ExtractInput carries one encoded document into the extraction gateway.
// The document must already be size-validated by the caller.
type ExtractInput struct {
	DataURI  string
	Kind     domain.RecordKind
	Language string
}

// ExtractOutput is the structured result of one gateway call.
type ExtractOutput struct {
	Data      domain.RecordData
	ModelUsed string
}

// DocumentExtractor abstracts the external text-completion service. One
// outbound call per invocation; no internal retry.
type DocumentExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (*ExtractOutput, error)
}
