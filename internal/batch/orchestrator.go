// Package batch coordinates concurrent per-document extraction calls:
// fan-out one gateway call per document, wait for every call to settle,
// and partition the results. One failing document never aborts its
// siblings (all-settle, not fail-fast).
package batch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"cropai/internal/domain"
	"cropai/internal/port"
)

// Job is one encoded document entering the batch.
type Job struct {
	FileName string
	DataURI  string
	Preview  string
	Kind     domain.RecordKind
}

// Success pairs one extracted payload with its originating document.
// DraftID is unique within the batch so the result can be edited and
// removed independently during review.
type Success struct {
	DraftID  uuid.UUID
	Data     domain.RecordData
	Preview  string
	FileName string
}

// Failure records why one document's extraction did not produce a payload.
type Failure struct {
	FileName string
	Message  string
}

// Outcome is the settled result of one batch run.
type Outcome struct {
	Successes []Success
	Failures  []Failure
}

// FailureNotice renders the aggregated failure report shown to the user,
// or "" when every document succeeded.
func (o *Outcome) FailureNotice() string {
	if len(o.Failures) == 0 {
		return ""
	}
	msgs := make([]string, len(o.Failures))
	for i, f := range o.Failures {
		msgs[i] = fmt.Sprintf("%s: %s", f.FileName, f.Message)
	}
	return fmt.Sprintf("%d image(s) could not be processed: %s", len(o.Failures), strings.Join(msgs, "; "))
}

// Orchestrator fans out extraction gateway calls for a batch of documents.
type Orchestrator struct {
	extractor port.DocumentExtractor
}

// New creates an Orchestrator backed by the given extraction gateway.
func New(extractor port.DocumentExtractor) *Orchestrator {
	return &Orchestrator{extractor: extractor}
}

// result is one settled slot. Either data or errMsg is set.
type result struct {
	data   *domain.RecordData
	errMsg string
}

// Run issues one extraction call per job concurrently, with no concurrency
// cap, and blocks until every call has settled. Each result lands in a
// fixed slot matched to its job by index; settlement order never matters.
// Per-document errors are captured as data, so Run never fails as a whole.
func (o *Orchestrator) Run(ctx context.Context, jobs []Job, language string) Outcome {
	slots := make([]result, len(jobs))

	var wg sync.WaitGroup
	for i := range jobs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := o.extractor.Extract(ctx, port.ExtractInput{
				DataURI:  jobs[i].DataURI,
				Kind:     jobs[i].Kind,
				Language: language,
			})
			if err != nil {
				slots[i] = result{errMsg: err.Error()}
				return
			}
			slots[i] = result{data: &out.Data}
		}(i)
	}
	wg.Wait()

	var outcome Outcome
	for i, slot := range slots {
		if slot.data != nil {
			outcome.Successes = append(outcome.Successes, Success{
				DraftID:  uuid.New(),
				Data:     *slot.data,
				Preview:  jobs[i].Preview,
				FileName: jobs[i].FileName,
			})
			continue
		}
		outcome.Failures = append(outcome.Failures, Failure{
			FileName: jobs[i].FileName,
			Message:  slot.errMsg,
		})
	}

	if len(outcome.Failures) > 0 {
		log.Printf("batch.Run: %d/%d document(s) failed extraction", len(outcome.Failures), len(jobs))
	}
	return outcome
}
