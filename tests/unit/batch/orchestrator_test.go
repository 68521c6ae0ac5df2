package batch_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cropai/internal/batch"
	"cropai/internal/domain"
	"cropai/internal/port"
	"cropai/mocks"
)

func jobsFixture(n int) []batch.Job {
	jobs := make([]batch.Job, n)
	for i := range jobs {
		jobs[i] = batch.Job{
			FileName: fmt.Sprintf("doc-%d.png", i+1),
			DataURI:  fmt.Sprintf("data:image/png;base64,cGF5bG9hZC0%d", i+1),
			Preview:  fmt.Sprintf("preview-%d", i+1),
			Kind:     domain.RecordKindSale,
		}
	}
	return jobs
}

func matchURI(uri string) interface{} {
	return mock.MatchedBy(func(in port.ExtractInput) bool { return in.DataURI == uri })
}

func TestOrchestrator_Run_AllSucceed(t *testing.T) {
	extractor := new(mocks.MockDocumentExtractor)
	jobs := jobsFixture(3)
	for i, job := range jobs {
		extractor.On("Extract", mock.Anything, matchURI(job.DataURI)).
			Return(&port.ExtractOutput{Data: domain.RecordData{Vendor: fmt.Sprintf("vendor-%d", i+1)}}, nil)
	}

	outcome := batch.New(extractor).Run(context.Background(), jobs, "en")

	require.Len(t, outcome.Successes, 3)
	assert.Empty(t, outcome.Failures)
	assert.Empty(t, outcome.FailureNotice())
	extractor.AssertExpectations(t)
}

func TestOrchestrator_Run_PartialFailure(t *testing.T) {
	extractor := new(mocks.MockDocumentExtractor)
	jobs := jobsFixture(3)
	extractor.On("Extract", mock.Anything, matchURI(jobs[0].DataURI)).
		Return(&port.ExtractOutput{Data: domain.RecordData{Vendor: "one"}}, nil)
	extractor.On("Extract", mock.Anything, matchURI(jobs[1].DataURI)).
		Return(nil, errors.New("gemini API error (status 500)"))
	extractor.On("Extract", mock.Anything, matchURI(jobs[2].DataURI)).
		Return(&port.ExtractOutput{Data: domain.RecordData{Vendor: "three"}}, nil)

	outcome := batch.New(extractor).Run(context.Background(), jobs, "en")

	require.Len(t, outcome.Successes, 2)
	require.Len(t, outcome.Failures, 1)

	// Results stay paired with their source document, not settlement order.
	assert.Equal(t, "doc-1.png", outcome.Successes[0].FileName)
	assert.Equal(t, "preview-1", outcome.Successes[0].Preview)
	assert.Equal(t, "doc-3.png", outcome.Successes[1].FileName)
	assert.Equal(t, "doc-2.png", outcome.Failures[0].FileName)
	assert.Contains(t, outcome.Failures[0].Message, "status 500")

	assert.Contains(t, outcome.FailureNotice(), "1 image(s)")
	assert.Contains(t, outcome.FailureNotice(), "doc-2.png")
}

func TestOrchestrator_Run_AllFail(t *testing.T) {
	extractor := new(mocks.MockDocumentExtractor)
	jobs := jobsFixture(2)
	extractor.On("Extract", mock.Anything, mock.Anything).
		Return(nil, errors.New("network unreachable"))

	outcome := batch.New(extractor).Run(context.Background(), jobs, "en")

	assert.Empty(t, outcome.Successes)
	require.Len(t, outcome.Failures, 2)
	assert.Contains(t, outcome.FailureNotice(), "2 image(s)")
}

func TestOrchestrator_Run_EmptyInput(t *testing.T) {
	extractor := new(mocks.MockDocumentExtractor)

	outcome := batch.New(extractor).Run(context.Background(), nil, "en")

	assert.Empty(t, outcome.Successes)
	assert.Empty(t, outcome.Failures)
	assert.Empty(t, outcome.FailureNotice())
	extractor.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestOrchestrator_Run_DraftIDsUnique(t *testing.T) {
	extractor := new(mocks.MockDocumentExtractor)
	jobs := jobsFixture(5)
	extractor.On("Extract", mock.Anything, mock.Anything).
		Return(&port.ExtractOutput{Data: domain.RecordData{}}, nil)

	outcome := batch.New(extractor).Run(context.Background(), jobs, "en")

	require.Len(t, outcome.Successes, 5)
	seen := make(map[uuid.UUID]bool)
	for _, s := range outcome.Successes {
		assert.NotEqual(t, uuid.Nil, s.DraftID)
		assert.False(t, seen[s.DraftID], "draft id reused")
		seen[s.DraftID] = true
	}
}

func TestOrchestrator_Run_PassesLanguage(t *testing.T) {
	extractor := new(mocks.MockDocumentExtractor)
	jobs := jobsFixture(1)
	extractor.On("Extract", mock.Anything, mock.MatchedBy(func(in port.ExtractInput) bool {
		return in.Language == "sw" && in.Kind == domain.RecordKindSale
	})).Return(&port.ExtractOutput{Data: domain.RecordData{}}, nil)

	outcome := batch.New(extractor).Run(context.Background(), jobs, "sw")

	require.Len(t, outcome.Successes, 1)
	extractor.AssertExpectations(t)
}
