package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"cropai/internal/batch"
	"cropai/internal/config"
	"cropai/internal/domain"
	"cropai/internal/port"
	"cropai/internal/review"
)

// UploadFile is one user-selected file entering a batch.
type UploadFile struct {
	Name string
	Size int64
	Body io.Reader
}

// StartBatchInput is the DTO for starting a batch extraction.
type StartBatchInput struct {
	Kind  domain.RecordKind
	Files []UploadFile
}

// CommitResult reports the outcome of committing a review session.
type CommitResult struct {
	Saved int `json:"saved"`
}

// ExtractionService drives one batch session through its lifecycle:
// upload validation, concurrent extraction, review staging, and the
// commit or cancel that ends it.
type ExtractionService interface {
	StartBatch(ctx context.Context, input StartBatchInput) (*review.Session, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*review.Session, error)
	UpdateDraft(ctx context.Context, sessionID, draftID uuid.UUID, data domain.RecordData) (*review.Session, error)
	RemoveDraft(ctx context.Context, sessionID, draftID uuid.UUID) (*review.Session, error)
	Commit(ctx context.Context, sessionID uuid.UUID) (*CommitResult, error)
	Cancel(ctx context.Context, sessionID uuid.UUID) error
}

type extractionService struct {
	profileRepo  port.ProfileRepository
	recordRepo   port.RecordRepository
	orchestrator *batch.Orchestrator
	sessions     *review.Store
	uploadCfg    *config.UploadConfig
}

// NewExtractionService creates a new ExtractionService implementation.
func NewExtractionService(
	profileRepo port.ProfileRepository,
	recordRepo port.RecordRepository,
	orchestrator *batch.Orchestrator,
	sessions *review.Store,
	uploadCfg *config.UploadConfig,
) ExtractionService {
	return &extractionService{
		profileRepo:  profileRepo,
		recordRepo:   recordRepo,
		orchestrator: orchestrator,
		sessions:     sessions,
		uploadCfg:    uploadCfg,
	}
}

func (s *extractionService) StartBatch(ctx context.Context, input StartBatchInput) (*review.Session, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !profile.Role.CanAccess(input.Kind) {
		return nil, domain.ErrRoleForbidden
	}

	// Per-file validation happens before any network call. Rejected files
	// become warnings and never abort the rest of the batch.
	jobs, warnings, err := s.prepareJobs(input)
	if err != nil {
		return nil, err
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w (no valid files in batch)", domain.ErrNothingExtracted)
	}

	log.Printf("extractionService.StartBatch: extracting %d %s document(s)", len(jobs), input.Kind)
	outcome := s.orchestrator.Run(ctx, jobs, profile.Language)

	// The review surface only opens when at least one extraction succeeded.
	if len(outcome.Successes) == 0 {
		if notice := outcome.FailureNotice(); notice != "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrNothingExtracted, notice)
		}
		return nil, domain.ErrNothingExtracted
	}

	sess := &review.Session{
		ID:            uuid.New(),
		Kind:          input.Kind,
		Drafts:        make([]domain.DraftRecord, 0, len(outcome.Successes)),
		Warnings:      warnings,
		FailureNotice: outcome.FailureNotice(),
		CreatedAt:     time.Now().UTC(),
	}
	for _, success := range outcome.Successes {
		sess.Drafts = append(sess.Drafts, domain.DraftRecord{
			ID:       success.DraftID,
			Kind:     input.Kind,
			Data:     success.Data,
			Preview:  success.Preview,
			FileName: success.FileName,
		})
	}
	s.sessions.Put(sess)

	return s.sessions.Get(sess.ID)
}

// prepareJobs size-checks and encodes each file. Oversized or non-image
// files are skipped with a warning; a read failure aborts the request.
func (s *extractionService) prepareJobs(input StartBatchInput) ([]batch.Job, []string, error) {
	maxBytes := s.uploadCfg.MaxFileSizeBytes()

	var jobs []batch.Job
	var warnings []string
	for _, file := range input.Files {
		if file.Size > maxBytes {
			warnings = append(warnings, fmt.Sprintf(
				"%s exceeds the %d MB size limit and was skipped", file.Name, s.uploadCfg.MaxFileSizeMB))
			continue
		}

		data, err := io.ReadAll(io.LimitReader(file.Body, maxBytes+1))
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", file.Name, err)
		}
		if int64(len(data)) > maxBytes {
			warnings = append(warnings, fmt.Sprintf(
				"%s exceeds the %d MB size limit and was skipped", file.Name, s.uploadCfg.MaxFileSizeMB))
			continue
		}

		contentType := http.DetectContentType(data)
		if _, ok := domain.AllowedImageTypes[contentType]; !ok {
			warnings = append(warnings, fmt.Sprintf("%s is not a supported image and was skipped", file.Name))
			continue
		}

		uri := domain.EncodeDataURI(contentType, data)
		jobs = append(jobs, batch.Job{
			FileName: file.Name,
			DataURI:  uri,
			Preview:  uri,
			Kind:     input.Kind,
		})
	}
	return jobs, warnings, nil
}

func (s *extractionService) GetSession(ctx context.Context, sessionID uuid.UUID) (*review.Session, error) {
	return s.sessions.Get(sessionID)
}

func (s *extractionService) UpdateDraft(ctx context.Context, sessionID, draftID uuid.UUID, data domain.RecordData) (*review.Session, error) {
	if err := s.sessions.UpdateDraft(sessionID, draftID, data); err != nil {
		return nil, err
	}
	return s.sessions.Get(sessionID)
}

func (s *extractionService) RemoveDraft(ctx context.Context, sessionID, draftID uuid.UUID) (*review.Session, error) {
	if err := s.sessions.RemoveDraft(sessionID, draftID); err != nil {
		return nil, err
	}
	return s.sessions.Get(sessionID)
}

// Commit converts every draft with a non-empty item list into a persisted
// record; empty drafts are silently skipped. The session is cleared
// afterwards no matter how many records were saved.
func (s *extractionService) Commit(ctx context.Context, sessionID uuid.UUID) (*CommitResult, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var records []domain.Record
	for _, draft := range sess.Drafts {
		if len(draft.Data.Items) == 0 {
			continue
		}
		records = append(records, domain.Record{
			ID:        draft.ID,
			Kind:      sess.Kind,
			Data:      domain.ReconcileRecordData(draft.Data),
			CreatedAt: now,
		})
	}

	if err := s.recordRepo.Append(ctx, sess.Kind, records); err != nil {
		return nil, err
	}
	s.sessions.Clear(sessionID)

	log.Printf("extractionService.Commit: saved %d of %d draft(s) for session %s",
		len(records), len(sess.Drafts), sessionID)
	return &CommitResult{Saved: len(records)}, nil
}

func (s *extractionService) Cancel(ctx context.Context, sessionID uuid.UUID) error {
	if _, err := s.sessions.Get(sessionID); err != nil {
		return err
	}
	s.sessions.Clear(sessionID)
	return nil
}
