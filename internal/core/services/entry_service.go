package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/SscSPs/voice_journal_app/internal/apperrors"
	"github.com/SscSPs/voice_journal_app/internal/core/domain"
	"github.com/SscSPs/voice_journal_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/voice_journal_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/voice_journal_app/internal/core/ports/services"
	"github.com/SscSPs/voice_journal_app/internal/dto"
	"github.com/google/uuid"
)

const defaultAudioFilename = "audio.mp3"

type entryService struct {
	BaseService
	entryRepo   portsrepo.EntryRepositoryFacade
	journalRepo portsrepo.JournalReader
	uploader    gateways.ObjectUploader
}

// NewEntryService creates the service that records audio entries.
func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade, journalRepo portsrepo.JournalReader, uploader gateways.ObjectUploader, options ...ServiceOption) portssvc.EntrySvcFacade {
	s := &entryService{entryRepo: entryRepo, journalRepo: journalRepo, uploader: uploader}
	applyOptions(&s.BaseService, options)
	return s
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

func (s *entryService) CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest, upload dto.AudioUpload) (*domain.Entry, error) {
	logger := s.GetLogger(ctx).With(slog.String("journal_id", req.JournalID))

	if !strings.HasPrefix(strings.ToLower(upload.ContentType), "audio/") {
		return nil, fmt.Errorf("%w: expected an audio file, got %q", apperrors.ErrValidation, upload.ContentType)
	}
	if err := checkID(req.JournalID); err != nil {
		return nil, err
	}

	// Check ownership before uploading so foreign journals never leave objects behind.
	if _, err := s.journalRepo.FindJournalByIDForUser(ctx, req.JournalID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to check journal ownership", slog.String("error", err.Error()))
		}
		return nil, err
	}

	entryID := uuid.NewString()
	key := entryID + "-" + sanitizeFilename(upload.Filename)
	audioURL, err := s.uploader.UploadObject(ctx, key, upload.Body, upload.ContentType)
	if err != nil {
		logger.Error("Failed to upload audio", slog.String("key", key), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to upload audio: %w", err)
	}

	now := s.Now()
	entry := domain.Entry{
		EntryID:   entryID,
		UserID:    userID,
		JournalID: req.JournalID,
		AudioURL:  audioURL,
		IsPrivate: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to save entry in repository", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Entry recorded", slog.String("entry_id", entryID), slog.Int64("size", upload.Size))
	return &entry, nil
}

func (s *entryService) GetEntry(ctx context.Context, userID, entryID string) (*domain.Entry, error) {
	if err := checkID(entryID); err != nil {
		return nil, err
	}
	entry, err := s.entryRepo.FindEntryByIDForUser(ctx, entryID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry in repository", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *entryService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	if err := checkID(entryID); err != nil {
		return err
	}
	if err := s.entryRepo.DeleteEntry(ctx, userID, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete entry in repository", slog.String("entry_id", entryID))
		}
		return err
	}
	s.LogInfo(ctx, "Entry deleted", slog.String("entry_id", entryID))
	return nil
}

// sanitizeFilename keeps the base name of a client-supplied filename.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return defaultAudioFilename
	}
	return name
}
