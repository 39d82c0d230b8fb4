package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/voice_journal_app/internal/apperrors"
	"github.com/SscSPs/voice_journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/voice_journal_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/voice_journal_app/internal/core/ports/services"
	"github.com/SscSPs/voice_journal_app/internal/dto"
	"github.com/SscSPs/voice_journal_app/internal/utils/ranking"
	"github.com/google/uuid"
)

const defaultJournalPageSize = 20

type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	entryRepo   portsrepo.EntryReader
}

// NewJournalService creates a journal service backed by the given repositories.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, entryRepo portsrepo.EntryReader, options ...ServiceOption) portssvc.JournalSvcFacade {
	s := &journalService{journalRepo: journalRepo, entryRepo: entryRepo}
	applyOptions(&s.BaseService, options)
	return s
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) CreateJournal(ctx context.Context, userID string, req dto.CreateJournalRequest) (*domain.Journal, error) {
	logger := s.GetLogger(ctx)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title must not be blank", apperrors.ErrValidation)
	}
	isPrivate := true
	if req.IsPrivate != nil {
		isPrivate = *req.IsPrivate
	}

	now := s.Now()
	journal := domain.Journal{
		JournalID: uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Content:   req.Content,
		IsPrivate: isPrivate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.journalRepo.SaveJournal(ctx, journal); err != nil {
		s.LogError(ctx, err, "Failed to save journal in repository", slog.String("journal_id", journal.JournalID))
		return nil, err
	}

	logger.Info("Journal created successfully in service", slog.String("journal_id", journal.JournalID))
	return &journal, nil
}

func (s *journalService) GetJournal(ctx context.Context, userID, journalID string) (*domain.JournalWithEntries, error) {
	if err := checkID(journalID); err != nil {
		return nil, err
	}

	journal, err := s.journalRepo.FindJournalByIDForUser(ctx, journalID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal in repository", slog.String("journal_id", journalID))
		}
		return nil, err
	}

	entries, err := s.entryRepo.ListEntriesByJournal(ctx, journalID, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries of journal", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	if entries == nil {
		entries = []domain.Entry{}
	}

	s.LogDebug(ctx, "Journal retrieved successfully from service", slog.String("journal_id", journalID), slog.Int("entries", len(entries)))
	return &domain.JournalWithEntries{Journal: *journal, Entries: entries}, nil
}

func (s *journalService) ListJournals(ctx context.Context, userID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultJournalPageSize
	}

	summaries, next, err := s.journalRepo.ListJournalSummaries(ctx, userID, limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list journals from repository", slog.Int("limit", limit))
		}
		return nil, err
	}

	return &dto.ListJournalsResponse{
		Journals:  dto.ToJournalSummaryResponses(summaries),
		NextToken: next,
	}, nil
}

func (s *journalService) TopJournals(ctx context.Context, userID string, k int) ([]domain.JournalSummary, error) {
	summaries, err := s.journalRepo.ListAllJournalSummaries(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load journal summaries for ranking")
		return nil, err
	}

	top := ranking.TopK(summaries, userID, k)
	s.LogDebug(ctx, "Top journals ranked", slog.Int("k", k), slog.Int("returned", len(top)))
	return top, nil
}

func (s *journalService) UpdateJournal(ctx context.Context, userID, journalID string, req dto.UpdateJournalRequest) (*domain.Journal, error) {
	if err := checkID(journalID); err != nil {
		return nil, err
	}
	if req.Title == nil && req.Content == nil {
		return nil, fmt.Errorf("%w: nothing to update", apperrors.ErrValidation)
	}

	upd := domain.JournalUpdate{Content: req.Content, UpdatedAt: s.Now()}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title must not be blank", apperrors.ErrValidation)
		}
		upd.Title = &title
	}

	journal, err := s.journalRepo.UpdateJournal(ctx, userID, journalID, upd)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update journal in repository", slog.String("journal_id", journalID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Journal updated successfully in service", slog.String("journal_id", journalID))
	return journal, nil
}

func (s *journalService) DeleteJournal(ctx context.Context, userID, journalID string) error {
	if err := checkID(journalID); err != nil {
		return err
	}

	if err := s.journalRepo.DeleteJournal(ctx, userID, journalID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete journal in repository", slog.String("journal_id", journalID))
		}
		return err
	}

	s.LogInfo(ctx, "Journal deleted with its entries", slog.String("journal_id", journalID))
	return nil
}
