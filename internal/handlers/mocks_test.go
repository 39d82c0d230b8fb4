package handlers_test

import (
	"context"
	"io"

	"github.com/SscSPs/voice_journal_app/internal/core/domain"
	portssvc "github.com/SscSPs/voice_journal_app/internal/core/ports/services"
	"github.com/SscSPs/voice_journal_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) CreateJournal(ctx context.Context, userID string, req dto.CreateJournalRequest) (*domain.Journal, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalService) GetJournal(ctx context.Context, userID, journalID string) (*domain.JournalWithEntries, error) {
	args := m.Called(ctx, userID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalWithEntries), args.Error(1)
}
func (m *MockJournalService) ListJournals(ctx context.Context, userID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalsResponse), args.Error(1)
}
func (m *MockJournalService) TopJournals(ctx context.Context, userID string, k int) ([]domain.JournalSummary, error) {
	args := m.Called(ctx, userID, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalSummary), args.Error(1)
}
func (m *MockJournalService) UpdateJournal(ctx context.Context, userID, journalID string, req dto.UpdateJournalRequest) (*domain.Journal, error) {
	args := m.Called(ctx, userID, journalID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalService) DeleteJournal(ctx context.Context, userID, journalID string) error {
	args := m.Called(ctx, userID, journalID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest, upload dto.AudioUpload) (*domain.Entry, error) {
	// Drain the body so tests can assert on what was uploaded.
	data, _ := io.ReadAll(upload.Body)
	upload.Body = nil
	args := m.Called(ctx, userID, req, upload, string(data))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}
func (m *MockEntryService) GetEntry(ctx context.Context, userID, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, userID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}
func (m *MockEntryService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

var _ portssvc.EntrySvcFacade = (*MockEntryService)(nil)

// --- Mock TranscriptionService ---
type MockTranscriptionService struct {
	mock.Mock
}

func (m *MockTranscriptionService) TranscribeLocator(ctx context.Context, userID, locator string) (*domain.Transcript, error) {
	args := m.Called(ctx, userID, locator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transcript), args.Error(1)
}
func (m *MockTranscriptionService) TranscribeEntry(ctx context.Context, userID, entryID string, force bool) (*domain.TranscriptionResult, error) {
	args := m.Called(ctx, userID, entryID, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TranscriptionResult), args.Error(1)
}

var _ portssvc.TranscriptionSvc = (*MockTranscriptionService)(nil)
