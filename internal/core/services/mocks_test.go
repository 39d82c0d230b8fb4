package services_test

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/voice_journal_app/internal/core/domain"
	"github.com/SscSPs/voice_journal_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/voice_journal_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

// Ensure MockJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindJournalByIDForUser(ctx context.Context, journalID, userID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) ListJournalSummaries(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.JournalSummary, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		next = &tokenVal
	}
	return args.Get(0).([]domain.JournalSummary), next, args.Error(2)
}

func (m *MockJournalRepository) ListAllJournalSummaries(ctx context.Context, userID string) ([]domain.JournalSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalSummary), args.Error(1)
}

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateJournal(ctx context.Context, userID, journalID string, upd domain.JournalUpdate) (*domain.Journal, error) {
	args := m.Called(ctx, userID, journalID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) DeleteJournal(ctx context.Context, userID, journalID string) error {
	args := m.Called(ctx, userID, journalID)
	return args.Error(0)
}

// --- Mock EntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

var _ portsrepo.EntryRepositoryFacade = (*MockEntryRepository)(nil)

func (m *MockEntryRepository) FindEntryByIDForUser(ctx context.Context, entryID, userID string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindEntryByAudioURL(ctx context.Context, userID, audioURL string) (*domain.Entry, error) {
	args := m.Called(ctx, userID, audioURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListEntriesByJournal(ctx context.Context, journalID, userID string) ([]domain.Entry, error) {
	args := m.Called(ctx, journalID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) DeleteEntry(ctx context.Context, userID, entryID string) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

func (m *MockEntryRepository) AttachTranscript(ctx context.Context, userID, entryID string, t domain.Transcript, at time.Time) (*domain.Entry, error) {
	args := m.Called(ctx, userID, entryID, t, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

// --- Mock gateways ---
type MockUploader struct {
	mock.Mock
}

var _ gateways.ObjectUploader = (*MockUploader)(nil)

func (m *MockUploader) UploadObject(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, body, contentType)
	return args.String(0), args.Error(1)
}

type MockTranscriber struct {
	mock.Mock
}

var _ gateways.Transcriber = (*MockTranscriber)(nil)

func (m *MockTranscriber) Transcribe(ctx context.Context, staged gateways.StagedObject) (*domain.Transcript, error) {
	args := m.Called(ctx, staged)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transcript), args.Error(1)
}

func strPtr(s string) *string {
	return &s
}
