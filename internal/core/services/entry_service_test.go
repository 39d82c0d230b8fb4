package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/voice_journal_app/internal/apperrors"
	"github.com/SscSPs/voice_journal_app/internal/core/domain"
	portssvc "github.com/SscSPs/voice_journal_app/internal/core/ports/services"
	"github.com/SscSPs/voice_journal_app/internal/core/services"
	"github.com/SscSPs/voice_journal_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testLocatorPrefix = "https://voice-notes.s3.us-east-1.amazonaws.com/"

type EntryServiceTestSuite struct {
	suite.Suite
	mockEntryRepo   *MockEntryRepository
	mockJournalRepo *MockJournalRepository
	mockUploader    *MockUploader
	service         portssvc.EntrySvcFacade
	ctx             context.Context
	now             time.Time
	userID          string
	journalID       string
}

func (suite *EntryServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockUploader = new(MockUploader)
	suite.now = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	suite.service = services.NewEntryService(suite.mockEntryRepo, suite.mockJournalRepo, suite.mockUploader,
		services.WithClock(func() time.Time { return suite.now }))
	suite.ctx = context.Background()
	suite.userID = "user-" + uuid.NewString()
	suite.journalID = uuid.NewString()
}

func (suite *EntryServiceTestSuite) TearDownTest() {
	suite.mockEntryRepo.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockUploader.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) upload(name, contentType string) dto.AudioUpload {
	return dto.AudioUpload{Filename: name, ContentType: contentType, Size: 5, Body: strings.NewReader("audio")}
}

func (suite *EntryServiceTestSuite) TestCreateEntry_UploadsThenSaves() {
	journal := &domain.Journal{JournalID: suite.journalID, UserID: suite.userID}
	suite.mockJournalRepo.On("FindJournalByIDForUser", suite.ctx, suite.journalID, suite.userID).Return(journal, nil).Once()

	var key string
	suite.mockUploader.On("UploadObject", suite.ctx, mock.AnythingOfType("string"), mock.Anything, "audio/mpeg").
		Run(func(args mock.Arguments) { key = args.String(1) }).
		Return(testLocatorPrefix+"some-key.mp3", nil).Once()
	suite.mockEntryRepo.On("SaveEntry", suite.ctx, mock.MatchedBy(func(e domain.Entry) bool {
		return e.UserID == suite.userID && e.JournalID == suite.journalID && e.IsPrivate &&
			e.AudioURL == testLocatorPrefix+"some-key.mp3" && e.Transcript == nil && e.CreatedAt.Equal(suite.now)
	})).Return(nil).Once()

	entry, err := suite.service.CreateEntry(suite.ctx, suite.userID, dto.CreateEntryRequest{JournalID: suite.journalID},
		suite.upload("../../etc/note.mp3", "audio/mpeg"))

	suite.Require().NoError(err)
	suite.Equal(entry.EntryID+"-note.mp3", key)
	suite.Nil(entry.Transcript)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_ForeignJournalUploadsNothing() {
	suite.mockJournalRepo.On("FindJournalByIDForUser", suite.ctx, suite.journalID, suite.userID).
		Return(nil, apperrors.NewNotFoundError("journal not found")).Once()

	_, err := suite.service.CreateEntry(suite.ctx, suite.userID, dto.CreateEntryRequest{JournalID: suite.journalID},
		suite.upload("note.mp3", "audio/mpeg"))

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUploader.AssertNotCalled(suite.T(), "UploadObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_RejectsNonAudio() {
	_, err := suite.service.CreateEntry(suite.ctx, suite.userID, dto.CreateEntryRequest{JournalID: suite.journalID},
		suite.upload("notes.txt", "text/plain"))

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_UploadFailure() {
	journal := &domain.Journal{JournalID: suite.journalID, UserID: suite.userID}
	suite.mockJournalRepo.On("FindJournalByIDForUser", suite.ctx, suite.journalID, suite.userID).Return(journal, nil).Once()
	suite.mockUploader.On("UploadObject", suite.ctx, mock.Anything, mock.Anything, "audio/webm").
		Return("", errors.New("access denied")).Once()

	_, err := suite.service.CreateEntry(suite.ctx, suite.userID, dto.CreateEntryRequest{JournalID: suite.journalID},
		suite.upload("", "audio/webm"))

	suite.ErrorContains(err, "access denied")
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestGetEntry_OtherUserIsNotFound() {
	entryID := uuid.NewString()
	suite.mockEntryRepo.On("FindEntryByIDForUser", suite.ctx, entryID, suite.userID).
		Return(nil, apperrors.NewNotFoundError("entry not found")).Once()

	_, err := suite.service.GetEntry(suite.ctx, suite.userID, entryID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EntryServiceTestSuite) TestDeleteEntry() {
	entryID := uuid.NewString()
	suite.mockEntryRepo.On("DeleteEntry", suite.ctx, suite.userID, entryID).Return(nil).Once()

	suite.NoError(suite.service.DeleteEntry(suite.ctx, suite.userID, entryID))
	suite.ErrorIs(suite.service.DeleteEntry(suite.ctx, suite.userID, "42"), apperrors.ErrNotFound)
}

func TestEntryService(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}
