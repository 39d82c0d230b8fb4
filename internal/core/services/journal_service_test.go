package services_test

import (
	"context"
	"math/rand"
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

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockEntryRepo   *MockEntryRepository
	service         portssvc.JournalSvcFacade
	ctx             context.Context
	now             time.Time
	userID          string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockEntryRepo,
		services.WithClock(func() time.Time { return suite.now }))
	suite.ctx = context.Background()
	suite.userID = "user-" + uuid.NewString()
}

func (suite *JournalServiceTestSuite) TearDownTest() {
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) summary(userID string, count int, createdAt time.Time) domain.JournalSummary {
	return domain.JournalSummary{
		Journal: domain.Journal{
			JournalID:   uuid.NewString(),
			UserID:      userID,
			Title:       "journal",
			AuditFields: domain.AuditFields{CreatedAt: createdAt},
		},
		EntryCount: count,
	}
}

func (suite *JournalServiceTestSuite) TestCreateJournal_Defaults() {
	suite.mockJournalRepo.On("SaveJournal", suite.ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return j.UserID == suite.userID && j.Title == "Morning pages" && j.IsPrivate &&
			j.CreatedAt.Equal(suite.now) && uuid.Validate(j.JournalID) == nil
	})).Return(nil).Once()

	journal, err := suite.service.CreateJournal(suite.ctx, suite.userID, dto.CreateJournalRequest{Title: "  Morning pages "})

	suite.Require().NoError(err)
	suite.Equal("Morning pages", journal.Title)
	suite.True(journal.IsPrivate)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_PublicAndBlankTitle() {
	public := false
	suite.mockJournalRepo.On("SaveJournal", suite.ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return !j.IsPrivate
	})).Return(nil).Once()

	journal, err := suite.service.CreateJournal(suite.ctx, suite.userID, dto.CreateJournalRequest{Title: "Shared", IsPrivate: &public})
	suite.Require().NoError(err)
	suite.False(journal.IsPrivate)

	_, err = suite.service.CreateJournal(suite.ctx, suite.userID, dto.CreateJournalRequest{Title: "   "})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestGetJournal_WithEntries() {
	journalID := uuid.NewString()
	journal := &domain.Journal{JournalID: journalID, UserID: suite.userID, Title: "Dreams"}
	entries := []domain.Entry{{EntryID: uuid.NewString(), JournalID: journalID, UserID: suite.userID}}

	suite.mockJournalRepo.On("FindJournalByIDForUser", suite.ctx, journalID, suite.userID).Return(journal, nil).Once()
	suite.mockEntryRepo.On("ListEntriesByJournal", suite.ctx, journalID, suite.userID).Return(entries, nil).Once()

	got, err := suite.service.GetJournal(suite.ctx, suite.userID, journalID)

	suite.Require().NoError(err)
	suite.Equal("Dreams", got.Title)
	suite.Len(got.Entries, 1)
}

func (suite *JournalServiceTestSuite) TestGetJournal_OtherUserIsNotFound() {
	journalID := uuid.NewString()
	suite.mockJournalRepo.On("FindJournalByIDForUser", suite.ctx, journalID, suite.userID).
		Return(nil, apperrors.NewNotFoundError("journal not found")).Once()

	_, err := suite.service.GetJournal(suite.ctx, suite.userID, journalID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "ListEntriesByJournal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestGetJournal_MalformedIDIsNotFound() {
	_, err := suite.service.GetJournal(suite.ctx, suite.userID, "not-a-uuid")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindJournalByIDForUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestListJournals_DefaultPageSize() {
	summaries := []domain.JournalSummary{suite.summary(suite.userID, 2, suite.now)}
	suite.mockJournalRepo.On("ListJournalSummaries", suite.ctx, suite.userID, 20, (*string)(nil)).
		Return(summaries, "next-page", nil).Once()

	resp, err := suite.service.ListJournals(suite.ctx, suite.userID, dto.ListJournalsParams{})

	suite.Require().NoError(err)
	suite.Len(resp.Journals, 1)
	suite.Equal(2, resp.Journals[0].EntryCount)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next-page", *resp.NextToken)
}

func (suite *JournalServiceTestSuite) TestTopJournals_SingleJournalWithKThree() {
	only := suite.summary(suite.userID, 4, suite.now)
	suite.mockJournalRepo.On("ListAllJournalSummaries", suite.ctx, suite.userID).
		Return([]domain.JournalSummary{only}, nil).Once()

	top, err := suite.service.TopJournals(suite.ctx, suite.userID, 3)

	suite.Require().NoError(err)
	suite.Require().Len(top, 1)
	suite.Equal(only.JournalID, top[0].JournalID)
}

func (suite *JournalServiceTestSuite) TestTopJournals_IdempotentAndUserScoped() {
	base := suite.now.Add(-48 * time.Hour)
	mine := []domain.JournalSummary{
		suite.summary(suite.userID, 1, base),
		suite.summary(suite.userID, 7, base.Add(time.Hour)),
		suite.summary(suite.userID, 3, base.Add(2*time.Hour)),
		suite.summary(suite.userID, 3, base.Add(3*time.Hour)),
	}
	foreign := suite.summary("someone-else", 99, base)
	all := append(append([]domain.JournalSummary{}, mine...), foreign)

	suite.mockJournalRepo.On("ListAllJournalSummaries", suite.ctx, suite.userID).Return(all, nil).Once()
	first, err := suite.service.TopJournals(suite.ctx, suite.userID, 0)
	suite.Require().NoError(err)

	shuffled := append([]domain.JournalSummary{}, all...)
	rand.New(rand.NewSource(7)).Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	suite.mockJournalRepo.On("ListAllJournalSummaries", suite.ctx, suite.userID).Return(shuffled, nil).Once()
	second, err := suite.service.TopJournals(suite.ctx, suite.userID, 0)
	suite.Require().NoError(err)

	suite.Equal(first, second)
	suite.Require().Len(first, 3)
	suite.Equal([]string{mine[1].JournalID, mine[3].JournalID, mine[2].JournalID},
		[]string{first[0].JournalID, first[1].JournalID, first[2].JournalID})
	for _, s := range first {
		suite.Equal(suite.userID, s.UserID)
	}
}

func (suite *JournalServiceTestSuite) TestUpdateJournal() {
	journalID := uuid.NewString()
	updated := &domain.Journal{JournalID: journalID, UserID: suite.userID, Title: "Renamed"}
	suite.mockJournalRepo.On("UpdateJournal", suite.ctx, suite.userID, journalID, mock.MatchedBy(func(u domain.JournalUpdate) bool {
		return u.Title != nil && *u.Title == "Renamed" && u.Content == nil && u.UpdatedAt.Equal(suite.now)
	})).Return(updated, nil).Once()

	got, err := suite.service.UpdateJournal(suite.ctx, suite.userID, journalID, dto.UpdateJournalRequest{Title: strPtr(" Renamed ")})

	suite.Require().NoError(err)
	suite.Equal("Renamed", got.Title)
}

func (suite *JournalServiceTestSuite) TestUpdateJournal_Validation() {
	journalID := uuid.NewString()

	_, err := suite.service.UpdateJournal(suite.ctx, suite.userID, journalID, dto.UpdateJournalRequest{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.UpdateJournal(suite.ctx, suite.userID, journalID, dto.UpdateJournalRequest{Title: strPtr("  ")})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockJournalRepo.AssertNotCalled(suite.T(), "UpdateJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestDeleteJournal_OtherUserIsNotFound() {
	journalID := uuid.NewString()
	suite.mockJournalRepo.On("DeleteJournal", suite.ctx, suite.userID, journalID).
		Return(apperrors.NewNotFoundError("journal not found")).Once()

	err := suite.service.DeleteJournal(suite.ctx, suite.userID, journalID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestJournalService(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
