package dto

import (
	"time"

	"github.com/SscSPs/voice_journal_app/internal/core/domain"
)

// CreateJournalRequest is the body of POST /journals.
type CreateJournalRequest struct {
	Title     string  `json:"title" binding:"required,max=200"`
	Content   *string `json:"content"`
	IsPrivate *bool   `json:"isPrivate"`
}

// UpdateJournalRequest is the body of PUT /journals/:journalID. Omitted fields are kept.
type UpdateJournalRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=200"`
	Content *string `json:"content"`
}

// ListJournalsParams are the query parameters of GET /journals.
type ListJournalsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
	Top       bool    `form:"top"`
	K         int     `form:"k" binding:"omitempty,min=1,max=50"`
}

// JournalResponse defines the data returned for a journal.
type JournalResponse struct {
	JournalID     string    `json:"journalID"`
	Title         string    `json:"title"`
	Content       *string   `json:"content,omitempty"`
	IsPrivate     bool      `json:"isPrivate"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// JournalSummaryResponse is a journal with its entry count.
type JournalSummaryResponse struct {
	JournalResponse
	EntryCount int `json:"entryCount"`
}

// JournalDetailResponse is a journal with its entries.
type JournalDetailResponse struct {
	JournalResponse
	Entries []EntryResponse `json:"entries"`
}

// ListJournalsResponse is a page of journal summaries.
type ListJournalsResponse struct {
	Journals  []JournalSummaryResponse `json:"journals"`
	NextToken *string                  `json:"nextToken,omitempty"`
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	return JournalResponse{
		JournalID:     j.JournalID,
		Title:         j.Title,
		Content:       j.Content,
		IsPrivate:     j.IsPrivate,
		CreatedAt:     j.CreatedAt,
		LastUpdatedAt: j.LastUpdatedAt,
	}
}

// ToJournalSummaryResponses converts summaries, preserving order.
func ToJournalSummaryResponses(summaries []domain.JournalSummary) []JournalSummaryResponse {
	responses := make([]JournalSummaryResponse, len(summaries))
	for i := range summaries {
		responses[i] = JournalSummaryResponse{
			JournalResponse: ToJournalResponse(&summaries[i].Journal),
			EntryCount:      summaries[i].EntryCount,
		}
	}
	return responses
}

// ToJournalDetailResponse converts a journal with its entries.
func ToJournalDetailResponse(j *domain.JournalWithEntries) JournalDetailResponse {
	return JournalDetailResponse{
		JournalResponse: ToJournalResponse(&j.Journal),
		Entries:         ToEntryResponses(j.Entries),
	}
}
