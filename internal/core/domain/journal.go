package domain

import "time"

// Journal groups a user's voice entries under a title.
type Journal struct {
	JournalID string  `json:"journalID"`
	UserID    string  `json:"userID"`
	Title     string  `json:"title"`
	Content   *string `json:"content,omitempty"`
	IsPrivate bool    `json:"isPrivate"`
	AuditFields
}

// JournalSummary is a journal together with the number of entries it holds.
type JournalSummary struct {
	Journal
	EntryCount int `json:"entryCount"`
}

// JournalWithEntries is a journal and all of its entries, newest first.
type JournalWithEntries struct {
	Journal
	Entries []Entry `json:"entries"`
}

// JournalUpdate carries the mutable fields of a journal. Nil fields are left untouched.
type JournalUpdate struct {
	Title     *string
	Content   *string
	UpdatedAt time.Time
}
