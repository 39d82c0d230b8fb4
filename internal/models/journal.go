package models

// Journal is a row of the journals table.
type Journal struct {
	JournalID string  `db:"journal_id"`
	UserID    string  `db:"user_id"`
	Title     string  `db:"title"`
	Content   *string `db:"content"`
	IsPrivate bool    `db:"is_private"`
	AuditFields
}

// JournalSummary is a journal row joined with its entry count.
type JournalSummary struct {
	Journal
	EntryCount int64 `db:"entry_count"`
}
