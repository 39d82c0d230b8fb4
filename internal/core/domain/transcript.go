package domain

import (
	"time"
)

// Transcript is the normalized result of a speech-to-text call.
// Absent optional fields stay nil.
type Transcript struct {
	Text      string      `json:"text"`
	Language  *string     `json:"language,omitempty"`
	Sentiment *Sentiment  `json:"sentiment,omitempty"`
	Emotions  []Sentiment `json:"emotions,omitempty"`
}

// TranscriptionResult is the outcome of transcribing a stored entry.
type TranscriptionResult struct {
	EntryID       string
	Cached        bool
	Transcript    Transcript
	TranscribedAt *time.Time
}

// ObjectRef identifies an object in remote storage.
type ObjectRef struct {
	Container string
	Region    string
	Key       string
}

// PipelineStage is a state of a single transcription request.
type PipelineStage string

const (
	StageReceived     PipelineStage = "received"
	StageResolving    PipelineStage = "resolving"
	StageStaging      PipelineStage = "staging"
	StageTranscribing PipelineStage = "transcribing"
	StageNormalizing  PipelineStage = "normalizing"
	StageDone         PipelineStage = "done"
	StageFailed       PipelineStage = "failed"
)
