// Package gateways declares the ports the transcription pipeline uses to reach
// object storage, the local staging area and the speech-to-text service.
package gateways

import (
	"context"
	"io"

	"github.com/SscSPs/voice_journal_app/internal/core/domain"
)

// LocatorResolver turns a public storage locator into an object reference.
type LocatorResolver interface {
	Resolve(locator string) (domain.ObjectRef, error)
}

// ObjectFetcher opens a byte stream for a stored object.
type ObjectFetcher interface {
	FetchObject(ctx context.Context, ref domain.ObjectRef) (io.ReadCloser, error)
}

// ObjectUploader stores a new object and returns its public locator.
type ObjectUploader interface {
	UploadObject(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// StagedObject is a local copy of a remote object.
// Release deletes it and may be called more than once.
type StagedObject interface {
	Path() string
	Size() int64
	Open() (io.ReadCloser, error)
	Release() error
}

// Stager copies a remote object to a uniquely named local file.
type Stager interface {
	Stage(ctx context.Context, ref domain.ObjectRef) (StagedObject, error)
}

// Transcriber sends staged audio to a speech-to-text service.
type Transcriber interface {
	Transcribe(ctx context.Context, staged StagedObject) (*domain.Transcript, error)
}
