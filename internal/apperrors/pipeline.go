package apperrors

import (
	"errors"
	"fmt"
)

// PipelineCode identifies a transcription pipeline failure for programmatic retry decisions.
type PipelineCode string

const (
	CodeInvalidObjectReference PipelineCode = "INVALID_OBJECT_REFERENCE"
	CodeRetrievalFailed        PipelineCode = "RETRIEVAL_FAILED"
	CodeGatewayUnreachable     PipelineCode = "GATEWAY_UNREACHABLE"
	CodeTranscriptionRejected  PipelineCode = "TRANSCRIPTION_REJECTED"
	CodeTranscriptionMalformed PipelineCode = "TRANSCRIPTION_MALFORMED"
)

var (
	ErrInvalidObjectReference = errors.New("invalid object reference")
	ErrRetrievalFailed        = errors.New("object retrieval failed")
	ErrGatewayUnreachable     = errors.New("transcription gateway unreachable")
	ErrTranscriptionRejected  = errors.New("transcription rejected by gateway")
	ErrTranscriptionMalformed = errors.New("malformed transcription response")
)

var pipelineSentinels = map[PipelineCode]error{
	CodeInvalidObjectReference: ErrInvalidObjectReference,
	CodeRetrievalFailed:        ErrRetrievalFailed,
	CodeGatewayUnreachable:     ErrGatewayUnreachable,
	CodeTranscriptionRejected:  ErrTranscriptionRejected,
	CodeTranscriptionMalformed: ErrTranscriptionMalformed,
}

// PipelineError is a failure of one transcription stage.
// errors.Is matches it against the sentinel for its Code.
type PipelineError struct {
	Code  PipelineCode
	Stage string

	// Set for CodeTranscriptionRejected. For operators only, never echoed to end users.
	RemoteStatus int
	RemoteBody   string

	Err error
}

func (e *PipelineError) Error() string {
	msg := string(e.Code)
	if sentinel, ok := pipelineSentinels[e.Code]; ok {
		msg = sentinel.Error()
	}
	if msg == "" {
		msg = "transcription pipeline failure"
	}
	if e.Stage != "" {
		msg = e.Stage + ": " + msg
	}
	if e.Code == CodeTranscriptionRejected {
		msg = fmt.Sprintf("%s (status %d)", msg, e.RemoteStatus)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func (e *PipelineError) Is(target error) bool {
	sentinel, ok := pipelineSentinels[e.Code]
	return ok && sentinel == target
}

// Retryable reports whether the caller may reasonably try the same request again.
func (e *PipelineError) Retryable() bool {
	return e.Code == CodeRetrievalFailed || e.Code == CodeGatewayUnreachable
}

// NewPipelineError creates a PipelineError without a stage; the orchestrator fills it in.
func NewPipelineError(code PipelineCode, err error) *PipelineError {
	return &PipelineError{Code: code, Err: err}
}

// NewTranscriptionRejectedError keeps the remote status and body for diagnostics.
func NewTranscriptionRejectedError(status int, body string) *PipelineError {
	return &PipelineError{Code: CodeTranscriptionRejected, RemoteStatus: status, RemoteBody: body}
}

// AsPipelineError unwraps err to a *PipelineError if it contains one.
func AsPipelineError(err error) (*PipelineError, bool) {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
