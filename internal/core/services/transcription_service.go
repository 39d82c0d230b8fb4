package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/voice_journal_app/internal/apperrors"
	"github.com/SscSPs/voice_journal_app/internal/core/domain"
	"github.com/SscSPs/voice_journal_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/voice_journal_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/voice_journal_app/internal/core/ports/services"
)

type transcriptionService struct {
	BaseService
	resolver    gateways.LocatorResolver
	stager      gateways.Stager
	transcriber gateways.Transcriber
	entryRepo   portsrepo.EntryRepositoryFacade
}

// NewTranscriptionService wires the pipeline stages together.
func NewTranscriptionService(
	resolver gateways.LocatorResolver,
	stager gateways.Stager,
	transcriber gateways.Transcriber,
	entryRepo portsrepo.EntryRepositoryFacade,
	options ...ServiceOption,
) portssvc.TranscriptionSvc {
	s := &transcriptionService{
		resolver:    resolver,
		stager:      stager,
		transcriber: transcriber,
		entryRepo:   entryRepo,
	}
	applyOptions(&s.BaseService, options)
	return s
}

var _ portssvc.TranscriptionSvc = (*transcriptionService)(nil)

// pipelineRun tracks one request through the stages.
type pipelineRun struct {
	stage   domain.PipelineStage
	logger  *slog.Logger
	started time.Time
}

func (s *transcriptionService) newRun(ctx context.Context, attrs ...any) *pipelineRun {
	run := &pipelineRun{
		stage:   domain.StageReceived,
		logger:  s.GetLogger(ctx).With(attrs...),
		started: time.Now(),
	}
	run.logger.Debug("Transcription received")
	return run
}

func (r *pipelineRun) advance(next domain.PipelineStage) {
	r.logger.Debug("Transcription stage", slog.String("from", string(r.stage)), slog.String("to", string(next)))
	r.stage = next
}

// fail moves the run to Failed. Pipeline errors get the failing stage attached;
// ownership and store errors pass through untouched.
func (r *pipelineRun) fail(err error) error {
	failedAt := r.stage
	r.stage = domain.StageFailed

	pe, ok := apperrors.AsPipelineError(err)
	if !ok {
		if errors.Is(err, apperrors.ErrNotFound) {
			r.logger.Warn("Transcription refused", slog.String("stage", string(failedAt)))
			return err
		}
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			r.logger.Error("Transcription aborted by store failure", slog.String("stage", string(failedAt)), slog.String("error", err.Error()))
			return err
		}
		pe = apperrors.NewPipelineError(stageFallbackCode(failedAt), err)
	}
	if pe.Stage == "" {
		pe.Stage = string(failedAt)
	}

	attrs := []any{
		slog.String("stage", string(failedAt)),
		slog.String("code", string(pe.Code)),
		slog.Duration("elapsed", time.Since(r.started)),
		slog.String("error", pe.Error()),
	}
	if pe.Code == apperrors.CodeTranscriptionRejected {
		attrs = append(attrs, slog.Int("remote_status", pe.RemoteStatus), slog.String("remote_body", pe.RemoteBody))
	}
	r.logger.Error("Transcription failed", attrs...)
	return pe
}

// stageFallbackCode classifies errors that a stage returned without a pipeline code.
func stageFallbackCode(stage domain.PipelineStage) apperrors.PipelineCode {
	switch stage {
	case domain.StageResolving:
		return apperrors.CodeInvalidObjectReference
	case domain.StageStaging:
		return apperrors.CodeRetrievalFailed
	case domain.StageTranscribing:
		return apperrors.CodeGatewayUnreachable
	default:
		return apperrors.CodeTranscriptionMalformed
	}
}

func (s *transcriptionService) TranscribeLocator(ctx context.Context, userID, locator string) (*domain.Transcript, error) {
	run := s.newRun(ctx, slog.String("mode", "locator"))

	run.advance(domain.StageResolving)
	ref, err := s.resolver.Resolve(locator)
	if err != nil {
		return nil, run.fail(err)
	}
	// Only audio the user has recorded may be transcribed.
	if _, err := s.entryRepo.FindEntryByAudioURL(ctx, userID, locator); err != nil {
		return nil, run.fail(err)
	}

	return s.execute(ctx, run, ref)
}

func (s *transcriptionService) TranscribeEntry(ctx context.Context, userID, entryID string, force bool) (*domain.TranscriptionResult, error) {
	if err := checkID(entryID); err != nil {
		return nil, err
	}
	entry, err := s.entryRepo.FindEntryByIDForUser(ctx, entryID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load entry for transcription", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	if entry.HasTranscript() && !force {
		s.LogDebug(ctx, "Returning stored transcript", slog.String("entry_id", entryID))
		return &domain.TranscriptionResult{
			EntryID:       entryID,
			Cached:        true,
			Transcript:    entry.StoredTranscript(),
			TranscribedAt: entry.TranscribedAt,
		}, nil
	}

	run := s.newRun(ctx, slog.String("mode", "entry"), slog.String("entry_id", entryID), slog.Bool("force", force))
	run.advance(domain.StageResolving)
	ref, err := s.resolver.Resolve(entry.AudioURL)
	if err != nil {
		return nil, run.fail(err)
	}

	t, err := s.execute(ctx, run, ref)
	if err != nil {
		return nil, err
	}

	updated, err := s.entryRepo.AttachTranscript(ctx, userID, entryID, *t, s.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to attach transcript", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	return &domain.TranscriptionResult{
		EntryID:       entryID,
		Transcript:    *t,
		TranscribedAt: updated.TranscribedAt,
	}, nil
}

// execute runs Staging through Done. The staged object is released on every path.
func (s *transcriptionService) execute(ctx context.Context, run *pipelineRun, ref domain.ObjectRef) (*domain.Transcript, error) {
	run.advance(domain.StageStaging)
	staged, err := s.stager.Stage(ctx, ref)
	if err != nil {
		return nil, run.fail(err)
	}
	defer func() {
		if rerr := staged.Release(); rerr != nil {
			run.logger.Warn("Failed to release staged audio", slog.String("path", staged.Path()), slog.String("error", rerr.Error()))
		}
	}()

	run.advance(domain.StageTranscribing)
	raw, err := s.transcriber.Transcribe(ctx, staged)
	if err != nil {
		return nil, run.fail(err)
	}

	run.advance(domain.StageNormalizing)
	t, err := normalizeTranscript(raw)
	if err != nil {
		return nil, run.fail(err)
	}

	run.advance(domain.StageDone)
	run.logger.Info("Transcription completed", slog.Int64("bytes", staged.Size()), slog.Duration("elapsed", time.Since(run.started)))
	return t, nil
}

// normalizeTranscript enforces the transcript invariants on whatever the gateway produced.
func normalizeTranscript(raw *domain.Transcript) (*domain.Transcript, error) {
	if raw == nil {
		return nil, apperrors.NewPipelineError(apperrors.CodeTranscriptionMalformed, errors.New("empty transcription result"))
	}

	t := &domain.Transcript{Text: strings.TrimSpace(raw.Text)}
	if raw.Language != nil {
		if lang := strings.ToLower(strings.TrimSpace(*raw.Language)); lang != "" {
			t.Language = &lang
		}
	}
	if raw.Sentiment != nil {
		if err := raw.Sentiment.Validate(); err != nil {
			return nil, apperrors.NewPipelineError(apperrors.CodeTranscriptionMalformed, err)
		}
		sentiment := *raw.Sentiment
		t.Sentiment = &sentiment
	}
	for i, e := range raw.Emotions {
		if err := e.Validate(); err != nil {
			return nil, apperrors.NewPipelineError(apperrors.CodeTranscriptionMalformed, fmt.Errorf("emotion %d: %w", i, err))
		}
	}
	if len(raw.Emotions) > 0 {
		t.Emotions = append([]domain.Sentiment(nil), raw.Emotions...)
	}
	return t, nil
}
