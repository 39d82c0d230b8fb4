// Package whisper talks to the speech-to-text service over multipart HTTP.
package whisper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/voice_journal_app/internal/apperrors"
	"github.com/SscSPs/voice_journal_app/internal/core/domain"
	"github.com/SscSPs/voice_journal_app/internal/core/ports/gateways"
	"github.com/SscSPs/voice_journal_app/internal/utils/validation"
	"github.com/go-playground/validator/v10"
)

const (
	formField       = "file"
	uploadFilename  = "audio.mp3"
	uploadMediaType = "audio/mpeg"

	// MaxErrorBodyBytes caps how much of a rejection body is kept for diagnostics.
	MaxErrorBodyBytes = 4 << 10
	maxResponseBytes  = 1 << 20

	DefaultTimeout = 2 * time.Minute
)

// Config is everything the client needs to reach the service.
type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// Client implements gateways.Transcriber.
type Client struct {
	endpoint   string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	validate   *validator.Validate
}

var _ gateways.Transcriber = (*Client)(nil)

// NewClient validates cfg. A nil httpClient means http.DefaultClient.
func NewClient(cfg Config, httpClient *http.Client) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("transcription gateway endpoint cannot be empty")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		timeout:    timeout,
		httpClient: httpClient,
		validate:   validation.New(),
	}, nil
}

// emotion is a label/score pair as sent by the service.
type emotion struct {
	Label string  `json:"label" validate:"required,sentimentlabel"`
	Score float64 `json:"score" validate:"gte=0,lte=1"`
}

// response accepts both the plain shape {text, language, sentiment}
// and the emotion-model shape {text, top_emotion, all_emotions}.
type response struct {
	Text        *string   `json:"text"`
	Language    *string   `json:"language" validate:"omitempty,max=16"`
	Sentiment   *emotion  `json:"sentiment"`
	TopEmotion  *emotion  `json:"top_emotion"`
	AllEmotions []emotion `json:"all_emotions" validate:"omitempty,dive"`
}

// Transcribe uploads the staged audio and normalizes the reply. It never retries.
func (c *Client) Transcribe(ctx context.Context, staged gateways.StagedObject) (*domain.Transcript, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	var writeErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		writeErr = writeBody(pw, mw, staged)
	}()
	defer func() {
		_ = pr.Close()
		<-done
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, pr)
	if err != nil {
		return nil, apperrors.NewPipelineError(apperrors.CodeGatewayUnreachable, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		_ = pr.CloseWithError(err)
		<-done
		var readErr *stagedReadError
		if errors.As(writeErr, &readErr) {
			return nil, apperrors.NewPipelineError(apperrors.CodeRetrievalFailed, readErr)
		}
		return nil, apperrors.NewPipelineError(apperrors.CodeGatewayUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, MaxErrorBodyBytes))
		return nil, apperrors.NewTranscriptionRejectedError(resp.StatusCode, string(body))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperrors.NewPipelineError(apperrors.CodeGatewayUnreachable, fmt.Errorf("read response: %w", err))
	}
	return c.decode(raw)
}

func (c *Client) decode(raw []byte) (*domain.Transcript, error) {
	var r response
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, malformed(fmt.Errorf("decode response: %w", err))
	}
	if r.Text == nil {
		return nil, malformed(errors.New("response has no text"))
	}

	normalizeEmotion(r.Sentiment)
	normalizeEmotion(r.TopEmotion)
	for i := range r.AllEmotions {
		normalizeEmotion(&r.AllEmotions[i])
	}
	if err := c.validate.Struct(r); err != nil {
		return nil, malformed(err)
	}

	t := &domain.Transcript{Text: strings.TrimSpace(*r.Text)}
	if r.Language != nil {
		if lang := strings.ToLower(strings.TrimSpace(*r.Language)); lang != "" {
			t.Language = &lang
		}
	}

	switch {
	case r.Sentiment != nil:
		t.Sentiment = toSentiment(*r.Sentiment)
	case r.TopEmotion != nil:
		t.Sentiment = toSentiment(*r.TopEmotion)
	}

	if len(r.AllEmotions) > 0 {
		t.Emotions = make([]domain.Sentiment, len(r.AllEmotions))
		for i, e := range r.AllEmotions {
			t.Emotions[i] = *toSentiment(e)
		}
		sort.SliceStable(t.Emotions, func(i, j int) bool {
			return t.Emotions[i].Score > t.Emotions[j].Score
		})
	}
	return t, nil
}

func normalizeEmotion(e *emotion) {
	if e != nil {
		e.Label = strings.ToLower(strings.TrimSpace(e.Label))
	}
}

func toSentiment(e emotion) *domain.Sentiment {
	return &domain.Sentiment{Label: domain.SentimentLabel(e.Label), Score: e.Score}
}

func malformed(err error) error {
	return apperrors.NewPipelineError(apperrors.CodeTranscriptionMalformed, err)
}

// stagedReadError marks a failure reading the local file, as opposed to the network.
type stagedReadError struct {
	err error
}

func (e *stagedReadError) Error() string { return "read staged audio: " + e.err.Error() }

func (e *stagedReadError) Unwrap() error { return e.err }

type stagedReader struct {
	r io.Reader
}

func (s stagedReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF {
		err = &stagedReadError{err: err}
	}
	return n, err
}

// writeBody streams the multipart form into pw and closes it with the outcome.
func writeBody(pw *io.PipeWriter, mw *multipart.Writer, staged gateways.StagedObject) error {
	err := func() error {
		src, err := staged.Open()
		if err != nil {
			return &stagedReadError{err: err}
		}
		defer src.Close()

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, formField, uploadFilename))
		h.Set("Content-Type", uploadMediaType)
		part, err := mw.CreatePart(h)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, stagedReader{r: src}); err != nil {
			return err
		}
		return mw.Close()
	}()
	_ = pw.CloseWithError(err)
	return err
}
