package staging

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/voice_journal_app/internal/apperrors"
	"github.com/SscSPs/voice_journal_app/internal/core/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDir = "/staging"

var testRef = domain.ObjectRef{Container: "voice-notes", Region: "us-east-1", Key: "a.mp3"}

var errInjected = errors.New("injected failure")

// fakeFetcher serves payload and can fail on open or after failAfter bytes.
type fakeFetcher struct {
	payload   []byte
	openErr   error
	failAfter int // -1 disables
}

func (f *fakeFetcher) FetchObject(ctx context.Context, ref domain.ObjectRef) (io.ReadCloser, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	if f.failAfter < 0 {
		return io.NopCloser(bytes.NewReader(f.payload)), nil
	}
	return io.NopCloser(io.MultiReader(
		bytes.NewReader(f.payload[:f.failAfter]),
		&failingReader{},
	)), nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errInjected }

// closeFailFs fails Close on every file it opens for writing.
type closeFailFs struct {
	afero.Fs
}

func (fs closeFailFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	f, err := fs.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return closeFailFile{File: f}, nil
}

type closeFailFile struct {
	afero.File
}

func (f closeFailFile) Close() error {
	_ = f.File.Close()
	return errInjected
}

// removeFailFs refuses to remove anything.
type removeFailFs struct {
	afero.Fs
}

func (removeFailFs) Remove(string) error { return errInjected }

func listDir(t *testing.T, fs afero.Fs) []string {
	t.Helper()
	infos, err := afero.ReadDir(fs, testDir)
	require.NoError(t, err)
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names
}

func newTestStager(t *testing.T, fs afero.Fs, fetcher *fakeFetcher, maxBytes int64) *Stager {
	t.Helper()
	s, err := NewStager(fs, Config{Dir: testDir, MaxBytes: maxBytes}, fetcher)
	require.NoError(t, err)
	return s
}

func TestStageCopiesObjectAndReleaseIsIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	payload := []byte("ID3 fake mp3 payload")
	s := newTestStager(t, fs, &fakeFetcher{payload: payload, failAfter: -1}, 0)

	staged, err := s.Stage(context.Background(), testRef)
	require.NoError(t, err)

	assert.Equal(t, testDir, filepath.Dir(staged.Path()))
	assert.True(t, isStagedName(filepath.Base(staged.Path())))
	assert.Equal(t, int64(len(payload)), staged.Size())

	r, err := staged.Open()
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, payload, got)

	require.NoError(t, staged.Release())
	require.NoError(t, staged.Release())
	assert.Empty(t, listDir(t, fs))
}

func TestStageNamesAreUnique(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newTestStager(t, fs, &fakeFetcher{payload: []byte("x"), failAfter: -1}, 0)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		staged, err := s.Stage(context.Background(), testRef)
		require.NoError(t, err)
		_, dup := seen[staged.Path()]
		require.False(t, dup, staged.Path())
		seen[staged.Path()] = struct{}{}
	}
	assert.Len(t, listDir(t, fs), 50)
}

func TestStageInterruptedAtEveryOffsetLeavesNoFile(t *testing.T) {
	payload := bytes.Repeat([]byte("0123456789"), 7)

	for offset := 0; offset <= len(payload); offset++ {
		fs := afero.NewMemMapFs()
		s := newTestStager(t, fs, &fakeFetcher{payload: payload, failAfter: offset}, 0)

		staged, err := s.Stage(context.Background(), testRef)

		require.Error(t, err, "offset %d", offset)
		assert.Nil(t, staged)
		assert.ErrorIs(t, err, apperrors.ErrRetrievalFailed)
		assert.ErrorIs(t, err, errInjected)
		assert.Empty(t, listDir(t, fs), "offset %d left a file behind", offset)
	}
}

func TestStageOpenFailureCreatesNothing(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newTestStager(t, fs, &fakeFetcher{openErr: errInjected}, 0)

	_, err := s.Stage(context.Background(), testRef)

	assert.ErrorIs(t, err, apperrors.ErrRetrievalFailed)
	pe, ok := apperrors.AsPipelineError(err)
	require.True(t, ok)
	assert.True(t, pe.Retryable())
	assert.Empty(t, listDir(t, fs))
}

func TestStageCloseFailureRemovesFile(t *testing.T) {
	fs := closeFailFs{Fs: afero.NewMemMapFs()}
	s := newTestStager(t, fs, &fakeFetcher{payload: []byte("abc"), failAfter: -1}, 0)

	_, err := s.Stage(context.Background(), testRef)

	assert.ErrorIs(t, err, apperrors.ErrRetrievalFailed)
	assert.ErrorIs(t, err, errInjected)
	assert.Empty(t, listDir(t, fs))
}

func TestStageLogsFailedCleanupToConfiguredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	fs := removeFailFs{Fs: afero.NewMemMapFs()}
	s, err := NewStager(fs, Config{Dir: testDir, Logger: logger}, &fakeFetcher{payload: []byte("abcdef"), failAfter: 3})
	require.NoError(t, err)

	_, err = s.Stage(context.Background(), testRef)

	assert.ErrorIs(t, err, apperrors.ErrRetrievalFailed)
	assert.Contains(t, buf.String(), "Failed to remove partial staged file")
	assert.Contains(t, buf.String(), "component=staging")
}

func TestStageRejectsOversizedObject(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newTestStager(t, fs, &fakeFetcher{payload: make([]byte, 11), failAfter: -1}, 10)

	_, err := s.Stage(context.Background(), testRef)
	assert.ErrorIs(t, err, apperrors.ErrRetrievalFailed)
	assert.Empty(t, listDir(t, fs))

	exact := newTestStager(t, fs, &fakeFetcher{payload: make([]byte, 10), failAfter: -1}, 10)
	staged, err := exact.Stage(context.Background(), testRef)
	require.NoError(t, err)
	assert.Equal(t, int64(10), staged.Size())
	require.NoError(t, staged.Release())
}

func TestStageCancelledContextLeavesNoFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newTestStager(t, fs, &fakeFetcher{payload: []byte("abc"), failAfter: -1}, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Stage(ctx, testRef)

	assert.ErrorIs(t, err, apperrors.ErrRetrievalFailed)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, listDir(t, fs))
}

func TestSweepRemovesOnlyStaleStagedFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newTestStager(t, fs, &fakeFetcher{payload: []byte("abc"), failAfter: -1}, 0)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	stale := filepath.Join(testDir, "2f1e9a3c-4d4b-4f0e-9d43-6f1f8c1a0b11.mp3")
	fresh := filepath.Join(testDir, "8a0c6b52-1b7e-4a43-8f0d-0c8f4e5b6a22.mp3")
	foreign := filepath.Join(testDir, "keep-me.mp3")
	for _, p := range []string{stale, fresh, foreign} {
		require.NoError(t, afero.WriteFile(fs, p, []byte("x"), 0o600))
	}
	require.NoError(t, fs.Chtimes(stale, now.Add(-2*time.Hour), now.Add(-2*time.Hour)))
	require.NoError(t, fs.Chtimes(fresh, now.Add(-time.Minute), now.Add(-time.Minute)))
	require.NoError(t, fs.Chtimes(foreign, now.Add(-48*time.Hour), now.Add(-48*time.Hour)))

	removed, err := s.Sweep(time.Hour, now)

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.ElementsMatch(t, []string{filepath.Base(fresh), filepath.Base(foreign)}, listDir(t, fs))
}
