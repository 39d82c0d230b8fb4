// Package staging copies remote audio objects into uniquely named local files.
package staging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/voice_journal_app/internal/apperrors"
	"github.com/SscSPs/voice_journal_app/internal/core/domain"
	"github.com/SscSPs/voice_journal_app/internal/core/ports/gateways"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

const stagedExt = ".mp3"

// DefaultDirName is the directory created under the OS temp dir when no directory is configured.
const DefaultDirName = "vja-staging"

// Config controls where staged files live and how large they may be.
type Config struct {
	Dir      string
	MaxBytes int64        // 0 means unlimited
	Logger   *slog.Logger // nil means slog.Default()
}

// Stager implements gateways.Stager on top of an afero filesystem.
type Stager struct {
	fs       afero.Fs
	dir      string
	maxBytes int64
	fetcher  gateways.ObjectFetcher
	logger   *slog.Logger
	newName  func() string
}

var _ gateways.Stager = (*Stager)(nil)

// NewStager creates the staging directory if needed.
func NewStager(fs afero.Fs, cfg Config, fetcher gateways.ObjectFetcher) (*Stager, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), DefaultDirName)
	}
	if err := fs.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create staging dir %s: %w", dir, err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Stager{
		fs:       fs,
		dir:      dir,
		maxBytes: cfg.MaxBytes,
		fetcher:  fetcher,
		logger:   logger.With(slog.String("component", "staging")),
		newName:  uuid.NewString,
	}, nil
}

// Dir returns the staging directory.
func (s *Stager) Dir() string {
	return s.dir
}

// Stage downloads ref into <dir>/<uuid>.mp3. On any failure the partial file is removed
// and a RetrievalFailed error is returned.
func (s *Stager) Stage(ctx context.Context, ref domain.ObjectRef) (gateways.StagedObject, error) {
	body, err := s.fetcher.FetchObject(ctx, ref)
	if err != nil {
		return nil, retrievalFailed(err)
	}
	defer body.Close()

	path := filepath.Join(s.dir, s.newName()+stagedExt)
	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, retrievalFailed(fmt.Errorf("create staged file: %w", err))
	}

	n, err := s.copyObject(ctx, f, body)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close staged file: %w", cerr)
	}
	if err != nil {
		if rerr := s.fs.Remove(path); rerr != nil && !os.IsNotExist(rerr) {
			s.logger.Warn("Failed to remove partial staged file", slog.String("path", path), slog.String("error", rerr.Error()))
		}
		return nil, retrievalFailed(err)
	}

	return &StagedAudio{fs: s.fs, path: path, size: n}, nil
}

func (s *Stager) copyObject(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	src = &ctxReader{ctx: ctx, r: src}
	if s.maxBytes > 0 {
		src = io.LimitReader(src, s.maxBytes+1)
	}
	n, err := io.Copy(dst, src)
	if err != nil {
		return n, fmt.Errorf("copy object: %w", err)
	}
	if s.maxBytes > 0 && n > s.maxBytes {
		return n, fmt.Errorf("object exceeds %d bytes", s.maxBytes)
	}
	return n, nil
}

// Sweep removes staged files last modified more than olderThan before now.
// Only names this package generates are touched.
func (s *Stager) Sweep(olderThan time.Duration, now time.Time) (int, error) {
	infos, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read staging dir %s: %w", s.dir, err)
	}

	removed := 0
	for _, info := range infos {
		if info.IsDir() || !isStagedName(info.Name()) {
			continue
		}
		if now.Sub(info.ModTime()) <= olderThan {
			continue
		}
		if err := s.fs.Remove(filepath.Join(s.dir, info.Name())); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("failed to remove stale staged file %s: %w", info.Name(), err)
		}
		removed++
	}
	return removed, nil
}

func isStagedName(name string) bool {
	if !strings.HasSuffix(name, stagedExt) {
		return false
	}
	return uuid.Validate(strings.TrimSuffix(name, stagedExt)) == nil
}

func retrievalFailed(err error) error {
	return apperrors.NewPipelineError(apperrors.CodeRetrievalFailed, err)
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// StagedAudio is a staged local copy of a remote object.
type StagedAudio struct {
	fs   afero.Fs
	path string
	size int64

	once       sync.Once
	releaseErr error
}

var _ gateways.StagedObject = (*StagedAudio)(nil)

func (a *StagedAudio) Path() string { return a.path }

func (a *StagedAudio) Size() int64 { return a.size }

// Open returns a reader over the staged bytes.
func (a *StagedAudio) Open() (io.ReadCloser, error) {
	return a.fs.Open(a.path)
}

// Release deletes the staged file. Later calls return the first result.
func (a *StagedAudio) Release() error {
	a.once.Do(func() {
		if err := a.fs.Remove(a.path); err != nil && !os.IsNotExist(err) {
			a.releaseErr = fmt.Errorf("failed to remove staged file %s: %w", a.path, err)
		}
	})
	return a.releaseErr
}
