// Package locator converts between public S3 object URLs and object references.
package locator

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/SscSPs/voice_journal_app/internal/apperrors"
	"github.com/SscSPs/voice_journal_app/internal/core/domain"
)

// Virtual-hosted style only. Both the dotted and the legacy dashed region forms are accepted.
var s3LocatorPattern = regexp.MustCompile(`^https?://([a-z0-9][a-z0-9-]{1,61}[a-z0-9])\.s3[.-]([a-z0-9-]+)\.amazonaws\.com/([^?#]+)$`)

// Parse extracts the bucket, region and percent-decoded key from a locator.
func Parse(locator string) (domain.ObjectRef, error) {
	m := s3LocatorPattern.FindStringSubmatch(locator)
	if m == nil {
		return domain.ObjectRef{}, invalid(fmt.Errorf("locator %q is not an S3 object URL", locator))
	}
	key, err := url.PathUnescape(m[3])
	if err != nil {
		return domain.ObjectRef{}, invalid(fmt.Errorf("decode object key: %w", err))
	}
	if key == "" {
		return domain.ObjectRef{}, invalid(fmt.Errorf("locator %q has an empty key", locator))
	}
	return domain.ObjectRef{Container: m[1], Region: m[2], Key: key}, nil
}

// Format builds the canonical locator for ref. Parse(Format(ref)) returns ref.
func Format(ref domain.ObjectRef) string {
	segments := strings.Split(ref.Key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", ref.Container, ref.Region, strings.Join(segments, "/"))
}

// Resolver parses locators and rejects buckets other than the configured ones.
type Resolver struct {
	allowed map[string]struct{}
}

// NewResolver returns a Resolver limited to buckets. With no buckets every bucket is accepted.
func NewResolver(buckets ...string) *Resolver {
	allowed := make(map[string]struct{}, len(buckets))
	for _, b := range buckets {
		if b != "" {
			allowed[b] = struct{}{}
		}
	}
	return &Resolver{allowed: allowed}
}

// Resolve implements gateways.LocatorResolver.
func (r *Resolver) Resolve(locator string) (domain.ObjectRef, error) {
	ref, err := Parse(locator)
	if err != nil {
		return domain.ObjectRef{}, err
	}
	if len(r.allowed) > 0 {
		if _, ok := r.allowed[ref.Container]; !ok {
			return domain.ObjectRef{}, invalid(fmt.Errorf("bucket %q is not served here", ref.Container))
		}
	}
	return ref, nil
}

func invalid(err error) error {
	return apperrors.NewPipelineError(apperrors.CodeInvalidObjectReference, err)
}
