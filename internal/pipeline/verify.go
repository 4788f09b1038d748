package pipeline

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"album_syncer/internal/domain"
)

// ErrChecksumMismatch marks an integrity failure. It is a hard failure for
// the item: the expected and actual hashes land in the item's last error and
// the file is left on disk for investigation, never silently re-fetched.
var ErrChecksumMismatch = errors.New("sha1 mismatch")

// VerifyStage hashes the downloaded file and compares it against the
// catalog's SHA-1.
type VerifyStage struct {
	items ItemStore
}

func NewVerifyStage(items ItemStore) *VerifyStage {
	return &VerifyStage{items: items}
}

func (s *VerifyStage) Name() string { return "verify" }

func (s *VerifyStage) Process(ctx context.Context, item *domain.WorkItem) error {
	if item.Flags.Verified {
		return nil
	}

	actual, err := fileSHA1(item.ResolvedPath)
	if err != nil {
		return fmt.Errorf("hash %s: %w", item.ResolvedPath, err)
	}
	if !strings.EqualFold(actual, item.Asset.SHA1) {
		return fmt.Errorf("%w for asset %d: expected %s, actual %s",
			ErrChecksumMismatch, item.Asset.ID, item.Asset.SHA1, actual)
	}

	if err := s.items.MarkVerified(ctx, item.ID); err != nil {
		return fmt.Errorf("persist verified flag: %w", err)
	}
	item.Flags.Verified = true
	return nil
}

func fileSHA1(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

