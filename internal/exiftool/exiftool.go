// Package exiftool shells out to the exiftool binary to backfill capture
// timestamps that the remote strips from downloaded media.
package exiftool

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"album_syncer/internal/domain"
)

const exifTimeLayout = "2006:01:02 15:04:05"

// Tags exiftool groups under EXIF for still images.
const (
	tagDateTimeOriginal   = "EXIF:DateTimeOriginal"
	tagOffsetTimeOriginal = "EXIF:OffsetTimeOriginal"
)

// QuickTime containers carry the capture time in six places; players
// disagree on which one they read.
var videoTags = []string{
	"QuickTime:CreateDate",
	"QuickTime:ModifyDate",
	"QuickTime:TrackCreateDate",
	"QuickTime:TrackModifyDate",
	"QuickTime:MediaCreateDate",
	"QuickTime:MediaModifyDate",
}

// Runner wraps one exiftool binary. Location controls the zone the
// written timestamps are rendered in.
type Runner struct {
	bin      string
	timeout  time.Duration
	location *time.Location
	logger   *slog.Logger
}

func New(bin string, timeout time.Duration, location *time.Location, logger *slog.Logger) *Runner {
	if location == nil {
		location = time.UTC
	}
	return &Runner{
		bin:      bin,
		timeout:  timeout,
		location: location,
		logger:   logger.With("component", "exiftool"),
	}
}

// Rewrite writes the asset's capture time into the file's metadata when
// the existing tags are absent or zeroed. Audio files carry no usable
// tag group and are left alone, as are files whose tags already hold a
// real timestamp.
func (r *Runner) Rewrite(ctx context.Context, asset domain.Asset, path string) error {
	if asset.Type == domain.MediaAudio {
		return nil
	}

	tags, err := r.readTags(ctx, path)
	if err != nil {
		return fmt.Errorf("read tags of %s: %w", path, err)
	}
	if !needsRewrite(asset.Type, tags) {
		r.logger.Debug("capture time already tagged", "asset_id", asset.ID, "path", path)
		return nil
	}

	args := writeArgs(asset.Type, asset.TakenAt, r.location, path)
	if err := r.run(ctx, args); err != nil {
		return fmt.Errorf("rewrite tags of %s: %w", path, err)
	}

	r.logger.Debug("capture time rewritten", "asset_id", asset.ID, "path", path)
	return nil
}

// readTags runs `exiftool -j -G file` and flattens the single-element
// JSON array it prints.
func (r *Runner) readTags(ctx context.Context, path string) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.bin, "-j", "-G", path)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("exiftool: %w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("exiftool: %w", err)
	}
	return parseTagDump(out)
}

func (r *Runner) run(ctx context.Context, args []string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.bin, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("exiftool: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// parseTagDump decodes the `-j` output, keeping only string-valued tags.
func parseTagDump(raw []byte) (map[string]string, error) {
	var dump []map[string]interface{}
	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&dump); err != nil {
		return nil, fmt.Errorf("decode tag dump: %w", err)
	}
	if len(dump) == 0 {
		return map[string]string{}, nil
	}

	tags := make(map[string]string, len(dump[0]))
	for key, value := range dump[0] {
		if s, ok := value.(string); ok {
			tags[key] = s
		}
	}
	return tags, nil
}

// needsRewrite reports whether the file's capture time tag is missing or
// holds the zeroed placeholder some cameras write.
func needsRewrite(mediaType domain.MediaType, tags map[string]string) bool {
	key := tagDateTimeOriginal
	if mediaType == domain.MediaVideo {
		key = videoTags[0]
	}
	value, ok := tags[key]
	if !ok {
		return true
	}
	return strings.HasPrefix(value, "0000:00:00")
}

// writeArgs builds the exiftool invocation that stamps the capture time.
func writeArgs(mediaType domain.MediaType, takenAt time.Time, location *time.Location, path string) []string {
	local := takenAt.In(location)
	stamp := local.Format(exifTimeLayout)

	args := []string{"-overwrite_original"}
	if mediaType == domain.MediaVideo {
		for _, tag := range videoTags {
			args = append(args, fmt.Sprintf("-%s=%s", tag, stamp))
		}
	} else {
		args = append(args,
			fmt.Sprintf("-%s=%s", tagDateTimeOriginal, stamp),
			fmt.Sprintf("-%s=%s", tagOffsetTimeOriginal, local.Format("-07:00")),
		)
	}
	return append(args, path)
}
