// Package pathtemplate turns an asset and its run context into the target
// filesystem path. Resolution is pure and total: bad templates degrade to
// literal passthrough, never an error.
package pathtemplate

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"album_syncer/internal/domain"
)

var tokenPattern = regexp.MustCompile(`\$\{([^}]*)\}`)

// Resolve maps (asset, run) to the path the asset will be materialized at.
//
// When the run's template is blank or contains no ${...} marker at all, the
// legacy layout base/album/file is used; a non-blank constant template is
// deliberately treated the same way, because an operator who writes a path
// without tokens almost certainly forgot to template it, and multiplexing
// every asset into one shared path would be worse than falling back.
func Resolve(asset domain.Asset, run domain.RunContext) string {
	tmpl := strings.TrimSpace(run.TargetPathTemplate)
	if tmpl == "" || !strings.Contains(tmpl, "${") {
		return legacyPath(asset, run)
	}

	raw := tokenPattern.ReplaceAllStringFunc(run.TargetPathTemplate, func(token string) string {
		name := token[2 : len(token)-1]
		value, ok := resolveToken(name, asset, run)
		if !ok {
			return token
		}
		return value
	})
	return filepath.Clean(raw)
}

// legacyPath is the fixed base/album/file fallback. Audio file names collide
// across recording sources far more often than camera names do, so they get
// the asset id prefixed.
func legacyPath(asset domain.Asset, run domain.RunContext) string {
	name := asset.FileName
	if asset.Type == domain.MediaAudio {
		name = fmt.Sprintf("%d_%s", asset.ID, asset.FileName)
	}
	return filepath.Join(run.TargetPathBase, sanitize(asset.AlbumName), name)
}

func resolveToken(name string, asset domain.Asset, run domain.RunContext) (string, bool) {
	switch name {
	case "album", "albumName":
		return sanitize(asset.AlbumName), true
	case "fileName":
		return sanitize(asset.FileName), true
	case "fileStem":
		stem, _ := splitFileName(asset.FileName)
		return stem, true
	case "fileExt":
		_, ext := splitFileName(asset.FileName)
		return ext, true
	case "assetId":
		return strconv.FormatInt(asset.ID, 10), true
	case "assetType":
		return strings.ToLower(string(asset.Type)), true
	case "sha1":
		return asset.SHA1, true
	case "title":
		return asset.Title, true
	case "size":
		return strconv.FormatInt(asset.Size, 10), true
	case "crontabId":
		return strconv.FormatInt(run.JobID, 10), true
	case "crontabName":
		return run.JobName, true
	case "historyId":
		return strconv.FormatInt(run.RunID, 10), true
	case "downloadEpochSeconds":
		return strconv.FormatInt(run.StartTime.Unix(), 10), true
	case "takenEpochSeconds":
		return strconv.FormatInt(asset.TakenAt.Unix(), 10), true
	}

	if pattern, ok := strings.CutPrefix(name, "download_"); ok {
		value, err := formatInstant(run.StartTime, run.Location, pattern)
		return value, err == nil
	}
	if pattern, ok := strings.CutPrefix(name, "taken_"); ok {
		value, err := formatInstant(asset.TakenAt, run.Location, pattern)
		return value, err == nil
	}
	return "", false
}

// splitFileName splits on the last dot. A name without a dot is all stem;
// the extension never includes the dot.
func splitFileName(name string) (stem, ext string) {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}

var sanitizeReplacer = strings.NewReplacer(
	":", "_",
	"*", "_",
	"?", "_",
	`"`, "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// sanitize replaces the filesystem-hostile characters in album and file
// names. Other token values come from safe alphabets and stay untouched.
func sanitize(s string) string {
	return sanitizeReplacer.Replace(s)
}
