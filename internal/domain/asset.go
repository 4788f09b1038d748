package domain

import (
	"errors"
	"time"
)

// ErrAssetDeleted reports that the remote no longer holds the asset's
// bytes even though it is still in the catalog.
var ErrAssetDeleted = errors.New("asset deleted on remote")

// MediaType classifies an asset in the remote catalog.
type MediaType string

const (
	MediaImage MediaType = "IMAGE"
	MediaVideo MediaType = "VIDEO"
	MediaAudio MediaType = "AUDIO"
)

// Asset is the immutable catalog metadata for one remote photo, video or
// audio recording. It is supplied by the catalog client and only read here.
type Asset struct {
	ID        int64     `db:"id"`
	AlbumID   int64     `db:"album_id"`
	AlbumName string    `db:"album_name"`
	FileName  string    `db:"file_name"`
	Title     string    `db:"title"`
	Type      MediaType `db:"type"`
	TakenAt   time.Time `db:"taken_at"`
	SHA1      string    `db:"sha1"`
	MimeType  string    `db:"mime_type"`
	Size      int64     `db:"size"`
}

// Album is one remote album; AssetCount mirrors the remote count after the
// last refresh.
type Album struct {
	ID             int64     `db:"id"`
	Name           string    `db:"name"`
	AssetCount     int64     `db:"asset_count"`
	LastUpdateTime time.Time `db:"last_update_time"`
}

// RecordingsAlbumID is the pseudo album the remote uses for voice
// recordings. It has no timeline endpoint.
const RecordingsAlbumID int64 = -1
