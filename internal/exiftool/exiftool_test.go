package exiftool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"album_syncer/internal/domain"
)

func TestParseTagDump(t *testing.T) {
	tags, err := parseTagDump([]byte(`[{
		"SourceFile": "IMG_001.jpg",
		"EXIF:DateTimeOriginal": "2024:04:01 08:00:00",
		"File:FileSize": 2048
	}]`))
	require.NoError(t, err)

	assert.Equal(t, "2024:04:01 08:00:00", tags["EXIF:DateTimeOriginal"])
	assert.NotContains(t, tags, "File:FileSize")
}

func TestParseTagDumpEmpty(t *testing.T) {
	tags, err := parseTagDump([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, tags)

	_, err = parseTagDump([]byte(`not json`))
	require.Error(t, err)
}

func TestNeedsRewrite(t *testing.T) {
	tests := []struct {
		name      string
		mediaType domain.MediaType
		tags      map[string]string
		want      bool
	}{
		{
			name:      "image tag missing",
			mediaType: domain.MediaImage,
			tags:      map[string]string{},
			want:      true,
		},
		{
			name:      "image tag zeroed",
			mediaType: domain.MediaImage,
			tags:      map[string]string{"EXIF:DateTimeOriginal": "0000:00:00 00:00:00"},
			want:      true,
		},
		{
			name:      "image tag present",
			mediaType: domain.MediaImage,
			tags:      map[string]string{"EXIF:DateTimeOriginal": "2024:04:01 08:00:00"},
			want:      false,
		},
		{
			name:      "video create date missing",
			mediaType: domain.MediaVideo,
			tags:      map[string]string{"EXIF:DateTimeOriginal": "2024:04:01 08:00:00"},
			want:      true,
		},
		{
			name:      "video create date present",
			mediaType: domain.MediaVideo,
			tags:      map[string]string{"QuickTime:CreateDate": "2024:04:01 08:00:00"},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, needsRewrite(tt.mediaType, tt.tags))
		})
	}
}

func TestWriteArgsImage(t *testing.T) {
	shanghai, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)

	takenAt := time.Date(2024, 4, 1, 13, 30, 0, 0, time.UTC)
	args := writeArgs(domain.MediaImage, takenAt, shanghai, "/photos/IMG_001.jpg")

	assert.Equal(t, []string{
		"-overwrite_original",
		"-EXIF:DateTimeOriginal=2024:04:01 21:30:00",
		"-EXIF:OffsetTimeOriginal=+08:00",
		"/photos/IMG_001.jpg",
	}, args)
}

func TestWriteArgsVideo(t *testing.T) {
	takenAt := time.Date(2024, 4, 1, 13, 30, 0, 0, time.UTC)
	args := writeArgs(domain.MediaVideo, takenAt, time.UTC, "/videos/VID_001.mp4")

	require.Len(t, args, 8)
	assert.Equal(t, "-overwrite_original", args[0])
	assert.Equal(t, "-QuickTime:CreateDate=2024:04:01 13:30:00", args[1])
	assert.Equal(t, "-QuickTime:MediaModifyDate=2024:04:01 13:30:00", args[6])
	assert.Equal(t, "/videos/VID_001.mp4", args[7])
}
