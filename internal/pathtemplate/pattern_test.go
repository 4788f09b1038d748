package pathtemplate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConvertPattern(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"yyyy", "2006"},
		{"YYYY", "2006"},
		{"yy", "06"},
		{"yyyy-MM-dd", "2006-01-02"},
		{"yyyyMMdd_HHmmss", "20060102_150405"},
		{"MMM d, yyyy", "Jan 2, 2006"},
		{"EEEE", "Monday"},
		{"hh.mm a", "03.04 PM"},
	}
	for _, tt := range tests {
		got, err := convertPattern(tt.pattern)
		assert.NoError(t, err, tt.pattern)
		assert.Equal(t, tt.want, got, tt.pattern)
	}
}

func TestConvertPatternRejects(t *testing.T) {
	for _, pattern := range []string{"Q", "yyyyQ", "SSS", "week1", "G"} {
		_, err := convertPattern(pattern)
		assert.Error(t, err, pattern)
	}
}

func TestFormatInstantNilLocationDefaultsUTC(t *testing.T) {
	ts := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	got, err := formatInstant(ts, nil, "yyyy-MM-dd HH:mm")
	assert.NoError(t, err)
	assert.Equal(t, "2024-04-01 12:00", got)
}
