package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSeparator(t *testing.T) {
	tests := []struct {
		name string
		line string
		want rune
	}{
		{"semicolon", "a;b;c", ';'},
		{"tab", "a\tb\tc", '\t'},
		{"comma", "Footscan 7 gait,second generation", ','},
		{"bom prefix", "\uFEFFFootscan;export;v7", ';'},
		{"semicolon wins over decimal comma", "0,01;1,25;3,50", ';'},
		{"single trailing separator", "header;", ';'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectSeparator(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectSeparatorFailures(t *testing.T) {
	for _, line := range []string{"", "no delimiter here", ";;;"} {
		_, err := DetectSeparator(line)
		var detErr *DetectionError
		require.ErrorAs(t, err, &detErr, "line %q", line)
	}
}

func TestDetectFileSeparator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trial.asc")
	require.NoError(t, os.WriteFile(path, []byte("meta;data\nsecond line\n"), 0o644))

	sep, err := DetectFileSeparator(path)
	require.NoError(t, err)
	assert.Equal(t, ';', sep)
}

func TestDetectFileSeparatorEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.asc")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := DetectFileSeparator(path)
	var detErr *DetectionError
	require.ErrorAs(t, err, &detErr)
}
