package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/footscan_analyzer_go/internal/parser"
)

// writeTrial writes a structurally valid export with rows x cols cells
// all set to value, using sep as the field separator.
func writeTrial(t *testing.T, name, sep string, rows, cols int, value float64) string {
	t.Helper()
	header := []string{"time"}
	for j := 1; j <= cols; j++ {
		header = append(header, fmt.Sprintf("x%d", j))
	}
	lines := []string{
		"Footscan export" + sep + "v7",
		"",
		"speed" + sep + "3.0 m/s",
		strings.Join(header, sep),
	}
	for i := 0; i < rows; i++ {
		fields := []string{fmt.Sprintf("%.3f", float64(i)*0.005)}
		for j := 0; j < cols; j++ {
			fields = append(fields, fmt.Sprintf("%.1f", value))
		}
		lines = append(lines, strings.Join(fields, sep))
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestProcessTrialFile(t *testing.T) {
	path := writeTrial(t, "trial.asc", ";", 41, 19, 5.0)

	raw, resampled, err := ProcessTrialFile(path, 336, 144)
	require.NoError(t, err)

	rr, rc := raw.Dims()
	assert.Equal(t, 41, rr)
	assert.Equal(t, 19, rc)

	r, c := resampled.Dims()
	assert.Equal(t, 336, r)
	assert.Equal(t, 144, c)

	// Padded border survives resampling on the three padded sides.
	for j := 0; j < c; j++ {
		assert.InDelta(t, 0, resampled.At(0, j), 1e-9)
		assert.InDelta(t, 0, resampled.At(r-1, j), 1e-9)
	}
	for i := 0; i < r; i++ {
		assert.InDelta(t, 0, resampled.At(i, 0), 1e-9)
	}
	// Deep interior approaches the uniform raw value.
	assert.InDelta(t, 5.0, resampled.At(r/2, c/2), 0.05)
}

func TestProcessTrialFileMixedSeparators(t *testing.T) {
	// Files in one batch may use different separators; each file is
	// detected independently and normalizes to the same resolution.
	semi := writeTrial(t, "semi.asc", ";", 10, 8, 4.0)
	tabbed := writeTrial(t, "tabbed.asc", "\t", 12, 8, 8.0)

	_, g1, err := ProcessTrialFile(semi, 48, 32)
	require.NoError(t, err)
	_, g2, err := ProcessTrialFile(tabbed, 48, 32)
	require.NoError(t, err)

	ts := &TrialSet{}
	ts.Add(semi, constGrid(10, 8, 4.0), g1)
	ts.Add(tabbed, constGrid(12, 8, 8.0), g2)
	mean, err := ts.MeanGrid()
	require.NoError(t, err)

	r, c := mean.Dims()
	assert.Equal(t, 48, r)
	assert.Equal(t, 32, c)
	assert.InDelta(t, 6.0, mean.At(r/2, c/2), 0.1)
}

func TestProcessTrialFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.asc")
	require.NoError(t, os.WriteFile(path, []byte("just;one;line\n"), 0o644))

	_, _, err := ProcessTrialFile(path, 48, 32)
	var malErr *parser.MalformedFileError
	require.ErrorAs(t, err, &malErr)
}

func TestProcessTrialFileTooSmallForCubic(t *testing.T) {
	// 2x2 raw pads to 4x3, one short of the 4x4 cubic minimum.
	path := writeTrial(t, "tiny.asc", ";", 2, 2, 1.0)

	_, _, err := ProcessTrialFile(path, 48, 32)
	var interpErr *InterpolationError
	require.ErrorAs(t, err, &interpErr)
}
