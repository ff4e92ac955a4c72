package parser

import "fmt"

// HeaderLine is the 1-based line number of the column header in an
// export file. The three lines above it are device metadata and a
// blank spacer and carry no matrix data.
const HeaderLine = 4

// SeparatorCandidates are the field separators emitted by the export
// software, in detection priority order. Semicolon is tried first:
// exports from locales with a decimal comma use ';' as the field
// separator, so a line can legitimately contain both ';' and ','.
var SeparatorCandidates = []rune{';', '\t', ','}

// DetectionError reports that no candidate separator produced a
// plausible split of the first line.
type DetectionError struct {
	Line string
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("no recognizable field separator in line %q", e.Line)
}

// MalformedFileError reports a structural violation of the expected
// export layout: too few lines, a ragged data row, or a field that is
// not a number where one is required.
type MalformedFileError struct {
	Path   string
	Reason string
}

func (e *MalformedFileError) Error() string {
	return fmt.Sprintf("malformed pressure export %s: %s", e.Path, e.Reason)
}
