package parser

import (
	"bufio"
	"os"
	"strings"
)

// DetectSeparator infers the field separator used by an export file
// from its first line. The line is inspected as-is: a UTF-8 BOM or
// other metadata prefix does not disturb the count-based check.
// Candidates are tried in the fixed order of SeparatorCandidates and
// the first one that splits the line into at least two fields, not all
// of them empty, wins. Returns a *DetectionError when no candidate
// qualifies.
func DetectSeparator(firstLine string) (rune, error) {
	for _, sep := range SeparatorCandidates {
		fields := strings.Split(firstLine, string(sep))
		if len(fields) < 2 {
			continue
		}
		for _, f := range fields {
			if strings.TrimSpace(f) != "" {
				return sep, nil
			}
		}
	}
	return 0, &DetectionError{Line: firstLine}
}

// DetectFileSeparator reads the first line of the file at path and
// runs DetectSeparator on it.
func DetectFileSeparator(path string) (rune, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, &DetectionError{Line: ""}
	}
	return DetectSeparator(scanner.Text())
}
