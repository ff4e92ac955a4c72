package parser

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// splitDataLine splits a line on sep. A single empty trailing field,
// produced by a line that ends with the separator, is a structural
// blank and is defaulted to "0" rather than rejected.
func splitDataLine(line string, sep rune) []string {
	fields := strings.Split(line, string(sep))
	if n := len(fields); n > 1 && fields[n-1] == "" {
		fields[n-1] = "0"
	}
	return fields
}

// ParseGridFile reads one pressure export and returns its raw sensor
// matrix. The expected layout is fixed: lines 1-3 are metadata and are
// discarded, line 4 is the column header ("time<sep>x1<sep>...<sep>xN"),
// and every later non-blank line is a data row whose first field is a
// timestamp, not a matrix value. The matrix dimensions are derived
// from the file: columns = header fields minus one, rows = number of
// data lines. Structural violations return a *MalformedFileError.
func ParseGridFile(path string, sep rune) (*mat.Dense, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pressure export: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	var header []string
	lineNo := 0
	for lineNo < HeaderLine {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", path, err)
			}
			return nil, &MalformedFileError{
				Path:   path,
				Reason: fmt.Sprintf("expected at least %d lines, got %d", HeaderLine, lineNo),
			}
		}
		lineNo++
		if lineNo == HeaderLine {
			header = strings.Split(scanner.Text(), string(sep))
		}
	}

	// A trailing separator on the header line yields one empty field
	// past the last sensor column.
	if n := len(header); n > 1 && strings.TrimSpace(header[n-1]) == "" {
		header = header[:n-1]
	}
	cols := len(header) - 1
	if cols < 1 {
		return nil, &MalformedFileError{
			Path:   path,
			Reason: fmt.Sprintf("header names %d sensor columns", cols),
		}
	}

	var values []float64
	rows := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitDataLine(line, sep)
		if len(fields) != cols+1 {
			return nil, &MalformedFileError{
				Path:   path,
				Reason: fmt.Sprintf("line %d has %d fields, expected %d", lineNo, len(fields), cols+1),
			}
		}
		// fields[0] is the timestamp marker, not part of the matrix.
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, &MalformedFileError{
					Path:   path,
					Reason: fmt.Sprintf("line %d field %d: non-numeric value %q", lineNo, i+2, f),
				}
			}
			values = append(values, v)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if rows == 0 {
		return nil, &MalformedFileError{Path: path, Reason: "no data rows after header"}
	}

	return mat.NewDense(rows, cols, values), nil
}
