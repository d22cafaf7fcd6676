package frame

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	ferrors "github.com/matzehuels/featprune/pkg/errors"
)

// Importance file formats accepted by [ReadImportance].
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatCSV  = "csv"
)

// ReadCSV decodes a numeric feature matrix from r.
//
// The first record is the header and names the features; every following
// record is one observation. Each cell must parse as a float64. Empty cells
// are rejected rather than imputed.
//
// ReadCSV returns an INVALID_INPUT error if the header is missing, a name is
// invalid or duplicated, a record has the wrong number of fields, or a cell
// is not numeric. ReadCSV does not close r.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ferrors.New(ferrors.ErrCodeInvalidInput, "empty input: missing header row")
	}
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "read header")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		if err := ferrors.ValidateFeatureName(header[i]); err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
	}

	cols := make([][]float64, len(header))
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "read line %d", line)
		}
		for i, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "line %d, column %q: not a number", line, header[i])
			}
			if !isFinite(v) {
				return nil, ferrors.New(ferrors.ErrCodeInvalidInput, "line %d, column %q: value %v is not finite", line, header[i], v)
			}
			cols[i] = append(cols[i], v)
		}
	}

	t := NewTable()
	for i, name := range header {
		if err := t.AddColumn(name, cols[i]); err != nil {
			return nil, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "column %q", name)
		}
	}
	return t, nil
}

// ReadCSVFile reads a CSV file at path and returns the decoded table.
// It returns the same errors as [ReadCSV], wrapped with the file path.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}
	defer f.Close()
	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadImportance decodes importance scores from r in the given format.
//
// Supported formats:
//
//	json  {"A": 0.5, "C": 0.7}
//	toml  A = 0.5
//	      C = 0.7
//	csv   feature,score
//	      A,0.5
//	      C,0.7
//
// The CSV form is the tabular variant: it must have exactly two columns and
// its first row is treated as a header when the second cell is not numeric.
// CSV entries keep file order; JSON and TOML entries are ordered by name.
func ReadImportance(r io.Reader, format string) (*Importance, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		var m map[string]float64
		if err := json.NewDecoder(r).Decode(&m); err != nil {
			return nil, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "decode importance json")
		}
		return importanceFromMap(m)
	case FormatTOML:
		var m map[string]float64
		if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
			return nil, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "decode importance toml")
		}
		return importanceFromMap(m)
	case FormatCSV:
		return readImportanceCSV(r)
	default:
		return nil, ferrors.New(ferrors.ErrCodeInvalidFormat, "unsupported importance format %q (must be one of: json, toml, csv)", format)
	}
}

// ReadImportanceFile reads importance scores from path, choosing the format
// from the file extension.
func ReadImportanceFile(path string) (*Importance, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	f, err := os.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}
	defer f.Close()
	imp, err := ReadImportance(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return imp, nil
}

func importanceFromMap(m map[string]float64) (*Importance, error) {
	for name, score := range m {
		if err := ferrors.ValidateFeatureName(name); err != nil {
			return nil, err
		}
		if !isFinite(score) {
			return nil, ferrors.New(ferrors.ErrCodeInvalidInput, "score %v for %q is not finite", score, name)
		}
	}
	return ImportanceFromMap(m), nil
}

func readImportanceCSV(r io.Reader) (*Importance, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	imp := NewImportance()
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "read importance line %d", line)
		}
		name := strings.TrimSpace(rec[0])
		score, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			if line == 1 {
				continue // header
			}
			return nil, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "importance line %d: score for %q is not a number", line, name)
		}
		if !isFinite(score) {
			return nil, ferrors.New(ferrors.ErrCodeInvalidInput, "importance line %d: score %v for %q is not finite", line, score, name)
		}
		if err := ferrors.ValidateFeatureName(name); err != nil {
			return nil, fmt.Errorf("importance line %d: %w", line, err)
		}
		if _, dup := imp.Score(name); dup {
			return nil, ferrors.New(ferrors.ErrCodeInvalidInput, "importance line %d: duplicate feature %q", line, name)
		}
		imp.Set(name, score)
	}
	return imp, nil
}

// isFinite rejects NaN and ±Inf; missing or undefined values are not
// imputed.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func openError(path string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return ferrors.Wrap(ferrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	return fmt.Errorf("open %s: %w", path, err)
}
