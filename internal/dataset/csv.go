package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ReadFile loads a results file, dispatching on extension: ".db" and
// ".sqlite" read a SQLite results database, anything else reads delimited
// text.
func ReadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		return ReadSQLite(path)
	default:
		return ReadCSV(path)
	}
}

// ReadCSV loads a comma-delimited results file with a header row.
// Every cell below the header must parse as a float.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewNotFoundError(path, err)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, NewEmptyDatasetError(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t := NewTable(header)
	for row := 1; ; row++ {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read data row %d: %w", row, err)
		}

		cells := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, NewBadCellError(path, header[i], row, err)
			}
			cells[i] = v
		}
		if err := t.AppendRow(cells); err != nil {
			return nil, fmt.Errorf("data row %d: %w", row, err)
		}
	}

	if t.Len() == 0 {
		return nil, NewEmptyDatasetError(path)
	}
	return t, nil
}
