package dataset

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// resultsTable is the table name the sampler writes measurement rows to.
const resultsTable = "results"

// ReadSQLite loads the results table from a SQLite database. Rows are read
// in rowid order so record order is reproducible across runs, mirroring the
// file order of the delimited format.
func ReadSQLite(path string) (*Table, error) {
	// sql.Open would create an empty database for a missing path; stat first
	// so a bad path reports dataset-not-found like the delimited loader.
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewNotFoundError(path, err)
		}
		return nil, fmt.Errorf("stat dataset: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open results database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connect to results database: %w", err)
	}

	rows, err := db.Query(`SELECT * FROM ` + resultsTable + ` ORDER BY rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("query results table: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read result columns: %w", err)
	}

	t := NewTable(columns)
	for rows.Next() {
		cells := make([]float64, len(columns))
		dest := make([]any, len(columns))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan result row: %w", err)
		}
		if err := t.AppendRow(cells); err != nil {
			return nil, fmt.Errorf("append result row: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}

	if t.Len() == 0 {
		return nil, NewEmptyDatasetError(path)
	}
	return t, nil
}
