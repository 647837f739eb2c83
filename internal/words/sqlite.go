package words

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// readSQLite loads every row of words(word) from a SQLite file.
// The file is opened read-only and is never created.
func readSQLite(ctx context.Context, path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}

	dsn, err := sqliteDSN(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrSourceUnreadable, path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT word FROM words ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %w", ErrSourceUnreadable, path, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("%w: scan %s: %w", ErrSourceUnreadable, path, err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, path, err)
	}
	return out, nil
}

// sqliteDSN builds a read-only file: URI for path. The path is made absolute
// and escaped so '#', '?' and '%' stay part of the file name.
func sqliteDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(abs),
		RawQuery: "mode=ro&_busy_timeout=5000",
	}
	return u.String(), nil
}
