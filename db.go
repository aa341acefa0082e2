package img2c

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Cache records the checksum of every image already converted so batch
// runs can skip inputs that have not changed since the last run. Entries
// are keyed by input path and format; converting the same file to a
// different format is a separate entry.
type Cache struct {
	db *sql.DB
}

// OpenCache opens, creating if necessary, the conversion cache at file.
func OpenCache(file string) (*Cache, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (id INTEGER PRIMARY KEY NOT NULL, path TEXT NOT NULL, format TEXT NOT NULL, crc TEXT NOT NULL, UNIQUE(path, format))"); err != nil {
		return nil, err
	}

	return &Cache{
		db: db,
	}, nil
}

// FindCRC returns the checksum recorded for the given input and format, or
// the empty string when there is no entry.
func (c *Cache) FindCRC(path, format string) (string, error) {
	var crc string
	switch err := c.db.QueryRow("SELECT crc FROM conversion WHERE path = ? AND format = ?", path, format).Scan(&crc); err {
	case sql.ErrNoRows:
		return "", nil
	case nil:
		return crc, nil
	default:
		return "", err
	}
}

// Store records, or replaces, the checksum for the given input and format.
func (c *Cache) Store(path, format, crc string) error {
	_, err := c.db.Exec("INSERT INTO conversion (path, format, crc) VALUES (?, ?, ?) ON CONFLICT(path, format) DO UPDATE SET crc = excluded.crc", path, format, crc)
	return err
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
