package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-based store at the given file path.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// AddArtifact stores one artifact record.
func (s *SQLiteStore) AddArtifact(a Artifact) error {
	_, err := s.db.Exec(`
		INSERT INTO artifacts (document, start_offset, end_offset, kind, text)
		VALUES (?, ?, ?, ?, ?)
	`,
		a.Document,
		a.Start,
		a.End,
		a.Kind,
		a.Text,
	)
	if err != nil {
		return fmt.Errorf("inserting artifact: %w", err)
	}

	return nil
}

// GetArtifacts retrieves artifacts for one document, ordered by span.
func (s *SQLiteStore) GetArtifacts(document uuid.UUID) ([]Artifact, error) {
	rows, err := s.db.Query(`
		SELECT document, start_offset, end_offset, kind, text
		FROM artifacts
		WHERE document = ?
		ORDER BY start_offset, end_offset, kind, text
	`, document.String())
	if err != nil {
		return nil, fmt.Errorf("querying artifacts: %w", err)
	}
	defer rows.Close()

	return scanArtifacts(rows)
}

// GetAllArtifacts retrieves every artifact, ordered by span.
// Artifacts without a document sort before tagged ones, matching
// span.Compare.
func (s *SQLiteStore) GetAllArtifacts() ([]Artifact, error) {
	rows, err := s.db.Query(`
		SELECT document, start_offset, end_offset, kind, text
		FROM artifacts
		ORDER BY start_offset, end_offset, document IS NOT NULL, document, kind, text
	`)
	if err != nil {
		return nil, fmt.Errorf("querying artifacts: %w", err)
	}
	defer rows.Close()

	return scanArtifacts(rows)
}

// Count returns the number of stored artifacts.
func (s *SQLiteStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM artifacts").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting artifacts: %w", err)
	}
	return count, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanArtifacts(rows *sql.Rows) ([]Artifact, error) {
	var out []Artifact
	for rows.Next() {
		var a Artifact
		if err := rows.Scan(&a.Document, &a.Start, &a.End, &a.Kind, &a.Text); err != nil {
			return nil, fmt.Errorf("scanning artifact: %w", err)
		}
		out = append(out, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating artifacts: %w", err)
	}

	return out, nil
}
