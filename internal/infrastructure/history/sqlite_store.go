package history

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/pkg/filesystem"
	"github.com/doeshing/tams-go/internal/ports"
)

// SQLiteStore persists the request journal in a SQLite database. When the database
// cannot be opened it degrades to a jsonl FileStore beside it.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	fallback *FileStore
	mu       sync.Mutex
}

// NewSQLiteStore creates (or opens) the journal at path.
func NewSQLiteStore(path string) *SQLiteStore {
	_ = filesystem.EnsureParent(path, domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return degraded(path)
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		_ = db.Close()
		return degraded(path)
	}
	return store
}

func degraded(path string) *SQLiteStore {
	jsonl := strings.TrimSuffix(path, filepath.Ext(path)) + ".jsonl"
	return &SQLiteStore{path: jsonl, fallback: NewFileStore(jsonl)}
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS calls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ts_unix INTEGER NOT NULL,
		operation TEXT,
		method TEXT,
		path TEXT,
		success INTEGER,
		failure_kind TEXT,
		status_code INTEGER,
		message TEXT,
		duration_ms INTEGER,
		request_id TEXT
	);`)
	return err
}

// Degraded reports whether the store fell back to the jsonl file.
func (s *SQLiteStore) Degraded() bool {
	return s.fallback != nil
}

// Record implements ports.CallRecorder.
func (s *SQLiteStore) Record(record domain.CallRecord) error {
	if s.fallback != nil {
		return s.fallback.Record(record)
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO calls
		(ts_unix, operation, method, path, success, failure_kind, status_code, message, duration_ms, request_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.Timestamp.UnixNano(),
		record.Operation,
		record.Method,
		record.Path,
		boolToInt(record.Success),
		string(record.FailureKind),
		record.StatusCode,
		record.Message,
		record.DurationMS,
		record.RequestID,
	)
	if err != nil {
		return fmt.Errorf("insert call record: %w", err)
	}
	return nil
}

// Records returns the newest entries first; limit <= 0 returns all.
func (s *SQLiteStore) Records(limit int) ([]domain.CallRecord, error) {
	if s.fallback != nil {
		return s.fallback.Records(limit)
	}
	query := "SELECT ts_unix, operation, method, path, success, failure_kind, status_code, message, duration_ms, request_id FROM calls ORDER BY ts_unix DESC, id DESC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query call records: %w", err)
	}
	defer rows.Close()

	var records []domain.CallRecord
	for rows.Next() {
		var rec domain.CallRecord
		var ts int64
		var success int
		var kind string
		if err := rows.Scan(&ts, &rec.Operation, &rec.Method, &rec.Path, &success, &kind, &rec.StatusCode, &rec.Message, &rec.DurationMS, &rec.RequestID); err != nil {
			return nil, err
		}
		rec.Timestamp = time.Unix(0, ts)
		rec.Success = success == 1
		rec.FailureKind = domain.FailureKind(kind)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all journal entries.
func (s *SQLiteStore) Clear() error {
	if s.fallback != nil {
		return s.fallback.Clear()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM calls")
	return err
}

// Prune deletes entries older than before and reports how many were removed.
func (s *SQLiteStore) Prune(before time.Time) (int, error) {
	if s.fallback != nil {
		return s.fallback.Prune(before)
	}
	if before.IsZero() {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.Exec("DELETE FROM calls WHERE ts_unix < ?", before.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("prune call records: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// ExportJSON writes the journal to a jsonl file, oldest first.
func (s *SQLiteStore) ExportJSON(dest string) error {
	records, err := s.Records(0)
	if err != nil {
		return err
	}
	return writeJSONL(dest, reversed(records))
}

// Path returns the backing database (or fallback file) path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
