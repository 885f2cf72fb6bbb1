package history

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/pkg/filesystem"
	"github.com/doeshing/tams-go/internal/ports"
)

// FileStore appends journal records to a jsonl file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Record implements ports.CallRecorder.
func (f *FileStore) Record(record domain.CallRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := filesystem.EnsureParent(f.path, domain.DirectoryPermissions); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.SecureFilePermissions)
	if err != nil {
		return err
	}
	defer file.Close()
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	_, err = file.Write(append(data, '\n'))
	return err
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Clear removes the journal file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Records returns the newest entries first (best-effort: unreadable lines are skipped).
func (f *FileStore) Records(limit int) ([]domain.CallRecord, error) {
	f.mu.Lock()
	records, err := f.readAll()
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	records = reversed(records)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Prune rewrites the file without entries older than before.
func (f *FileStore) Prune(before time.Time) (int, error) {
	if before.IsZero() {
		return 0, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	records, err := f.readAll()
	if err != nil {
		return 0, err
	}
	kept := records[:0]
	for _, rec := range records {
		if !rec.Timestamp.Before(before) {
			kept = append(kept, rec)
		}
	}
	removed := len(records) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := writeJSONL(f.path, kept); err != nil {
		return 0, fmt.Errorf("rewrite journal: %w", err)
	}
	return removed, nil
}

// ExportJSON copies the journal to dest, oldest first.
func (f *FileStore) ExportJSON(dest string) error {
	f.mu.Lock()
	records, err := f.readAll()
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return writeJSONL(dest, records)
}

func (f *FileStore) readAll() ([]domain.CallRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var records []domain.CallRecord
	for _, line := range bytes.Split(bytes.TrimSpace(data), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var rec domain.CallRecord
		if err := json.Unmarshal(line, &rec); err == nil {
			records = append(records, rec)
		}
	}
	return records, nil
}

func writeJSONL(dest string, records []domain.CallRecord) error {
	file, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.SecureFilePermissions)
	if err != nil {
		return err
	}
	defer file.Close()
	enc := json.NewEncoder(file)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

func reversed(records []domain.CallRecord) []domain.CallRecord {
	out := make([]domain.CallRecord, len(records))
	for i, rec := range records {
		out[len(records)-1-i] = rec
	}
	return out
}

var _ ports.HistoryRepository = (*FileStore)(nil)
