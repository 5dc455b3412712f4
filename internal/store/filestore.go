package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileStore is a JSONL-backed action log so CLI invocations share history
// between runs. Each line is one ActionLogRecord. Reads load the whole
// file; the log is small enough that this stays cheap.
type FileStore struct {
	mu   sync.Mutex
	path string
	mem  *MemoryStore
}

// OpenFileStore loads (or creates) the JSONL log at path.
func OpenFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, mem: NewMemoryStore()}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, fmt.Errorf("open action log: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		var rec ActionLogRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("parse action log line %d: %w", line, err)
		}
		if err := fs.mem.Append(rec); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read action log: %w", err)
	}
	return fs, nil
}

// Append stores one record in memory and appends it to the log file.
func (s *FileStore) Append(rec ActionLogRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = s.mem.NewID(rec.LoggedAt)
	}
	if err := s.mem.Append(rec); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create action log directory: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open action log for append: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode action log record: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write action log record: %w", err)
	}
	return nil
}

// ListByUser returns a user's records within the optional time range.
func (s *FileStore) ListByUser(userID string, from, to time.Time) ([]ActionLogRecord, error) {
	return s.mem.ListByUser(userID, from, to)
}

// Users returns all user IDs in first-seen order.
func (s *FileStore) Users() ([]string, error) {
	return s.mem.Users()
}
