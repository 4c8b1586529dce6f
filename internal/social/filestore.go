package social

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileStore persists quota state as a small JSON file, the durable default
// for single-process deployments.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed quota store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted state. A missing file is a fresh start, not an
// error.
func (fs *FileStore) Load(_ context.Context) (RateLimitState, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return RateLimitState{}, nil
		}
		return RateLimitState{}, fmt.Errorf("read quota file: %w", err)
	}

	var state RateLimitState
	if err := json.Unmarshal(data, &state); err != nil {
		// A corrupt counter file must not wedge the client; start fresh.
		return RateLimitState{}, nil
	}
	return state, nil
}

// Save writes the state atomically via rename.
func (fs *FileStore) Save(_ context.Context, state RateLimitState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal quota state: %w", err)
	}

	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write quota file: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("replace quota file: %w", err)
	}
	return nil
}
