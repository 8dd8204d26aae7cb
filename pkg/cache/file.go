package cache

import (
	"context"
	"os"
	"path/filepath"
)

// FileStore keeps artifacts as plain files under a directory, sharded
// by key hash so no single directory grows unbounded. A Get returns
// exactly the bytes the corresponding Set stored; there is no envelope
// and no metadata, the key hash is the whole story.
type FileStore struct {
	dir string
}

// NewFileStore opens an artifact store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Get reads the artifact stored under key. A missing file is a miss,
// not an error.
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set writes the artifact under key. The write goes through a
// temporary file and a rename so an interrupted render never leaves a
// torn artifact behind.
func (s *FileStore) Set(ctx context.Context, key string, data []byte) error {
	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Delete removes the artifact stored under key, if any.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; every operation opens and closes its own file.
func (s *FileStore) Close() error {
	return nil
}

// path maps a key to its artifact file. The first two hex digits of
// the key hash pick a shard directory, keeping directory listings
// short even for heavily edited layouts.
func (s *FileStore) path(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(s.dir, sum[:2], sum[2:]+".artifact")
}

var _ Cache = (*FileStore)(nil)
