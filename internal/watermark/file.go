package watermark

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const fileName = "last_index"

type FileStore struct {
	Path string
}

// NewFileStore places the watermark file next to the running executable, not
// the working directory, so cron invocations from any directory hit the same
// file.
func NewFileStore() (*FileStore, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locating executable: %w", err)
	}
	return &FileStore{Path: filepath.Join(filepath.Dir(exe), fileName)}, nil
}

func (s *FileStore) Load() (int, bool, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("reading %s: %w", s.Path, err)
	}

	value, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false, fmt.Errorf("parsing %s: %w", s.Path, err)
	}
	return value, true, nil
}

func (s *FileStore) Save(value int) error {
	err := os.WriteFile(s.Path, []byte(strconv.Itoa(value)), 0644)
	if err != nil {
		return fmt.Errorf("writing %s: %w", s.Path, err)
	}
	return nil
}
