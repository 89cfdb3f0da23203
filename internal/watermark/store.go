// Package watermark persists the single integer marking the highest
// non-pinned notice index processed so far. The invoking scheduler reads the
// previous value and passes it back on the command line; this package owns
// the write side and offers Load for wrappers and tests.
package watermark

import (
	"fmt"

	"MediaNotifier/internal/config"
)

type Store interface {
	// Load returns the stored watermark and whether one exists yet.
	Load() (int, bool, error)
	// Save overwrites the watermark with value.
	Save(value int) error
}

// New selects a backend by config. The file backend is the default and keeps
// the on-disk format (bare decimal in a file named last_index next to the
// executable) that external schedulers already parse.
func New(cfg config.WatermarkConfig) (Store, error) {
	switch cfg.Backend {
	case "", "file":
		return NewFileStore()
	case "mysql":
		return NewMySQLStore(boardKey)
	case "redis":
		return NewRedisStore(boardKey), nil
	default:
		return nil, fmt.Errorf("unknown watermark backend %q", cfg.Backend)
	}
}

// boardKey identifies this board's row/key in the shared mysql and redis
// backends.
const boardKey = "media"
