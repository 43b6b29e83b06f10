package diskcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const layoutFile = ".diskcache.json"

// persistedLayout captures the subset of CacheOptions that decides where a
// key lives and how an object file is decoded.
type persistedLayout struct {
	Category   string `json:"category"`
	Hasher     string `json:"hasher"`
	Suffix     string `json:"suffix,omitempty"`
	Codec      string `json:"codec,omitempty"`
	Compressed bool   `json:"compressed,omitempty"`
}

func newPersistedLayout(c Category, opts CacheOptions) persistedLayout {
	l := persistedLayout{
		Category: c.String(),
		Hasher:   opts.Hasher.Name(),
		Suffix:   c.Suffix(),
	}
	if c == Object {
		l.Codec = opts.Codec.Name()
		l.Compressed = opts.CompressObjects
	}
	return l
}

// verifyOrWriteLayout loads an existing layout file if present and applies it
// to opts so previously written entries stay addressable. If the file does not
// exist, it is created from opts.
func verifyOrWriteLayout(dir string, c Category, opts *CacheOptions) error {
	found, err := loadLayout(dir, c, opts)
	if err != nil || found {
		return err
	}
	// first time: write file
	out, err := json.MarshalIndent(newPersistedLayout(c, *opts), "", "  ")
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return writeFileAtomic(filepath.Join(dir, layoutFile), out, opts.FileMode, opts.SyncWrites)
}

// loadLayout applies the layout file in dir to opts without writing anything.
// It reports false when no layout file exists.
func loadLayout(dir string, c Category, opts *CacheOptions) (bool, error) {
	data, err := os.ReadFile(filepath.Join(dir, layoutFile))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read layout: %w", err)
	}

	var have persistedLayout
	if err := json.Unmarshal(data, &have); err != nil {
		return true, fmt.Errorf("decode layout: %w", err)
	}
	if have.Category != c.String() {
		return true, fmt.Errorf("layout belongs to %s, not %s", have.Category, c)
	}

	// override supplied opts with persisted values to ensure consistency
	if have.Hasher != opts.Hasher.Name() {
		h, err := HasherByName(have.Hasher)
		if err != nil {
			return true, err
		}
		opts.Hasher = h
	}
	if c == Object {
		if have.Codec != opts.Codec.Name() {
			codec, err := CodecByName(have.Codec)
			if err != nil {
				return true, err
			}
			opts.Codec = codec
		}
		opts.CompressObjects = have.Compressed
	}
	return true, nil
}
