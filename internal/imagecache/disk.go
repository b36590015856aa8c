package imagecache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WithDiskStore enables a second-tier disk store under dir. Memory misses
// consult disk before fetching; successful fetches are written through. The
// directory is created on New.
func WithDiskStore(dir string) Option {
	return func(c *Cache) {
		if dir != "" {
			c.disk = &diskStore{dir: dir}
		}
	}
}

// diskStore persists entries as a raw blob plus a JSON metadata record so
// entries survive process restarts. Writes are atomic (tmp file + rename).
type diskStore struct {
	dir string
}

type diskMeta struct {
	Key      string    `json:"key"`
	StoredAt time.Time `json:"stored_at"`
}

func (d *diskStore) init() error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	return nil
}

func (d *diskStore) pathsFor(locator string) (blob, meta string) {
	sum := sha256.Sum256([]byte(locator))
	name := hex.EncodeToString(sum[:16])
	return filepath.Join(d.dir, name+".img"), filepath.Join(d.dir, name+".json")
}

func (d *diskStore) load(locator string) ([]byte, bool) {
	blobPath, metaPath := d.pathsFor(locator)

	raw, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, false
	}
	var meta diskMeta
	if err := json.Unmarshal(raw, &meta); err != nil || meta.Key != locator {
		return nil, false
	}

	b, err := os.ReadFile(blobPath)
	if err != nil {
		return nil, false
	}
	return b, true
}

func (d *diskStore) store(locator string, b []byte) error {
	blobPath, metaPath := d.pathsFor(locator)

	if err := writeAtomic(blobPath, b); err != nil {
		return fmt.Errorf("write blob: %w", err)
	}

	meta, err := json.Marshal(diskMeta{Key: locator, StoredAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	if err := writeAtomic(metaPath, meta); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}

	return nil
}

func (d *diskStore) remove(locator string) {
	blobPath, metaPath := d.pathsFor(locator)
	_ = os.Remove(blobPath)
	_ = os.Remove(metaPath)
}

func (d *diskStore) clear() {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return
	}
	for _, ent := range entries {
		switch filepath.Ext(ent.Name()) {
		case ".img", ".json":
			_ = os.Remove(filepath.Join(d.dir, ent.Name()))
		}
	}
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
