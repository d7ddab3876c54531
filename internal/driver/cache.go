package driver

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"

	"cedar/internal/diag"
	"cedar/internal/source"
)

// Bump when the payload layout or the diagnostics produced for a given
// input change.
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результат проверки файла по SHA-256 его содержимого.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedError is a diagnostic without its file; the file is rebound on load.
type CachedError struct {
	Code    uint16
	Message string
	Start   uint32
	End     uint32
	Line    uint32
	Column  uint32
}

// CachePayload is what one entry stores.
type CachePayload struct {
	Schema uint16
	Decls  int
	Errors []CachedError
}

// NewDiskCache uses dir as the cache root, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create cache dir %s", dir)
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCache opens the cache under $XDG_CACHE_HOME/app (or ~/.cache/app).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "locate cache dir")
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "files", hex.EncodeToString(key[:])+".mp")
}

// Put serializes payload under key, replacing any previous entry atomically.
func (c *DiskCache) Put(key [32]byte, payload *CachePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return errors.Wrap(err, "cache put")
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return errors.Wrap(err, "cache put")
	}
	defer func() { _ = os.Remove(f.Name()) }()

	payload.Schema = diskCacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "cache encode")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "cache put")
	}
	// атомарная замена
	return errors.Wrap(os.Rename(f.Name(), p), "cache put")
}

// Get loads the entry for key. A missing entry or one written by another
// schema version is a miss, not an error.
func (c *DiskCache) Get(key [32]byte) (*CachePayload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "cache get")
	}
	defer func() { _ = f.Close() }()

	var out CachePayload
	if err := msgpack.NewDecoder(f).Decode(&out); err != nil {
		return nil, false, errors.Wrap(err, "cache decode")
	}
	if out.Schema != diskCacheSchemaVersion {
		return nil, false, nil
	}
	return &out, true, nil
}

// DropAll removes every entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return errors.Wrap(err, "cache drop")
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return errors.Wrap(err, "cache drop")
	}
	return errors.Wrap(os.RemoveAll(old), "cache drop")
}

func toPayload(decls int, errs []*diag.Error) *CachePayload {
	p := &CachePayload{Decls: decls}
	for _, e := range errs {
		p.Errors = append(p.Errors, CachedError{
			Code:    uint16(e.Code),
			Message: e.Message,
			Start:   e.Span.Start,
			End:     e.Span.End,
			Line:    e.Line,
			Column:  e.Column,
		})
	}
	return p
}

// bind rebuilds the positioned errors against file f.
func (p *CachePayload) bind(f *source.File) []*diag.Error {
	if len(p.Errors) == 0 {
		return nil
	}
	out := make([]*diag.Error, 0, len(p.Errors))
	for _, ce := range p.Errors {
		span := source.Span{File: f.ID, Start: ce.Start, End: ce.End}
		out = append(out, diag.NewErrorAt(f, diag.Code(ce.Code), span, ce.Line, ce.Column, ce.Message))
	}
	return out
}
