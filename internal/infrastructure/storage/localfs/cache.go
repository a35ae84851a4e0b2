// Package localfs caches flattened filing text on disk, keyed by accession
// number. EDGAR enforces fair-use limits, so a filing already fetched within
// one process lifetime (or a previous one) is never fetched again.
package localfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Cache struct {
	basePath string
}

func New(basePath string) (*Cache, error) {
	if basePath == "" {
		basePath = "./data/filings"
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create filing cache dir: %w", err)
	}
	return &Cache{basePath: basePath}, nil
}

func (c *Cache) Load(_ context.Context, key string) (string, bool) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (c *Cache) Store(_ context.Context, key string, text string) error {
	if err := os.WriteFile(c.path(key), []byte(text), 0o644); err != nil {
		return fmt.Errorf("write cached filing: %w", err)
	}
	return nil
}

// path flattens the accession number into a safe file name.
func (c *Cache) path(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
	return filepath.Join(c.basePath, safe+".txt")
}
