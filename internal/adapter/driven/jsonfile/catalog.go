// Package jsonfile implements the CatalogStore port on top of a static JSON
// document of shape Brand[].
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ericfisherdev/liquorlocker/internal/domain/model"
	"github.com/ericfisherdev/liquorlocker/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CatalogStore = (*CatalogFile)(nil)

// CatalogFile reads the brand catalog from disk. The file is read on every
// call so edits are picked up without a restart.
type CatalogFile struct {
	path string
}

// NewCatalogFile creates a CatalogFile for the JSON document at path.
func NewCatalogFile(path string) *CatalogFile {
	return &CatalogFile{path: path}
}

// ListBrands returns the catalog in document order. Read and parse failures
// wrap driven.ErrCatalogUnavailable.
func (c *CatalogFile) ListBrands(ctx context.Context) ([]model.Brand, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w: %w", c.path, driven.ErrCatalogUnavailable, err)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w: %w", c.path, driven.ErrCatalogUnavailable, err)
	}

	brands := make([]model.Brand, 0, len(entries))
	for i, entry := range entries {
		var b model.Brand
		if err := json.Unmarshal(entry, &b); err != nil {
			return nil, fmt.Errorf("parse catalog %s entry %d: %w: %w", c.path, i, driven.ErrCatalogUnavailable, err)
		}
		if b.Products == nil {
			b.Products = []model.Product{}
		}
		b.Source = entry
		brands = append(brands, b)
	}

	return brands, nil
}
