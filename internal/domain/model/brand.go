package model

import (
	"encoding/json"

	"github.com/gosimple/slug"
)

// Product is a single item in a brand's range.
type Product struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Brand is a partner brand and its ordered product range. Name is unique
// within a catalog and is the source of the brand's URL slug.
type Brand struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Logo        string    `json:"logo"`
	Products    []Product `json:"products"`

	// Source is the brand's catalog entry exactly as stored, when the brand
	// was loaded from a document. The API serves it instead of re-encoding.
	Source json.RawMessage `json:"-"`
}

// Slug returns the URL-safe anchor derived from the brand name.
func (b Brand) Slug() string {
	return slug.Make(b.Name)
}

// ProductKey returns the display key for a product within a brand. Product
// names are only unique per brand.
func (b Brand) ProductKey(p Product) string {
	return b.Name + "-" + p.Name
}
