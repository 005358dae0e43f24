// Package store persists the catalog in a single JSON document on disk,
// tolerating the two legacy layouts the file has historically used.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"go-catalog-api/internal/model"
)

// Shape is the outer structural form of the products document. It is
// detected once per load and every save re-serializes with the same shape,
// so round-tripping through the store never rewrites the file's layout.
type Shape string

const (
	// ShapeArray is a bare top-level sequence: [ {...}, ... ].
	ShapeArray Shape = "array"
	// ShapeObject wraps the sequence in {"products": [...]}.
	ShapeObject Shape = "object"
)

// ProductStore loads and saves the whole collection. Load re-reads the file
// every time so external edits are visible without a restart; Save rewrites
// it immediately (last write wins, no locking).
type ProductStore interface {
	Load() ([]model.Product, Shape, error)
	Save(products []model.Product, shape Shape) error
}

type wrappedDoc struct {
	Products []model.Product `json:"products"`
}

// FileStore is the file-backed ProductStore. It probes the primary path
// first, then the legacy one, and bootstraps an empty wrapped document at
// the primary path when neither exists.
type FileStore struct {
	primary string
	legacy  string
	path    string
}

func NewFileStore(primary, legacy string) *FileStore {
	return &FileStore{primary: primary, legacy: legacy}
}

func (s *FileStore) Load() ([]model.Product, Shape, error) {
	path, err := s.locate()
	if err != nil {
		return nil, ShapeObject, err
	}
	s.path = path

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, ShapeObject, err
	}
	products, shape := parseDocument(raw)
	return products, shape, nil
}

func (s *FileStore) Save(products []model.Product, shape Shape) error {
	if products == nil {
		products = []model.Product{}
	}

	var doc any = products
	if shape != ShapeArray {
		doc = wrappedDoc{Products: products}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	path := s.path
	if path == "" {
		path = s.primary
	}
	return os.WriteFile(path, append(out, '\n'), 0o644)
}

// locate returns the document path, creating the primary file with an empty
// wrapped collection on first run.
func (s *FileStore) locate() (string, error) {
	for _, path := range []string{s.primary, s.legacy} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}

	empty, _ := json.MarshalIndent(wrappedDoc{Products: []model.Product{}}, "", "  ")
	if err := os.WriteFile(s.primary, append(empty, '\n'), 0o644); err != nil {
		return "", err
	}
	return s.primary, nil
}

// parseDocument detects the document shape. A bare sequence is ShapeArray;
// an object with a products field is ShapeObject; anything else (empty,
// malformed, wrong layout) normalizes to an empty ShapeObject collection.
func parseDocument(raw []byte) ([]model.Product, Shape) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []model.Product{}, ShapeObject
	}

	if trimmed[0] == '[' {
		var products []model.Product
		if err := json.Unmarshal(trimmed, &products); err != nil {
			return []model.Product{}, ShapeObject
		}
		if products == nil {
			products = []model.Product{}
		}
		return products, ShapeArray
	}

	var doc wrappedDoc
	if err := json.Unmarshal(trimmed, &doc); err != nil || doc.Products == nil {
		return []model.Product{}, ShapeObject
	}
	return doc.Products, ShapeObject
}
