package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go-catalog-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func testProduct(id, sku string) model.Product {
	return model.Product{
		ID:        id,
		Name:      "Widget",
		SKU:       sku,
		Price:     9.99,
		Stock:     3,
		Category:  "tools",
		CreatedAt: "2024-01-01T00:00:00Z",
		UpdatedAt: "2024-01-01T00:00:00Z",
	}
}

func TestLoadBootstrapsMissingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	primary := filepath.Join(dir, "products.json")
	s := NewFileStore(primary, filepath.Join(dir, "Product.json"))

	products, shape, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Equal(t, ShapeObject, shape)

	raw, err := os.ReadFile(primary)
	require.NoError(t, err)

	var doc struct {
		Products []model.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.NotNil(t, doc.Products)
	assert.Empty(t, doc.Products)
}

func TestLoadPrefersPrimaryThenLegacy(t *testing.T) {
	t.Parallel()

	t.Run("legacy used when primary missing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		legacy := filepath.Join(dir, "Product.json")
		writeFile(t, legacy, `{"products": [{"id": "p1", "sku": "A-1"}]}`)

		s := NewFileStore(filepath.Join(dir, "products.json"), legacy)
		products, shape, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, ShapeObject, shape)
		require.Len(t, products, 1)
		assert.Equal(t, "p1", products[0].ID)
	})

	t.Run("primary wins over legacy", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		primary := filepath.Join(dir, "products.json")
		legacy := filepath.Join(dir, "Product.json")
		writeFile(t, primary, `[{"id": "new"}]`)
		writeFile(t, legacy, `[{"id": "old"}]`)

		s := NewFileStore(primary, legacy)
		products, _, err := s.Load()
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "new", products[0].ID)
	})
}

func TestShapeDetection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		wantShape Shape
		wantLen   int
	}{
		{name: "bare array", content: `[{"id": "a"}, {"id": "b"}]`, wantShape: ShapeArray, wantLen: 2},
		{name: "wrapped object", content: `{"products": [{"id": "a"}]}`, wantShape: ShapeObject, wantLen: 1},
		{name: "empty array", content: `[]`, wantShape: ShapeArray, wantLen: 0},
		{name: "empty file", content: ``, wantShape: ShapeObject, wantLen: 0},
		{name: "malformed", content: `{"products": `, wantShape: ShapeObject, wantLen: 0},
		{name: "wrong field", content: `{"items": []}`, wantShape: ShapeObject, wantLen: 0},
		{name: "scalar", content: `42`, wantShape: ShapeObject, wantLen: 0},
		{name: "broken array", content: `[{"id":`, wantShape: ShapeObject, wantLen: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			primary := filepath.Join(dir, "products.json")
			writeFile(t, primary, tt.content)

			s := NewFileStore(primary, "")
			products, shape, err := s.Load()
			require.NoError(t, err)
			assert.Equal(t, tt.wantShape, shape)
			assert.Len(t, products, tt.wantLen)
		})
	}
}

func TestSavePreservesShape(t *testing.T) {
	t.Parallel()

	t.Run("array stays array", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		primary := filepath.Join(dir, "products.json")
		writeFile(t, primary, `[]`)

		s := NewFileStore(primary, "")
		products, shape, err := s.Load()
		require.NoError(t, err)
		require.Equal(t, ShapeArray, shape)

		products = append(products, testProduct("p1", "A-1"))
		require.NoError(t, s.Save(products, shape))

		raw, err := os.ReadFile(primary)
		require.NoError(t, err)

		var arr []model.Product
		require.NoError(t, json.Unmarshal(raw, &arr), "file should still be a bare array")
		require.Len(t, arr, 1)

		// and it survives another round trip
		products, shape, err = s.Load()
		require.NoError(t, err)
		assert.Equal(t, ShapeArray, shape)
		assert.Len(t, products, 1)
	})

	t.Run("object stays object", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		primary := filepath.Join(dir, "products.json")
		writeFile(t, primary, `{"products": []}`)

		s := NewFileStore(primary, "")
		products, shape, err := s.Load()
		require.NoError(t, err)
		require.Equal(t, ShapeObject, shape)

		products = append(products, testProduct("p1", "A-1"))
		require.NoError(t, s.Save(products, shape))

		raw, err := os.ReadFile(primary)
		require.NoError(t, err)

		var doc struct {
			Products []model.Product `json:"products"`
		}
		require.NoError(t, json.Unmarshal(raw, &doc))
		require.Len(t, doc.Products, 1)
		assert.Equal(t, "A-1", doc.Products[0].SKU)
	})
}

func TestSaveWritesToLoadedPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	primary := filepath.Join(dir, "products.json")
	legacy := filepath.Join(dir, "Product.json")
	writeFile(t, legacy, `{"products": []}`)

	s := NewFileStore(primary, legacy)
	products, shape, err := s.Load()
	require.NoError(t, err)

	require.NoError(t, s.Save(append(products, testProduct("p1", "A-1")), shape))

	_, err = os.Stat(primary)
	assert.True(t, os.IsNotExist(err), "save must not create the primary file when the legacy one was loaded")

	reloaded, _, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, reloaded, 1)
}

func TestLoadSeesExternalEdits(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	primary := filepath.Join(dir, "products.json")
	writeFile(t, primary, `{"products": []}`)

	s := NewFileStore(primary, "")
	products, _, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, products)

	// simulate an edit from outside the process
	writeFile(t, primary, `{"products": [{"id": "ext", "sku": "EXT-1"}]}`)

	products, _, err = s.Load()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "ext", products[0].ID)
}
