package service

import (
	"time"

	"go-catalog-api/internal/apperror"
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/store"
	"go-catalog-api/pkg/validator"

	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ListResult is one page of the collection plus its pagination envelope.
type ListResult struct {
	Page  int
	Limit int
	Total int
	Items []model.Product
}

type ProductService interface {
	List(page, limit int) (*ListResult, error)
	Get(id string) (*model.Product, error)
	Create(req *model.CreateProductRequest) (*model.Product, error)
	Update(id string, req *model.UpdateProductRequest) (*model.Product, error)
	Delete(id string) error
}

type productService struct {
	store store.ProductStore
}

func NewProductService(s store.ProductStore) ProductService {
	return &productService{store: s}
}

// List reloads the collection so external file edits are visible, then
// slices out the requested page. Page and limit are coerced to at least 1;
// a page past the tail is empty, not an error.
func (s *productService) List(page, limit int) (*ListResult, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	products, _, err := s.store.Load()
	if err != nil {
		return nil, apperror.Internal("failed to load products")
	}

	total := len(products)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &ListResult{
		Page:  page,
		Limit: limit,
		Total: total,
		Items: products[start:end],
	}, nil
}

func (s *productService) Get(id string) (*model.Product, error) {
	products, _, err := s.store.Load()
	if err != nil {
		return nil, apperror.Internal("failed to load products")
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, apperror.NotFound("product not found")
}

// Create validates, checks sku uniqueness, then appends and persists. All
// failures are raised before any write reaches the file.
func (s *productService) Create(req *model.CreateProductRequest) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		if validator.HasTag(errs, "required") {
			return nil, apperror.Unprocessable("missing required fields")
		}
		return nil, apperror.Unprocessable("invalid price or stock")
	}

	products, shape, err := s.store.Load()
	if err != nil {
		return nil, apperror.Internal("failed to load products")
	}

	for i := range products {
		if products[i].SKU == req.SKU {
			return nil, apperror.Conflict("sku already exists")
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	product := model.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
		Category:    req.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	products = append(products, product)
	if err := s.store.Save(products, shape); err != nil {
		return nil, apperror.Internal("failed to persist products")
	}
	return &product, nil
}

// Update applies a partial update: only supplied fields change, and
// updatedAt is always refreshed.
func (s *productService) Update(id string, req *model.UpdateProductRequest) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Unprocessable("invalid price or stock")
	}

	products, shape, err := s.store.Load()
	if err != nil {
		return nil, apperror.Internal("failed to load products")
	}

	idx := -1
	for i := range products {
		if products[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperror.NotFound("product not found")
	}

	if req.SKU != nil {
		for i := range products {
			if i != idx && products[i].SKU == *req.SKU {
				return nil, apperror.Conflict("sku already exists")
			}
		}
	}

	p := &products[idx]
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.SKU != nil {
		p.SKU = *req.SKU
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.store.Save(products, shape); err != nil {
		return nil, apperror.Internal("failed to persist products")
	}

	result := *p
	return &result, nil
}

func (s *productService) Delete(id string) error {
	products, shape, err := s.store.Load()
	if err != nil {
		return apperror.Internal("failed to load products")
	}

	idx := -1
	for i := range products {
		if products[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return apperror.NotFound("product not found")
	}

	products = append(products[:idx], products[idx+1:]...)
	if err := s.store.Save(products, shape); err != nil {
		return apperror.Internal("failed to persist products")
	}
	return nil
}
