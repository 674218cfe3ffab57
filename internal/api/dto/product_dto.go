package dto

import (
	"time"

	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/service"
)

// CreateProductRequest payload.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	CategoryID  int     `json:"category_id"`
	Description string  `json:"description"`
	Code        string  `json:"code"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// UpdateProductRequest payload. The identifier comes from the URL path.
type UpdateProductRequest struct {
	Name        string  `json:"name"`
	CategoryID  int     `json:"category_id"`
	Description string  `json:"description"`
	Code        string  `json:"code"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	IsActive    bool    `json:"is_active"`
}

// ProductResponse is the wire shape of a product.
type ProductResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	CategoryID  int       `json:"category_id"`
	Description string    `json:"description"`
	Code        string    `json:"code"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToCreateInput converts the request into service input.
func (r CreateProductRequest) ToCreateInput() service.ProductCreateInput {
	return service.ProductCreateInput{
		Name:        r.Name,
		CategoryID:  r.CategoryID,
		Description: r.Description,
		Code:        r.Code,
		Price:       r.Price,
		Stock:       r.Stock,
	}
}

// ToUpdateInput converts the request into service input for the given id.
func (r UpdateProductRequest) ToUpdateInput(id int) service.ProductUpdateInput {
	return service.ProductUpdateInput{
		ID:          id,
		Name:        r.Name,
		CategoryID:  r.CategoryID,
		Description: r.Description,
		Code:        r.Code,
		Price:       r.Price,
		Stock:       r.Stock,
		IsActive:    r.IsActive,
	}
}

// NewProductResponse maps a domain product to its response shape.
func NewProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		CategoryID:  p.CategoryID,
		Description: p.Description,
		Code:        p.Code,
		Price:       p.Price,
		Stock:       p.Stock,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
}

// NewProductListResponse maps a slice of domain products.
func NewProductListResponse(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}
