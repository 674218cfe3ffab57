package dto

import (
	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/service"
)

// CategoryRequest payload for create and update.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse is the wire shape of a category.
type CategoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ToInput converts the request into service input for the given id. Creation
// passes zero.
func (r CategoryRequest) ToInput(id int) service.CategoryInput {
	return service.CategoryInput{ID: id, Name: r.Name}
}

// NewCategoryResponse maps a domain category to its response shape.
func NewCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

// NewCategoryListResponse maps a slice of domain categories.
func NewCategoryListResponse(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}
