package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/events"
	"github.com/spec-kit/inventory-service/internal/repository"
	"github.com/spec-kit/inventory-service/pkg/outcome"
)

// minSearchTermLength is the shortest accepted search term, counted in
// characters rather than bytes.
const minSearchTermLength = 2

// ProductCreateInput describes product creation payload. CreatedAt and
// IsActive are never caller-supplied.
type ProductCreateInput struct {
	Name        string
	CategoryID  int
	Description string
	Code        string
	Price       float64
	Stock       int
}

// ProductUpdateInput describes product update payload.
type ProductUpdateInput struct {
	ID          int
	Name        string
	CategoryID  int
	Description string
	Code        string
	Price       float64
	Stock       int
	IsActive    bool
}

// ProductService applies catalog business rules on top of the entity store
// and reports every expected failure as an outcome value.
type ProductService struct {
	products   repository.ProductStore
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// NewProductService constructs the service.
func NewProductService(products repository.ProductStore, dispatcher events.Dispatcher, logger *zap.Logger) *ProductService {
	return &ProductService{
		products:   products,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// GetAll returns every product, active or not.
func (s *ProductService) GetAll(ctx context.Context) outcome.Outcome[[]domain.Product] {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		s.logger.Error("error retrieving all products", zap.Error(err))
		return outcome.Failure[[]domain.Product]("Error loading products. Please try again.")
	}
	return outcome.Success(products)
}

// GetByID returns a single product by identifier.
func (s *ProductService) GetByID(ctx context.Context, id int) outcome.Outcome[domain.Product] {
	if id <= 0 {
		return outcome.Failure[domain.Product]("The product ID must be greater than 0")
	}

	product, found, err := s.products.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("error obtaining product", zap.Int("product_id", id), zap.Error(err))
		return outcome.Failure[domain.Product]("Error loading product. Please try again.")
	}
	if !found {
		s.logger.Warn("product not found", zap.Int("product_id", id))
		return outcome.Failure[domain.Product](fmt.Sprintf("Product with ID %d not found", id))
	}
	return outcome.Success(product)
}

// Create inserts a new product after enforcing the code uniqueness invariant.
// The uniqueness check scans the full table; a concurrent create between the
// scan and the commit can still slip through (weak isolation, accepted).
func (s *ProductService) Create(ctx context.Context, input ProductCreateInput, actor string) outcome.Outcome[domain.Product] {
	if msg := validateProductFields(input.Name, input.Code, input.Price, input.Stock); msg != "" {
		return outcome.Failure[domain.Product](msg)
	}

	all, err := s.products.GetAll(ctx)
	if err != nil {
		s.logger.Error("error creating product", zap.Error(err))
		return outcome.Failure[domain.Product]("Error creating product. Please try again.")
	}
	for _, existing := range all {
		if strings.EqualFold(existing.Code, input.Code) {
			return outcome.Failure[domain.Product](fmt.Sprintf("A product with the code '%s' already exists.", input.Code))
		}
	}

	product := &domain.Product{
		Name:        input.Name,
		CategoryID:  input.CategoryID,
		Description: input.Description,
		Code:        input.Code,
		Price:       input.Price,
		Stock:       input.Stock,
		IsActive:    true,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.products.Add(ctx, product); err != nil {
		s.logger.Error("error creating product", zap.Error(err))
		return outcome.Failure[domain.Product]("Error creating product. Please try again.")
	}
	if _, err := s.products.Commit(ctx); err != nil {
		s.logger.Error("error creating product", zap.Error(err))
		return outcome.Failure[domain.Product]("Error creating product. Please try again.")
	}

	s.logger.Info("product created", zap.String("name", product.Name), zap.Int("product_id", product.ID))
	s.publish(ctx, events.EventProductCreated, product.ID, actor, fmt.Sprintf("created product '%s'", product.Name))
	return outcome.Success(*product)
}

// Update modifies an existing product. The record's own code is excluded
// from the uniqueness check, so keeping an unchanged code succeeds.
func (s *ProductService) Update(ctx context.Context, input ProductUpdateInput, actor string) outcome.Outcome[domain.Product] {
	if input.ID <= 0 {
		return outcome.Failure[domain.Product]("The product ID must be greater than 0")
	}
	if msg := validateProductFields(input.Name, input.Code, input.Price, input.Stock); msg != "" {
		return outcome.Failure[domain.Product](msg)
	}

	product, found, err := s.products.GetByID(ctx, input.ID)
	if err != nil {
		s.logger.Error("product update failed", zap.Int("product_id", input.ID), zap.Error(err))
		return outcome.Failure[domain.Product]("Product update failed. Please try again.")
	}
	if !found {
		s.logger.Warn("attempt to update non-existent product", zap.Int("product_id", input.ID))
		return outcome.Failure[domain.Product](fmt.Sprintf("Product with ID %d not found", input.ID))
	}

	all, err := s.products.GetAll(ctx)
	if err != nil {
		s.logger.Error("product update failed", zap.Int("product_id", input.ID), zap.Error(err))
		return outcome.Failure[domain.Product]("Product update failed. Please try again.")
	}
	for _, existing := range all {
		if existing.ID != input.ID && strings.EqualFold(existing.Code, input.Code) {
			return outcome.Failure[domain.Product](fmt.Sprintf("A product with the code '%s' already exists.", input.Code))
		}
	}

	// CreatedAt and the identifier survive the update untouched.
	product.Name = input.Name
	product.CategoryID = input.CategoryID
	product.Description = input.Description
	product.Code = input.Code
	product.Price = input.Price
	product.Stock = input.Stock
	product.IsActive = input.IsActive

	if err := s.products.Update(ctx, &product); err != nil {
		s.logger.Error("product update failed", zap.Int("product_id", input.ID), zap.Error(err))
		return outcome.Failure[domain.Product]("Product update failed. Please try again.")
	}
	if _, err := s.products.Commit(ctx); err != nil {
		s.logger.Error("product update failed", zap.Int("product_id", input.ID), zap.Error(err))
		return outcome.Failure[domain.Product]("Product update failed. Please try again.")
	}

	s.logger.Info("product updated", zap.String("name", product.Name), zap.Int("product_id", product.ID))
	s.publish(ctx, events.EventProductUpdated, product.ID, actor, fmt.Sprintf("updated product '%s'", product.Name))
	return outcome.Success(product)
}

// Delete removes a product by identifier.
func (s *ProductService) Delete(ctx context.Context, id int, actor string) outcome.Outcome0 {
	if id <= 0 {
		return outcome.Fail("The product ID must be greater than 0")
	}

	exists, err := s.products.Exists(ctx, id)
	if err != nil {
		s.logger.Error("error deleting the product", zap.Int("product_id", id), zap.Error(err))
		return outcome.Fail("Error deleting the product. Please try again.")
	}
	if !exists {
		s.logger.Warn("attempt to delete non-existent product", zap.Int("product_id", id))
		return outcome.Fail(fmt.Sprintf("Product with ID %d not found", id))
	}

	if err := s.products.Delete(ctx, id); err != nil {
		s.logger.Error("error deleting the product", zap.Int("product_id", id), zap.Error(err))
		return outcome.Fail("Error deleting the product. Please try again.")
	}
	if _, err := s.products.Commit(ctx); err != nil {
		s.logger.Error("error deleting the product", zap.Int("product_id", id), zap.Error(err))
		return outcome.Fail("Error deleting the product. Please try again.")
	}

	s.logger.Info("product removed", zap.Int("product_id", id))
	s.publish(ctx, events.EventProductDeleted, id, actor, fmt.Sprintf("deleted product %d", id))
	return outcome.OK()
}

// Search matches the term case-insensitively against name or code across
// all rows, without pagination.
func (s *ProductService) Search(ctx context.Context, term string) outcome.Outcome[[]domain.Product] {
	if strings.TrimSpace(term) == "" {
		return outcome.Failure[[]domain.Product]("The search term cannot be empty.")
	}
	if utf8.RuneCountInString(term) < minSearchTermLength {
		return outcome.Failure[[]domain.Product]("The search term must be at least 2 characters long")
	}

	needle := strings.ToLower(term)
	matched, err := s.products.Find(ctx, func(p domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Code), needle)
	})
	if err != nil {
		s.logger.Error("error searching for products", zap.String("term", term), zap.Error(err))
		return outcome.Failure[[]domain.Product]("Error searching for products. Please try again.")
	}

	s.logger.Info("product search", zap.String("term", term), zap.Int("results", len(matched)))
	return outcome.Success(matched)
}

// Exists reports whether a product with the given id is stored. Storage
// faults are logged and reported as absence.
func (s *ProductService) Exists(ctx context.Context, id int) bool {
	exists, err := s.products.Exists(ctx, id)
	if err != nil {
		s.logger.Error("error checking product existence", zap.Int("product_id", id), zap.Error(err))
		return false
	}
	return exists
}

func (s *ProductService) publish(ctx context.Context, eventType events.EventType, ref int, actor, detail string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Entity:    "product",
		EntityRef: ref,
		Actor:     actor,
		Detail:    detail,
		Timestamp: s.now().UTC(),
	})
}

func validateProductFields(name, code string, price float64, stock int) string {
	if strings.TrimSpace(name) == "" {
		return "Name is required"
	}
	if strings.TrimSpace(code) == "" {
		return "Code is required"
	}
	if price <= 0 {
		return "The price must be greater than 0"
	}
	if stock < 0 {
		return "The stock cannot be negative"
	}
	return ""
}
