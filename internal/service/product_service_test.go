package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/events"
	"github.com/spec-kit/inventory-service/internal/store"
)

// faultyProductStore fails every operation, standing in for a broken backend.
type faultyProductStore struct{}

var errStorage = errors.New("storage down")

func (faultyProductStore) GetAll(context.Context) ([]domain.Product, error) {
	return nil, errStorage
}
func (faultyProductStore) GetByID(context.Context, int) (domain.Product, bool, error) {
	return domain.Product{}, false, errStorage
}
func (faultyProductStore) Add(context.Context, *domain.Product) error    { return errStorage }
func (faultyProductStore) Update(context.Context, *domain.Product) error { return errStorage }
func (faultyProductStore) Delete(context.Context, int) error             { return errStorage }
func (faultyProductStore) Exists(context.Context, int) (bool, error)     { return false, errStorage }
func (faultyProductStore) Find(context.Context, func(domain.Product) bool) ([]domain.Product, error) {
	return nil, errStorage
}
func (faultyProductStore) Commit(context.Context) (int, error) { return 0, errStorage }

func newProductService() *ProductService {
	s := NewProductService(
		store.NewMemory[domain.Product, *domain.Product](),
		events.NewInMemoryDispatcher(),
		zap.NewNop(),
	)
	s.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }
	return s
}

func validCreateInput() ProductCreateInput {
	return ProductCreateInput{
		Name:       "Cement",
		CategoryID: 1,
		Code:       "CEM-001",
		Price:      9.90,
		Stock:      50,
	}
}

func TestProductGetByIDRejectsNonPositiveID(t *testing.T) {
	// Faulty backend proves the id check happens before any store access.
	s := NewProductService(faultyProductStore{}, nil, zap.NewNop())

	for _, id := range []int{0, -1} {
		result := s.GetByID(context.Background(), id)
		require.False(t, result.IsSuccess())
		assert.Equal(t, "The product ID must be greater than 0", result.Message())
	}
}

func TestProductGetByIDNotFound(t *testing.T) {
	s := newProductService()

	result := s.GetByID(context.Background(), 42)
	require.False(t, result.IsSuccess())
	assert.Equal(t, "Product with ID 42 not found", result.Message())
}

func TestProductCreateDefaults(t *testing.T) {
	s := newProductService()

	result := s.Create(context.Background(), validCreateInput(), "admin@example.com")
	require.True(t, result.IsSuccess(), result.Message())

	created := result.Value()
	assert.Positive(t, created.ID)
	assert.True(t, created.IsActive, "new products start active")
	assert.Equal(t, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), created.CreatedAt)
}

func TestProductCreateValidation(t *testing.T) {
	s := newProductService()
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*ProductCreateInput)
		message string
	}{
		{"missing name", func(in *ProductCreateInput) { in.Name = "  " }, "Name is required"},
		{"missing code", func(in *ProductCreateInput) { in.Code = "" }, "Code is required"},
		{"zero price", func(in *ProductCreateInput) { in.Price = 0 }, "The price must be greater than 0"},
		{"negative stock", func(in *ProductCreateInput) { in.Stock = -1 }, "The stock cannot be negative"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCreateInput()
			tc.mutate(&input)

			result := s.Create(ctx, input, "admin@example.com")
			require.False(t, result.IsSuccess())
			assert.Equal(t, tc.message, result.Message())
		})
	}
}

func TestProductCreateRejectsDuplicateCodeCaseInsensitive(t *testing.T) {
	s := newProductService()
	ctx := context.Background()

	first := s.Create(ctx, validCreateInput(), "admin@example.com")
	require.True(t, first.IsSuccess(), first.Message())

	dup := validCreateInput()
	dup.Name = "Cheap Cement"
	dup.Code = "cem-001"

	result := s.Create(ctx, dup, "admin@example.com")
	require.False(t, result.IsSuccess())
	assert.Equal(t, "A product with the code 'cem-001' already exists.", result.Message())
}

func TestProductUpdateKeepsOwnCode(t *testing.T) {
	s := newProductService()
	ctx := context.Background()

	created := s.Create(ctx, validCreateInput(), "admin@example.com")
	require.True(t, created.IsSuccess())
	id := created.Value().ID

	// Re-submitting the product's own code is not a conflict.
	result := s.Update(ctx, ProductUpdateInput{
		ID:         id,
		Name:       "Cement Plus",
		CategoryID: 1,
		Code:       "CEM-001",
		Price:      11.50,
		Stock:      40,
		IsActive:   true,
	}, "admin@example.com")
	require.True(t, result.IsSuccess(), result.Message())
	assert.Equal(t, "Cement Plus", result.Value().Name)
	assert.Equal(t, 11.50, result.Value().Price)
}

func TestProductUpdateRejectsAnotherProductsCode(t *testing.T) {
	s := newProductService()
	ctx := context.Background()

	first := s.Create(ctx, validCreateInput(), "admin@example.com")
	require.True(t, first.IsSuccess())

	second := validCreateInput()
	second.Name = "Sand"
	second.Code = "SND-001"
	createdSecond := s.Create(ctx, second, "admin@example.com")
	require.True(t, createdSecond.IsSuccess())

	result := s.Update(ctx, ProductUpdateInput{
		ID:         createdSecond.Value().ID,
		Name:       "Sand",
		CategoryID: 1,
		Code:       "CEM-001",
		Price:      5,
		Stock:      10,
		IsActive:   true,
	}, "admin@example.com")
	require.False(t, result.IsSuccess())
	assert.Equal(t, "A product with the code 'CEM-001' already exists.", result.Message())
}

func TestProductUpdatePreservesCreatedAt(t *testing.T) {
	s := newProductService()
	ctx := context.Background()

	created := s.Create(ctx, validCreateInput(), "admin@example.com")
	require.True(t, created.IsSuccess())
	originalCreatedAt := created.Value().CreatedAt

	s.now = func() time.Time { return time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC) }
	result := s.Update(ctx, ProductUpdateInput{
		ID:         created.Value().ID,
		Name:       "Cement",
		CategoryID: 1,
		Code:       "CEM-001",
		Price:      9.90,
		Stock:      45,
		IsActive:   true,
	}, "admin@example.com")
	require.True(t, result.IsSuccess())
	assert.Equal(t, originalCreatedAt, result.Value().CreatedAt)
}

func TestProductUpdateNotFound(t *testing.T) {
	s := newProductService()

	result := s.Update(context.Background(), ProductUpdateInput{
		ID:    7,
		Name:  "Ghost",
		Code:  "GH-01",
		Price: 1,
	}, "admin@example.com")
	require.False(t, result.IsSuccess())
	assert.Equal(t, "Product with ID 7 not found", result.Message())
}

func TestProductDeleteNotFound(t *testing.T) {
	s := newProductService()

	result := s.Delete(context.Background(), 42, "admin@example.com")
	require.False(t, result.IsSuccess())
	assert.Equal(t, "Product with ID 42 not found", result.Message())
}

func TestProductDeleteRemovesRow(t *testing.T) {
	s := newProductService()
	ctx := context.Background()

	created := s.Create(ctx, validCreateInput(), "admin@example.com")
	require.True(t, created.IsSuccess())
	id := created.Value().ID

	result := s.Delete(ctx, id, "admin@example.com")
	require.True(t, result.IsSuccess(), result.Message())
	assert.False(t, s.Exists(ctx, id))
}

func TestProductSearchTermRules(t *testing.T) {
	s := newProductService()
	ctx := context.Background()

	empty := s.Search(ctx, "   ")
	require.False(t, empty.IsSuccess())
	assert.Equal(t, "The search term cannot be empty.", empty.Message())

	short := s.Search(ctx, "a")
	require.False(t, short.IsSuccess())
	assert.Equal(t, "The search term must be at least 2 characters long", short.Message())

	// The floor counts characters, not bytes: a single two-byte rune is
	// still one character short.
	multibyte := s.Search(ctx, "é")
	require.False(t, multibyte.IsSuccess())
	assert.Equal(t, "The search term must be at least 2 characters long", multibyte.Message())
}

func TestProductSearchMatchesNameOrCode(t *testing.T) {
	s := newProductService()
	ctx := context.Background()

	cement := validCreateInput() // name Cement, code CEM-001
	require.True(t, s.Create(ctx, cement, "admin@example.com").IsSuccess())

	ceiling := validCreateInput()
	ceiling.Name = "Ceiling Panel"
	ceiling.Code = "CE-01"
	require.True(t, s.Create(ctx, ceiling, "admin@example.com").IsSuccess())

	gravel := validCreateInput()
	gravel.Name = "Gravel"
	gravel.Code = "GRV-001"
	require.True(t, s.Create(ctx, gravel, "admin@example.com").IsSuccess())

	result := s.Search(ctx, "ce")
	require.True(t, result.IsSuccess(), result.Message())

	names := make([]string, 0, len(result.Value()))
	for _, p := range result.Value() {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"Cement", "Ceiling Panel"}, names)
}

func TestProductSearchMatchingNameAndCodeYieldsNoDuplicates(t *testing.T) {
	s := newProductService()
	ctx := context.Background()

	input := validCreateInput()
	input.Name = "Cement"
	input.Code = "CE-01"
	require.True(t, s.Create(ctx, input, "admin@example.com").IsSuccess())

	// "ce" hits both the name and the code of the same row; it appears once.
	result := s.Search(ctx, "ce")
	require.True(t, result.IsSuccess(), result.Message())
	assert.Len(t, result.Value(), 1)
}

func TestProductMutationsRejectNonPositiveIDBeforeStoreAccess(t *testing.T) {
	s := NewProductService(faultyProductStore{}, nil, zap.NewNop())
	ctx := context.Background()

	update := s.Update(ctx, ProductUpdateInput{ID: 0, Name: "x", Code: "c", Price: 1}, "a")
	require.False(t, update.IsSuccess())
	assert.Equal(t, "The product ID must be greater than 0", update.Message())

	del := s.Delete(ctx, -5, "a")
	require.False(t, del.IsSuccess())
	assert.Equal(t, "The product ID must be greater than 0", del.Message())
}

func TestProductStorageFaultsReturnGenericMessages(t *testing.T) {
	s := NewProductService(faultyProductStore{}, nil, zap.NewNop())
	ctx := context.Background()

	assert.Equal(t, "Error loading products. Please try again.", s.GetAll(ctx).Message())
	assert.Equal(t, "Error loading product. Please try again.", s.GetByID(ctx, 1).Message())
	assert.Equal(t, "Error creating product. Please try again.", s.Create(ctx, validCreateInput(), "a").Message())
	assert.Equal(t, "Product update failed. Please try again.", s.Update(ctx, ProductUpdateInput{ID: 1, Name: "x", Code: "c", Price: 1}, "a").Message())
	assert.Equal(t, "Error deleting the product. Please try again.", s.Delete(ctx, 1, "a").Message())
	assert.Equal(t, "Error searching for products. Please try again.", s.Search(ctx, "ce").Message())
	assert.False(t, s.Exists(ctx, 1))
}
