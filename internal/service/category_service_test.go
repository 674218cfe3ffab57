package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/events"
	"github.com/spec-kit/inventory-service/internal/store"
)

func newCategoryService() *CategoryService {
	return NewCategoryService(
		store.NewMemory[domain.Category, *domain.Category](),
		events.NewInMemoryDispatcher(),
		zap.NewNop(),
	)
}

func TestCategoryGetByIDRejectsNonPositiveID(t *testing.T) {
	s := newCategoryService()

	result := s.GetByID(context.Background(), 0)
	require.False(t, result.IsSuccess())
	assert.Equal(t, "The category ID must be greater than 0", result.Message())
}

func TestCategoryGetByIDNotFound(t *testing.T) {
	s := newCategoryService()

	result := s.GetByID(context.Background(), 9)
	require.False(t, result.IsSuccess())
	assert.Equal(t, "Category with ID 9 not found", result.Message())
}

func TestCategoryCreateAndFetch(t *testing.T) {
	s := newCategoryService()
	ctx := context.Background()

	created := s.Create(ctx, CategoryInput{Name: "Tools"}, "admin@example.com")
	require.True(t, created.IsSuccess(), created.Message())
	require.Positive(t, created.Value().ID)

	fetched := s.GetByID(ctx, created.Value().ID)
	require.True(t, fetched.IsSuccess())
	assert.Equal(t, "Tools", fetched.Value().Name)
}

func TestCategoryCreateRequiresName(t *testing.T) {
	s := newCategoryService()

	result := s.Create(context.Background(), CategoryInput{Name: "  "}, "admin@example.com")
	require.False(t, result.IsSuccess())
	assert.Equal(t, "Name is required", result.Message())
}

func TestCategoryUpdateNotFound(t *testing.T) {
	s := newCategoryService()

	result := s.Update(context.Background(), CategoryInput{ID: 3, Name: "Paint"}, "admin@example.com")
	require.False(t, result.IsSuccess())
	assert.Equal(t, "Category with ID 3 not found", result.Message())
}

func TestCategoryUpdateRenames(t *testing.T) {
	s := newCategoryService()
	ctx := context.Background()

	created := s.Create(ctx, CategoryInput{Name: "Tools"}, "admin@example.com")
	require.True(t, created.IsSuccess())

	result := s.Update(ctx, CategoryInput{ID: created.Value().ID, Name: "Hand Tools"}, "admin@example.com")
	require.True(t, result.IsSuccess(), result.Message())
	assert.Equal(t, "Hand Tools", result.Value().Name)
}

func TestCategoryDeleteNotFound(t *testing.T) {
	s := newCategoryService()

	result := s.Delete(context.Background(), 5, "admin@example.com")
	require.False(t, result.IsSuccess())
	assert.Equal(t, "Category with ID 5 not found", result.Message())
}

func TestCategoryDeleteRemovesRow(t *testing.T) {
	s := newCategoryService()
	ctx := context.Background()

	created := s.Create(ctx, CategoryInput{Name: "Tools"}, "admin@example.com")
	require.True(t, created.IsSuccess())
	id := created.Value().ID

	require.True(t, s.Delete(ctx, id, "admin@example.com").IsSuccess())
	assert.False(t, s.Exists(ctx, id))
}

func TestCategorySearchTermRules(t *testing.T) {
	s := newCategoryService()
	ctx := context.Background()

	empty := s.Search(ctx, "")
	require.False(t, empty.IsSuccess())
	assert.Equal(t, "The search term cannot be empty.", empty.Message())

	short := s.Search(ctx, "t")
	require.False(t, short.IsSuccess())
	assert.Equal(t, "The search term must be at least 2 characters long", short.Message())

	multibyte := s.Search(ctx, "ü")
	require.False(t, multibyte.IsSuccess())
	assert.Equal(t, "The search term must be at least 2 characters long", multibyte.Message())
}

func TestCategorySearchIsCaseInsensitive(t *testing.T) {
	s := newCategoryService()
	ctx := context.Background()

	require.True(t, s.Create(ctx, CategoryInput{Name: "Power Tools"}, "a").IsSuccess())
	require.True(t, s.Create(ctx, CategoryInput{Name: "Paint"}, "a").IsSuccess())

	result := s.Search(ctx, "TOOLS")
	require.True(t, result.IsSuccess(), result.Message())
	require.Len(t, result.Value(), 1)
	assert.Equal(t, "Power Tools", result.Value()[0].Name)
}
