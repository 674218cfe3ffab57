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

// CategoryInput describes category create/update payload.
type CategoryInput struct {
	ID   int
	Name string
}

// CategoryService applies category business rules on top of the entity store.
type CategoryService struct {
	categories repository.CategoryStore
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// NewCategoryService constructs the service.
func NewCategoryService(categories repository.CategoryStore, dispatcher events.Dispatcher, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categories: categories,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// GetAll returns every category.
func (s *CategoryService) GetAll(ctx context.Context) outcome.Outcome[[]domain.Category] {
	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		s.logger.Error("error retrieving all categories", zap.Error(err))
		return outcome.Failure[[]domain.Category]("Error loading categories. Please try again.")
	}
	return outcome.Success(categories)
}

// GetByID returns a single category by identifier.
func (s *CategoryService) GetByID(ctx context.Context, id int) outcome.Outcome[domain.Category] {
	if id <= 0 {
		return outcome.Failure[domain.Category]("The category ID must be greater than 0")
	}

	category, found, err := s.categories.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("error obtaining category", zap.Int("category_id", id), zap.Error(err))
		return outcome.Failure[domain.Category]("Error loading category. Please try again.")
	}
	if !found {
		s.logger.Warn("category not found", zap.Int("category_id", id))
		return outcome.Failure[domain.Category](fmt.Sprintf("Category with ID %d not found", id))
	}
	return outcome.Success(category)
}

// Create inserts a new category.
func (s *CategoryService) Create(ctx context.Context, input CategoryInput, actor string) outcome.Outcome[domain.Category] {
	if strings.TrimSpace(input.Name) == "" {
		return outcome.Failure[domain.Category]("Name is required")
	}

	category := &domain.Category{Name: input.Name}
	if err := s.categories.Add(ctx, category); err != nil {
		s.logger.Error("error creating category", zap.Error(err))
		return outcome.Failure[domain.Category]("Error creating category. Please try again.")
	}
	if _, err := s.categories.Commit(ctx); err != nil {
		s.logger.Error("error creating category", zap.Error(err))
		return outcome.Failure[domain.Category]("Error creating category. Please try again.")
	}

	s.logger.Info("category created", zap.String("name", category.Name), zap.Int("category_id", category.ID))
	s.publish(ctx, events.EventCategoryCreated, category.ID, actor, fmt.Sprintf("created category '%s'", category.Name))
	return outcome.Success(*category)
}

// Update renames an existing category.
func (s *CategoryService) Update(ctx context.Context, input CategoryInput, actor string) outcome.Outcome[domain.Category] {
	if input.ID <= 0 {
		return outcome.Failure[domain.Category]("The category ID must be greater than 0")
	}
	if strings.TrimSpace(input.Name) == "" {
		return outcome.Failure[domain.Category]("Name is required")
	}

	category, found, err := s.categories.GetByID(ctx, input.ID)
	if err != nil {
		s.logger.Error("category update failed", zap.Int("category_id", input.ID), zap.Error(err))
		return outcome.Failure[domain.Category]("Category update failed. Please try again.")
	}
	if !found {
		s.logger.Warn("attempt to update non-existent category", zap.Int("category_id", input.ID))
		return outcome.Failure[domain.Category](fmt.Sprintf("Category with ID %d not found", input.ID))
	}

	category.Name = input.Name
	if err := s.categories.Update(ctx, &category); err != nil {
		s.logger.Error("category update failed", zap.Int("category_id", input.ID), zap.Error(err))
		return outcome.Failure[domain.Category]("Category update failed. Please try again.")
	}
	if _, err := s.categories.Commit(ctx); err != nil {
		s.logger.Error("category update failed", zap.Int("category_id", input.ID), zap.Error(err))
		return outcome.Failure[domain.Category]("Category update failed. Please try again.")
	}

	s.logger.Info("category updated", zap.String("name", category.Name), zap.Int("category_id", category.ID))
	s.publish(ctx, events.EventCategoryUpdated, category.ID, actor, fmt.Sprintf("updated category '%s'", category.Name))
	return outcome.Success(category)
}

// Delete removes a category by identifier.
func (s *CategoryService) Delete(ctx context.Context, id int, actor string) outcome.Outcome0 {
	if id <= 0 {
		return outcome.Fail("The category ID must be greater than 0")
	}

	exists, err := s.categories.Exists(ctx, id)
	if err != nil {
		s.logger.Error("error deleting the category", zap.Int("category_id", id), zap.Error(err))
		return outcome.Fail("Error deleting the category. Please try again.")
	}
	if !exists {
		s.logger.Warn("attempt to delete non-existent category", zap.Int("category_id", id))
		return outcome.Fail(fmt.Sprintf("Category with ID %d not found", id))
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		s.logger.Error("error deleting the category", zap.Int("category_id", id), zap.Error(err))
		return outcome.Fail("Error deleting the category. Please try again.")
	}
	if _, err := s.categories.Commit(ctx); err != nil {
		s.logger.Error("error deleting the category", zap.Int("category_id", id), zap.Error(err))
		return outcome.Fail("Error deleting the category. Please try again.")
	}

	s.logger.Info("category removed", zap.Int("category_id", id))
	s.publish(ctx, events.EventCategoryDeleted, id, actor, fmt.Sprintf("deleted category %d", id))
	return outcome.OK()
}

// Search matches the term case-insensitively against category names.
func (s *CategoryService) Search(ctx context.Context, term string) outcome.Outcome[[]domain.Category] {
	if strings.TrimSpace(term) == "" {
		return outcome.Failure[[]domain.Category]("The search term cannot be empty.")
	}
	if utf8.RuneCountInString(term) < minSearchTermLength {
		return outcome.Failure[[]domain.Category]("The search term must be at least 2 characters long")
	}

	needle := strings.ToLower(term)
	matched, err := s.categories.Find(ctx, func(c domain.Category) bool {
		return strings.Contains(strings.ToLower(c.Name), needle)
	})
	if err != nil {
		s.logger.Error("error searching for categories", zap.String("term", term), zap.Error(err))
		return outcome.Failure[[]domain.Category]("Error searching for categories. Please try again.")
	}

	s.logger.Info("category search", zap.String("term", term), zap.Int("results", len(matched)))
	return outcome.Success(matched)
}

// Exists reports whether a category with the given id is stored.
func (s *CategoryService) Exists(ctx context.Context, id int) bool {
	exists, err := s.categories.Exists(ctx, id)
	if err != nil {
		s.logger.Error("error checking category existence", zap.Int("category_id", id), zap.Error(err))
		return false
	}
	return exists
}

func (s *CategoryService) publish(ctx context.Context, eventType events.EventType, ref int, actor, detail string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Entity:    "category",
		EntityRef: ref,
		Actor:     actor,
		Detail:    detail,
		Timestamp: s.now().UTC(),
	})
}
