package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/store"
)

// ProductStore is the persistence contract for products.
type ProductStore = store.Store[domain.Product, *domain.Product]

// CategoryStore is the persistence contract for categories.
type CategoryStore = store.Store[domain.Category, *domain.Category]

// ActivityStore is the persistence contract for audit log entries.
type ActivityStore = store.Store[domain.LogActivity, *domain.LogActivity]

// NewProductStore returns a Postgres-backed product store, or an in-memory
// one when no pool is configured.
func NewProductStore(pool *pgxpool.Pool) ProductStore {
	if pool == nil {
		return store.NewMemory[domain.Product, *domain.Product]()
	}
	return store.NewPG[domain.Product, *domain.Product](pool, store.Relation[domain.Product]{
		Table:   "products",
		Columns: []string{"name", "category_id", "description", "code", "price", "stock", "is_active", "created_at"},
		Values: func(p domain.Product) []any {
			return []any{p.Name, p.CategoryID, p.Description, p.Code, p.Price, p.Stock, p.IsActive, p.CreatedAt}
		},
	})
}

// NewCategoryStore returns a Postgres-backed category store, or an in-memory
// one when no pool is configured.
func NewCategoryStore(pool *pgxpool.Pool) CategoryStore {
	if pool == nil {
		return store.NewMemory[domain.Category, *domain.Category]()
	}
	return store.NewPG[domain.Category, *domain.Category](pool, store.Relation[domain.Category]{
		Table:   "categories",
		Columns: []string{"name"},
		Values: func(c domain.Category) []any {
			return []any{c.Name}
		},
	})
}

// NewActivityStore returns a Postgres-backed activity store, or an in-memory
// one when no pool is configured.
func NewActivityStore(pool *pgxpool.Pool) ActivityStore {
	if pool == nil {
		return store.NewMemory[domain.LogActivity, *domain.LogActivity]()
	}
	return store.NewPG[domain.LogActivity, *domain.LogActivity](pool, store.Relation[domain.LogActivity]{
		Table:   "log_activities",
		Columns: []string{"action", "entity", "entity_ref", "actor", "detail", "created_at"},
		Values: func(l domain.LogActivity) []any {
			return []any{l.Action, l.Entity, l.EntityRef, l.Actor, l.Detail, l.CreatedAt}
		},
	})
}
