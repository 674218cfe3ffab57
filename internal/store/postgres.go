package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Relation describes how an entity maps onto its table. Columns excludes the
// id column, which is always store-assigned; Values returns arguments
// parallel to Columns.
type Relation[T any] struct {
	Table   string
	Columns []string
	Values  func(T) []any
}

// PG is a Postgres-backed Store over a pgx pool. Reads go straight to the
// pool; staged mutations are applied inside a single transaction on Commit.
type PG[T any, P Identifiable[T]] struct {
	pool *pgxpool.Pool
	rel  Relation[T]

	selectAll  string
	selectByID string
	insertRow  string
	updateRow  string
	deleteRow  string
	existsRow  string

	mu      sync.Mutex
	adds    []P
	updates []T
	deletes []int
}

// NewPG builds a Postgres store for the given relation.
func NewPG[T any, P Identifiable[T]](pool *pgxpool.Pool, rel Relation[T]) *PG[T, P] {
	columns := "id, " + strings.Join(rel.Columns, ", ")

	placeholders := make([]string, len(rel.Columns))
	assignments := make([]string, len(rel.Columns))
	for i, col := range rel.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		assignments[i] = fmt.Sprintf("%s=$%d", col, i+1)
	}

	return &PG[T, P]{
		pool: pool,
		rel:  rel,
		selectAll: fmt.Sprintf("SELECT %s FROM %s ORDER BY id",
			columns, rel.Table),
		selectByID: fmt.Sprintf("SELECT %s FROM %s WHERE id=$1",
			columns, rel.Table),
		insertRow: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
			rel.Table, strings.Join(rel.Columns, ", "), strings.Join(placeholders, ", ")),
		updateRow: fmt.Sprintf("UPDATE %s SET %s WHERE id=$%d",
			rel.Table, strings.Join(assignments, ", "), len(rel.Columns)+1),
		deleteRow: fmt.Sprintf("DELETE FROM %s WHERE id=$1", rel.Table),
		existsRow: fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id=$1)", rel.Table),
	}
}

func (s *PG[T, P]) GetAll(ctx context.Context) ([]T, error) {
	rows, err := s.pool.Query(ctx, s.selectAll)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

func (s *PG[T, P]) GetByID(ctx context.Context, id int) (T, bool, error) {
	var zero T
	rows, err := s.pool.Query(ctx, s.selectByID, id)
	if err != nil {
		return zero, false, err
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	return row, true, nil
}

func (s *PG[T, P]) Add(_ context.Context, entity P) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adds = append(s.adds, entity)
	return nil
}

func (s *PG[T, P]) Update(_ context.Context, entity P) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, *entity)
	return nil
}

func (s *PG[T, P]) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes = append(s.deletes, id)
	return nil
}

func (s *PG[T, P]) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx, s.existsRow, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *PG[T, P]) Find(ctx context.Context, predicate func(T) bool) ([]T, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]T, 0, len(all))
	for _, row := range all {
		if predicate(row) {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

func (s *PG[T, P]) Commit(ctx context.Context) (int, error) {
	s.mu.Lock()
	adds := s.adds
	updates := s.updates
	deletes := s.deletes
	s.adds, s.updates, s.deletes = nil, nil, nil
	s.mu.Unlock()

	if len(adds) == 0 && len(updates) == 0 && len(deletes) == 0 {
		return 0, nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	affected := 0
	for _, id := range deletes {
		cmd, err := tx.Exec(ctx, s.deleteRow, id)
		if err != nil {
			return 0, err
		}
		affected += int(cmd.RowsAffected())
	}
	for _, row := range updates {
		args := append(s.rel.Values(row), P(&row).EntityID())
		cmd, err := tx.Exec(ctx, s.updateRow, args...)
		if err != nil {
			return 0, err
		}
		affected += int(cmd.RowsAffected())
	}
	for _, entity := range adds {
		var id int
		if err := tx.QueryRow(ctx, s.insertRow, s.rel.Values(*entity)...).Scan(&id); err != nil {
			return 0, err
		}
		entity.SetEntityID(id)
		affected++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return affected, nil
}
