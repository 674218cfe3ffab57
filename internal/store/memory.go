package store

import (
	"context"
	"sort"
	"sync"
)

// Memory is an in-process Store used for tests and for DSN-less runs.
// Identifiers increase monotonically and are assigned at commit.
type Memory[T any, P Identifiable[T]] struct {
	mu      sync.Mutex
	rows    map[int]T
	nextID  int
	adds    []P
	updates []T
	deletes []int
}

// NewMemory returns an empty in-memory store.
func NewMemory[T any, P Identifiable[T]]() *Memory[T, P] {
	return &Memory[T, P]{rows: make(map[int]T), nextID: 1}
}

func (m *Memory[T, P]) GetAll(_ context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked(func(T) bool { return true }), nil
}

func (m *Memory[T, P]) GetByID(_ context.Context, id int) (T, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	return row, ok, nil
}

func (m *Memory[T, P]) Add(_ context.Context, entity P) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adds = append(m.adds, entity)
	return nil
}

func (m *Memory[T, P]) Update(_ context.Context, entity P) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates = append(m.updates, *entity)
	return nil
}

func (m *Memory[T, P]) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes = append(m.deletes, id)
	return nil
}

func (m *Memory[T, P]) Exists(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rows[id]
	return ok, nil
}

func (m *Memory[T, P]) Find(_ context.Context, predicate func(T) bool) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked(predicate), nil
}

func (m *Memory[T, P]) Commit(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	affected := 0
	for _, id := range m.deletes {
		if _, ok := m.rows[id]; ok {
			delete(m.rows, id)
			affected++
		}
	}
	for _, row := range m.updates {
		id := P(&row).EntityID()
		if _, ok := m.rows[id]; ok {
			m.rows[id] = row
			affected++
		}
	}
	for _, entity := range m.adds {
		entity.SetEntityID(m.nextID)
		m.rows[m.nextID] = *entity
		m.nextID++
		affected++
	}

	m.adds = nil
	m.updates = nil
	m.deletes = nil
	return affected, nil
}

func (m *Memory[T, P]) snapshotLocked(predicate func(T) bool) []T {
	ids := make([]int, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := make([]T, 0, len(ids))
	for _, id := range ids {
		if row := m.rows[id]; predicate(row) {
			result = append(result, row)
		}
	}
	return result
}
