package domain

import "time"

// Product is a catalog item. Code is its business key, unique across active
// and inactive rows regardless of case.
type Product struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	CategoryID  int       `db:"category_id"`
	Description string    `db:"description"`
	Code        string    `db:"code"`
	Price       float64   `db:"price"`
	Stock       int       `db:"stock"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
}

// EntityID returns the store-assigned identifier.
func (p *Product) EntityID() int { return p.ID }

// SetEntityID assigns the identifier at commit time.
func (p *Product) SetEntityID(id int) { p.ID = id }
