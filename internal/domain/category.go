package domain

// Category groups products.
type Category struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

func (c *Category) EntityID() int      { return c.ID }
func (c *Category) SetEntityID(id int) { c.ID = id }
