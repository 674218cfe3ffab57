package domain

import "time"

// LogActivity records a mutation performed through the API, kept as an audit
// trail alongside the catalog tables.
type LogActivity struct {
	ID        int       `db:"id"`
	Action    string    `db:"action"`
	Entity    string    `db:"entity"`
	EntityRef int       `db:"entity_ref"`
	Actor     string    `db:"actor"`
	Detail    string    `db:"detail"`
	CreatedAt time.Time `db:"created_at"`
}

func (l *LogActivity) EntityID() int      { return l.ID }
func (l *LogActivity) SetEntityID(id int) { l.ID = id }
