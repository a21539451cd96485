// Package model defines the persisted entities of the catalog.
package model

import "time"

// Item is the sole persisted entity. The store assigns the identifier on
// creation; it is never reused or mutated. UpdatedAt is refreshed on every
// successful update and is never earlier than CreatedAt.
type Item struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CursorID returns the identifier a cursor page encodes.
func (i Item) CursorID() int64 {
	return i.ID
}
