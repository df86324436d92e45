package models

import "time"

// Community represents a user-owned community based on the 'communities'
// table. The owner is set at creation and never changes.
type Community struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	OwnerID   string    `json:"owner" db:"owner_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Related entities
	Owner *User `json:"-"`
}
