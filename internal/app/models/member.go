package models

import "time"

// Member links a user to a community under a role, based on the 'members'
// table. A (community, user) pair is unique.
type Member struct {
	ID          string    `json:"id" db:"id"`
	CommunityID string    `json:"community" db:"community_id"`
	UserID      string    `json:"user" db:"user_id"`
	RoleID      string    `json:"role" db:"role_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// Related entities
	Role *Role `json:"-"`
}
