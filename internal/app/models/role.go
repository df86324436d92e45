package models

import "time"

// Default role names. These two roles carry removal rights within a
// community; the seeder guarantees they exist.
const (
	RoleCommunityAdmin     = "Community Admin"
	RoleCommunityModerator = "Community Moderator"
)

// Role defines a named membership role based on the 'roles' table
type Role struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// GrantsRemoval reports whether the role may remove members from the
// community it is held in.
func (r *Role) GrantsRemoval() bool {
	return r.Name == RoleCommunityAdmin || r.Name == RoleCommunityModerator
}
