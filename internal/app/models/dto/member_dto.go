package dto

import "time"

// AddMemberRequest represents the body of a member addition. All three
// ids are required; unknown fields are rejected by binding.
type AddMemberRequest struct {
	Community string `json:"community" binding:"required"`
	User      string `json:"user" binding:"required"`
	Role      string `json:"role" binding:"required"`
}

// IDRef is a minimal reference expansion ({"id": ...}).
type IDRef struct {
	ID string `json:"id"`
}

// MemberResponse represents a membership record
type MemberResponse struct {
	ID        string    `json:"id"`
	Community string    `json:"community"`
	User      IDRef     `json:"user"`
	Role      IDRef     `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
