package dto

import "time"

// --- Request DTOs ---

// CreateCommunityRequest represents community creation data
type CreateCommunityRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// --- Response DTOs ---

// CommunityResponse represents a community with its owner as a bare id,
// as returned on creation and in the caller's owned listing.
type CommunityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommunityExpandedResponse represents a community with the owner expanded
// to {id, username}, used by public listings.
type CommunityExpandedResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Slug      string        `json:"slug"`
	Owner     OwnerResponse `json:"owner"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
