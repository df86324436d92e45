package dto

import "time"

// CreateRoleRequest represents role creation data
type CreateRoleRequest struct {
	Name string `json:"name" binding:"required,min=2,max=64"`
}

// RoleResponse represents a membership role
type RoleResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
