package dto

import "time"

// --- Request DTOs ---

// SignUpRequest represents user registration data
type SignUpRequest struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignInRequest represents user login data
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --- Response DTOs ---

// UserResponse represents public user information
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// OwnerResponse is the owner expansion used in community listings.
type OwnerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
