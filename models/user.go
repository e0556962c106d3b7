package models

import "time"

// User is a platform account; either a client or a freelancer owner.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	FullName     string    `json:"fullName,omitempty" bson:"fullName,omitempty"`
	FreelancerID int       `json:"freelancerId,omitempty" bson:"freelancerId,omitempty"`
	TokenHash    string    `json:"-" bson:"tokenHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
