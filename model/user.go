package model

import "time"

// UserEntity maps the user table. Role distinguishes shoppers from
// store owners; owners can register stores and manage stock.
type UserEntity struct {
	ID           uint64     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	Phone        string     `db:"phone" json:"phone"`
	Role         string     `db:"role" json:"role"`
	PasswordHash string     `db:"password_hash" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter narrows user lookups. Zero fields are ignored.
type UserFilter struct {
	ID    uint64
	Email string
	Phone string
}

// RegisterRequest creates an account. Owner true registers a store
// owner account instead of a shopper one.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=8,max=15"`
	Password string `json:"password" validate:"required,min=6"`
	Owner    bool   `json:"owner"`
}

// LoginRequest accepts either email or phone as the identifier
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

type RegisterResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
