package models

import "github.com/golang-jwt/jwt/v5"

// AdminRole is the single capability the session token can carry.
const AdminRole = "admin"

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// SessionClaims is the signed capability token stored in the admin session.
type SessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
