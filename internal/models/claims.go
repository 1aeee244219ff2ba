package models

import "github.com/golang-jwt/jwt/v5"

// AdminClaims is the JWT payload issued by the admin login endpoint.
type AdminClaims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// IsAdmin reports whether the claims grant admin access.
func (c *AdminClaims) IsAdmin() bool {
	return c.Role == "admin"
}
