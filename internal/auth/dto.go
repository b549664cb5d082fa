package auth

import (
	"github.com/buildsetu/buildsetu-backend/internal/users"
	"github.com/buildsetu/buildsetu-backend/pkg/enums"
)

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the token and user produced by a successful login.
type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	User        *users.UserDTO `json:"user"`
}

// RegisterRequest contains the payload required to create an account. Accounts
// start without a role; the role is chosen afterwards.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SelectRoleRequest carries the one-time role choice for a fresh account.
type SelectRoleRequest struct {
	Role enums.Role `json:"role" validate:"required"`
}
