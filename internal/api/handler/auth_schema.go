package handler

import "github.com/DanielMb24/SchoolManager/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type registerRequest struct {
	Surname            string `json:"surname"             validate:"required"`
	GivenName          string `json:"given_name"          validate:"required"`
	Role               string `json:"role"                validate:"required,oneof=administrator teacher student"`
	Identifier         string `json:"identifier"          validate:"omitempty,email"`
	Secret             string `json:"secret"              validate:"required"`
	SecretConfirmation string `json:"secret_confirmation" validate:"required"`
}

type registerResponse struct {
	ID string `json:"id"`
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Secret     string `json:"secret"     validate:"required"`
}

type loginResponse struct {
	Token string            `json:"token"`
	User  *domain.Principal `json:"user"`
}

type statusResponse struct {
	Authenticated bool              `json:"authenticated"`
	User          *domain.Principal `json:"user"`
}
