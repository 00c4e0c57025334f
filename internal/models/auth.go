package models

import "github.com/golang-jwt/jwt/v5"

// LoginRequest holds credentials for authenticating an admin. The field names
// follow the panel front end (`senha` rather than `password`).
type LoginRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Senha     string `json:"senha" validate:"required"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// LoginResponse returns the sanitized admin record and the issued token.
type LoginResponse struct {
	Admin *Admin `json:"admin"`
	Token string `json:"token"`
}

// AdminClaims is the JWT payload of a session token. Tokens are
// self-contained: validation never touches the database.
type AdminClaims struct {
	AdminID     string      `json:"admin_id"`
	Nome        string      `json:"nome"`
	Email       string      `json:"email"`
	NivelAcesso NivelAcesso `json:"nivel_acesso"`
	jwt.RegisteredClaims
}

// AdminIdentity is the decoded identity returned by the validate endpoint.
type AdminIdentity struct {
	ID          string      `json:"id"`
	Nome        string      `json:"nome"`
	Email       string      `json:"email"`
	NivelAcesso NivelAcesso `json:"nivel_acesso"`
}

// RequestMeta carries request attribution for audit records.
type RequestMeta struct {
	IP        string
	UserAgent string
}
