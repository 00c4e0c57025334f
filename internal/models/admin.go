package models

import "time"

// NivelAcesso enumerates the access levels of panel administrators.
type NivelAcesso string

const (
	NivelSuper NivelAcesso = "super"
	NivelAdmin NivelAcesso = "admin"
)

// Admin represents an operator of the back-office, stored in the admins table.
// The password hash is never serialized.
type Admin struct {
	ID          string      `db:"id" json:"id"`
	Nome        string      `db:"nome" json:"nome"`
	Email       string      `db:"email" json:"email"`
	SenhaHash   string      `db:"senha_hash" json:"-"`
	NivelAcesso NivelAcesso `db:"nivel_acesso" json:"nivel_acesso"`
	Ativo       bool        `db:"ativo" json:"ativo"`
	UltimoLogin *time.Time  `db:"ultimo_login" json:"ultimo_login,omitempty"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}

// AdminFilter captures filtering criteria for listing admins.
type AdminFilter struct {
	NivelAcesso *NivelAcesso
	Ativo       *bool
	Search      string
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
