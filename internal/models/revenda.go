package models

import "time"

// Revenda represents a managed business-partner entity.
type Revenda struct {
	ID          string    `db:"id" json:"id"`
	Nome        string    `db:"nome" json:"nome"`
	RazaoSocial string    `db:"razao_social" json:"razao_social"`
	CNPJ        string    `db:"cnpj" json:"cnpj"`
	Email       string    `db:"email" json:"email"`
	Telefone    string    `db:"telefone" json:"telefone"`
	Cidade      string    `db:"cidade" json:"cidade"`
	Estado      string    `db:"estado" json:"estado"`
	Ativo       bool      `db:"ativo" json:"ativo"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// RevendaFilter captures filtering criteria for listing revendas.
type RevendaFilter struct {
	Estado    string
	Ativo     *bool
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// RevendaPorEstado is an aggregate bucket used by the dashboard.
type RevendaPorEstado struct {
	Estado string `db:"estado" json:"estado"`
	Total  int    `db:"total" json:"total"`
}

// RevendaPorMes is a monthly creation count used by the dashboard.
type RevendaPorMes struct {
	Mes   string `db:"mes" json:"mes"`
	Total int    `db:"total" json:"total"`
}
