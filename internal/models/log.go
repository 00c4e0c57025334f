package models

import "time"

// Audit actions recorded in the logs table.
const (
	AcaoLogin         = "LOGIN"
	AcaoLogout        = "LOGOUT"
	AcaoRevendaCreate = "REVENDA_CREATE"
	AcaoRevendaUpdate = "REVENDA_UPDATE"
	AcaoRevendaDelete = "REVENDA_DELETE"
	AcaoAdminCreate   = "ADMIN_CREATE"
	AcaoAdminUpdate   = "ADMIN_UPDATE"
	AcaoAdminDelete   = "ADMIN_DELETE"
)

// LogRegistro is an append-only audit entry. Records are written once and
// never mutated.
type LogRegistro struct {
	ID        string    `db:"id" json:"id"`
	AdminID   *string   `db:"admin_id" json:"admin_id,omitempty"`
	Acao      string    `db:"acao" json:"acao"`
	Recurso   string    `db:"recurso" json:"recurso"`
	RecursoID *string   `db:"recurso_id" json:"recurso_id,omitempty"`
	Detalhes  []byte    `db:"detalhes" json:"detalhes,omitempty"`
	IP        string    `db:"ip" json:"ip"`
	UserAgent string    `db:"user_agent" json:"user_agent"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// LogFilter captures filtering criteria for listing log records.
type LogFilter struct {
	AdminID  string
	Acao     string
	Recurso  string
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}
