package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/painel-adm/revendas-api/internal/models"
)

// RevendaRepository provides database access for reseller management.
type RevendaRepository struct {
	db *sqlx.DB
}

// NewRevendaRepository creates a new instance of RevendaRepository.
func NewRevendaRepository(db *sqlx.DB) *RevendaRepository {
	return &RevendaRepository{db: db}
}

const revendaColumns = `id, nome, razao_social, cnpj, email, telefone, cidade, estado, ativo, created_at, updated_at`

// FindByID returns a revenda by identifier.
func (r *RevendaRepository) FindByID(ctx context.Context, id string) (*models.Revenda, error) {
	query := fmt.Sprintf(`SELECT %s FROM revendas WHERE id = $1 LIMIT 1`, revendaColumns)
	var revenda models.Revenda
	if err := r.db.GetContext(ctx, &revenda, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find revenda by id: %w", err)
	}
	return &revenda, nil
}

// FindByCNPJ returns a revenda by CNPJ.
func (r *RevendaRepository) FindByCNPJ(ctx context.Context, cnpj string) (*models.Revenda, error) {
	query := fmt.Sprintf(`SELECT %s FROM revendas WHERE cnpj = $1 LIMIT 1`, revendaColumns)
	var revenda models.Revenda
	if err := r.db.GetContext(ctx, &revenda, query, cnpj); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find revenda by cnpj: %w", err)
	}
	return &revenda, nil
}

// FindByEmail returns a revenda by email.
func (r *RevendaRepository) FindByEmail(ctx context.Context, email string) (*models.Revenda, error) {
	query := fmt.Sprintf(`SELECT %s FROM revendas WHERE email = $1 LIMIT 1`, revendaColumns)
	var revenda models.Revenda
	if err := r.db.GetContext(ctx, &revenda, query, strings.ToLower(email)); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find revenda by email: %w", err)
	}
	return &revenda, nil
}

// List returns revendas based on filters with total count.
func (r *RevendaRepository) List(ctx context.Context, filter models.RevendaFilter) ([]models.Revenda, int, error) {
	baseQuery := `FROM revendas WHERE 1=1`
	var conditions []string
	var args []interface{}

	if filter.Estado != "" {
		conditions = append(conditions, fmt.Sprintf("estado = $%d", len(args)+1))
		args = append(args, strings.ToUpper(filter.Estado))
	}
	if filter.Ativo != nil {
		conditions = append(conditions, fmt.Sprintf("ativo = $%d", len(args)+1))
		args = append(args, *filter.Ativo)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(LOWER(nome) LIKE $%d OR LOWER(email) LIKE $%d OR cnpj LIKE $%d)", len(args)+1, len(args)+1, len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	if len(conditions) > 0 {
		baseQuery += " AND " + strings.Join(conditions, " AND ")
	}

	sortBy := filter.SortBy
	allowedSorts := map[string]bool{
		"nome":       true,
		"cidade":     true,
		"estado":     true,
		"created_at": true,
		"updated_at": true,
	}
	if !allowedSorts[sortBy] {
		sortBy = "created_at"
	}

	sortOrder := strings.ToUpper(filter.SortOrder)
	if sortOrder != "ASC" && sortOrder != "DESC" {
		sortOrder = "DESC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	listQuery := fmt.Sprintf("SELECT %s %s ORDER BY %s %s LIMIT %d OFFSET %d", revendaColumns, baseQuery, sortBy, sortOrder, pageSize, offset)

	var revendas []models.Revenda
	if err := r.db.SelectContext(ctx, &revendas, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list revendas: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", baseQuery)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count revendas: %w", err)
	}

	return revendas, total, nil
}

// Create inserts a new revenda.
func (r *RevendaRepository) Create(ctx context.Context, revenda *models.Revenda) error {
	if revenda.ID == "" {
		revenda.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if revenda.CreatedAt.IsZero() {
		revenda.CreatedAt = now
	}
	revenda.UpdatedAt = now

	const query = `INSERT INTO revendas (id, nome, razao_social, cnpj, email, telefone, cidade, estado, ativo, created_at, updated_at) VALUES (:id, :nome, :razao_social, :cnpj, :email, :telefone, :cidade, :estado, :ativo, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, revenda); err != nil {
		return fmt.Errorf("create revenda: %w", err)
	}
	return nil
}

// Update updates mutable fields of a revenda.
func (r *RevendaRepository) Update(ctx context.Context, revenda *models.Revenda) error {
	revenda.UpdatedAt = time.Now().UTC()
	const query = `UPDATE revendas SET nome = :nome, razao_social = :razao_social, cnpj = :cnpj, email = :email, telefone = :telefone, cidade = :cidade, estado = :estado, ativo = :ativo, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, revenda); err != nil {
		return fmt.Errorf("update revenda: %w", err)
	}
	return nil
}

// Delete performs a soft delete by marking the revenda inactive.
func (r *RevendaRepository) Delete(ctx context.Context, id string) error {
	const query = `UPDATE revendas SET ativo = FALSE, updated_at = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("delete revenda: %w", err)
	}
	return nil
}

// Counts returns total and active revenda counts.
func (r *RevendaRepository) Counts(ctx context.Context) (total int, ativas int, err error) {
	const query = `SELECT COUNT(*) AS total, COUNT(*) FILTER (WHERE ativo) AS ativas FROM revendas`
	row := struct {
		Total  int `db:"total"`
		Ativas int `db:"ativas"`
	}{}
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return 0, 0, fmt.Errorf("count revendas: %w", err)
	}
	return row.Total, row.Ativas, nil
}

// CountByEstado groups active revendas by state.
func (r *RevendaRepository) CountByEstado(ctx context.Context) ([]models.RevendaPorEstado, error) {
	const query = `SELECT estado, COUNT(*) AS total FROM revendas WHERE ativo = TRUE GROUP BY estado ORDER BY total DESC`
	var rows []models.RevendaPorEstado
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("count revendas by estado: %w", err)
	}
	return rows, nil
}

// CountByMonth returns creation counts per month since the given time.
func (r *RevendaRepository) CountByMonth(ctx context.Context, since time.Time) ([]models.RevendaPorMes, error) {
	const query = `SELECT TO_CHAR(DATE_TRUNC('month', created_at), 'YYYY-MM') AS mes, COUNT(*) AS total FROM revendas WHERE created_at >= $1 GROUP BY 1 ORDER BY 1`
	var rows []models.RevendaPorMes
	if err := r.db.SelectContext(ctx, &rows, query, since); err != nil {
		return nil, fmt.Errorf("count revendas by month: %w", err)
	}
	return rows, nil
}
