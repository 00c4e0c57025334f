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

// AdminRepository provides database access for administrator management.
type AdminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository creates a new instance of AdminRepository.
func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

const adminColumns = `id, nome, email, senha_hash, nivel_acesso, ativo, ultimo_login, created_at, updated_at`

// FindByEmail returns an admin by email address.
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := fmt.Sprintf(`SELECT %s FROM admins WHERE email = $1 LIMIT 1`, adminColumns)
	var admin models.Admin
	if err := r.db.GetContext(ctx, &admin, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find admin by email: %w", err)
	}
	return &admin, nil
}

// FindByID returns an admin by identifier.
func (r *AdminRepository) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	query := fmt.Sprintf(`SELECT %s FROM admins WHERE id = $1 LIMIT 1`, adminColumns)
	var admin models.Admin
	if err := r.db.GetContext(ctx, &admin, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find admin by id: %w", err)
	}
	return &admin, nil
}

// UpdateUltimoLogin updates the ultimo_login timestamp for an admin.
func (r *AdminRepository) UpdateUltimoLogin(ctx context.Context, id string, ts time.Time) error {
	const query = `UPDATE admins SET ultimo_login = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, ts, ts); err != nil {
		return fmt.Errorf("update ultimo login: %w", err)
	}
	return nil
}

// List returns admins based on filters with total count.
func (r *AdminRepository) List(ctx context.Context, filter models.AdminFilter) ([]models.Admin, int, error) {
	baseQuery := `FROM admins WHERE 1=1`
	var conditions []string
	var args []interface{}

	if filter.NivelAcesso != nil {
		conditions = append(conditions, fmt.Sprintf("nivel_acesso = $%d", len(args)+1))
		args = append(args, *filter.NivelAcesso)
	}
	if filter.Ativo != nil {
		conditions = append(conditions, fmt.Sprintf("ativo = $%d", len(args)+1))
		args = append(args, *filter.Ativo)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(LOWER(email) LIKE $%d OR LOWER(nome) LIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	if len(conditions) > 0 {
		baseQuery += " AND " + strings.Join(conditions, " AND ")
	}

	sortBy := filter.SortBy
	allowedSorts := map[string]bool{
		"nome":       true,
		"email":      true,
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

	listQuery := fmt.Sprintf("SELECT %s %s ORDER BY %s %s LIMIT %d OFFSET %d", adminColumns, baseQuery, sortBy, sortOrder, pageSize, offset)

	var admins []models.Admin
	if err := r.db.SelectContext(ctx, &admins, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list admins: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", baseQuery)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count admins: %w", err)
	}

	return admins, total, nil
}

// Create inserts a new admin.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = now
	}
	admin.UpdatedAt = now

	const query = `INSERT INTO admins (id, nome, email, senha_hash, nivel_acesso, ativo, created_at, updated_at) VALUES (:id, :nome, :email, :senha_hash, :nivel_acesso, :ativo, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

// Update updates mutable fields of an admin.
func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	admin.UpdatedAt = time.Now().UTC()
	const query = `UPDATE admins SET nome = :nome, nivel_acesso = :nivel_acesso, ativo = :ativo, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, admin); err != nil {
		return fmt.Errorf("update admin: %w", err)
	}
	return nil
}

// Delete performs a soft delete by marking the admin inactive. Historical log
// records keep a valid actor reference.
func (r *AdminRepository) Delete(ctx context.Context, id string) error {
	const query = `UPDATE admins SET ativo = FALSE, updated_at = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}
	return nil
}

// Count returns the number of active admins.
func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM admins WHERE ativo = TRUE`
	var total int
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("count active admins: %w", err)
	}
	return total, nil
}
