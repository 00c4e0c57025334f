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

// LogRepository provides access to the append-only audit trail. There are no
// update or delete statements here on purpose.
type LogRepository struct {
	db *sqlx.DB
}

// NewLogRepository creates a new instance of LogRepository.
func NewLogRepository(db *sqlx.DB) *LogRepository {
	return &LogRepository{db: db}
}

const logColumns = `id, admin_id, acao, recurso, recurso_id, detalhes, ip, user_agent, created_at`

// Create stores an audit log entry.
func (r *LogRepository) Create(ctx context.Context, log *models.LogRegistro) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO logs (id, admin_id, acao, recurso, recurso_id, detalhes, ip, user_agent, created_at) VALUES (:id, :admin_id, :acao, :recurso, :recurso_id, :detalhes, :ip, :user_agent, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("create log: %w", err)
	}
	return nil
}

// FindByID returns a log record by identifier.
func (r *LogRepository) FindByID(ctx context.Context, id string) (*models.LogRegistro, error) {
	query := fmt.Sprintf(`SELECT %s FROM logs WHERE id = $1 LIMIT 1`, logColumns)
	var log models.LogRegistro
	if err := r.db.GetContext(ctx, &log, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find log by id: %w", err)
	}
	return &log, nil
}

// List returns log records based on filters with total count, newest first.
func (r *LogRepository) List(ctx context.Context, filter models.LogFilter) ([]models.LogRegistro, int, error) {
	baseQuery := `FROM logs WHERE 1=1`
	var conditions []string
	var args []interface{}

	if filter.AdminID != "" {
		conditions = append(conditions, fmt.Sprintf("admin_id = $%d", len(args)+1))
		args = append(args, filter.AdminID)
	}
	if filter.Acao != "" {
		conditions = append(conditions, fmt.Sprintf("acao = $%d", len(args)+1))
		args = append(args, filter.Acao)
	}
	if filter.Recurso != "" {
		conditions = append(conditions, fmt.Sprintf("recurso = $%d", len(args)+1))
		args = append(args, filter.Recurso)
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)+1))
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", len(args)+1))
		args = append(args, *filter.To)
	}

	if len(conditions) > 0 {
		baseQuery += " AND " + strings.Join(conditions, " AND ")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 50
	}
	offset := (page - 1) * pageSize

	listQuery := fmt.Sprintf("SELECT %s %s ORDER BY created_at DESC LIMIT %d OFFSET %d", logColumns, baseQuery, pageSize, offset)

	var logs []models.LogRegistro
	if err := r.db.SelectContext(ctx, &logs, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list logs: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", baseQuery)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count logs: %w", err)
	}

	return logs, total, nil
}

// Recent returns the newest records up to limit.
func (r *LogRepository) Recent(ctx context.Context, limit int) ([]models.LogRegistro, error) {
	if limit <= 0 {
		limit = 10
	}
	query := fmt.Sprintf("SELECT %s FROM logs ORDER BY created_at DESC LIMIT %d", logColumns, limit)
	var logs []models.LogRegistro
	if err := r.db.SelectContext(ctx, &logs, query); err != nil {
		return nil, fmt.Errorf("recent logs: %w", err)
	}
	return logs, nil
}

// CountSince returns the number of records created at or after the given time.
func (r *LogRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	const query = `SELECT COUNT(*) FROM logs WHERE created_at >= $1`
	var total int
	if err := r.db.GetContext(ctx, &total, query, since); err != nil {
		return 0, fmt.Errorf("count logs since: %w", err)
	}
	return total, nil
}
