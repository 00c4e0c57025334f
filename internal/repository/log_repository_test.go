package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painel-adm/revendas-api/internal/models"
)

func logRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "admin_id", "acao", "recurso", "recurso_id", "detalhes", "ip", "user_agent", "created_at"}).
		AddRow("log-1", "adm-1", models.AcaoLogin, "auth", "adm-1", []byte(`{}`), "10.0.0.1", "cli", now)
}

func TestLogCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewLogRepository(db)

	mock.ExpectExec("INSERT INTO logs").WillReturnResult(sqlmock.NewResult(1, 1))

	adminID := "adm-1"
	entry := &models.LogRegistro{AdminID: &adminID, Acao: models.AcaoLogin, Recurso: "auth", IP: "10.0.0.1"}
	require.NoError(t, repo.Create(context.Background(), entry))
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogListNewestFirst(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewLogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM logs WHERE 1=1 ORDER BY created_at DESC LIMIT 50 OFFSET 0")).
		WillReturnRows(logRows(time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM logs WHERE 1=1")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	logs, total, err := repo.List(context.Background(), models.LogFilter{})
	require.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogListWithFilters(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewLogRepository(db)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM logs WHERE 1=1 AND admin_id = $1 AND acao = $2 AND created_at >= $3 ORDER BY created_at DESC LIMIT 50 OFFSET 0")).
		WithArgs("adm-1", models.AcaoLogin, from).
		WillReturnRows(logRows(time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM logs WHERE 1=1 AND admin_id = $1")).
		WithArgs("adm-1", models.AcaoLogin, from).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, _, err := repo.List(context.Background(), models.LogFilter{AdminID: "adm-1", Acao: models.AcaoLogin, From: &from})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogListCapsPageSize(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewLogRepository(db)

	// Requests beyond the cap fall back to the default page size.
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC LIMIT 50 OFFSET 0")).
		WillReturnRows(logRows(time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, _, err := repo.List(context.Background(), models.LogFilter{PageSize: 5000})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogRecent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewLogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM logs ORDER BY created_at DESC LIMIT 10")).
		WillReturnRows(logRows(time.Now()))

	logs, err := repo.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogCountSince(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewLogRepository(db)

	since := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM logs WHERE created_at >= $1")).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	total, err := repo.CountSince(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
