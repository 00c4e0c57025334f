package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painel-adm/revendas-api/internal/models"
)

func revendaRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "nome", "razao_social", "cnpj", "email", "telefone", "cidade", "estado", "ativo", "created_at", "updated_at"}).
		AddRow("rev-1", "Revenda Alfa", "Alfa LTDA", "12345678000190", "contato@alfa.com", "1199990000", "Campinas", "SP", true, now, now)
}

func TestRevendaFindByCNPJ(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRevendaRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, nome, razao_social, cnpj, email, telefone, cidade, estado, ativo, created_at, updated_at FROM revendas WHERE cnpj = $1 LIMIT 1")).
		WithArgs("12345678000190").
		WillReturnRows(revendaRows(time.Now()))

	revenda, err := repo.FindByCNPJ(context.Background(), "12345678000190")
	require.NoError(t, err)
	assert.Equal(t, "Revenda Alfa", revenda.Nome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevendaFindByEmailLowercasesArgument(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRevendaRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, nome, razao_social, cnpj, email, telefone, cidade, estado, ativo, created_at, updated_at FROM revendas WHERE email = $1 LIMIT 1")).
		WithArgs("contato@alfa.com").
		WillReturnRows(revendaRows(time.Now()))

	revenda, err := repo.FindByEmail(context.Background(), "Contato@Alfa.com")
	require.NoError(t, err)
	assert.Equal(t, "contato@alfa.com", revenda.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevendaFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRevendaRepository(db)

	mock.ExpectQuery("SELECT .* FROM revendas WHERE id").
		WithArgs("inexistente").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "inexistente")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevendaListWithEstadoFilter(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRevendaRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM revendas WHERE 1=1 AND estado = $1 ORDER BY created_at DESC LIMIT 20 OFFSET 0")).
		WithArgs("SP").
		WillReturnRows(revendaRows(time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM revendas WHERE 1=1 AND estado = $1")).
		WithArgs("SP").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	revendas, total, err := repo.List(context.Background(), models.RevendaFilter{Estado: "sp"})
	require.NoError(t, err)
	assert.Len(t, revendas, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevendaListRejectsUnknownSort(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRevendaRepository(db)

	// Unknown sort columns fall back to created_at instead of reaching SQL.
	mock.ExpectQuery(regexp.QuoteMeta("FROM revendas WHERE 1=1 ORDER BY created_at DESC LIMIT 20 OFFSET 0")).
		WillReturnRows(revendaRows(time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM revendas WHERE 1=1")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, _, err := repo.List(context.Background(), models.RevendaFilter{SortBy: "cnpj; DROP TABLE revendas"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevendaCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRevendaRepository(db)

	mock.ExpectExec("INSERT INTO revendas").WillReturnResult(sqlmock.NewResult(1, 1))

	revenda := &models.Revenda{Nome: "Revenda Alfa", CNPJ: "12345678000190", Email: "contato@alfa.com", Estado: "SP", Ativo: true}
	require.NoError(t, repo.Create(context.Background(), revenda))
	assert.NotEmpty(t, revenda.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevendaDeleteIsSoft(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRevendaRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE revendas SET ativo = FALSE, updated_at = $2 WHERE id = $1")).
		WithArgs("rev-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "rev-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevendaCounts(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRevendaRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) AS total, COUNT(*) FILTER (WHERE ativo) AS ativas FROM revendas")).
		WillReturnRows(sqlmock.NewRows([]string{"total", "ativas"}).AddRow(42, 37))

	total, ativas, err := repo.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, total)
	assert.Equal(t, 37, ativas)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevendaCountByEstado(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRevendaRepository(db)

	rows := sqlmock.NewRows([]string{"estado", "total"}).AddRow("SP", 20).AddRow("MG", 10)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT estado, COUNT(*) AS total FROM revendas WHERE ativo = TRUE GROUP BY estado ORDER BY total DESC")).
		WillReturnRows(rows)

	buckets, err := repo.CountByEstado(context.Background())
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, "SP", buckets[0].Estado)
	assert.Equal(t, 20, buckets[0].Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevendaCountByMonth(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRevendaRepository(db)

	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"mes", "total"}).AddRow("2026-01", 4).AddRow("2026-02", 6)
	mock.ExpectQuery("SELECT TO_CHAR").
		WithArgs(since).
		WillReturnRows(rows)

	serie, err := repo.CountByMonth(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, serie, 2)
	assert.Equal(t, "2026-01", serie[0].Mes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
