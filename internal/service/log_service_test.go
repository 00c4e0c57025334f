package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/painel-adm/revendas-api/internal/models"
	appErrors "github.com/painel-adm/revendas-api/pkg/errors"
)

type mockLogReadRepo struct {
	logs       []models.LogRegistro
	total      int
	byID       map[string]*models.LogRegistro
	lastFilter models.LogFilter
}

func (m *mockLogReadRepo) List(ctx context.Context, filter models.LogFilter) ([]models.LogRegistro, int, error) {
	m.lastFilter = filter
	return m.logs, m.total, nil
}

func (m *mockLogReadRepo) FindByID(ctx context.Context, id string) (*models.LogRegistro, error) {
	if l, ok := m.byID[id]; ok {
		return l, nil
	}
	return nil, sql.ErrNoRows
}

func sampleLogs() []models.LogRegistro {
	adminID := "adm-1"
	recursoID := "rev-1"
	return []models.LogRegistro{
		{
			ID:        "log-1",
			AdminID:   &adminID,
			Acao:      models.AcaoRevendaCreate,
			Recurso:   "revendas",
			RecursoID: &recursoID,
			IP:        "10.0.0.1",
			CreatedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:        "log-2",
			Acao:      models.AcaoLogin,
			Recurso:   "auth",
			IP:        "10.0.0.2",
			CreatedAt: time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
		},
	}
}

func TestExportLogsCSV(t *testing.T) {
	repo := &mockLogReadRepo{logs: sampleLogs(), total: 2}
	svc := NewLogService(repo, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC) }

	result, err := svc.Export(context.Background(), models.LogFilter{}, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "logs-2026-03-11.csv", result.Filename)

	content := string(result.Content)
	assert.True(t, strings.HasPrefix(content, "\xEF\xBB\xBF"), "csv must carry a UTF-8 BOM for spreadsheet tools")
	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Data")
	assert.Contains(t, lines[1], "REVENDA_CREATE")
	assert.Contains(t, lines[1], "adm-1")
	assert.Contains(t, lines[2], "LOGIN")

	// Export widens pagination so the whole filtered set is covered.
	assert.Equal(t, 1, repo.lastFilter.Page)
	assert.Equal(t, 200, repo.lastFilter.PageSize)
}

func TestExportLogsPDF(t *testing.T) {
	repo := &mockLogReadRepo{logs: sampleLogs(), total: 2}
	svc := NewLogService(repo, zap.NewNop())

	result, err := svc.Export(context.Background(), models.LogFilter{}, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasPrefix(string(result.Content), "%PDF"))
}

func TestExportLogsDefaultsToCSV(t *testing.T) {
	repo := &mockLogReadRepo{logs: sampleLogs(), total: 2}
	svc := NewLogService(repo, zap.NewNop())

	result, err := svc.Export(context.Background(), models.LogFilter{}, "")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
}

func TestExportLogsUnknownFormat(t *testing.T) {
	svc := NewLogService(&mockLogReadRepo{}, zap.NewNop())

	_, err := svc.Export(context.Background(), models.LogFilter{}, "xlsx")
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestListLogsDefaultsPagination(t *testing.T) {
	repo := &mockLogReadRepo{logs: sampleLogs(), total: 120}
	svc := NewLogService(repo, zap.NewNop())

	logs, pagination, err := svc.List(context.Background(), models.LogFilter{})
	require.NoError(t, err)
	assert.Len(t, logs, 2)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 50, pagination.PageSize)
	assert.Equal(t, 120, pagination.TotalCount)
}

func TestGetLogNotFound(t *testing.T) {
	svc := NewLogService(&mockLogReadRepo{}, zap.NewNop())

	_, err := svc.Get(context.Background(), "inexistente")
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
