package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/painel-adm/revendas-api/internal/models"
	"github.com/painel-adm/revendas-api/internal/service"
)

type fakeLogReadRepo struct {
	logs  []models.LogRegistro
	total int
}

func (f *fakeLogReadRepo) List(ctx context.Context, filter models.LogFilter) ([]models.LogRegistro, int, error) {
	return f.logs, f.total, nil
}

func (f *fakeLogReadRepo) FindByID(ctx context.Context, id string) (*models.LogRegistro, error) {
	for i := range f.logs {
		if f.logs[i].ID == id {
			return &f.logs[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func newLogTestHandler() *LogHandler {
	adminID := "adm-1"
	repo := &fakeLogReadRepo{
		logs: []models.LogRegistro{{
			ID:        "log-1",
			AdminID:   &adminID,
			Acao:      models.AcaoLogin,
			Recurso:   "auth",
			IP:        "10.0.0.1",
			CreatedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		}},
		total: 1,
	}
	return NewLogHandler(service.NewLogService(repo, nil))
}

func TestLogHandlerExportCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newLogTestHandler()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/logs/export?formato=csv", nil)

	handler.Export(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")
	assert.Contains(t, rec.Body.String(), "LOGIN")
}

func TestLogHandlerExportUnknownFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newLogTestHandler()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/logs/export?formato=xlsx", nil)

	handler.Export(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "formato")
}

func TestLogHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newLogTestHandler()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/logs?acao=LOGIN", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data"`)
	assert.Contains(t, rec.Body.String(), `"pagination"`)
}
