package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/painel-adm/revendas-api/internal/models"
	appErrors "github.com/painel-adm/revendas-api/pkg/errors"
)

type mockDashboardRevendaRepo struct {
	total    int
	ativas   int
	estados  []models.RevendaPorEstado
	meses    []models.RevendaPorMes
	countErr error
}

func (m *mockDashboardRevendaRepo) Counts(ctx context.Context) (int, int, error) {
	if m.countErr != nil {
		return 0, 0, m.countErr
	}
	return m.total, m.ativas, nil
}

func (m *mockDashboardRevendaRepo) CountByEstado(ctx context.Context) ([]models.RevendaPorEstado, error) {
	return m.estados, nil
}

func (m *mockDashboardRevendaRepo) CountByMonth(ctx context.Context, since time.Time) ([]models.RevendaPorMes, error) {
	return m.meses, nil
}

type mockDashboardAdminRepo struct {
	total int
}

func (m *mockDashboardAdminRepo) Count(ctx context.Context) (int, error) {
	return m.total, nil
}

type mockDashboardLogRepo struct {
	hoje   int
	recent []models.LogRegistro
}

func (m *mockDashboardLogRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	return m.hoje, nil
}

func (m *mockDashboardLogRepo) Recent(ctx context.Context, limit int) ([]models.LogRegistro, error) {
	return m.recent, nil
}

type mockCacheRepo struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	setKeys []string
	deleted []string
	delErr  error
}

func (m *mockCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.data[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *mockCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = raw
	m.setKeys = append(m.setKeys, key)
	return nil
}

func (m *mockCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	if m.delErr != nil {
		return m.delErr
	}
	m.deleted = append(m.deleted, pattern)
	for key := range m.data {
		delete(m.data, key)
	}
	return nil
}

func newTestDashboardService(cacheRepo *mockCacheRepo) (*DashboardService, *mockDashboardRevendaRepo) {
	revendas := &mockDashboardRevendaRepo{
		total:   42,
		ativas:  37,
		estados: []models.RevendaPorEstado{{Estado: "SP", Total: 20}, {Estado: "MG", Total: 10}},
		meses:   []models.RevendaPorMes{{Mes: "2026-02", Total: 5}},
	}
	var cache *DashboardCache
	if cacheRepo != nil {
		cache = NewDashboardCache(cacheRepo, nil, time.Minute, zap.NewNop())
	}
	svc := NewDashboardService(DashboardServiceParams{
		Revendas: revendas,
		Admins:   &mockDashboardAdminRepo{total: 3},
		Logs:     &mockDashboardLogRepo{hoje: 7, recent: sampleLogs()},
		Cache:    cache,
		Logger:   zap.NewNop(),
	})
	return svc, revendas
}

func TestResumoComposesAggregates(t *testing.T) {
	svc, _ := newTestDashboardService(nil)

	resumo, cached, err := svc.Resumo(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 42, resumo.TotalRevendas)
	assert.Equal(t, 37, resumo.RevendasAtivas)
	assert.Equal(t, 3, resumo.TotalAdmins)
	assert.Equal(t, 7, resumo.LogsHoje)
	assert.Len(t, resumo.RevendasPorEstado, 2)
	assert.Len(t, resumo.UltimosLogs, 2)
	assert.False(t, resumo.GeradoEm.IsZero())
}

func TestResumoCacheHit(t *testing.T) {
	cacheRepo := &mockCacheRepo{}
	svc, revendas := newTestDashboardService(cacheRepo)

	_, cached, err := svc.Resumo(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Contains(t, cacheRepo.setKeys, "dash:resumo")

	// Database values change after the first compose. The cached payload
	// must win until the TTL elapses.
	revendas.total = 99

	resumo, cached, err := svc.Resumo(context.Background())
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, 42, resumo.TotalRevendas)
}

func TestResumoRecomposesAfterRevendaMutation(t *testing.T) {
	cacheRepo := &mockCacheRepo{}
	svc, revendas := newTestDashboardService(cacheRepo)
	cache := NewDashboardCache(cacheRepo, nil, time.Minute, zap.NewNop())
	revendaSvc := NewRevendaService(&mockRevendaRepo{}, &mockLogRepo{}, cache, nil, zap.NewNop())

	_, cached, err := svc.Resumo(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)

	revendas.total = 43
	_, err = revendaSvc.Create(context.Background(), validCreateRevenda(), "adm-1", models.RequestMeta{})
	require.NoError(t, err)
	assert.Contains(t, cacheRepo.deleted, "dash:*")

	resumo, cached, err := svc.Resumo(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 43, resumo.TotalRevendas)
}

func TestResumoCacheFailureFallsBack(t *testing.T) {
	cacheRepo := &mockCacheRepo{getErr: errors.New("redis down")}
	svc, _ := newTestDashboardService(cacheRepo)

	resumo, cached, err := svc.Resumo(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 42, resumo.TotalRevendas)
}

func TestResumoRepositoryError(t *testing.T) {
	svc, revendas := newTestDashboardService(nil)
	revendas.countErr = errors.New("db down")

	_, _, err := svc.Resumo(context.Background())
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrInternal.Code, appErr.Code)
}
