package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/painel-adm/revendas-api/internal/models"
	appErrors "github.com/painel-adm/revendas-api/pkg/errors"
)

type dashboardRevendaRepository interface {
	Counts(ctx context.Context) (total int, ativas int, err error)
	CountByEstado(ctx context.Context) ([]models.RevendaPorEstado, error)
	CountByMonth(ctx context.Context, since time.Time) ([]models.RevendaPorMes, error)
}

type dashboardAdminRepository interface {
	Count(ctx context.Context) (int, error)
}

type dashboardLogRepository interface {
	CountSince(ctx context.Context, since time.Time) (int, error)
	Recent(ctx context.Context, limit int) ([]models.LogRegistro, error)
}

const dashboardCacheKey = "dash:resumo"

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	RecentLogs     int
	MonthsOfSeries int
}

// DashboardService composes the aggregate panel summary. It is read-only and
// caches the composed payload; cache failures degrade to direct reads.
type DashboardService struct {
	revendas dashboardRevendaRepository
	admins   dashboardAdminRepository
	logs     dashboardLogRepository
	cache    *DashboardCache
	logger   *zap.Logger
	now      func() time.Time
	cfg      DashboardServiceConfig
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Revendas dashboardRevendaRepository
	Admins   dashboardAdminRepository
	Logs     dashboardLogRepository
	Cache    *DashboardCache
	Logger   *zap.Logger
	Config   DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	cfg := params.Config
	if cfg.RecentLogs <= 0 {
		cfg.RecentLogs = 10
	}
	if cfg.MonthsOfSeries <= 0 {
		cfg.MonthsOfSeries = 6
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		revendas: params.Revendas,
		admins:   params.Admins,
		logs:     params.Logs,
		cache:    params.Cache,
		logger:   logger,
		now:      time.Now,
		cfg:      cfg,
	}
}

// Resumo returns the dashboard summary and whether it came from cache.
func (s *DashboardService) Resumo(ctx context.Context) (*models.DashboardResumo, bool, error) {
	if cached, ok := s.cache.GetResumo(ctx); ok {
		return cached, true, nil
	}

	resumo, err := s.compose(ctx)
	if err != nil {
		return nil, false, err
	}

	s.cache.SetResumo(ctx, resumo)

	return resumo, false, nil
}

func (s *DashboardService) compose(ctx context.Context) (*models.DashboardResumo, error) {
	now := s.now().UTC()

	total, ativas, err := s.revendas.Counts(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	porEstado, err := s.revendas.CountByEstado(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	since := now.AddDate(0, -s.cfg.MonthsOfSeries, 0)
	porMes, err := s.revendas.CountByMonth(ctx, time.Date(since.Year(), since.Month(), 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	totalAdmins, err := s.admins.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	logsHoje, err := s.logs.CountSince(ctx, startOfDay)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	ultimos, err := s.logs.Recent(ctx, s.cfg.RecentLogs)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	return &models.DashboardResumo{
		TotalRevendas:     total,
		RevendasAtivas:    ativas,
		TotalAdmins:       totalAdmins,
		LogsHoje:          logsHoje,
		RevendasPorEstado: porEstado,
		RevendasPorMes:    porMes,
		UltimosLogs:       ultimos,
		GeradoEm:          now,
	}, nil
}
