package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/painel-adm/revendas-api/internal/models"
	appErrors "github.com/painel-adm/revendas-api/pkg/errors"
	"github.com/painel-adm/revendas-api/pkg/export"
)

type logRepository interface {
	List(ctx context.Context, filter models.LogFilter) ([]models.LogRegistro, int, error)
	FindByID(ctx context.Context, id string) (*models.LogRegistro, error)
}

// ExportResult carries a rendered export document.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// LogService exposes the read side of the audit trail. Records are append
// only; writes happen inside the mutating services.
type LogService struct {
	repo   logRepository
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
	now    func() time.Time
}

// NewLogService creates an instance of LogService.
func NewLogService(repo logRepository, logger *zap.Logger) *LogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogService{
		repo:   repo,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
		now:    time.Now,
	}
}

// List returns paginated log records and pagination metadata.
func (s *LogService) List(ctx context.Context, filter models.LogFilter) ([]models.LogRegistro, *models.Pagination, error) {
	logs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	return logs, &models.Pagination{Page: page, PageSize: pageSize, TotalCount: total}, nil
}

// Get returns a log record by ID.
func (s *LogService) Get(ctx context.Context, id string) (*models.LogRegistro, error) {
	log, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "registro não encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return log, nil
}

// Export renders the filtered records as CSV or PDF. The pagination in the
// filter is widened so exports cover the whole filtered set up to the
// repository cap.
func (s *LogService) Export(ctx context.Context, filter models.LogFilter, formato string) (*ExportResult, error) {
	filter.Page = 1
	filter.PageSize = 200

	logs, _, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	dataset := buildLogDataset(logs)
	stamp := s.now().UTC().Format("2006-01-02")

	switch formato {
	case "csv", "":
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
		}
		return &ExportResult{Content: content, ContentType: "text/csv", Filename: "logs-" + stamp + ".csv"}, nil
	case "pdf":
		content, err := s.pdf.Render(dataset, "Logs de auditoria")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
		}
		return &ExportResult{Content: content, ContentType: "application/pdf", Filename: "logs-" + stamp + ".pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "formato deve ser csv ou pdf")
	}
}

func buildLogDataset(logs []models.LogRegistro) export.Dataset {
	headers := []string{"Data", "Admin", "Ação", "Recurso", "Recurso ID", "IP"}
	rows := make([]map[string]string, 0, len(logs))
	for _, log := range logs {
		adminID := ""
		if log.AdminID != nil {
			adminID = *log.AdminID
		}
		recursoID := ""
		if log.RecursoID != nil {
			recursoID = *log.RecursoID
		}
		rows = append(rows, map[string]string{
			"Data":       log.CreatedAt.UTC().Format(time.RFC3339),
			"Admin":      adminID,
			"Ação":       log.Acao,
			"Recurso":    log.Recurso,
			"Recurso ID": recursoID,
			"IP":         log.IP,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
