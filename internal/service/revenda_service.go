package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/painel-adm/revendas-api/internal/models"
	appErrors "github.com/painel-adm/revendas-api/pkg/errors"
)

type revendaRepository interface {
	List(ctx context.Context, filter models.RevendaFilter) ([]models.Revenda, int, error)
	FindByID(ctx context.Context, id string) (*models.Revenda, error)
	FindByCNPJ(ctx context.Context, cnpj string) (*models.Revenda, error)
	FindByEmail(ctx context.Context, email string) (*models.Revenda, error)
	Create(ctx context.Context, revenda *models.Revenda) error
	Update(ctx context.Context, revenda *models.Revenda) error
	Delete(ctx context.Context, id string) error
}

// CreateRevendaRequest represents payload for creating revendas.
type CreateRevendaRequest struct {
	Nome        string `json:"nome" validate:"required"`
	RazaoSocial string `json:"razao_social"`
	CNPJ        string `json:"cnpj" validate:"required,len=14,numeric"`
	Email       string `json:"email" validate:"required,email"`
	Telefone    string `json:"telefone"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado" validate:"required,len=2,alpha"`
}

// UpdateRevendaRequest payload for updating revendas.
type UpdateRevendaRequest struct {
	Nome        string `json:"nome" validate:"required"`
	RazaoSocial string `json:"razao_social"`
	CNPJ        string `json:"cnpj" validate:"required,len=14,numeric"`
	Email       string `json:"email" validate:"required,email"`
	Telefone    string `json:"telefone"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado" validate:"required,len=2,alpha"`
	Ativo       *bool  `json:"ativo"`
}

// RevendaService handles reseller management workflows. Mutations invalidate
// the dashboard cache since its aggregates count revendas.
type RevendaService struct {
	repo      revendaRepository
	logs      authLogRepository
	cache     *DashboardCache
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRevendaService creates an instance of RevendaService.
func NewRevendaService(repo revendaRepository, logs authLogRepository, cache *DashboardCache, validate *validator.Validate, logger *zap.Logger) *RevendaService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &RevendaService{repo: repo, logs: logs, cache: cache, validator: validate, logger: logger}
}

// List returns paginated revendas and pagination metadata.
func (s *RevendaService) List(ctx context.Context, filter models.RevendaFilter) ([]models.Revenda, *models.Pagination, error) {
	revendas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	return revendas, &models.Pagination{Page: page, PageSize: pageSize, TotalCount: total}, nil
}

// Get returns a revenda by ID.
func (s *RevendaService) Get(ctx context.Context, id string) (*models.Revenda, error) {
	revenda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "revenda não encontrada")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return revenda, nil
}

// Create adds a new revenda attributed to the acting admin.
func (s *RevendaService) Create(ctx context.Context, req CreateRevendaRequest, actorID string, meta models.RequestMeta) (*models.Revenda, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "dados da revenda inválidos")
	}

	if _, err := s.repo.FindByCNPJ(ctx, req.CNPJ); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "CNPJ já cadastrado")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if _, err := s.repo.FindByEmail(ctx, strings.ToLower(req.Email)); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "email já cadastrado")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	revenda := &models.Revenda{
		Nome:        req.Nome,
		RazaoSocial: req.RazaoSocial,
		CNPJ:        req.CNPJ,
		Email:       strings.ToLower(req.Email),
		Telefone:    req.Telefone,
		Cidade:      req.Cidade,
		Estado:      strings.ToUpper(req.Estado),
		Ativo:       true,
	}

	if err := s.repo.Create(ctx, revenda); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.audit(ctx, actorID, models.AcaoRevendaCreate, revenda.ID, meta, map[string]interface{}{"nome": revenda.Nome, "cnpj": revenda.CNPJ})
	s.cache.Invalidate(ctx)

	return revenda, nil
}

// Update modifies revenda attributes.
func (s *RevendaService) Update(ctx context.Context, id string, req UpdateRevendaRequest, actorID string, meta models.RequestMeta) (*models.Revenda, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "dados da revenda inválidos")
	}

	revenda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "revenda não encontrada")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if req.CNPJ != revenda.CNPJ {
		if existing, err := s.repo.FindByCNPJ(ctx, req.CNPJ); err == nil && existing.ID != id {
			return nil, appErrors.Clone(appErrors.ErrConflict, "CNPJ já cadastrado")
		} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
		}
	}

	if email := strings.ToLower(req.Email); email != revenda.Email {
		if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing.ID != id {
			return nil, appErrors.Clone(appErrors.ErrConflict, "email já cadastrado")
		} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
		}
	}

	revenda.Nome = req.Nome
	revenda.RazaoSocial = req.RazaoSocial
	revenda.CNPJ = req.CNPJ
	revenda.Email = strings.ToLower(req.Email)
	revenda.Telefone = req.Telefone
	revenda.Cidade = req.Cidade
	revenda.Estado = strings.ToUpper(req.Estado)
	if req.Ativo != nil {
		revenda.Ativo = *req.Ativo
	}

	if err := s.repo.Update(ctx, revenda); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.audit(ctx, actorID, models.AcaoRevendaUpdate, revenda.ID, meta, map[string]interface{}{"nome": revenda.Nome, "ativo": revenda.Ativo})
	s.cache.Invalidate(ctx)

	return revenda, nil
}

// Delete performs a soft delete on a revenda.
func (s *RevendaService) Delete(ctx context.Context, id string, actorID string, meta models.RequestMeta) error {
	revenda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "revenda não encontrada")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if err := s.repo.Delete(ctx, revenda.ID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.audit(ctx, actorID, models.AcaoRevendaDelete, revenda.ID, meta, map[string]interface{}{"nome": revenda.Nome})
	s.cache.Invalidate(ctx)

	return nil
}

func (s *RevendaService) audit(ctx context.Context, actorID, acao, recursoID string, meta models.RequestMeta, detalhes map[string]interface{}) {
	if s.logs == nil {
		return
	}
	payload, _ := json.Marshal(detalhes)
	if err := s.logs.Create(ctx, &models.LogRegistro{
		AdminID:   &actorID,
		Acao:      acao,
		Recurso:   "revendas",
		RecursoID: &recursoID,
		Detalhes:  payload,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
	}); err != nil {
		s.logger.Warn("failed to record revenda audit log", zap.String("acao", acao), zap.Error(err))
	}
}
