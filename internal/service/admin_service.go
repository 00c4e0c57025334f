package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/painel-adm/revendas-api/internal/models"
	appErrors "github.com/painel-adm/revendas-api/pkg/errors"
)

type adminRepository interface {
	List(ctx context.Context, filter models.AdminFilter) ([]models.Admin, int, error)
	FindByID(ctx context.Context, id string) (*models.Admin, error)
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
	Update(ctx context.Context, admin *models.Admin) error
	Delete(ctx context.Context, id string) error
}

// CreateAdminRequest represents payload for creating administrators.
type CreateAdminRequest struct {
	Nome        string             `json:"nome" validate:"required"`
	Email       string             `json:"email" validate:"required,email"`
	Senha       string             `json:"senha" validate:"required,min=8"`
	NivelAcesso models.NivelAcesso `json:"nivel_acesso" validate:"required,oneof=super admin"`
}

// UpdateAdminRequest payload for updating administrators.
type UpdateAdminRequest struct {
	Nome        string             `json:"nome" validate:"required"`
	NivelAcesso models.NivelAcesso `json:"nivel_acesso" validate:"required,oneof=super admin"`
	Ativo       *bool              `json:"ativo"`
}

// AdminService handles administrator management workflows. Mutations
// invalidate the dashboard cache since its aggregates count admins.
type AdminService struct {
	repo      adminRepository
	logs      authLogRepository
	cache     *DashboardCache
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAdminService creates an instance of AdminService.
func NewAdminService(repo adminRepository, logs authLogRepository, cache *DashboardCache, validate *validator.Validate, logger *zap.Logger) *AdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AdminService{repo: repo, logs: logs, cache: cache, validator: validate, logger: logger}
}

// List returns paginated admins and pagination metadata.
func (s *AdminService) List(ctx context.Context, filter models.AdminFilter) ([]models.Admin, *models.Pagination, error) {
	admins, total, err := s.repo.List(ctx, filter)
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

	return admins, &models.Pagination{Page: page, PageSize: pageSize, TotalCount: total}, nil
}

// Get returns an admin by ID.
func (s *AdminService) Get(ctx context.Context, id string) (*models.Admin, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "administrador não encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return admin, nil
}

// Create adds a new administrator.
func (s *AdminService) Create(ctx context.Context, req CreateAdminRequest, actorID string, meta models.RequestMeta) (*models.Admin, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "dados do administrador inválidos")
	}

	if _, err := s.repo.FindByEmail(ctx, strings.ToLower(req.Email)); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "email já cadastrado")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	admin := &models.Admin{
		Nome:        req.Nome,
		Email:       strings.ToLower(req.Email),
		SenhaHash:   string(hash),
		NivelAcesso: req.NivelAcesso,
		Ativo:       true,
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.audit(ctx, actorID, models.AcaoAdminCreate, admin.ID, meta, map[string]interface{}{"email": admin.Email, "nivel_acesso": admin.NivelAcesso})
	s.cache.Invalidate(ctx)

	return admin, nil
}

// Update modifies admin attributes. Email and password are not editable
// through this flow.
func (s *AdminService) Update(ctx context.Context, id string, req UpdateAdminRequest, actorID string, meta models.RequestMeta) (*models.Admin, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "dados do administrador inválidos")
	}

	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "administrador não encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	anterior, _ := json.Marshal(map[string]interface{}{"nivel_acesso": admin.NivelAcesso, "ativo": admin.Ativo})

	admin.Nome = req.Nome
	admin.NivelAcesso = req.NivelAcesso
	if req.Ativo != nil {
		admin.Ativo = *req.Ativo
	}

	if err := s.repo.Update(ctx, admin); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.audit(ctx, actorID, models.AcaoAdminUpdate, admin.ID, meta, map[string]interface{}{
		"anterior":     json.RawMessage(anterior),
		"nivel_acesso": admin.NivelAcesso,
		"ativo":        admin.Ativo,
	})
	s.cache.Invalidate(ctx)

	return admin, nil
}

// Delete performs a soft delete on an admin. Admins cannot delete themselves.
func (s *AdminService) Delete(ctx context.Context, id string, actorID string, meta models.RequestMeta) error {
	if id == actorID {
		return appErrors.Clone(appErrors.ErrValidation, "não é possível remover a própria conta")
	}

	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "administrador não encontrado")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if err := s.repo.Delete(ctx, admin.ID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.audit(ctx, actorID, models.AcaoAdminDelete, admin.ID, meta, map[string]interface{}{"email": admin.Email})
	s.cache.Invalidate(ctx)

	return nil
}

func (s *AdminService) audit(ctx context.Context, actorID, acao, recursoID string, meta models.RequestMeta, detalhes map[string]interface{}) {
	if s.logs == nil {
		return
	}
	payload, _ := json.Marshal(detalhes)
	if err := s.logs.Create(ctx, &models.LogRegistro{
		AdminID:   &actorID,
		Acao:      acao,
		Recurso:   "admins",
		RecursoID: &recursoID,
		Detalhes:  payload,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
	}); err != nil {
		s.logger.Warn("failed to record admin audit log", zap.String("acao", acao), zap.Error(err))
	}
}
