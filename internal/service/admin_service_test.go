package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/painel-adm/revendas-api/internal/models"
	appErrors "github.com/painel-adm/revendas-api/pkg/errors"
)

type mockAdminRepo struct {
	byID    map[string]*models.Admin
	byEmail map[string]*models.Admin
	list    []models.Admin
	total   int
	created []*models.Admin
	updated []*models.Admin
	deleted []string
}

func (m *mockAdminRepo) List(ctx context.Context, filter models.AdminFilter) ([]models.Admin, int, error) {
	return m.list, m.total, nil
}

func (m *mockAdminRepo) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	if a, ok := m.byID[id]; ok {
		return a, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockAdminRepo) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if a, ok := m.byEmail[email]; ok {
		return a, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	admin.ID = "adm-novo"
	m.created = append(m.created, admin)
	return nil
}

func (m *mockAdminRepo) Update(ctx context.Context, admin *models.Admin) error {
	m.updated = append(m.updated, admin)
	return nil
}

func (m *mockAdminRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func newTestAdminService(repo *mockAdminRepo, logs *mockLogRepo) *AdminService {
	return NewAdminService(repo, logs, nil, validator.New(), zap.NewNop())
}

func TestCreateAdminHashesPassword(t *testing.T) {
	repo := &mockAdminRepo{}
	logs := &mockLogRepo{}
	svc := newTestAdminService(repo, logs)

	req := CreateAdminRequest{Nome: "Bruno", Email: "Bruno@Painel.com", Senha: "segredo123", NivelAcesso: models.NivelAdmin}
	admin, err := svc.Create(context.Background(), req, "adm-1", models.RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, "bruno@painel.com", admin.Email)
	assert.True(t, admin.Ativo)
	assert.NotEqual(t, "segredo123", admin.SenhaHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.SenhaHash), []byte("segredo123")))

	require.Len(t, logs.entries, 1)
	assert.Equal(t, models.AcaoAdminCreate, logs.entries[0].Acao)
	assert.Equal(t, "admins", logs.entries[0].Recurso)
}

func TestCreateAdminDuplicateEmail(t *testing.T) {
	repo := &mockAdminRepo{byEmail: map[string]*models.Admin{
		"bruno@painel.com": {ID: "adm-2", Email: "bruno@painel.com"},
	}}
	svc := newTestAdminService(repo, &mockLogRepo{})

	req := CreateAdminRequest{Nome: "Bruno", Email: "bruno@painel.com", Senha: "segredo123", NivelAcesso: models.NivelAdmin}
	_, err := svc.Create(context.Background(), req, "adm-1", models.RequestMeta{})
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Empty(t, repo.created)
}

func TestCreateAdminShortPassword(t *testing.T) {
	svc := newTestAdminService(&mockAdminRepo{}, &mockLogRepo{})

	req := CreateAdminRequest{Nome: "Bruno", Email: "bruno@painel.com", Senha: "curta", NivelAcesso: models.NivelAdmin}
	_, err := svc.Create(context.Background(), req, "adm-1", models.RequestMeta{})
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestCreateAdminInvalidNivel(t *testing.T) {
	svc := newTestAdminService(&mockAdminRepo{}, &mockLogRepo{})

	req := CreateAdminRequest{Nome: "Bruno", Email: "bruno@painel.com", Senha: "segredo123", NivelAcesso: "root"}
	_, err := svc.Create(context.Background(), req, "adm-1", models.RequestMeta{})
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestUpdateAdmin(t *testing.T) {
	existing := &models.Admin{ID: "adm-2", Nome: "Carla", NivelAcesso: models.NivelAdmin, Ativo: true}
	repo := &mockAdminRepo{byID: map[string]*models.Admin{"adm-2": existing}}
	logs := &mockLogRepo{}
	svc := newTestAdminService(repo, logs)

	inativo := false
	req := UpdateAdminRequest{Nome: "Carla", NivelAcesso: models.NivelSuper, Ativo: &inativo}
	admin, err := svc.Update(context.Background(), "adm-2", req, "adm-1", models.RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, models.NivelSuper, admin.NivelAcesso)
	assert.False(t, admin.Ativo)
	require.Len(t, logs.entries, 1)
	assert.Equal(t, models.AcaoAdminUpdate, logs.entries[0].Acao)
}

func TestDeleteAdminSelfRejected(t *testing.T) {
	repo := &mockAdminRepo{byID: map[string]*models.Admin{"adm-1": {ID: "adm-1"}}}
	svc := newTestAdminService(repo, &mockLogRepo{})

	err := svc.Delete(context.Background(), "adm-1", "adm-1", models.RequestMeta{})
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Empty(t, repo.deleted)
}

func TestDeleteAdmin(t *testing.T) {
	repo := &mockAdminRepo{byID: map[string]*models.Admin{"adm-2": {ID: "adm-2", Email: "c@painel.com"}}}
	logs := &mockLogRepo{}
	svc := newTestAdminService(repo, logs)

	require.NoError(t, svc.Delete(context.Background(), "adm-2", "adm-1", models.RequestMeta{}))
	assert.Equal(t, []string{"adm-2"}, repo.deleted)
	require.Len(t, logs.entries, 1)
	assert.Equal(t, models.AcaoAdminDelete, logs.entries[0].Acao)
}
