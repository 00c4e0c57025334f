package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/painel-adm/revendas-api/internal/models"
	appErrors "github.com/painel-adm/revendas-api/pkg/errors"
)

type authAdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	UpdateUltimoLogin(ctx context.Context, id string, ts time.Time) error
}

type authLogRepository interface {
	Create(ctx context.Context, log *models.LogRegistro) error
}

// dummyHash keeps the bcrypt cost of a login against an unknown email in the
// same ballpark as one against a wrong password, so response timing does not
// reveal whether an account exists. Hash of an unusable random value.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthConfig defines configuration for authentication flows.
type AuthConfig struct {
	TokenSecret string
	TokenExpiry time.Duration
	Issuer      string
}

// AuthService exchanges credentials for stateless session tokens and
// validates them. Token state follows Issued → Valid → Expired; there is no
// server-side revocation, logout only records the event.
type AuthService struct {
	admins    authAdminRepository
	logs      authLogRepository
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
	now       func() time.Time
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(admins authAdminRepository, logs authLogRepository, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.TokenExpiry <= 0 {
		config.TokenExpiry = 24 * time.Hour
	}
	return &AuthService{admins: admins, logs: logs, validator: validate, logger: logger, config: config, now: time.Now}
}

// Login authenticates an admin and returns the sanitized record plus a token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "email e senha são obrigatórios")
	}

	admin, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Burn the same bcrypt work as a real comparison.
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(req.Senha))
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.SenhaHash), []byte(req.Senha)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	if !admin.Ativo {
		return nil, appErrors.ErrInactiveAccount
	}

	token, err := s.generateToken(admin)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if err := s.admins.UpdateUltimoLogin(ctx, admin.ID, s.now().UTC()); err != nil {
		s.logger.Warn("failed to update ultimo_login", zap.Error(err))
	}

	s.audit(ctx, &admin.ID, models.AcaoLogin, "auth", &admin.ID, req.IP, req.UserAgent)

	return &models.LoginResponse{Admin: admin, Token: token}, nil
}

// ValidateToken parses and validates a session token. It is side-effect free
// and never touches the database.
func (s *AuthService) ValidateToken(tokenString string) (*models.AdminClaims, error) {
	if tokenString == "" {
		return nil, appErrors.ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.TokenSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, appErrors.Wrap(err, appErrors.ErrExpiredToken.Code, appErrors.ErrExpiredToken.Status, appErrors.ErrExpiredToken.Message)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidToken.Code, appErrors.ErrInvalidToken.Status, appErrors.ErrInvalidToken.Message)
	}

	claims, ok := token.Claims.(*models.AdminClaims)
	if !ok || !token.Valid {
		return nil, appErrors.ErrInvalidToken
	}

	return claims, nil
}

// Logout records the logout event. Tokens are stateless, so there is nothing
// to revoke server-side; the client discards its copy regardless of the
// outcome here.
func (s *AuthService) Logout(ctx context.Context, claims *models.AdminClaims, meta models.RequestMeta) {
	if claims == nil {
		return
	}
	s.audit(ctx, &claims.AdminID, models.AcaoLogout, "auth", &claims.AdminID, meta.IP, meta.UserAgent)
}

func (s *AuthService) audit(ctx context.Context, adminID *string, acao, recurso string, recursoID *string, ip, userAgent string) {
	if s.logs == nil {
		return
	}
	if err := s.logs.Create(ctx, &models.LogRegistro{
		AdminID:   adminID,
		Acao:      acao,
		Recurso:   recurso,
		RecursoID: recursoID,
		Detalhes:  []byte(`{"status":"success"}`),
		IP:        ip,
		UserAgent: userAgent,
	}); err != nil {
		s.logger.Warn("failed to record auth audit log", zap.String("acao", acao), zap.Error(err))
	}
}

func (s *AuthService) generateToken(admin *models.Admin) (string, error) {
	issuedAt := s.now().UTC()
	claims := &models.AdminClaims{
		AdminID:     admin.ID,
		Nome:        admin.Nome,
		Email:       admin.Email,
		NivelAcesso: admin.NivelAcesso,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   admin.ID,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.TokenSecret))
}
