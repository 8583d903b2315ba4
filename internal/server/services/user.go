package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/labmaint/internal/common"
	"github.com/dmitrijs2005/labmaint/internal/server/auth"
	"github.com/dmitrijs2005/labmaint/internal/server/config"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/repomanager"
)

const (
	adminUsuario    = "admin"
	adminContrasena = "admin"
)

// Session is the outcome of a successful login.
type Session struct {
	Identity auth.Identity
	Token    string
}

// UserService handles login, session verification and user provisioning.
type UserService struct {
	db                      *sql.DB
	repomanager             repomanager.RepositoryManager
	jwtSecret               []byte
	sessionValidityDuration time.Duration
	revocations             *auth.Revocations
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                      db,
		repomanager:             m,
		jwtSecret:               []byte(cfg.SecretKey),
		sessionValidityDuration: cfg.SessionValidityDuration,
		revocations:             auth.NewRevocations(),
	}
}

func (s *UserService) SessionValidity() time.Duration {
	return s.sessionValidityDuration
}

// Login verifies the credentials and mints a session token. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, usuario, contrasena string) (*Session, error) {
	if usuario == "" || contrasena == "" {
		return nil, common.Errorf(common.ErrorValidation, "usuario y contrasena son obligatorios")
	}

	user, err := s.repomanager.Usuarios(s.db).GetByLogin(ctx, usuario)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.Errorf(common.ErrorInvalidCredentials, "Credenciales inválidas")
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Contrasena, contrasena) {
		return nil, common.Errorf(common.ErrorInvalidCredentials, "Credenciales inválidas")
	}

	id := auth.Identity{UserID: user.ID, Usuario: user.Usuario, Rol: user.Rol}
	token, err := auth.GenerateToken(id, s.jwtSecret, s.sessionValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &Session{Identity: id, Token: token}, nil
}

// Authenticate resolves a session token to its identity.
func (s *UserService) Authenticate(token string) (*auth.Identity, error) {
	if token == "" || s.revocations.IsRevoked(token) {
		return nil, common.ErrorUnauthorized
	}
	id, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUnauthorized, err)
	}
	return id, nil
}

// Logout revokes token for the rest of its lifetime. Invalid or expired
// tokens need no revocation.
func (s *UserService) Logout(token string) {
	exp, err := auth.TokenExpiry(token, s.jwtSecret)
	if err != nil {
		return
	}
	s.revocations.Revoke(token, exp)
}

// Register stores a new user with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, usuario, contrasena, rol string) (*models.Usuario, error) {
	if usuario == "" || contrasena == "" {
		return nil, common.Errorf(common.ErrorValidation, "usuario y contrasena son obligatorios")
	}
	if rol == "" {
		rol = models.RolSoloVista
	}

	hash, err := auth.HashPassword(contrasena)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	u, err := s.repomanager.Usuarios(s.db).Create(ctx, &models.Usuario{Usuario: usuario, Contrasena: hash, Rol: rol})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// EnsureAdmin creates the admin/admin account when no "admin" user exists.
// It reports whether the account was created.
func (s *UserService) EnsureAdmin(ctx context.Context) (bool, error) {
	_, err := s.repomanager.Usuarios(s.db).GetByLogin(ctx, adminUsuario)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return false, err
	}

	if _, err := s.Register(ctx, adminUsuario, adminContrasena, models.RolAdmin); err != nil {
		return false, err
	}
	return true, nil
}
