// Package rest exposes the labmaint HTTP/JSON API on a chi router.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/labmaint/internal/logging"
	"github.com/dmitrijs2005/labmaint/internal/server/auth"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
	"github.com/dmitrijs2005/labmaint/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type UserService interface {
	Login(ctx context.Context, usuario, contrasena string) (*services.Session, error)
	Authenticate(token string) (*auth.Identity, error)
	Logout(token string)
	SessionValidity() time.Duration
}

type LaboratorioService interface {
	List(ctx context.Context) ([]models.Laboratorio, error)
}

// EntityService is the CRUD surface shared by the maintenance entities.
type EntityService[R, F any] interface {
	List(ctx context.Context, f F) ([]R, error)
	Create(ctx context.Context, v models.Values) (int64, error)
	Update(ctx context.Context, id int64, v models.Values) error
	Delete(ctx context.Context, id int64) error
	Messages() services.Messages
}

type ProgramacionService interface {
	EntityService[models.Programacion, models.ProgramacionFilter]
	Proximas(ctx context.Context, f models.ProximasFilter) ([]models.ProgramacionProxima, error)
}

// Services bundles the handlers' dependencies. Ping checks the database.
type Services struct {
	Users          UserService
	Laboratorios   LaboratorioService
	Equipos        EntityService[models.Equipo, models.EquipoFilter]
	Programaciones ProgramacionService
	Mantenimientos EntityService[models.Mantenimiento, models.MantenimientoFilter]
	Incidencias    EntityService[models.Incidencia, models.IncidenciaFilter]
	Ping           func(ctx context.Context) error
}

type Options struct {
	SecureCookie bool
	// LoginRateLimit is the number of login attempts allowed per IP and
	// minute; zero disables the limit.
	LoginRateLimit int
}

type Server struct {
	svc    Services
	opts   Options
	logger logging.Logger
	router chi.Router
}

func NewServer(svc Services, l logging.Logger, opts Options) *Server {
	s := &Server{
		svc:    svc,
		opts:   opts,
		logger: l.With("module", "http_server"),
	}
	s.router = s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on address until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	listen, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "HTTP shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
