package rest

import (
	"context"
	"embed"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/labmaint/internal/metrics"
	"github.com/dmitrijs2005/labmaint/internal/server/auth"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
	"github.com/dmitrijs2005/labmaint/internal/server/services"
	"github.com/dmitrijs2005/labmaint/internal/validation"
)

//go:embed ui/*.html
var uiFS embed.FS

type statusBody struct {
	Status  string `json:"status"`
	DB      string `json:"db,omitempty"`
	DBError string `json:"db_error,omitempty"`
}

type loginBody struct {
	Mensaje string        `json:"mensaje"`
	Usuario auth.Identity `json:"usuario"`
}

type meBody struct {
	Autenticado bool           `json:"autenticado"`
	Usuario     *auth.Identity `json:"usuario,omitempty"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Ping(r.Context()); err != nil {
		s.logger.Warn(r.Context(), "database ping failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, statusBody{Status: "error", DBError: err.Error()})
		return
	}
	respondJSON(w, http.StatusOK, statusBody{Status: "ok", DB: "conectada"})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.FromContext(r.Context()); ok {
		http.Redirect(w, r, "/ui", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login-ui", http.StatusFound)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	usuario, contrasena := req.Credentials()
	sess, err := s.svc.Users.Login(r.Context(), usuario, contrasena)
	if err != nil {
		if statusFor(err) == http.StatusUnauthorized {
			metrics.RecordLogin(metrics.LoginInvalid)
			s.logger.Warn(r.Context(), "login rejected", "request_id", requestIDFrom(r.Context()), "usuario", usuario)
		}
		s.respondError(w, r, err)
		return
	}

	metrics.RecordLogin(metrics.LoginOK)
	http.SetCookie(w, auth.NewSessionCookie(sess.Token, s.svc.Users.SessionValidity(), s.opts.SecureCookie))
	respondJSON(w, http.StatusOK, loginBody{Mensaje: "Login correcto", Usuario: sess.Identity})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.svc.Users.Logout(auth.TokenFromRequest(r))
	http.SetCookie(w, auth.ExpiredSessionCookie(s.opts.SecureCookie))
	respondJSON(w, http.StatusOK, messageBody{Mensaje: "Logout correcto"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusOK, meBody{Autenticado: false})
		return
	}
	respondJSON(w, http.StatusOK, meBody{Autenticado: true, Usuario: id})
}

func (s *Server) handleListLaboratorios(w http.ResponseWriter, r *http.Request) {
	rows, err := s.svc.Laboratorios.List(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if rows == nil {
		rows = []models.Laboratorio{}
	}
	respondJSON(w, http.StatusOK, rows)
}

func (s *Server) handleProximas(w http.ResponseWriter, r *http.Request) {
	rows, err := s.svc.Programaciones.Proximas(r.Context(), parseProximasFilter(r.URL.Query()))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if rows == nil {
		rows = []models.ProgramacionProxima{}
	}
	respondJSON(w, http.StatusOK, rows)
}

func (s *Server) handleDebugRoutes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.Routes())
}

func (s *Server) handleLoginUI(w http.ResponseWriter, r *http.Request) {
	serveHTML(w, "ui/login.html")
}

func (s *Server) handleUI(w http.ResponseWriter, r *http.Request) {
	serveHTML(w, "ui/ui.html")
}

func serveHTML(w http.ResponseWriter, name string) {
	page, err := uiFS.ReadFile(name)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

// Typed request bodies expose the columns they carry.
type valuer interface {
	Values() models.Values
}

type lister[R, F any] interface {
	List(ctx context.Context, f F) ([]R, error)
}

type creator interface {
	Create(ctx context.Context, v models.Values) (int64, error)
	Messages() services.Messages
}

type updater interface {
	Update(ctx context.Context, id int64, v models.Values) error
	Messages() services.Messages
}

type deleter interface {
	Delete(ctx context.Context, id int64) error
	Messages() services.Messages
}

func listHandler[R, F any](s *Server, svc lister[R, F], parse func(q url.Values) F) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.List(r.Context(), parse(r.URL.Query()))
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		if rows == nil {
			rows = []R{}
		}
		respondJSON(w, http.StatusOK, rows)
	}
}

// createHandler decodes and validates T before the service sees it.
func createHandler[T valuer](s *Server, svc creator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req T
		if err := decodeBody(r, &req); err != nil {
			s.respondError(w, r, err)
			return
		}
		if err := validation.ValidateStruct(&req); err != nil {
			s.respondError(w, r, err)
			return
		}

		id, err := svc.Create(r.Context(), req.Values())
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, messageIDBody{Mensaje: svc.Messages().Created, ID: id})
	}
}

func updateHandler[T valuer](s *Server, svc updater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			respondJSON(w, http.StatusNotFound, errorBody{Error: svc.Messages().NotFound})
			return
		}

		var req T
		if err := decodeBody(r, &req); err != nil {
			s.respondError(w, r, err)
			return
		}
		if err := validation.ValidateStruct(&req); err != nil {
			s.respondError(w, r, err)
			return
		}

		if err := svc.Update(r.Context(), id, req.Values()); err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, messageIDBody{Mensaje: svc.Messages().Updated, ID: id})
	}
}

func deleteHandler(s *Server, svc deleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			respondJSON(w, http.StatusNotFound, errorBody{Error: svc.Messages().NotFound})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, messageBody{Mensaje: svc.Messages().Deleted})
	}
}
