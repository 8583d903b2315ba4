package rest

import (
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/labmaint/internal/metrics"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
)

const idPattern = "/{id:[0-9]+}"

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(s.requestID)
	r.Use(s.accessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.session)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusNotFound, errorBody{Error: "No encontrado"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "Método no permitido"})
	})

	r.Get("/status", s.handleStatus)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/", s.handleRoot)
	r.Get("/me", s.handleMe)
	r.Get("/login-ui", s.handleLoginUI)

	r.Group(func(r chi.Router) {
		if s.opts.LoginRateLimit > 0 {
			r.Use(httprate.Limit(s.opts.LoginRateLimit, time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					metrics.RecordLogin(metrics.LoginRateLimited)
					respondJSON(w, http.StatusTooManyRequests, errorBody{Error: "Demasiados intentos, intente más tarde"})
				}),
			))
		}
		r.Post("/login", s.handleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Post("/logout", s.handleLogout)
		r.Get("/ui", s.handleUI)
		r.Get("/laboratorios", s.handleListLaboratorios)

		r.Get("/equipos", listHandler[models.Equipo, models.EquipoFilter](s, s.svc.Equipos, parseEquipoFilter))
		r.Get("/programaciones", listHandler[models.Programacion, models.ProgramacionFilter](s, s.svc.Programaciones, parseProgramacionFilter))
		r.Get("/programaciones/proximas", s.handleProximas)
		r.Get("/mantenimientos", listHandler[models.Mantenimiento, models.MantenimientoFilter](s, s.svc.Mantenimientos, parseMantenimientoFilter))
		r.Get("/incidencias", listHandler[models.Incidencia, models.IncidenciaFilter](s, s.svc.Incidencias, parseIncidenciaFilter))
	})

	r.Group(func(r chi.Router) {
		r.Use(requireAdmin)

		r.Post("/equipos", createHandler[models.EquipoCreate](s, s.svc.Equipos))
		r.Put("/equipos"+idPattern, updateHandler[models.EquipoUpdate](s, s.svc.Equipos))
		r.Delete("/equipos"+idPattern, deleteHandler(s, s.svc.Equipos))

		r.Post("/programaciones", createHandler[models.ProgramacionCreate](s, s.svc.Programaciones))
		r.Put("/programaciones"+idPattern, updateHandler[models.ProgramacionUpdate](s, s.svc.Programaciones))
		r.Delete("/programaciones"+idPattern, deleteHandler(s, s.svc.Programaciones))

		r.Post("/mantenimientos", createHandler[models.MantenimientoCreate](s, s.svc.Mantenimientos))
		r.Put("/mantenimientos"+idPattern, updateHandler[models.MantenimientoUpdate](s, s.svc.Mantenimientos))
		r.Delete("/mantenimientos"+idPattern, deleteHandler(s, s.svc.Mantenimientos))

		r.Post("/incidencias", createHandler[models.IncidenciaCreate](s, s.svc.Incidencias))
		r.Put("/incidencias"+idPattern, updateHandler[models.IncidenciaUpdate](s, s.svc.Incidencias))
		r.Delete("/incidencias"+idPattern, deleteHandler(s, s.svc.Incidencias))

		r.Get("/debug/routes", s.handleDebugRoutes)
	})

	return r
}

// Route is one registered path with its methods.
type Route struct {
	Rule    string   `json:"rule"`
	Methods []string `json:"methods"`
}

// Routes lists the registered routes sorted by path.
func (s *Server) Routes() []Route {
	byRule := map[string][]string{}
	_ = chi.Walk(s.router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		byRule[route] = append(byRule[route], method)
		return nil
	})

	routes := make([]Route, 0, len(byRule))
	for rule, methods := range byRule {
		sort.Strings(methods)
		routes = append(routes, Route{Rule: rule, Methods: methods})
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].Rule < routes[j].Rule })
	return routes
}
