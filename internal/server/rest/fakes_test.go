package rest

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/labmaint/internal/common"
	"github.com/dmitrijs2005/labmaint/internal/logging"
	"github.com/dmitrijs2005/labmaint/internal/server/auth"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
	"github.com/dmitrijs2005/labmaint/internal/server/services"
)

var testSecret = []byte("test-secret")

type fakeUsers struct {
	users   map[string]models.Usuario
	revoked map[string]bool
}

func (f *fakeUsers) Login(ctx context.Context, usuario, contrasena string) (*services.Session, error) {
	if usuario == "" || contrasena == "" {
		return nil, common.Errorf(common.ErrorValidation, "usuario y contrasena son obligatorios")
	}
	u, ok := f.users[usuario]
	if !ok || u.Contrasena != contrasena {
		return nil, common.Errorf(common.ErrorInvalidCredentials, "Credenciales inválidas")
	}
	id := auth.Identity{UserID: u.ID, Usuario: u.Usuario, Rol: u.Rol}
	tok, err := auth.GenerateToken(id, testSecret, time.Hour)
	if err != nil {
		return nil, err
	}
	return &services.Session{Identity: id, Token: tok}, nil
}

func (f *fakeUsers) Authenticate(token string) (*auth.Identity, error) {
	if f.revoked[token] {
		return nil, common.ErrorUnauthorized
	}
	return auth.ParseToken(token, testSecret)
}

func (f *fakeUsers) Logout(token string) {
	f.revoked[token] = true
}

func (f *fakeUsers) SessionValidity() time.Duration { return time.Hour }

type fakeLaboratorios struct {
	rows []models.Laboratorio
}

func (f *fakeLaboratorios) List(ctx context.Context) ([]models.Laboratorio, error) {
	return f.rows, nil
}

// fakeEntity records what the handlers pass down and mimics the service's
// empty-update and not-found behavior.
type fakeEntity[R, F any] struct {
	msgs services.Messages

	rows    []R
	listErr error

	filter F

	created   models.Values
	createID  int64
	createErr error

	updatedID int64
	updated   models.Values
	updateErr error

	deletedID int64
	deleteErr error
}

func (f *fakeEntity[R, F]) List(ctx context.Context, filter F) ([]R, error) {
	f.filter = filter
	return f.rows, f.listErr
}

func (f *fakeEntity[R, F]) Create(ctx context.Context, v models.Values) (int64, error) {
	f.created = v
	return f.createID, f.createErr
}

func (f *fakeEntity[R, F]) Update(ctx context.Context, id int64, v models.Values) error {
	if len(v) == 0 {
		return common.Errorf(common.ErrorNoFields, f.msgs.NoFields)
	}
	f.updatedID, f.updated = id, v
	return f.updateErr
}

func (f *fakeEntity[R, F]) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

func (f *fakeEntity[R, F]) Messages() services.Messages { return f.msgs }

type fakeProgramaciones struct {
	*fakeEntity[models.Programacion, models.ProgramacionFilter]
	proximasFilter models.ProximasFilter
}

func (f *fakeProgramaciones) Proximas(ctx context.Context, filter models.ProximasFilter) ([]models.ProgramacionProxima, error) {
	f.proximasFilter = filter
	return nil, nil
}

type fixture struct {
	srv            *Server
	pingErr        error
	equipos        *fakeEntity[models.Equipo, models.EquipoFilter]
	programaciones *fakeProgramaciones
	mantenimientos *fakeEntity[models.Mantenimiento, models.MantenimientoFilter]
	incidencias    *fakeEntity[models.Incidencia, models.IncidenciaFilter]
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()

	f := &fixture{
		equipos: &fakeEntity[models.Equipo, models.EquipoFilter]{msgs: services.Messages{
			Created: "Equipo creado", Updated: "Equipo actualizado", Deleted: "Equipo eliminado",
			NotFound: "Equipo no encontrado", NoFields: "Sin cambios: no se enviaron campos permitidos",
		}},
		programaciones: &fakeProgramaciones{fakeEntity: &fakeEntity[models.Programacion, models.ProgramacionFilter]{msgs: services.Messages{
			Created: "Programación creada", NotFound: "Programación no encontrada",
		}}},
		mantenimientos: &fakeEntity[models.Mantenimiento, models.MantenimientoFilter]{msgs: services.Messages{
			Created: "Mantenimiento creado", Deleted: "Mantenimiento eliminado", NotFound: "Mantenimiento no encontrado",
		}},
		incidencias: &fakeEntity[models.Incidencia, models.IncidenciaFilter]{msgs: services.Messages{
			Created: "Incidencia creada", NotFound: "Incidencia no encontrada",
		}},
	}

	svc := Services{
		Users: &fakeUsers{revoked: map[string]bool{}, users: map[string]models.Usuario{
			"admin":  {ID: 1, Usuario: "admin", Contrasena: "admin", Rol: models.RolAdmin},
			"lector": {ID: 2, Usuario: "lector", Contrasena: "lector", Rol: models.RolSoloVista},
		}},
		Laboratorios:   &fakeLaboratorios{},
		Equipos:        f.equipos,
		Programaciones: f.programaciones,
		Mantenimientos: f.mantenimientos,
		Incidencias:    f.incidencias,
		Ping:           func(context.Context) error { return f.pingErr },
	}

	f.srv = NewServer(svc, logging.Discard(), opts)
	return f
}

func sessionCookie(t *testing.T, id auth.Identity) *http.Cookie {
	t.Helper()
	tok, err := auth.GenerateToken(id, testSecret, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: auth.SessionCookieName, Value: tok}
}

func adminCookie(t *testing.T) *http.Cookie {
	return sessionCookie(t, auth.Identity{UserID: 1, Usuario: "admin", Rol: models.RolAdmin})
}

func viewerCookie(t *testing.T) *http.Cookie {
	return sessionCookie(t, auth.Identity{UserID: 2, Usuario: "lector", Rol: models.RolSoloVista})
}
