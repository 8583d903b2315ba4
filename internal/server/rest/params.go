package rest

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/dmitrijs2005/labmaint/internal/common"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
	maxBodyBytes    = 1 << 20
)

// queryInt64 returns nil when the parameter is absent or not an integer.
func queryInt64(q url.Values, key string) *int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(q.Get(key)), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(q url.Values, key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(q.Get(key)))
	if err != nil {
		return def
	}
	return v
}

// queryDate accepts YYYY-MM-DD or YYYY-MM-DD HH:MM:SS. A bare date becomes
// the start of the day, or its last second when endOfDay is set. Anything
// else is treated as absent.
func queryDate(q url.Values, key string, endOfDay bool) *time.Time {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(timestampLayout, raw); err == nil {
		return &t
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return &t
}

func parseEquipoFilter(q url.Values) models.EquipoFilter {
	return models.EquipoFilter{
		LaboratorioID: queryInt64(q, "laboratorio_id"),
		Estado:        q.Get("estado"),
		Tipo:          q.Get("tipo"),
		Marca:         q.Get("marca"),
	}
}

func parseProgramacionFilter(q url.Values) models.ProgramacionFilter {
	return models.ProgramacionFilter{
		EquipoID:      queryInt64(q, "equipo_id"),
		LaboratorioID: queryInt64(q, "laboratorio_id"),
		Tipo:          q.Get("tipo"),
		Marca:         q.Get("marca"),
	}
}

func parseProximasFilter(q url.Values) models.ProximasFilter {
	return models.ProximasFilter{
		ProgramacionFilter: parseProgramacionFilter(q),
		HastaDias:          queryInt(q, "hasta_dias", models.DefaultHastaDias),
	}
}

func parseMantenimientoFilter(q url.Values) models.MantenimientoFilter {
	return models.MantenimientoFilter{
		EquipoID: queryInt64(q, "equipo_id"),
		Estado:   q.Get("estado"),
		Tipo:     q.Get("tipo"),
		Desde:    queryDate(q, "desde", false),
		Hasta:    queryDate(q, "hasta", true),
	}
}

func parseIncidenciaFilter(q url.Values) models.IncidenciaFilter {
	return models.IncidenciaFilter{
		EquipoID:        queryInt64(q, "equipo_id"),
		Severidad:       q.Get("severidad"),
		MantenimientoID: queryInt64(q, "mantenimiento_id"),
		Desde:           queryDate(q, "desde", false),
		Hasta:           queryDate(q, "hasta", true),
	}
}

// pathID reads the {id} URL parameter. The route pattern guarantees digits;
// out-of-range values report false.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// decodeBody unmarshals a JSON body into dst. An empty body decodes as {}.
func decodeBody(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return common.Errorf(common.ErrorValidation, msgInvalidJSON)
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return common.Errorf(common.ErrorValidation, msgInvalidJSON)
	}
	return nil
}
