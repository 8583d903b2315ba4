package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/labmaint/internal/common"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
)

func TestValidateStruct_OK(t *testing.T) {
	req := models.EquipoCreate{
		EtiquetaActivo: models.Of("LAB-001"),
		LaboratorioID:  models.Of(int64(1)),
	}
	assert.NoError(t, ValidateStruct(&req))
}

func TestValidateStruct_MissingFieldsNamedByJSONKey(t *testing.T) {
	err := ValidateStruct(&models.EquipoCreate{Tipo: models.Of("balanza")})
	require.Error(t, err)

	var missing *common.MissingFieldsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"etiqueta_activo", "laboratorio_id"}, missing.Fields)
	assert.True(t, errors.Is(err, common.ErrorMissingFields))
}

func TestValidateStruct_NullCountsAsMissing(t *testing.T) {
	req := models.EquipoCreate{
		EtiquetaActivo: models.Null[string](),
		LaboratorioID:  models.Of(int64(1)),
	}

	var missing *common.MissingFieldsError
	require.True(t, errors.As(ValidateStruct(&req), &missing))
	assert.Equal(t, []string{"etiqueta_activo"}, missing.Fields)
}

func TestValidateStruct_Enum(t *testing.T) {
	req := models.IncidenciaCreate{
		EquipoID:     models.Of(int64(1)),
		FechaReporte: models.Of("2024-01-01 10:00:00"),
		Severidad:    models.Of("critica"),
	}

	err := ValidateStruct(&req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorValidation))
	assert.Contains(t, err.Error(), "severidad debe ser uno de: baja media alta")
}

func TestValidateStruct_OmitemptySkipsAbsentEnum(t *testing.T) {
	assert.NoError(t, ValidateStruct(&models.MantenimientoUpdate{}))
	assert.NoError(t, ValidateStruct(&models.MantenimientoUpdate{Estado: models.Of(models.EstadoEnProceso)}))
	assert.Error(t, ValidateStruct(&models.MantenimientoUpdate{Estado: models.Of("pausado")}))
}

func TestValidateStruct_MissingWinsOverEnum(t *testing.T) {
	err := ValidateStruct(&models.IncidenciaCreate{Severidad: models.Of("nope")})

	var missing *common.MissingFieldsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"equipo_id", "fecha_reporte"}, missing.Fields)
}

func TestValidateStruct_EmptyAndZeroArePresent(t *testing.T) {
	req := models.EquipoCreate{
		EtiquetaActivo: models.Of(""),
		LaboratorioID:  models.Of(int64(0)),
	}
	assert.NoError(t, ValidateStruct(&req))

	prog := models.ProgramacionCreate{
		EquipoID:         models.Of(int64(1)),
		PeriodicidadDias: models.Of(0),
		FechaProxima:     models.Of(""),
	}
	assert.NoError(t, ValidateStruct(&prog))
}

func TestValidateStruct_EmptyEnumStillChecked(t *testing.T) {
	err := ValidateStruct(&models.MantenimientoUpdate{Estado: models.Of("")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorValidation))
}
