package mantenimientos

import (
	"context"

	"github.com/dmitrijs2005/labmaint/internal/server/models"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/crud"
)

type Repository interface {
	crud.Store
	List(ctx context.Context, f models.MantenimientoFilter) ([]models.Mantenimiento, error)
}
