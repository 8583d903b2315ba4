package equipos

import (
	"context"

	"github.com/dmitrijs2005/labmaint/internal/server/models"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/crud"
)

type Repository interface {
	crud.Store
	List(ctx context.Context, f models.EquipoFilter) ([]models.Equipo, error)
	// GetTag returns the current asset tag of equipment id, or
	// common.ErrorNotFound.
	GetTag(ctx context.Context, id int64) (string, error)
	CountByTag(ctx context.Context, tag string) (int64, error)
}
