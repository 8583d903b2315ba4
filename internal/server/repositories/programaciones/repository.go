package programaciones

import (
	"context"

	"github.com/dmitrijs2005/labmaint/internal/server/models"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/crud"
)

type Repository interface {
	crud.Store
	List(ctx context.Context, f models.ProgramacionFilter) ([]models.Programacion, error)
	// Proximas lists schedules due within f.HastaDias days (overdue ones
	// included), soonest first.
	Proximas(ctx context.Context, f models.ProximasFilter) ([]models.ProgramacionProxima, error)
}
