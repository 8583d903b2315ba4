package laboratorios

import (
	"context"

	"github.com/dmitrijs2005/labmaint/internal/server/models"
)

// Repository is read-only: laboratories are managed directly in the database.
type Repository interface {
	List(ctx context.Context) ([]models.Laboratorio, error)
}
