package usuarios

import (
	"context"

	"github.com/dmitrijs2005/labmaint/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, u *models.Usuario) (*models.Usuario, error)
	GetByLogin(ctx context.Context, usuario string) (*models.Usuario, error)
}
