package auth

import (
	"context"

	"github.com/dmitrijs2005/labmaint/internal/server/models"
)

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID  int64  `json:"id"`
	Usuario string `json:"usuario"`
	Rol     string `json:"rol"`
}

func (i Identity) IsAdmin() bool {
	return i.Rol == models.RolAdmin
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the identity stored by WithIdentity, if any.
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	return id, ok && id != nil
}
