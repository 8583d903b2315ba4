// Package services contains server-side business logic. EntityService is the
// shared create/update/delete/list workflow of the maintenance entities; it
// enforces required fields, the update allow-list, existence checks and the
// reference guard before any row is written.
package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/labmaint/internal/common"
	"github.com/dmitrijs2005/labmaint/internal/dbx"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/crud"
)

// Repository is what EntityService needs from an entity repository.
type Repository[R, F any] interface {
	crud.Store
	List(ctx context.Context, f F) ([]R, error)
}

// Messages are the user-facing texts of one entity.
type Messages struct {
	Created    string
	Updated    string
	Deleted    string
	NotFound   string
	NoFields   string
	Referenced string
}

// UpdateHook runs inside the update transaction after the row is known to
// exist and before it is written.
type UpdateHook func(ctx context.Context, tx dbx.DBTX, id int64, v models.Values) error

type EntityService[R, F any] struct {
	db           *sql.DB
	repo         func(db dbx.DBTX) Repository[R, F]
	msgs         Messages
	beforeUpdate UpdateHook
}

func (s *EntityService[R, F]) Messages() Messages {
	return s.msgs
}

// List returns the filtered rows; never nil.
func (s *EntityService[R, F]) List(ctx context.Context, f F) ([]R, error) {
	rows, err := s.repo(s.db).List(ctx, f)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []R{}
	}
	return rows, nil
}

// Create checks required fields, applies defaults and returns the new id.
func (s *EntityService[R, F]) Create(ctx context.Context, v models.Values) (int64, error) {
	if missing := s.repo(s.db).Schema().Missing(v); len(missing) > 0 {
		return 0, &common.MissingFieldsError{Fields: missing}
	}

	var id int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		id, err = s.repo(tx).Insert(ctx, v)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update writes the allow-listed fields of v to row id.
func (s *EntityService[R, F]) Update(ctx context.Context, id int64, v models.Values) error {
	updates := s.repo(s.db).Schema().Updates(v)
	if len(updates) == 0 {
		return common.Errorf(common.ErrorNoFields, s.msgs.NoFields)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)

		exists, err := repo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return common.Errorf(common.ErrorNotFound, s.msgs.NotFound)
		}

		if s.beforeUpdate != nil {
			if err := s.beforeUpdate(ctx, tx, id, updates); err != nil {
				return err
			}
		}

		n, err := repo.Update(ctx, id, updates)
		if err != nil {
			return err
		}
		if n == 0 {
			return common.Errorf(common.ErrorNotFound, s.msgs.NotFound)
		}
		return nil
	})
}

// Delete removes row id unless other rows still reference it.
func (s *EntityService[R, F]) Delete(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)

		if len(repo.Schema().References) > 0 {
			refs, err := repo.CountReferences(ctx, id)
			if err != nil {
				return err
			}
			if refs > 0 {
				return common.Errorf(common.ErrorConflict, s.msgs.Referenced)
			}
		}

		n, err := repo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return common.Errorf(common.ErrorNotFound, s.msgs.NotFound)
		}
		return nil
	})
}
