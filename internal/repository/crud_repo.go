package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNoEncontrado is returned when a lookup by primary key or unique key
// matches no row.
var ErrNoEncontrado = errors.New("registro no encontrado")

// CrudRepository is the single-table contract shared by every entity.
// Write methods take the transaction opened by the service layer; a nil tx
// falls back to the repository's own handle.
type CrudRepository[M any] interface {
	List(ctx context.Context) ([]M, error)
	FindByID(ctx context.Context, id uint) (*M, error)
	Create(ctx context.Context, tx *gorm.DB, row *M) error
	Update(ctx context.Context, tx *gorm.DB, row *M) error
	Delete(ctx context.Context, tx *gorm.DB, row *M) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type crudRepo[M any] struct{ db *gorm.DB }

func NewCrudRepository[M any](db *gorm.DB) CrudRepository[M] { return &crudRepo[M]{db: db} }

func (r *crudRepo[M]) DB() *gorm.DB { return r.db }

func (r *crudRepo[M]) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *crudRepo[M]) List(ctx context.Context) ([]M, error) {
	rows := make([]M, 0)
	err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
	return rows, err
}

func (r *crudRepo[M]) FindByID(ctx context.Context, id uint) (*M, error) {
	var row M
	err := r.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *crudRepo[M]) Create(ctx context.Context, tx *gorm.DB, row *M) error {
	return r.conn(ctx, tx).Create(row).Error
}

func (r *crudRepo[M]) Update(ctx context.Context, tx *gorm.DB, row *M) error {
	return r.conn(ctx, tx).Save(row).Error
}

func (r *crudRepo[M]) Delete(ctx context.Context, tx *gorm.DB, row *M) error {
	return r.conn(ctx, tx).Delete(row).Error
}
