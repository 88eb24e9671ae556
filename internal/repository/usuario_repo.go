package repository

import (
	"context"
	"errors"

	"restogestion/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	CrudRepository[model.Usuario]
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type usuarioRepo struct {
	CrudRepository[model.Usuario]
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepo{CrudRepository: NewCrudRepository[model.Usuario](db), db: db}
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	conn := r.db
	if tx != nil {
		conn = tx
	}
	var total int64
	err := conn.WithContext(ctx).Model(&model.Usuario{}).Count(&total).Error
	return total, err
}
