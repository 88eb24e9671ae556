package service

import (
	"context"
	"encoding/json"
	"errors"

	"restogestion/internal/apierror"
	"restogestion/internal/repository"

	"gorm.io/gorm"
)

// MsgDatosNoRecibidos answers bodies that are not a JSON object.
const MsgDatosNoRecibidos = "Datos no recibidos"

// CrudService implements the list/get/create/update/delete protocol shared by
// every entity. Lookups that miss return repository.ErrNoEncontrado; store
// failures are returned unwrapped after the transaction has been rolled back.
type CrudService[M any] interface {
	Listar(ctx context.Context) ([]M, error)
	Obtener(ctx context.Context, id uint) (*M, error)
	// Crear inserts every row in a single transaction: all or nothing.
	Crear(ctx context.Context, rows []M) error
	// Actualizar merges the keys present in cambios (a JSON object) over the
	// stored row. Absent keys keep their value.
	Actualizar(ctx context.Context, id uint, cambios []byte) (*M, error)
	Eliminar(ctx context.Context, id uint) error
}

// Parche runs after the JSON merge and before the row is saved. campos holds
// the raw keys of the update body.
type Parche[M any] func(row *M, campos map[string]json.RawMessage) error

type Opcion[M any] func(*crudService[M])

// ConParche registers an entity-specific step for updates.
func ConParche[M any](p Parche[M]) Opcion[M] {
	return func(s *crudService[M]) { s.parche = p }
}

type crudService[M any] struct {
	repo   repository.CrudRepository[M]
	parche Parche[M]
}

func NewCrudService[M any](repo repository.CrudRepository[M], opts ...Opcion[M]) CrudService[M] {
	s := &crudService[M]{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *crudService[M]) Listar(ctx context.Context) ([]M, error) {
	return s.repo.List(ctx)
}

func (s *crudService[M]) Obtener(ctx context.Context, id uint) (*M, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *crudService[M]) Crear(ctx context.Context, rows []M) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for i := range rows {
			if err := s.repo.Create(ctx, tx, &rows[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *crudService[M]) Actualizar(ctx context.Context, id uint, cambios []byte) (*M, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	campos, err := decodeObjeto(cambios)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(cambios, row); err != nil {
		return nil, apierror.Validation("Datos invalidos: " + err.Error())
	}
	if s.parche != nil {
		if err := s.parche(row, campos); err != nil {
			return nil, err
		}
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Update(ctx, tx, row)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *crudService[M]) Eliminar(ctx context.Context, id uint) error {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, row)
	})
}

// decodeObjeto accepts only a JSON object; {} is valid and means "no changes".
func decodeObjeto(raw []byte) (map[string]json.RawMessage, error) {
	var campos map[string]json.RawMessage
	if err := json.Unmarshal(raw, &campos); err != nil || campos == nil {
		return nil, apierror.Validation(MsgDatosNoRecibidos)
	}
	return campos, nil
}

// IsNoEncontrado reports whether err means the row does not exist.
func IsNoEncontrado(err error) bool {
	return errors.Is(err, repository.ErrNoEncontrado)
}
