package handler

import (
	"context"
	"errors"
	"sort"

	"restogestion/internal/model"
	"restogestion/internal/repository"

	"gorm.io/gorm"
)

// ── In-memory repository stubs ───────────────────────────────────────────────

type stubRepo[M any] struct {
	rows    map[uint]M
	nextID  uint
	setID   func(*M, uint)
	getID   func(*M) uint
	creates int
	failOn  int
}

var errStore = errors.New("insert or update on table \"gastos\" violates foreign key constraint")

func newStubRepo[M any](setID func(*M, uint), getID func(*M) uint) *stubRepo[M] {
	return &stubRepo[M]{rows: make(map[uint]M), nextID: 1, setID: setID, getID: getID}
}

func (r *stubRepo[M]) DB() *gorm.DB { return nil }

func (r *stubRepo[M]) List(_ context.Context) ([]M, error) {
	ids := make([]int, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	out := make([]M, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.rows[uint(id)])
	}
	return out, nil
}

func (r *stubRepo[M]) FindByID(_ context.Context, id uint) (*M, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNoEncontrado
	}
	return &row, nil
}

func (r *stubRepo[M]) Create(_ context.Context, _ *gorm.DB, row *M) error {
	r.creates++
	if r.failOn > 0 && r.creates == r.failOn {
		return errStore
	}
	r.setID(row, r.nextID)
	r.rows[r.nextID] = *row
	r.nextID++
	return nil
}

func (r *stubRepo[M]) Update(_ context.Context, _ *gorm.DB, row *M) error {
	r.rows[r.getID(row)] = *row
	return nil
}

func (r *stubRepo[M]) Delete(_ context.Context, _ *gorm.DB, row *M) error {
	delete(r.rows, r.getID(row))
	return nil
}

type stubUsuarioRepo struct{ *stubRepo[model.Usuario] }

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{newStubRepo(
		func(u *model.Usuario, id uint) { u.ID = id },
		func(u *model.Usuario) uint { return u.ID },
	)}
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.rows {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, repository.ErrNoEncontrado
}

func (r *stubUsuarioRepo) Count(_ context.Context, _ *gorm.DB) (int64, error) {
	return int64(len(r.rows)), nil
}
