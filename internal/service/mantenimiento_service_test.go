package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santosdevelop/Manto/internal/dto"
	"github.com/santosdevelop/Manto/internal/model"
	"github.com/santosdevelop/Manto/internal/reports"
	"github.com/santosdevelop/Manto/internal/repository"
)

// ── Stubs ────────────────────────────────────────────────────────────────────

type stubMantenimientoRepo struct {
	registros []model.Mantenimiento
}

func (r *stubMantenimientoRepo) Crear(_ context.Context, m *model.Mantenimiento) error {
	r.registros = append(r.registros, *m)
	return nil
}

func (r *stubMantenimientoRepo) ListarPorGalpon(_ context.Context, galponID uuid.UUID) ([]model.Mantenimiento, error) {
	var out []model.Mantenimiento
	for _, m := range r.registros {
		if m.GalponID == galponID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubMantenimientoRepo) ListarTodos(_ context.Context) ([]model.Mantenimiento, error) {
	return r.registros, nil
}

type stubGalponRepo struct {
	galpones map[uuid.UUID]*model.Galpon
}

func (r *stubGalponRepo) Crear(_ context.Context, g *model.Galpon) error {
	r.galpones[g.ID] = g
	return nil
}

func (r *stubGalponRepo) Listar(_ context.Context) ([]model.Galpon, error) {
	out := make([]model.Galpon, 0, len(r.galpones))
	for _, g := range r.galpones {
		out = append(out, *g)
	}
	return out, nil
}

func (r *stubGalponRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Galpon, error) {
	g, ok := r.galpones[id]
	if !ok {
		return nil, repository.ErrNoEncontrado
	}
	return g, nil
}

func (r *stubGalponRepo) Actualizar(_ context.Context, g *model.Galpon) error {
	r.galpones[g.ID] = g
	return nil
}

func (r *stubGalponRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.galpones, id)
	return nil
}

func (r *stubGalponRepo) MarcarMantenimiento(_ context.Context, id uuid.UUID, fecha string) error {
	g, ok := r.galpones[id]
	if !ok {
		return repository.ErrNoEncontrado
	}
	g.UltimoMantenimiento = fecha
	return nil
}

// ── Tests ────────────────────────────────────────────────────────────────────

const claveReportes = "reportes:mantenimientos:todos"

func TestCrearMantenimientoInvalidaCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	galponID := uuid.New()
	galpones := &stubGalponRepo{galpones: map[uuid.UUID]*model.Galpon{
		galponID: {ID: galponID, Nombre: "Galpón Norte", Estado: "operativo"},
	}}
	repo := &stubMantenimientoRepo{}
	cache := reports.NewCache(rdb, repo.ListarTodos)
	svc := NewMantenimientoService(repo, galpones, cache)

	ctx := context.Background()
	require.NoError(t, rdb.Set(ctx, claveReportes, `{"total":0}`, 0).Err())

	resp, err := svc.Crear(ctx, galponID, dto.CrearMantenimientoRequest{
		Tipo:  "Preventivo",
		Fecha: "2024-03-12",
	})
	require.NoError(t, err)
	assert.Equal(t, "pendiente", resp.Estado)
	assert.Equal(t, "2024-03-12", resp.Fecha)

	existe, err := rdb.Exists(ctx, claveReportes).Result()
	require.NoError(t, err)
	assert.Zero(t, existe, "crear un mantenimiento debe borrar el cache de reportes")

	assert.Equal(t, "2024-03-12", galpones.galpones[galponID].UltimoMantenimiento)

	recargado, err := cache.Todos(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recargado.Total)
	assert.Equal(t, 1, recargado.PorTipo.Preventivo)
}

func TestCrearMantenimientoGalponInexistente(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	repo := &stubMantenimientoRepo{}
	galpones := &stubGalponRepo{galpones: map[uuid.UUID]*model.Galpon{}}
	svc := NewMantenimientoService(repo, galpones, reports.NewCache(rdb, repo.ListarTodos))

	ctx := context.Background()
	require.NoError(t, rdb.Set(ctx, claveReportes, `{"total":0}`, 0).Err())

	_, err := svc.Crear(ctx, uuid.New(), dto.CrearMantenimientoRequest{Tipo: "Correctivo"})
	assert.ErrorIs(t, err, ErrGalponNoEncontrado)
	assert.Empty(t, repo.registros)

	existe, err := rdb.Exists(ctx, claveReportes).Result()
	require.NoError(t, err)
	assert.EqualValues(t, 1, existe, "un alta fallida no debe tocar el cache")
}
