package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santosdevelop/Manto/internal/dto"
	"github.com/santosdevelop/Manto/internal/model"
	"github.com/santosdevelop/Manto/internal/repository"
)

// ── In-memory UsuarioRepository stub ─────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]model.Usuario
}

func newStubUsuarioRepo(usuarios ...model.Usuario) *stubUsuarioRepo {
	r := &stubUsuarioRepo{usuarios: make(map[uuid.UUID]model.Usuario)}
	for _, u := range usuarios {
		r.usuarios[u.ID] = u
	}
	return r
}

func (r *stubUsuarioRepo) Crear(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = *u
	return nil
}

func (r *stubUsuarioRepo) Listar(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, repository.ErrNoEncontrado
	}
	return &u, nil
}

func (r *stubUsuarioRepo) ObtenerPorUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, repository.ErrNoEncontrado
}

func (r *stubUsuarioRepo) ActualizarActivo(_ context.Context, id uuid.UUID, activo bool) error {
	u, ok := r.usuarios[id]
	if !ok {
		return repository.ErrNoEncontrado
	}
	u.Activo = activo
	r.usuarios[id] = u
	return nil
}

func (r *stubUsuarioRepo) ActualizarRol(_ context.Context, id uuid.UUID, rol string) error {
	u, ok := r.usuarios[id]
	if !ok {
		return repository.ErrNoEncontrado
	}
	u.Rol = rol
	r.usuarios[id] = u
	return nil
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestAsignarYDevolverEpp(t *testing.T) {
	tecnico := model.Usuario{ID: uuid.New(), Username: "jlopez", Rol: model.RolTecnico, Activo: true}
	casco := model.Inventario{
		ID:       uuid.New(),
		Kardex:   "EPP-001",
		Nombre:   "Casco de seguridad",
		Cantidad: 3,
		Estado:   model.EstadoDisponible,
	}
	inv := &stubInventarioRepo{items: []model.Inventario{casco}}
	svc := NewUsuarioService(newStubUsuarioRepo(tecnico), inv)

	resp, err := svc.AsignarEpp(context.Background(), tecnico.ID, dto.AsignarEppRequest{
		InventarioID: casco.ID.String(),
		Motivo:       "trabajo en altura",
	})
	require.NoError(t, err)
	assert.Equal(t, "EPP-001", resp.Kardex)

	assert.Equal(t, 2, inv.items[0].Cantidad)
	assert.Equal(t, model.EstadoEnUso, inv.items[0].Estado)
	require.NotNil(t, inv.items[0].AsignadoA)
	assert.Equal(t, tecnico.ID, *inv.items[0].AsignadoA)

	asignados, err := svc.ListarAsignaciones(context.Background(), tecnico.ID)
	require.NoError(t, err)
	require.Len(t, asignados, 1)

	require.NoError(t, svc.DevolverEpp(context.Background(), tecnico.ID, casco.ID))
	assert.Equal(t, 3, inv.items[0].Cantidad)
	assert.Equal(t, model.EstadoDisponible, inv.items[0].Estado)
	assert.Nil(t, inv.items[0].AsignadoA)
}

func TestAsignarEppNoDisponible(t *testing.T) {
	usuario := model.Usuario{ID: uuid.New(), Username: "ana", Rol: model.RolUsuario, Activo: true}
	roto := model.Inventario{ID: uuid.New(), Kardex: "EPP-002", Cantidad: 1, Estado: model.EstadoDadoDeBaja}
	svc := NewUsuarioService(newStubUsuarioRepo(usuario), &stubInventarioRepo{items: []model.Inventario{roto}})

	_, err := svc.AsignarEpp(context.Background(), usuario.ID, dto.AsignarEppRequest{InventarioID: roto.ID.String()})

	assert.ErrorIs(t, err, ErrEppNoDisponible)
}

func TestDevolverEppDeOtroUsuario(t *testing.T) {
	duenio := uuid.New()
	usuario := model.Usuario{ID: uuid.New(), Username: "ana", Rol: model.RolUsuario, Activo: true}
	item := model.Inventario{ID: uuid.New(), Kardex: "EPP-003", Estado: model.EstadoEnUso, AsignadoA: &duenio}
	svc := NewUsuarioService(newStubUsuarioRepo(usuario), &stubInventarioRepo{items: []model.Inventario{item}})

	err := svc.DevolverEpp(context.Background(), usuario.ID, item.ID)

	assert.ErrorIs(t, err, ErrEppNoAsignado)
}

func TestActualizarRol(t *testing.T) {
	usuario := model.Usuario{ID: uuid.New(), Username: "ana", Rol: model.RolUsuario, Activo: true}
	repo := newStubUsuarioRepo(usuario)
	svc := NewUsuarioService(repo, &stubInventarioRepo{})

	require.NoError(t, svc.ActualizarRol(context.Background(), usuario.ID, model.RolModerador))
	assert.Equal(t, model.RolModerador, repo.usuarios[usuario.ID].Rol)

	assert.ErrorIs(t, svc.ActualizarRol(context.Background(), usuario.ID, "jefe"), ErrRolInvalido)
	assert.ErrorIs(t, svc.ActualizarRol(context.Background(), uuid.New(), model.RolTecnico), ErrUsuarioNoEncontrado)
}
