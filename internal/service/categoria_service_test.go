package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santosdevelop/Manto/internal/dto"
	"github.com/santosdevelop/Manto/internal/model"
	"github.com/santosdevelop/Manto/internal/repository"
)

// ── In-memory CategoriaRepository stub ───────────────────────────────────────

type stubCategoriaRepo struct {
	categorias map[uuid.UUID]model.Categoria
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: make(map[uuid.UUID]model.Categoria)}
}

func (r *stubCategoriaRepo) Crear(_ context.Context, c *model.Categoria) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categorias[c.ID] = *c
	return nil
}

func (r *stubCategoriaRepo) Listar(_ context.Context) ([]model.Categoria, error) {
	out := make([]model.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubCategoriaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, repository.ErrNoEncontrado
	}
	return &c, nil
}

func (r *stubCategoriaRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if strings.EqualFold(c.Nombre, nombre) {
			return &c, nil
		}
	}
	return nil, repository.ErrNoEncontrado
}

func (r *stubCategoriaRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	if _, ok := r.categorias[id]; !ok {
		return repository.ErrNoEncontrado
	}
	delete(r.categorias, id)
	return nil
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCrearCategoria(t *testing.T) {
	svc := NewCategoriaService(newStubCategoriaRepo(), &stubInventarioRepo{})

	resp, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "  Monitores LED  "})

	require.NoError(t, err)
	assert.Equal(t, "Monitores LED", resp.Nombre)
}

func TestCrearCategoriaNombreInvalido(t *testing.T) {
	svc := NewCategoriaService(newStubCategoriaRepo(), &stubInventarioRepo{})

	casos := []string{"", "   ", "Equipos!", strings.Repeat("a", 31)}
	for _, nombre := range casos {
		_, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: nombre})
		assert.ErrorIs(t, err, ErrNombreCategoria, "%q", nombre)
	}

	// Acentos y eñes son válidos.
	_, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Señalización"})
	assert.NoError(t, err)
}

func TestCrearCategoriaDuplicadaIgnoraMayusculas(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := NewCategoriaService(repo, &stubInventarioRepo{})

	_, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Herramientas"})
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "HERRAMIENTAS"})
	assert.ErrorIs(t, err, ErrCategoriaDuplicada)
}

func TestEliminarCategoriaEnUso(t *testing.T) {
	repo := newStubCategoriaRepo()
	cat := model.Categoria{ID: uuid.New(), Nombre: "Monitores", FechaCreacion: time.Now()}
	repo.categorias[cat.ID] = cat

	inv := &stubInventarioRepo{items: []model.Inventario{{ID: uuid.New(), Categoria: "Monitores"}}}
	svc := NewCategoriaService(repo, inv)

	err := svc.Eliminar(context.Background(), cat.ID)
	assert.ErrorIs(t, err, ErrCategoriaEnUso)

	inv.items = nil
	require.NoError(t, svc.Eliminar(context.Background(), cat.ID))
	assert.Empty(t, repo.categorias)
}
