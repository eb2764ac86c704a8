package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/santosdevelop/Manto/internal/dto"
	"github.com/santosdevelop/Manto/internal/model"
	"github.com/santosdevelop/Manto/internal/repository"
)

var (
	ErrCategoriaNoEncontrada = errors.New("categoría no encontrada")
	ErrCategoriaDuplicada    = errors.New("ya existe una categoría con ese nombre")
	ErrCategoriaEnUso        = errors.New("la categoría tiene items asociados y no puede eliminarse")
	ErrNombreCategoria       = errors.New("el nombre solo admite letras, números y espacios (máx. 30)")
)

// Letras (incluidas acentuadas y ñ), dígitos y espacios.
var reNombreCategoria = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ0-9 ]+$`)

// CategoriaService defines business operations for inventory categories.
type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type categoriaService struct {
	repo        repository.CategoriaRepository
	inventarios repository.InventarioRepository
}

func NewCategoriaService(repo repository.CategoriaRepository, inventarios repository.InventarioRepository) CategoriaService {
	return &categoriaService{repo: repo, inventarios: inventarios}
}

func mapCategoria(c model.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:            c.ID.String(),
		Nombre:        c.Nombre,
		FechaCreacion: c.FechaCreacion.Format(time.RFC3339),
	}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" || utf8.RuneCountInString(nombre) > 30 || !reNombreCategoria.MatchString(nombre) {
		return nil, ErrNombreCategoria
	}

	existente, err := s.repo.ObtenerPorNombre(ctx, nombre)
	if err != nil && !errors.Is(err, repository.ErrNoEncontrado) {
		return nil, err
	}
	if existente != nil {
		return nil, ErrCategoriaDuplicada
	}

	c := &model.Categoria{
		ID:            uuid.New(),
		Nombre:        nombre,
		FechaCreacion: time.Now().UTC(),
	}
	if err := s.repo.Crear(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCategoria(*c)
	return &resp, nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	cats, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CategoriaResponse, len(cats))
	for i, c := range cats {
		resp[i] = mapCategoria(c)
	}
	return resp, nil
}

// Eliminar refuses while any inventory item still references the category.
func (s *categoriaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return ErrCategoriaNoEncontrada
		}
		return err
	}

	n, err := s.inventarios.ContarPorCategoria(ctx, c.Nombre)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrCategoriaEnUso
	}
	return s.repo.Eliminar(ctx, id)
}
