package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/santosdevelop/Manto/internal/dto"
	"github.com/santosdevelop/Manto/internal/importer"
	"github.com/santosdevelop/Manto/internal/model"
	"github.com/santosdevelop/Manto/internal/repository"
)

var (
	ErrKardexDuplicado   = errors.New("ya existe un item con ese código kardex")
	ErrCategoriaNoExiste = errors.New("la categoría indicada no existe")
	ErrItemNoEncontrado  = errors.New("item de inventario no encontrado")
	ErrEstadoInvalido    = errors.New("estado de inventario inválido")
)

// InventarioService defines business operations for inventory items.
type InventarioService interface {
	Crear(ctx context.Context, req dto.CrearInventarioRequest) (*dto.InventarioResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.InventarioResponse, error)
	Listar(ctx context.Context, filter dto.InventarioFilter) (*dto.InventarioListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarInventarioRequest) (*dto.InventarioResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Exportar(ctx context.Context, filter dto.InventarioFilter) ([]byte, error)
	Plantilla() ([]byte, error)
}

type inventarioService struct {
	repo       repository.InventarioRepository
	categorias repository.CategoriaRepository
}

func NewInventarioService(repo repository.InventarioRepository, categorias repository.CategoriaRepository) InventarioService {
	return &inventarioService{repo: repo, categorias: categorias}
}

// mapInventario converts a model to a DTO response.
func mapInventario(it model.Inventario) dto.InventarioResponse {
	resp := dto.InventarioResponse{
		ID:               it.ID.String(),
		Kardex:           it.Kardex,
		Nombre:           it.Nombre,
		Descripcion:      it.Descripcion,
		Categoria:        it.Categoria,
		Cantidad:         it.Cantidad,
		PrecioUnitario:   it.PrecioUnitario,
		Proveedor:        it.Proveedor,
		Ubicacion:        it.Ubicacion,
		Estado:           it.Estado,
		FechaAdquisicion: it.FechaAdquisicion,
	}
	if it.AsignadoA != nil {
		s := it.AsignadoA.String()
		resp.AsignadoA = &s
	}
	return resp
}

func (s *inventarioService) Crear(ctx context.Context, req dto.CrearInventarioRequest) (*dto.InventarioResponse, error) {
	// Advisory uniqueness scan: read-then-write, concurrent creators can
	// still slip a duplicate through.
	existe, err := s.repo.ExisteKardex(ctx, req.Kardex, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, ErrKardexDuplicado
	}
	if err := s.validarCategoria(ctx, req.Categoria); err != nil {
		return nil, err
	}

	estado := model.EstadoDisponible
	if req.Estado != "" {
		estado = req.Estado
	}
	fecha := req.FechaAdquisicion
	if fecha == "" {
		fecha = time.Now().UTC().Format("2006-01-02")
	}
	precio := 0.0
	if req.PrecioUnitario != nil {
		precio = req.PrecioUnitario.InexactFloat64()
	}

	now := time.Now().UTC()
	item := &model.Inventario{
		ID:               uuid.New(),
		Kardex:           req.Kardex,
		Nombre:           req.Nombre,
		Descripcion:      req.Descripcion,
		Categoria:        req.Categoria,
		Cantidad:         req.Cantidad,
		PrecioUnitario:   precio,
		Proveedor:        req.Proveedor,
		Ubicacion:        req.Ubicacion,
		Estado:           estado,
		FechaAdquisicion: fecha,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Crear(ctx, item); err != nil {
		return nil, err
	}
	resp := mapInventario(*item)
	return &resp, nil
}

func (s *inventarioService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.InventarioResponse, error) {
	item, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, ErrItemNoEncontrado
		}
		return nil, err
	}
	resp := mapInventario(*item)
	return &resp, nil
}

func (s *inventarioService) Listar(ctx context.Context, filter dto.InventarioFilter) (*dto.InventarioListResponse, error) {
	items, err := s.repo.Listar(ctx, repository.InventarioFilter{
		Categoria: filter.Categoria,
		Estado:    filter.Estado,
		Busqueda:  filter.Busqueda,
	})
	if err != nil {
		return nil, err
	}
	resp := make([]dto.InventarioResponse, len(items))
	for i, it := range items {
		resp[i] = mapInventario(it)
	}
	return &dto.InventarioListResponse{Data: resp, Total: len(resp)}, nil
}

func (s *inventarioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarInventarioRequest) (*dto.InventarioResponse, error) {
	item, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, ErrItemNoEncontrado
		}
		return nil, err
	}

	if req.Kardex != nil && *req.Kardex != item.Kardex {
		existe, err := s.repo.ExisteKardex(ctx, *req.Kardex, id)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, ErrKardexDuplicado
		}
		item.Kardex = *req.Kardex
	}
	if req.Nombre != nil {
		item.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		item.Descripcion = *req.Descripcion
	}
	if req.Categoria != nil {
		if err := s.validarCategoria(ctx, *req.Categoria); err != nil {
			return nil, err
		}
		item.Categoria = *req.Categoria
	}
	if req.Cantidad != nil {
		item.Cantidad = *req.Cantidad
	}
	if req.PrecioUnitario != nil {
		item.PrecioUnitario = req.PrecioUnitario.InexactFloat64()
	}
	if req.Proveedor != nil {
		item.Proveedor = *req.Proveedor
	}
	if req.Ubicacion != nil {
		item.Ubicacion = *req.Ubicacion
	}
	if req.Estado != nil {
		if !model.EstadoValido(*req.Estado) {
			return nil, ErrEstadoInvalido
		}
		item.Estado = *req.Estado
	}
	if req.FechaAdquisicion != nil {
		item.FechaAdquisicion = *req.FechaAdquisicion
	}

	if err := s.repo.Actualizar(ctx, item); err != nil {
		return nil, err
	}
	resp := mapInventario(*item)
	return &resp, nil
}

// Eliminar is a hard delete, there is no soft-delete for inventory items.
func (s *inventarioService) Eliminar(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Eliminar(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return ErrItemNoEncontrado
	}
	return err
}

func (s *inventarioService) Exportar(ctx context.Context, filter dto.InventarioFilter) ([]byte, error) {
	items, err := s.repo.Listar(ctx, repository.InventarioFilter{
		Categoria: filter.Categoria,
		Estado:    filter.Estado,
		Busqueda:  filter.Busqueda,
	})
	if err != nil {
		return nil, err
	}
	return importer.ExportarInventario(items)
}

func (s *inventarioService) Plantilla() ([]byte, error) {
	return importer.GenerarPlantilla()
}

// validarCategoria accepts empty (uncategorized) and otherwise requires an
// existing category, matched case-insensitively.
func (s *inventarioService) validarCategoria(ctx context.Context, nombre string) error {
	if nombre == "" {
		return nil
	}
	_, err := s.categorias.ObtenerPorNombre(ctx, nombre)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return ErrCategoriaNoExiste
	}
	return err
}
