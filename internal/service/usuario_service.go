package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/santosdevelop/Manto/internal/dto"
	"github.com/santosdevelop/Manto/internal/model"
	"github.com/santosdevelop/Manto/internal/repository"
)

var (
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
	ErrRolInvalido         = errors.New("rol inválido")
	ErrEppNoDisponible     = errors.New("el item no está disponible para asignación")
	ErrEppNoAsignado       = errors.New("el item no está asignado a ese usuario")
)

// UsuarioService covers user administration and EPP/herramientas assignment.
type UsuarioService interface {
	Listar(ctx context.Context) ([]dto.UsuarioResponse, error)
	ActualizarActivo(ctx context.Context, id uuid.UUID, activo bool) error
	ActualizarRol(ctx context.Context, id uuid.UUID, rol string) error
	ListarAsignaciones(ctx context.Context, usuarioID uuid.UUID) ([]dto.AsignacionResponse, error)
	AsignarEpp(ctx context.Context, usuarioID uuid.UUID, req dto.AsignarEppRequest) (*dto.AsignacionResponse, error)
	DevolverEpp(ctx context.Context, usuarioID, inventarioID uuid.UUID) error
}

type usuarioService struct {
	repo        repository.UsuarioRepository
	inventarios repository.InventarioRepository
}

func NewUsuarioService(repo repository.UsuarioRepository, inventarios repository.InventarioRepository) UsuarioService {
	return &usuarioService{repo: repo, inventarios: inventarios}
}

func mapUsuario(u model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Nombre:   u.Nombre,
		Email:    u.Email,
		Rol:      u.Rol,
		Activo:   u.Activo,
	}
}

func (s *usuarioService) Listar(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(usuarios))
	for i, u := range usuarios {
		resp[i] = mapUsuario(u)
	}
	return resp, nil
}

func (s *usuarioService) ActualizarActivo(ctx context.Context, id uuid.UUID, activo bool) error {
	err := s.repo.ActualizarActivo(ctx, id, activo)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return ErrUsuarioNoEncontrado
	}
	return err
}

func (s *usuarioService) ActualizarRol(ctx context.Context, id uuid.UUID, rol string) error {
	if !model.RolValido(rol) {
		return ErrRolInvalido
	}
	err := s.repo.ActualizarRol(ctx, id, rol)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return ErrUsuarioNoEncontrado
	}
	return err
}

func (s *usuarioService) ListarAsignaciones(ctx context.Context, usuarioID uuid.UUID) ([]dto.AsignacionResponse, error) {
	items, err := s.inventarios.ListarPorAsignado(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AsignacionResponse, len(items))
	for i, it := range items {
		a := dto.AsignacionResponse{
			InventarioID: it.ID.String(),
			Kardex:       it.Kardex,
			Nombre:       it.Nombre,
			Motivo:       it.MotivoCambio,
		}
		if it.FechaAsignacion != nil {
			a.FechaAsignacion = it.FechaAsignacion.Format("2006-01-02")
		}
		resp[i] = a
	}
	return resp, nil
}

// AsignarEpp hands one unit of an available item to a user: stock drops by
// one, the item moves to "en uso" and records who holds it.
func (s *usuarioService) AsignarEpp(ctx context.Context, usuarioID uuid.UUID, req dto.AsignarEppRequest) (*dto.AsignacionResponse, error) {
	if _, err := s.repo.ObtenerPorID(ctx, usuarioID); err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, ErrUsuarioNoEncontrado
		}
		return nil, err
	}

	itemID, err := uuid.Parse(req.InventarioID)
	if err != nil {
		return nil, ErrItemNoEncontrado
	}
	item, err := s.inventarios.ObtenerPorID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, ErrItemNoEncontrado
		}
		return nil, err
	}
	if item.Estado != model.EstadoDisponible || item.Cantidad < 1 {
		return nil, ErrEppNoDisponible
	}

	ahora := time.Now().UTC()
	item.Cantidad--
	item.Estado = model.EstadoEnUso
	item.AsignadoA = &usuarioID
	item.FechaAsignacion = &ahora
	item.FechaDevolucion = nil
	item.MotivoCambio = req.Motivo
	if err := s.inventarios.Actualizar(ctx, item); err != nil {
		return nil, err
	}

	return &dto.AsignacionResponse{
		InventarioID:    item.ID.String(),
		Kardex:          item.Kardex,
		Nombre:          item.Nombre,
		FechaAsignacion: ahora.Format("2006-01-02"),
		Motivo:          item.MotivoCambio,
	}, nil
}

// DevolverEpp reverses an assignment: stock back up, item available again.
func (s *usuarioService) DevolverEpp(ctx context.Context, usuarioID, inventarioID uuid.UUID) error {
	item, err := s.inventarios.ObtenerPorID(ctx, inventarioID)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return ErrItemNoEncontrado
		}
		return err
	}
	if item.AsignadoA == nil || *item.AsignadoA != usuarioID {
		return ErrEppNoAsignado
	}

	ahora := time.Now().UTC()
	item.Cantidad++
	item.Estado = model.EstadoDisponible
	item.AsignadoA = nil
	item.FechaDevolucion = &ahora
	return s.inventarios.Actualizar(ctx, item)
}
