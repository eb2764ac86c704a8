package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/santosdevelop/Manto/internal/dto"
	"github.com/santosdevelop/Manto/internal/infra"
	"github.com/santosdevelop/Manto/internal/model"
	"github.com/santosdevelop/Manto/internal/repository"
)

var ErrGalponNoEncontrado = errors.New("galpón no encontrado")

// GalponService defines business operations for facility units.
type GalponService interface {
	Crear(ctx context.Context, req dto.CrearGalponRequest) (*dto.GalponResponse, error)
	Listar(ctx context.Context) ([]dto.GalponResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarGalponRequest) (*dto.GalponResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	ExportarPDF(ctx context.Context) ([]byte, error)
}

type galponService struct {
	repo repository.GalponRepository
}

func NewGalponService(repo repository.GalponRepository) GalponService {
	return &galponService{repo: repo}
}

func mapGalpon(g model.Galpon) dto.GalponResponse {
	return dto.GalponResponse{
		ID:                  g.ID.String(),
		Nombre:              g.Nombre,
		Ubicacion:           g.Ubicacion,
		Estado:              g.Estado,
		UltimoMantenimiento: g.UltimoMantenimiento,
	}
}

func (s *galponService) Crear(ctx context.Context, req dto.CrearGalponRequest) (*dto.GalponResponse, error) {
	estado := req.Estado
	if estado == "" {
		estado = "operativo"
	}
	now := time.Now().UTC()
	g := &model.Galpon{
		ID:        uuid.New(),
		Nombre:    req.Nombre,
		Ubicacion: req.Ubicacion,
		Estado:    estado,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Crear(ctx, g); err != nil {
		return nil, err
	}
	resp := mapGalpon(*g)
	return &resp, nil
}

func (s *galponService) Listar(ctx context.Context) ([]dto.GalponResponse, error) {
	galpones, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.GalponResponse, len(galpones))
	for i, g := range galpones {
		resp[i] = mapGalpon(g)
	}
	return resp, nil
}

func (s *galponService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarGalponRequest) (*dto.GalponResponse, error) {
	g, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, ErrGalponNoEncontrado
		}
		return nil, err
	}

	if req.Nombre != nil {
		g.Nombre = *req.Nombre
	}
	if req.Ubicacion != nil {
		g.Ubicacion = *req.Ubicacion
	}
	if req.Estado != nil {
		g.Estado = *req.Estado
	}

	if err := s.repo.Actualizar(ctx, g); err != nil {
		return nil, err
	}
	resp := mapGalpon(*g)
	return &resp, nil
}

func (s *galponService) Eliminar(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Eliminar(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return ErrGalponNoEncontrado
	}
	return err
}

func (s *galponService) ExportarPDF(ctx context.Context) ([]byte, error) {
	galpones, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	return infra.GenerateGalponesPDF(galpones)
}
