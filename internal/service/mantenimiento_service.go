package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/santosdevelop/Manto/internal/dto"
	"github.com/santosdevelop/Manto/internal/model"
	"github.com/santosdevelop/Manto/internal/reports"
	"github.com/santosdevelop/Manto/internal/repository"
)

// MantenimientoService logs maintenance events against galpones. Every write
// invalidates the reports cache so the dashboard sees fresh aggregations.
type MantenimientoService interface {
	Crear(ctx context.Context, galponID uuid.UUID, req dto.CrearMantenimientoRequest) (*dto.MantenimientoResponse, error)
	ListarPorGalpon(ctx context.Context, galponID uuid.UUID) ([]dto.MantenimientoResponse, error)
}

type mantenimientoService struct {
	repo     repository.MantenimientoRepository
	galpones repository.GalponRepository
	cache    *reports.Cache
}

func NewMantenimientoService(repo repository.MantenimientoRepository, galpones repository.GalponRepository, cache *reports.Cache) MantenimientoService {
	return &mantenimientoService{repo: repo, galpones: galpones, cache: cache}
}

func mapMantenimiento(m model.Mantenimiento) dto.MantenimientoResponse {
	resp := dto.MantenimientoResponse{
		ID:            m.ID.String(),
		GalponID:      m.GalponID.String(),
		Tipo:          m.Tipo,
		Estado:        m.Estado,
		TecnicoNombre: m.TecnicoNombre,
		Descripcion:   m.Descripcion,
	}
	if fecha, ok := reports.ResolverFecha(m.Fecha); ok {
		resp.Fecha = fecha.Format("2006-01-02")
	}
	return resp
}

func (s *mantenimientoService) Crear(ctx context.Context, galponID uuid.UUID, req dto.CrearMantenimientoRequest) (*dto.MantenimientoResponse, error) {
	if _, err := s.galpones.ObtenerPorID(ctx, galponID); err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, ErrGalponNoEncontrado
		}
		return nil, err
	}

	estado := req.Estado
	if estado == "" {
		estado = "pendiente"
	}
	fecha := req.Fecha
	if fecha == "" {
		fecha = time.Now().UTC().Format("2006-01-02")
	}

	m := &model.Mantenimiento{
		ID:            uuid.New(),
		GalponID:      galponID,
		Tipo:          req.Tipo,
		Estado:        estado,
		Fecha:         fecha,
		TecnicoNombre: req.TecnicoNombre,
		Descripcion:   req.Descripcion,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.Crear(ctx, m); err != nil {
		return nil, err
	}

	if err := s.galpones.MarcarMantenimiento(ctx, galponID, fecha); err != nil {
		log.Warn().Err(err).Str("galpon_id", galponID.String()).Msg("no se pudo actualizar el último mantenimiento")
	}
	s.cache.Invalidar(ctx)

	resp := mapMantenimiento(*m)
	return &resp, nil
}

func (s *mantenimientoService) ListarPorGalpon(ctx context.Context, galponID uuid.UUID) ([]dto.MantenimientoResponse, error) {
	registros, err := s.repo.ListarPorGalpon(ctx, galponID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MantenimientoResponse, len(registros))
	for i, m := range registros {
		resp[i] = mapMantenimiento(m)
	}
	return resp, nil
}
