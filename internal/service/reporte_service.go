package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/santosdevelop/Manto/internal/reports"
	"github.com/santosdevelop/Manto/internal/repository"
)

// ReporteService serves the dashboard aggregations. The all-galpones view
// goes through the shared cache; per-galpón views aggregate directly, their
// record sets are already capped by the repository.
type ReporteService interface {
	Todos(ctx context.Context) (reports.Datos, error)
	PorGalpon(ctx context.Context, galponID uuid.UUID) (reports.Datos, error)
}

type reporteService struct {
	repo  repository.MantenimientoRepository
	cache *reports.Cache
}

func NewReporteService(repo repository.MantenimientoRepository, cache *reports.Cache) ReporteService {
	return &reporteService{repo: repo, cache: cache}
}

func (s *reporteService) Todos(ctx context.Context) (reports.Datos, error) {
	return s.cache.Todos(ctx)
}

func (s *reporteService) PorGalpon(ctx context.Context, galponID uuid.UUID) (reports.Datos, error) {
	registros, err := s.repo.ListarPorGalpon(ctx, galponID)
	if err != nil {
		return reports.Datos{}, err
	}
	return reports.Agregar(registros), nil
}
