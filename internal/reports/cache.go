package reports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/santosdevelop/Manto/internal/model"
)

const (
	claveCache = "reportes:mantenimientos:todos"
	ttlCache   = 10 * time.Minute
)

// Datos is the full reporting payload for the dashboard: the three
// aggregations over one set of maintenance records.
type Datos struct {
	Total    int         `json:"total"`
	PorTipo  ConteoTipos `json:"porTipo"`
	PorMes   Serie       `json:"porMes"`
	PorDia   Serie       `json:"porDiaSemana"`
	Generado time.Time   `json:"generado"`
}

// Agregar runs the three aggregations over one record set.
func Agregar(registros []model.Mantenimiento) Datos {
	return Datos{
		Total:    len(registros),
		PorTipo:  AgregarPorTipo(registros),
		PorMes:   AgregarPorMes(registros),
		PorDia:   AgregarPorDiaSemana(registros),
		Generado: time.Now().UTC(),
	}
}

// Cargar fetches the full maintenance record set from the store.
type Cargar func(ctx context.Context) ([]model.Mantenimiento, error)

// Cache serves the all-galpones report. Concurrent misses collapse into a
// single load via singleflight; the aggregated payload is kept in redis so
// every instance shares one copy. Writes to mantenimientos call Invalidar.
type Cache struct {
	rdb    *redis.Client
	cargar Cargar
	grupo  singleflight.Group
}

func NewCache(rdb *redis.Client, cargar Cargar) *Cache {
	return &Cache{rdb: rdb, cargar: cargar}
}

// Todos returns the cached aggregation, loading and caching it on miss.
func (c *Cache) Todos(ctx context.Context) (Datos, error) {
	if raw, err := c.rdb.Get(ctx, claveCache).Bytes(); err == nil {
		var d Datos
		if err := json.Unmarshal(raw, &d); err == nil {
			return d, nil
		}
		// Entrada corrupta: se regenera.
		c.rdb.Del(ctx, claveCache)
	}

	v, err, _ := c.grupo.Do(claveCache, func() (any, error) {
		registros, err := c.cargar(ctx)
		if err != nil {
			return Datos{}, err
		}
		d := Agregar(registros)
		if raw, err := json.Marshal(d); err == nil {
			if err := c.rdb.Set(ctx, claveCache, raw, ttlCache).Err(); err != nil {
				log.Warn().Err(err).Msg("no se pudo cachear el reporte")
			}
		}
		return d, nil
	})
	if err != nil {
		return Datos{}, err
	}
	return v.(Datos), nil
}

// Invalidar drops the cached payload. Called after every maintenance write
// so the next dashboard fetch sees the new record.
func (c *Cache) Invalidar(ctx context.Context) {
	if err := c.rdb.Del(ctx, claveCache).Err(); err != nil {
		log.Warn().Err(err).Msg("no se pudo invalidar el cache de reportes")
	}
}
