package reports

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santosdevelop/Manto/internal/model"
)

func clienteRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestTodosCargaUnaSolaVez(t *testing.T) {
	rdb := clienteRedis(t)
	var cargas atomic.Int32
	cache := NewCache(rdb, func(_ context.Context) ([]model.Mantenimiento, error) {
		cargas.Add(1)
		return []model.Mantenimiento{{Tipo: "Preventivo"}, {Tipo: "Correctivo"}}, nil
	})

	ctx := context.Background()
	d1, err := cache.Todos(ctx)
	require.NoError(t, err)
	d2, err := cache.Todos(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, d1.Total)
	assert.Equal(t, 1, d1.PorTipo.Preventivo)
	assert.Equal(t, d1.Total, d2.Total)
	assert.Equal(t, int32(1), cargas.Load(), "la segunda lectura debe salir del cache")
}

func TestTodosColapsaLecturasConcurrentes(t *testing.T) {
	rdb := clienteRedis(t)
	var cargas atomic.Int32
	libre := make(chan struct{})
	cache := NewCache(rdb, func(_ context.Context) ([]model.Mantenimiento, error) {
		cargas.Add(1)
		<-libre
		return []model.Mantenimiento{{Tipo: "Preventivo"}}, nil
	})

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := cache.Todos(ctx)
			assert.NoError(t, err)
			assert.Equal(t, 1, d.Total)
		}()
	}
	// Todas las goroutines deben llegar al miss antes de soltar la carga.
	time.Sleep(50 * time.Millisecond)
	close(libre)
	wg.Wait()

	assert.Equal(t, int32(1), cargas.Load())
}

func TestInvalidarFuerzaRecarga(t *testing.T) {
	rdb := clienteRedis(t)
	registros := []model.Mantenimiento{{Tipo: "Preventivo"}}
	var cargas int
	cache := NewCache(rdb, func(_ context.Context) ([]model.Mantenimiento, error) {
		cargas++
		return registros, nil
	})

	ctx := context.Background()
	d1, err := cache.Todos(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, d1.Total)

	registros = append(registros, model.Mantenimiento{Tipo: "Correctivo"})
	d2, err := cache.Todos(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, d2.Total, "sin invalidar sigue sirviendo el payload viejo")

	cache.Invalidar(ctx)
	d3, err := cache.Todos(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, d3.Total)
	assert.Equal(t, 2, cargas)
}

func TestTodosRegeneraEntradaCorrupta(t *testing.T) {
	rdb := clienteRedis(t)
	var cargas int
	cache := NewCache(rdb, func(_ context.Context) ([]model.Mantenimiento, error) {
		cargas++
		return []model.Mantenimiento{{Tipo: "Predictivo"}}, nil
	})

	ctx := context.Background()
	require.NoError(t, rdb.Set(ctx, claveCache, "no es json", 0).Err())

	d, err := cache.Todos(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Total)
	assert.Equal(t, 1, cargas)
}
