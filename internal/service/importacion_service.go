package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/santosdevelop/Manto/internal/dto"
	"github.com/santosdevelop/Manto/internal/importer"
	"github.com/santosdevelop/Manto/internal/repository"
	"github.com/santosdevelop/Manto/internal/worker"
)

// TamanoLote is the fixed chunk size for batch commits.
const TamanoLote = 500

const (
	ttlProgreso  = time.Hour
	filasPreview = 20
)

// ErrFilasInvalidas signals that validation found problems; the response
// carries them and nothing was committed.
var ErrFilasInvalidas = errors.New("el archivo contiene filas inválidas")

// ErrLoteFallido reports a failed chunk commit. Chunks committed before the
// failure stay committed: Persistidos is what the operator actually got.
type ErrLoteFallido struct {
	Lote        int // 1-based index of the chunk that failed
	Persistidos int
	Err         error
}

func (e *ErrLoteFallido) Error() string {
	return fmt.Sprintf("lote %d falló con %d elementos ya persistidos: %v", e.Lote, e.Persistidos, e.Err)
}

func (e *ErrLoteFallido) Unwrap() error { return e.Err }

// ArchivoSubido is the uploaded spreadsheet as the handler received it.
type ArchivoSubido struct {
	Nombre string
	Datos  []byte
}

// ImportacionService drives the bulk import pipeline: preview for the
// mapping modal, the batch commit itself, progress polling, and the audit
// trail of past imports.
type ImportacionService interface {
	Preview(ctx context.Context, datos []byte) (*dto.PreviewResponse, error)
	Importar(ctx context.Context, archivo ArchivoSubido, mapeo importer.Mapeo, usuario string) (*dto.ImportarResponse, error)
	Progreso(ctx context.Context, jobID string) (int, error)
	Logs(ctx context.Context) ([]dto.ImportLogResponse, error)
}

type importacionService struct {
	inventarios repository.InventarioRepository
	logs        repository.ImportLogRepository
	rdb         *redis.Client
	dispatcher  *worker.Dispatcher
	tmpDir      string
}

func NewImportacionService(
	inventarios repository.InventarioRepository,
	logs repository.ImportLogRepository,
	rdb *redis.Client,
	dispatcher *worker.Dispatcher,
	tmpDir string,
) ImportacionService {
	return &importacionService{
		inventarios: inventarios,
		logs:        logs,
		rdb:         rdb,
		dispatcher:  dispatcher,
		tmpDir:      tmpDir,
	}
}

func (s *importacionService) Preview(ctx context.Context, datos []byte) (*dto.PreviewResponse, error) {
	encabezados, filas, err := importer.Leer(datos)
	if err != nil {
		return nil, err
	}

	mapeo := importer.AutoMapear(encabezados)
	muestra := make([]map[string]string, 0, filasPreview)
	for i, fila := range filas {
		if i == filasPreview {
			break
		}
		m := make(map[string]string, len(fila))
		for col, celda := range fila {
			m[col] = celda.String()
		}
		muestra = append(muestra, m)
	}

	return &dto.PreviewResponse{
		Encabezados: encabezados,
		Mapeo:       mapeo,
		Errores:     importer.Validar(filas, mapeo),
		Filas:       muestra,
		TotalFilas:  len(filas),
	}, nil
}

// Importar runs the commit path: decode, validate under the final mapping,
// then sequential atomic chunks of TamanoLote. Progress lands in redis after
// every chunk so the console can poll it. A chunk failure stops the loop and
// surfaces ErrLoteFallido; earlier chunks are NOT rolled back. Only after
// the whole commit succeeds is the archive job enqueued, detached, with its
// errors logged and never surfaced.
func (s *importacionService) Importar(ctx context.Context, archivo ArchivoSubido, mapeo importer.Mapeo, usuario string) (*dto.ImportarResponse, error) {
	encabezados, filas, err := importer.Leer(archivo.Datos)
	if err != nil {
		return nil, err
	}
	if mapeo == nil {
		mapeo = importer.AutoMapear(encabezados)
	}

	if errs := importer.Validar(filas, mapeo); len(errs) > 0 {
		return &dto.ImportarResponse{Errores: errs}, ErrFilasInvalidas
	}

	items := importer.MapearFilas(filas, mapeo)
	jobID := uuid.New().String()
	total := len(items)
	if total == 0 {
		s.publicarProgreso(ctx, jobID, 0, 0)
		return &dto.ImportarResponse{JobID: jobID}, nil
	}

	importados := 0
	for i := 0; i < total; i += TamanoLote {
		fin := i + TamanoLote
		if fin > total {
			fin = total
		}
		if err := s.inventarios.CrearLote(ctx, items[i:fin]); err != nil {
			return &dto.ImportarResponse{JobID: jobID, Importados: importados},
				&ErrLoteFallido{Lote: i/TamanoLote + 1, Persistidos: importados, Err: err}
		}
		importados = fin
		s.publicarProgreso(ctx, jobID, importados, total)
	}

	s.encolarArchivo(ctx, jobID, archivo, mapeo, importados, usuario)

	return &dto.ImportarResponse{JobID: jobID, Importados: importados}, nil
}

func (s *importacionService) Progreso(ctx context.Context, jobID string) (int, error) {
	n, err := s.rdb.Get(ctx, claveProgreso(jobID)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, repository.ErrNoEncontrado
	}
	return n, err
}

func (s *importacionService) Logs(ctx context.Context) ([]dto.ImportLogResponse, error) {
	entradas, err := s.logs.Listar(ctx, 100)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ImportLogResponse, len(entradas))
	for i, l := range entradas {
		resp[i] = dto.ImportLogResponse{
			ID:            l.ID.String(),
			FileName:      l.FileName,
			FileSize:      l.FileSize,
			DownloadURL:   l.DownloadURL,
			ImportedItems: l.ImportedItems,
			ImportedBy:    l.ImportedBy,
			ImportedAt:    l.ImportedAt.Format(time.RFC3339),
			Mapping:       l.Mapping,
		}
	}
	return resp, nil
}

func claveProgreso(jobID string) string { return "import:progress:" + jobID }

// progresoPct rounds done/total to a whole percentage; an empty import is
// complete by definition.
func progresoPct(hechos, total int) int {
	if total == 0 {
		return 100
	}
	return int(math.Round(float64(hechos) / float64(total) * 100))
}

func (s *importacionService) publicarProgreso(ctx context.Context, jobID string, hechos, total int) {
	progreso := progresoPct(hechos, total)
	if err := s.rdb.Set(ctx, claveProgreso(jobID), progreso, ttlProgreso).Err(); err != nil {
		log.Warn().Err(err).Str("job_id", jobID).Msg("no se pudo publicar el progreso")
	}
}

// encolarArchivo hands the uploaded file to the worker pool. The bytes go
// through a temp file so the queue payload stays small. Any failure here is
// logged and swallowed: the commit already succeeded and its outcome does
// not depend on the archive.
func (s *importacionService) encolarArchivo(ctx context.Context, jobID string, archivo ArchivoSubido, mapeo importer.Mapeo, importados int, usuario string) {
	if err := os.MkdirAll(s.tmpDir, 0o755); err != nil {
		log.Warn().Err(err).Msg("no se pudo preparar el directorio temporal de importación")
		return
	}
	tmp, err := os.CreateTemp(s.tmpDir, "import-*.xlsx")
	if err != nil {
		log.Warn().Err(err).Msg("no se pudo crear la copia temporal del archivo")
		return
	}
	if _, err := tmp.Write(archivo.Datos); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		log.Warn().Err(err).Msg("no se pudo escribir la copia temporal del archivo")
		return
	}
	tmp.Close()

	payload := worker.ArchivoJobPayload{
		JobID:      jobID,
		Ruta:       tmp.Name(),
		FileName:   filepath.Base(archivo.Nombre),
		FileSize:   int64(len(archivo.Datos)),
		Importados: importados,
		Usuario:    usuario,
		Mapeo:      mapeo,
	}
	if err := s.dispatcher.EnqueueArchivo(ctx, payload); err != nil {
		os.Remove(tmp.Name())
		log.Warn().Err(err).Str("job_id", jobID).Msg("no se pudo encolar el archivado del archivo importado")
	}
}
