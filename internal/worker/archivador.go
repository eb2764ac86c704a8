package worker

// archivador.go
// Processes spreadsheet-archive jobs from QueueArchivo: uploads the imported
// file to the blob store and appends the audit ImportLog. Fire-and-forget by
// contract — nothing here ever reaches the request that triggered the import;
// failures go to the log and the DLQ only.

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/santosdevelop/Manto/internal/infra"
	"github.com/santosdevelop/Manto/internal/model"
	"github.com/santosdevelop/Manto/internal/repository"
)

// ArchivoJobPayload is the job envelope sent to QueueArchivo. Ruta points at
// a temp copy of the uploaded spreadsheet; the payload itself stays small.
type ArchivoJobPayload struct {
	JobID      string            `json:"job_id"`
	Ruta       string            `json:"ruta"`
	FileName   string            `json:"file_name"`
	FileSize   int64             `json:"file_size"`
	Importados int               `json:"importados"`
	Usuario    string            `json:"usuario"`
	Mapeo      map[string]string `json:"mapeo"`
}

// Archivador uploads imported spreadsheets and writes their audit entry.
type Archivador struct {
	blobs infra.BlobStore
	logs  repository.ImportLogRepository
	rdb   *redis.Client
}

func NewArchivador(blobs infra.BlobStore, logs repository.ImportLogRepository, rdb *redis.Client) *Archivador {
	return &Archivador{blobs: blobs, logs: logs, rdb: rdb}
}

// Process handles a single archive job:
//  1. Read the temp spreadsheet copy
//  2. Upload it to the blob store (3 attempts, backoff)
//  3. Append the ImportLog audit record
//  4. Remove the temp copy
func (w *Archivador) Process(ctx context.Context, raw json.RawMessage) {
	var payload ArchivoJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("archivador: invalid payload")
		return
	}

	data, err := os.ReadFile(payload.Ruta)
	if err != nil {
		log.Error().Err(err).Str("ruta", payload.Ruta).Msg("archivador: cannot read temp file")
		SendToDLQ(ctx, w.rdb, QueueArchivo, "archivo", raw, err.Error(), 1)
		return
	}

	key := fmt.Sprintf("imports/%s/%s", payload.JobID, payload.FileName)
	var url string
	uploadErr := withRetry(3, func(attempt int) error {
		var err error
		url, err = w.blobs.Upload(ctx, key, data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt).Str("key", key).Msg("archivador: upload failed")
		}
		return err
	})
	if uploadErr != nil {
		SendToDLQ(ctx, w.rdb, QueueArchivo, "archivo", raw, uploadErr.Error(), 3)
		return
	}

	entry := &model.ImportLog{
		ID:            uuid.New(),
		FileName:      payload.FileName,
		FileSize:      payload.FileSize,
		DownloadURL:   url,
		ImportedItems: payload.Importados,
		ImportedBy:    payload.Usuario,
		ImportedAt:    time.Now().UTC(),
		Mapping:       payload.Mapeo,
	}
	if err := w.logs.Crear(ctx, entry); err != nil {
		log.Error().Err(err).Str("job_id", payload.JobID).Msg("archivador: cannot append import log")
		SendToDLQ(ctx, w.rdb, QueueArchivo, "archivo", raw, err.Error(), 1)
		return
	}

	if err := os.Remove(payload.Ruta); err != nil {
		log.Warn().Err(err).Str("ruta", payload.Ruta).Msg("archivador: cannot remove temp file")
	}
	log.Info().Str("job_id", payload.JobID).Str("url", url).Msg("archivador: spreadsheet archived")
}

// withRetry runs fn up to attempts times with linear backoff (1s, 2s, ...).
func withRetry(attempts int, fn func(attempt int) error) error {
	var err error
	for i := 1; i <= attempts; i++ {
		if err = fn(i); err == nil {
			return nil
		}
		if i < attempts {
			time.Sleep(time.Duration(i) * time.Second)
		}
	}
	return err
}
