package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santosdevelop/Manto/internal/apierror"
	"github.com/santosdevelop/Manto/internal/dto"
	"github.com/santosdevelop/Manto/internal/importer"
	"github.com/santosdevelop/Manto/internal/middleware"
	"github.com/santosdevelop/Manto/internal/repository"
	"github.com/santosdevelop/Manto/internal/service"
)

type ImportacionHandler struct {
	svc      service.ImportacionService
	maxBytes int64
}

func NewImportacionHandler(svc service.ImportacionService, maxBytes int64) *ImportacionHandler {
	return &ImportacionHandler{svc: svc, maxBytes: maxBytes}
}

// leerArchivo pulls the uploaded spreadsheet out of the multipart form,
// enforcing the size cap before any decode work.
func (h *ImportacionHandler) leerArchivo(c *gin.Context) (service.ArchivoSubido, bool) {
	fh, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Falta el archivo a importar"))
		return service.ArchivoSubido{}, false
	}
	if fh.Size > h.maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge,
			apierror.New(fmt.Sprintf("El archivo supera el límite de %d bytes", h.maxBytes)))
		return service.ArchivoSubido{}, false
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
		return service.ArchivoSubido{}, false
	}
	defer f.Close()

	datos, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil || int64(len(datos)) > h.maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New("El archivo supera el límite permitido"))
		return service.ArchivoSubido{}, false
	}
	return service.ArchivoSubido{Nombre: fh.Filename, Datos: datos}, true
}

// Preview POST /v1/inventarios/import/preview
func (h *ImportacionHandler) Preview(c *gin.Context) {
	archivo, ok := h.leerArchivo(c)
	if !ok {
		return
	}
	resp, err := h.svc.Preview(c.Request.Context(), archivo.Datos)
	if err != nil {
		if errors.Is(err, importer.ErrArchivoIlegible) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al procesar el archivo"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Importar POST /v1/inventarios/import
// The form carries the file plus an optional "mapeo" JSON field with the
// operator's column overrides; without it the auto-mapping applies.
func (h *ImportacionHandler) Importar(c *gin.Context) {
	archivo, ok := h.leerArchivo(c)
	if !ok {
		return
	}

	var mapeo importer.Mapeo
	if raw := c.PostForm("mapeo"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &mapeo); err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Mapeo inválido"))
			return
		}
	}

	usuario := ""
	if claims := middleware.GetClaims(c); claims != nil {
		usuario = claims.Username
	}

	resp, err := h.svc.Importar(c.Request.Context(), archivo, mapeo, usuario)
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrArchivoIlegible):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		case errors.Is(err, service.ErrFilasInvalidas):
			c.JSON(http.StatusUnprocessableEntity, resp)
		default:
			var lote *service.ErrLoteFallido
			if errors.As(err, &lote) {
				// Partial import is an observable outcome: report what landed.
				c.JSON(http.StatusInternalServerError, gin.H{
					"detail":     "La importación falló a mitad de camino",
					"importados": lote.Persistidos,
					"jobId":      resp.JobID,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, apierror.New("Error al importar el archivo"))
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Progreso GET /v1/inventarios/import/:id/progreso
func (h *ImportacionHandler) Progreso(c *gin.Context) {
	jobID := c.Param("id")
	progreso, err := h.svc.Progreso(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Importación no encontrada"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar el progreso"))
		return
	}
	c.JSON(http.StatusOK, dto.ProgresoResponse{JobID: jobID, Progreso: progreso})
}

// Logs GET /v1/inventarios/import/logs
func (h *ImportacionHandler) Logs(c *gin.Context) {
	resp, err := h.svc.Logs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar importaciones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
