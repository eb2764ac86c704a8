package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/santosdevelop/Manto/internal/apierror"
	"github.com/santosdevelop/Manto/internal/dto"
	"github.com/santosdevelop/Manto/internal/service"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type InventariosHandler struct{ svc service.InventarioService }

func NewInventariosHandler(svc service.InventarioService) *InventariosHandler {
	return &InventariosHandler{svc: svc}
}

// Listar GET /v1/inventarios
func (h *InventariosHandler) Listar(c *gin.Context) {
	var filter dto.InventarioFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Filtros inválidos"))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar inventario"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /v1/inventarios/:id
func (h *InventariosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrItemNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener el item"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /v1/inventarios
func (h *InventariosHandler) Crear(c *gin.Context) {
	var req dto.CrearInventarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar PUT /v1/inventarios/:id
func (h *InventariosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarInventarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrItemNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/inventarios/:id
func (h *InventariosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrItemNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar el item"))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// Exportar GET /v1/inventarios/export
func (h *InventariosHandler) Exportar(c *gin.Context) {
	var filter dto.InventarioFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Filtros inválidos"))
		return
	}
	data, err := h.svc.Exportar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al exportar el inventario"))
		return
	}
	nombre := fmt.Sprintf("inventario_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+nombre+`"`)
	c.Data(http.StatusOK, mimeXLSX, data)
}

// Plantilla GET /v1/inventarios/plantilla
func (h *InventariosHandler) Plantilla(c *gin.Context) {
	data, err := h.svc.Plantilla()
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar la plantilla"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="plantilla_inventario.xlsx"`)
	c.Data(http.StatusOK, mimeXLSX, data)
}
