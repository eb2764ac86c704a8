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

type GalponesHandler struct {
	svc            service.GalponService
	mantenimientos service.MantenimientoService
}

func NewGalponesHandler(svc service.GalponService, mantenimientos service.MantenimientoService) *GalponesHandler {
	return &GalponesHandler{svc: svc, mantenimientos: mantenimientos}
}

// Listar GET /v1/galpones
func (h *GalponesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar galpones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /v1/galpones
func (h *GalponesHandler) Crear(c *gin.Context) {
	var req dto.CrearGalponRequest
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

// Actualizar PUT /v1/galpones/:id
func (h *GalponesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarGalponRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrGalponNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/galpones/:id
func (h *GalponesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrGalponNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar el galpón"))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ExportarPDF GET /v1/galpones/pdf
func (h *GalponesHandler) ExportarPDF(c *gin.Context) {
	data, err := h.svc.ExportarPDF(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el PDF"))
		return
	}
	nombre := fmt.Sprintf("galpones_%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+nombre+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// ListarMantenimientos GET /v1/galpones/:id/mantenimientos
func (h *GalponesHandler) ListarMantenimientos(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.mantenimientos.ListarPorGalpon(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar mantenimientos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CrearMantenimiento POST /v1/galpones/:id/mantenimientos
func (h *GalponesHandler) CrearMantenimiento(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CrearMantenimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.mantenimientos.Crear(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrGalponNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
