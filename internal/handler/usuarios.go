package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santosdevelop/Manto/internal/apierror"
	"github.com/santosdevelop/Manto/internal/dto"
	"github.com/santosdevelop/Manto/internal/service"
)

type UsuariosHandler struct{ svc service.UsuarioService }

func NewUsuariosHandler(svc service.UsuarioService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// Listar GET /v1/usuarios
func (h *UsuariosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar usuarios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarEstado PATCH /v1/usuarios/:id/estado
func (h *UsuariosHandler) ActualizarEstado(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ActualizarActivo(c.Request.Context(), id, *req.Activo); err != nil {
		if errors.Is(err, service.ErrUsuarioNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al actualizar el usuario"))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ActualizarRol PATCH /v1/usuarios/:id/rol
func (h *UsuariosHandler) ActualizarRol(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarRolRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ActualizarRol(c.Request.Context(), id, req.Rol); err != nil {
		switch {
		case errors.Is(err, service.ErrUsuarioNoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrRolInvalido):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Error al actualizar el usuario"))
		}
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ListarAsignaciones GET /v1/usuarios/:id/asignaciones
func (h *UsuariosHandler) ListarAsignaciones(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarAsignaciones(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar asignaciones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AsignarEpp POST /v1/usuarios/:id/epp
func (h *UsuariosHandler) AsignarEpp(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AsignarEppRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AsignarEpp(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsuarioNoEncontrado), errors.Is(err, service.ErrItemNoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrEppNoDisponible):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Error al asignar el item"))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// DevolverEpp POST /v1/usuarios/:id/epp/:itemId/devolver
func (h *UsuariosHandler) DevolverEpp(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}
	if err := h.svc.DevolverEpp(c.Request.Context(), id, itemID); err != nil {
		switch {
		case errors.Is(err, service.ErrItemNoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrEppNoAsignado):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Error al devolver el item"))
		}
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
