package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/santosdevelop/Manto/internal/apierror"
	"github.com/santosdevelop/Manto/internal/service"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Mantenimientos GET /v1/reportes/mantenimientos?galpon_id=
// Without galpon_id (or with "todos") the cached all-galpones view answers.
func (h *ReportesHandler) Mantenimientos(c *gin.Context) {
	galpon := c.Query("galpon_id")
	if galpon == "" || galpon == "todos" {
		datos, err := h.svc.Todos(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte"))
			return
		}
		c.JSON(http.StatusOK, datos)
		return
	}

	id, err := uuid.Parse(galpon)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("galpon_id inválido"))
		return
	}
	datos, err := h.svc.PorGalpon(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte"))
		return
	}
	c.JSON(http.StatusOK, datos)
}
