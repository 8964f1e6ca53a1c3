package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/apierror"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/service"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/storage"

	"github.com/gin-gonic/gin"
)

type SnapshotHandler struct{ svc service.SnapshotService }

func NewSnapshotHandler(svc service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{svc: svc}
}

// Export godoc
// @Summary      Exportar estado
// @Description  Devuelve el estado completo como un solo blob JSON, listo para respaldar.
// @Tags         snapshot
// @Produce      json
// @Success      200 {object} model.Snapshot
// @Router       /v1/snapshot/exportar [get]
func (h *SnapshotHandler) Export(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Export(c.Request.Context()))
}

// Import godoc
// @Summary      Importar estado
// @Description  Reemplaza el estado completo con el blob recibido. Solo se exige que sales y products sean listas; el resto toma valores vacíos.
// @Tags         snapshot
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SnapshotInfoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/snapshot/importar [post]
func (h *SnapshotHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("no se pudo leer el cuerpo"))
		return
	}
	info, err := h.svc.ImportJSON(c.Request.Context(), raw)
	if err != nil {
		if errors.Is(err, model.ErrInvalidSnapshot) {
			c.JSON(http.StatusUnprocessableEntity, apierror.FromErr(err))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, info)
}

// Persist godoc
// @Summary      Guardar estado ahora
// @Description  Escribe el snapshot de forma síncrona en todos los backends configurados.
// @Tags         snapshot
// @Produce      json
// @Success      204
// @Failure      502 {object} apierror.APIError
// @Router       /v1/snapshot/guardar [post]
func (h *SnapshotHandler) Persist(c *gin.Context) {
	if err := h.svc.Persist(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, apierror.FromErr(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Load godoc
// @Summary      Cargar último snapshot
// @Description  Reemplaza el estado en memoria con el último snapshot persistido.
// @Tags         snapshot
// @Produce      json
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/snapshot/cargar [post]
func (h *SnapshotHandler) Load(c *gin.Context) {
	if err := h.svc.Load(c.Request.Context()); err != nil {
		if errors.Is(err, storage.ErrNoSnapshot) {
			c.JSON(http.StatusNotFound, apierror.New("no hay snapshot persistido"))
			return
		}
		c.JSON(http.StatusBadGateway, apierror.FromErr(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Reset godoc
// @Summary      Reiniciar estado
// @Description  Descarta todos los libros y vuelve al catálogo e inventario por defecto.
// @Tags         snapshot
// @Produce      json
// @Success      200 {object} model.Snapshot
// @Router       /v1/snapshot/reiniciar [post]
func (h *SnapshotHandler) Reset(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Reset(c.Request.Context()))
}
