package handler

import (
	"net/http"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/dto"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/service"

	"github.com/gin-gonic/gin"
)

type StockHandler struct{ svc service.StockService }

func NewStockHandler(svc service.StockService) *StockHandler {
	return &StockHandler{svc: svc}
}

// Derived godoc
// @Summary      Stock derivado del día
// @Description  Presas y cortes disponibles, recomputados desde los libros para la fecha indicada. Nunca se lee de un contador almacenado.
// @Tags         stock
// @Produce      json
// @Param        fecha query string false "Fecha YYYY-MM-DD (default: hoy)"
// @Success      200   {object} dto.StockResponse
// @Failure      400   {object} apierror.APIError
// @Router       /v1/stock [get]
func (h *StockHandler) Derived(c *gin.Context) {
	day, ok := queryDay(c)
	if !ok {
		return
	}
	derived := h.svc.ForDay(c.Request.Context(), day)
	c.JSON(http.StatusOK, dto.StockResponse{
		Day:             day.Format("2006-01-02"),
		SellablePieces:  derived.SellablePieces,
		ByproductUnits:  derived.ByproductUnits,
		ProducedPieces:  derived.ProducedPieces,
		ConsumedPieces:  derived.ConsumedPieces,
		ConvertedPieces: derived.ConvertedPieces,
	})
}

// ProductionLog godoc
// @Summary      Log de producción
// @Tags         stock
// @Produce      json
// @Success      200 {array} model.StockLog
// @Router       /v1/stock/log [get]
func (h *StockHandler) ProductionLog(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ProductionLog(c.Request.Context()))
}

// LowInventory godoc
// @Summary      Inventario bajo mínimo
// @Description  Insumos cuya cantidad cayó al umbral mínimo o por debajo.
// @Tags         stock
// @Produce      json
// @Success      200 {array} model.InventoryItem
// @Router       /v1/stock/inventario/bajo [get]
func (h *StockHandler) LowInventory(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.LowInventory(c.Request.Context()))
}
