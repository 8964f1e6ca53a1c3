package handler

import (
	"net/http"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/apierror"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/dto"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/service"

	"github.com/gin-gonic/gin"
)

type FinanceHandler struct{ svc service.FinanceService }

func NewFinanceHandler(svc service.FinanceService) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

// RecordTransaction godoc
// @Summary      Registrar transacción
// @Description  Agrega un gasto, retiro o depósito al libro financiero. Las compras de inventario acreditan el stock (servilletas entran por paquete de 50).
// @Tags         finanzas
// @Accept       json
// @Produce      json
// @Param        body body dto.RecordTransactionRequest true "Transacción"
// @Success      201  {object} model.Expense
// @Failure      400  {object} apierror.APIError
// @Router       /v1/finanzas/transacciones [post]
func (h *FinanceHandler) RecordTransaction(c *gin.Context) {
	var req dto.RecordTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	expense, err := h.svc.RecordTransaction(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.FromErr(err))
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// ListTransactions godoc
// @Summary      Listar transacciones
// @Description  Retorna el libro financiero sin los asientos internos; ?internos=true los incluye.
// @Tags         finanzas
// @Produce      json
// @Param        internos query bool false "Incluir asientos INTERNAL_"
// @Success      200 {array} model.Expense
// @Router       /v1/finanzas/transacciones [get]
func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	includeInternal := c.Query("internos") == "true"
	c.JSON(http.StatusOK, h.svc.Transactions(c.Request.Context(), includeInternal))
}

// ConvertPieces godoc
// @Summary      Convertir presas en cortes
// @Description  Corta presas enteras en cortes vendibles y deja el asiento interno de costo cero que alimenta el stock derivado.
// @Tags         finanzas
// @Accept       json
// @Produce      json
// @Param        body body dto.ConvertRequest true "Presas a convertir"
// @Success      201  {object} model.Expense
// @Failure      400  {object} apierror.APIError
// @Router       /v1/finanzas/convertir [post]
func (h *FinanceHandler) ConvertPieces(c *gin.Context) {
	var req dto.ConvertRequest
	if !bindAndValidate(c, &req) {
		return
	}
	expense, err := h.svc.ConvertPieces(c.Request.Context(), req.Pieces)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.FromErr(err))
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// Summary godoc
// @Summary      Resumen financiero del día
// @Description  Ingresos pagados, gastos, ganancia neta y tesorería por método para la fecha indicada.
// @Tags         finanzas
// @Produce      json
// @Param        fecha query string false "Fecha YYYY-MM-DD (default: hoy)"
// @Success      200   {object} dto.FinanceSummaryResponse
// @Failure      400   {object} apierror.APIError
// @Router       /v1/finanzas/resumen [get]
func (h *FinanceHandler) Summary(c *gin.Context) {
	day, ok := queryDay(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.Summary(c.Request.Context(), day))
}

// CashBalance godoc
// @Summary      Caja global
// @Tags         finanzas
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /v1/finanzas/caja [get]
func (h *FinanceHandler) CashBalance(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"globalCash": h.svc.CashBalance(c.Request.Context())})
}
