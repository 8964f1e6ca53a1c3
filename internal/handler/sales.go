package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/apierror"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/dto"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct {
	svc     service.SaleService
	finance service.FinanceService
}

func NewSalesHandler(svc service.SaleService, finance service.FinanceService) *SalesHandler {
	return &SalesHandler{svc: svc, finance: finance}
}

// SaveSale godoc
// @Summary      Registrar o editar una venta
// @Description  Guarda una venta nueva o reemplaza una existente: convierte presas si faltan cortes, descuenta inventario y acredita caja si nace pagada.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body body dto.SaveSaleRequest true "Detalle de la venta"
// @Success      201  {object} model.Sale
// @Failure      400  {object} apierror.APIError
// @Router       /v1/ventas [post]
func (h *SalesHandler) SaveSale(c *gin.Context) {
	var req dto.SaveSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sale, err := h.svc.SaveSale(c.Request.Context(), req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrSaleNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.FromErr(err))
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// ListSales godoc
// @Summary      Listar ventas del día
// @Description  Retorna las ventas de la fecha indicada (hoy por defecto), más recientes primero.
// @Tags         ventas
// @Produce      json
// @Param        fecha query string false "Fecha YYYY-MM-DD (default: hoy)"
// @Success      200   {object} dto.SaleListResponse
// @Failure      400   {object} apierror.APIError
// @Router       /v1/ventas [get]
func (h *SalesHandler) ListSales(c *gin.Context) {
	day, ok := queryDay(c)
	if !ok {
		return
	}
	sales := h.svc.ListSales(c.Request.Context(), &day)
	c.JSON(http.StatusOK, dto.SaleListResponse{Sales: sales, Count: len(sales)})
}

// ToggleDelivered godoc
// @Summary      Alternar entrega
// @Description  Marca o desmarca una venta como entregada.
// @Tags         ventas
// @Produce      json
// @Param        id path string true "ID de la venta"
// @Success      200 {object} model.Sale
// @Failure      404 {object} apierror.APIError
// @Router       /v1/ventas/{id}/entrega [patch]
func (h *SalesHandler) ToggleDelivered(c *gin.Context) {
	sale, err := h.svc.ToggleDelivered(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, sale)
}

// ConfirmPayment godoc
// @Summary      Confirmar pago
// @Description  Marca la venta como pagada, recalcula el total con el descuento final y acredita la caja global.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        id   path string                     true "ID de la venta"
// @Param        body body dto.ConfirmPaymentRequest true "Método y descuento final"
// @Success      200  {object} model.Sale
// @Failure      404  {object} apierror.APIError
// @Router       /v1/ventas/{id}/pago [post]
func (h *SalesHandler) ConfirmPayment(c *gin.Context) {
	var req dto.ConfirmPaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sale, err := h.finance.ConfirmPayment(c.Request.Context(), c.Param("id"), req.Method, req.Discount)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrSaleNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, sale)
}

// StashDraft godoc
// @Summary      Guardar borrador
// @Description  Aparca la venta en curso sin tocar los libros.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body body model.SaleDraft true "Borrador"
// @Success      204
// @Router       /v1/ventas/borradores [post]
func (h *SalesHandler) StashDraft(c *gin.Context) {
	var draft model.SaleDraft
	if !bindAndValidate(c, &draft) {
		return
	}
	h.svc.StashDraft(c.Request.Context(), draft)
	c.Status(http.StatusNoContent)
}

// ListDrafts godoc
// @Summary      Listar borradores
// @Tags         ventas
// @Produce      json
// @Success      200 {array} model.SaleDraft
// @Router       /v1/ventas/borradores [get]
func (h *SalesHandler) ListDrafts(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Drafts(c.Request.Context()))
}

// ResumeDraft godoc
// @Summary      Retomar borrador
// @Description  Saca el borrador de la lista y lo devuelve para seguir editándolo.
// @Tags         ventas
// @Produce      json
// @Param        index path int true "Posición del borrador"
// @Success      200 {object} model.SaleDraft
// @Failure      404 {object} apierror.APIError
// @Router       /v1/ventas/borradores/{index} [delete]
func (h *SalesHandler) ResumeDraft(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("indice invalido"))
		return
	}
	draft, err := h.svc.ResumeDraft(c.Request.Context(), index)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, draft)
}
