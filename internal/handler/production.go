package handler

import (
	"net/http"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/apierror"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/dto"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductionHandler struct{ svc service.ProductionService }

func NewProductionHandler(svc service.ProductionService) *ProductionHandler {
	return &ProductionHandler{svc: svc}
}

// ListRules godoc
// @Summary      Listar reglas de producción
// @Tags         produccion
// @Produce      json
// @Success      200 {array} model.KitchenProductionRule
// @Router       /v1/produccion/reglas [get]
func (h *ProductionHandler) ListRules(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Rules(c.Request.Context()))
}

// Apply godoc
// @Summary      Aplicar regla de producción
// @Description  Descuenta los insumos de la receta, acredita la salida y registra la tanda en el log de producción.
// @Tags         produccion
// @Accept       json
// @Produce      json
// @Param        body body dto.ApplyProductionRequest true "Regla y multiplicador"
// @Success      201  {object} model.StockLog
// @Failure      400  {object} apierror.APIError
// @Router       /v1/produccion/aplicar [post]
func (h *ProductionHandler) Apply(c *gin.Context) {
	var req dto.ApplyProductionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	startAt := req.StartAt
	if req.StartClock != "" {
		t, err := service.StartOfDayClock(req.StartClock)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.FromErr(err))
			return
		}
		startAt = &t
	}
	entry, err := h.svc.ApplyByName(c.Request.Context(), req.RuleName, req.Multiplier, startAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.FromErr(err))
		return
	}
	c.JSON(http.StatusCreated, entry)
}
