package handler

import (
	"errors"
	"net/http"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/apierror"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/dto"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/service"

	"github.com/gin-gonic/gin"
)

type CommandHandler struct{ svc service.CommandService }

func NewCommandHandler(svc service.CommandService) *CommandHandler {
	return &CommandHandler{svc: svc}
}

// Execute godoc
// @Summary      Ejecutar comando estructurado
// @Description  Ejecuta una intención ya interpretada (venta, gasto, producción o conversión). El backend nunca parsea lenguaje natural.
// @Tags         comando
// @Accept       json
// @Produce      json
// @Param        body body dto.ExecuteCommandRequest true "Comando estructurado"
// @Success      200  {object} dto.CommandResult
// @Failure      400  {object} apierror.APIError
// @Router       /v1/comando [post]
func (h *CommandHandler) Execute(c *gin.Context) {
	var req dto.ExecuteCommandRequest
	if !bindAndValidate(c, &req) {
		return
	}
	result, err := h.svc.Execute(c.Request.Context(), req.Command)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrUnknownCommand) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, apierror.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, result)
}
