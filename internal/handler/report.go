package handler

import (
	"net/http"
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/apierror"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/worker"

	"github.com/gin-gonic/gin"
)

// ReportHandler enqueues daily closing reports. Rendering and delivery run
// on the worker pool; the request returns as soon as the job is queued.
type ReportHandler struct {
	dispatcher   *worker.Dispatcher
	defaultEmail string
}

func NewReportHandler(dispatcher *worker.Dispatcher, defaultEmail string) *ReportHandler {
	return &ReportHandler{dispatcher: dispatcher, defaultEmail: defaultEmail}
}

// Daily godoc
// @Summary      Generar cierre diario
// @Description  Encola la generación del PDF de cierre para la fecha indicada y, si hay correo configurado, su envío.
// @Tags         reporte
// @Produce      json
// @Param        fecha query string false "Fecha YYYY-MM-DD (default: hoy)"
// @Param        correo query string false "Correo destino (default: REPORT_EMAIL)"
// @Success      202 {object} map[string]string
// @Failure      400 {object} apierror.APIError
// @Router       /v1/reporte/diario [post]
func (h *ReportHandler) Daily(c *gin.Context) {
	day, ok := queryDay(c)
	if !ok {
		return
	}
	email := c.Query("correo")
	if email == "" {
		email = h.defaultEmail
	}
	payload := worker.ReportJobPayload{Day: day.Format("2006-01-02"), ToEmail: email}
	if err := h.dispatcher.EnqueueReport(c.Request.Context(), payload); err != nil {
		c.JSON(http.StatusBadGateway, apierror.FromErr(err))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"status": "encolado",
		"day":    day.Format("2006-01-02"),
		"at":     time.Now().Format(time.RFC3339),
	})
}
