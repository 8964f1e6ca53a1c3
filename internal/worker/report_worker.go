package worker

// report_worker.go
// Processes daily-report jobs from QueueReport.
// Renders the closing PDF and optionally mails it to the owner via SMTP.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/infra"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/report"

	"github.com/rs/zerolog/log"
)

// ReportJobPayload is the job envelope sent to QueueReport.
type ReportJobPayload struct {
	Day     string `json:"day"` // 2006-01-02
	ToEmail string `json:"to_email,omitempty"`
}

// DailyCloser builds the closing report data for a given day.
// Implemented by the snapshot service; kept as an interface here so the
// worker package stays below the service layer.
type DailyCloser interface {
	DailyClose(day time.Time) report.DailyClose
}

// ReportWorker renders and delivers daily closing reports.
type ReportWorker struct {
	closer      DailyCloser
	mailer      *infra.Mailer
	storagePath string
}

// NewReportWorker wires the report data source, the SMTP mailer (may be nil
// when email delivery is disabled) and the PDF output directory.
func NewReportWorker(closer DailyCloser, mailer *infra.Mailer, storagePath string) *ReportWorker {
	return &ReportWorker{closer: closer, mailer: mailer, storagePath: storagePath}
}

// Process renders the PDF for the requested day and mails it if asked to.
func (w *ReportWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload ReportJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("report_worker: invalid payload")
		return
	}

	day, err := time.ParseInLocation("2006-01-02", payload.Day, time.Local)
	if err != nil {
		log.Error().Str("day", payload.Day).Msg("report_worker: invalid day")
		return
	}

	rep := w.closer.DailyClose(day)
	pdfPath, err := report.GenerateDailyPDF(rep, w.storagePath)
	if err != nil {
		log.Error().Err(err).Str("day", payload.Day).Msg("report_worker: PDF generation failed")
		return
	}
	log.Info().Str("pdf", pdfPath).Str("day", payload.Day).Msg("report_worker: PDF generated")

	if payload.ToEmail == "" || w.mailer == nil {
		return
	}
	subject := fmt.Sprintf("Cierre de caja — %s", day.Format("02/01/2006"))
	body := fmt.Sprintf("Adjunto el cierre de caja del %s.\nGanancia neta: Bs %s",
		day.Format("02/01/2006"), rep.Summary.NetProfit.StringFixed(2))
	if err := w.mailer.SendDailyReport(payload.ToEmail, subject, body, pdfPath); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("report_worker: failed to send email")
		return
	}
	log.Info().Str("to", payload.ToEmail).Msg("report_worker: closing report sent")
}
