package report

// pdf.go — Daily closing report generation using go-pdf/fpdf.
// Generates an A4 end-of-day summary with:
//   - Business name header and report date
//   - Financial summary (revenue, expenses, net profit, treasury)
//   - Treasury split by payment method
//   - Derived stock line (sellable pieces and cuts on hand)
//   - Low inventory warnings
//   - Sale table (ticket, customer, status, total)
//
// The output file is saved to storagePath/cierre_{YYYY-MM-DD}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/dto"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// DailyClose bundles everything the closing report prints.
type DailyClose struct {
	Day            time.Time
	Summary        dto.FinanceSummaryResponse
	Sales          []model.Sale
	SellablePieces decimal.Decimal
	ByproductUnits decimal.Decimal
	LowInventory   []model.InventoryItem
}

// GenerateDailyPDF renders the end-of-day closing report.
// storagePath is the directory where the PDF will be written (created if needed).
// Returns the absolute path to the generated file.
func GenerateDailyPDF(rep DailyClose, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("cierre_%s.pdf", rep.Day.Format("2006-01-02"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 28

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Deli Bross", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Cierre de Caja Diario", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 6, rep.Day.Format("02/01/2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.Line(14, pdf.GetY(), pageW-14, pdf.GetY())
	pdf.Ln(4)

	// ── Financial summary ─────────────────────────────────────────────────────
	labelW := contentW * 0.6
	valueW := contentW * 0.4

	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(labelW, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 6, value, "", 1, "R", false, 0, "")
	}

	row("Ingresos del día (ventas pagadas):", "Bs "+rep.Summary.Revenue.StringFixed(2), false)
	row("Gastos del día:", "Bs "+rep.Summary.TotalExpenses.StringFixed(2), false)
	row("Ganancia neta:", "Bs "+rep.Summary.NetProfit.StringFixed(2), true)
	pdf.Ln(2)
	row("Ventas registradas:", fmt.Sprintf("%d", rep.Summary.SalesCount), false)
	row("Ventas pendientes de pago:", fmt.Sprintf("%d", rep.Summary.PendingCount), false)
	pdf.Ln(4)

	// ── Treasury by method ────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Tesorería", "B", 1, "L", false, 0, "")
	pdf.Ln(1)
	row("Efectivo físico:", "Bs "+rep.Summary.ByMethod.Cash.StringFixed(2), false)
	row("QR:", "Bs "+rep.Summary.ByMethod.QR.StringFixed(2), false)
	row("Tarjeta:", "Bs "+rep.Summary.ByMethod.Card.StringFixed(2), false)
	row("Caja global:", "Bs "+rep.Summary.CashBalance.StringFixed(2), true)
	pdf.Ln(4)

	// ── Stock at close ────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Stock al cierre", "B", 1, "L", false, 0, "")
	pdf.Ln(1)
	row("Presas vendibles:", rep.SellablePieces.String(), false)
	row("Cortes disponibles:", rep.ByproductUnits.String(), false)
	pdf.Ln(4)

	// ── Low inventory ─────────────────────────────────────────────────────────
	if len(rep.LowInventory) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, "Insumos por reponer", "B", 1, "L", false, 0, "")
		pdf.Ln(1)
		for _, it := range rep.LowInventory {
			row(it.Name+":", fmt.Sprintf("%s %s (mín. %s)", it.Quantity.String(), it.Unit, it.MinThreshold.String()), false)
		}
		pdf.Ln(4)
	}

	// ── Sales table ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Ventas del día", "B", 1, "L", false, 0, "")
	pdf.Ln(1)

	col1 := contentW * 0.33 // customer
	col2 := contentW * 0.17 // order type
	col3 := contentW * 0.20 // status
	col4 := contentW * 0.30 // total

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 5, "Cliente", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Tipo", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Estado", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col4, 5, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, sale := range rep.Sales {
		name := sale.CustomerName
		if name == "" {
			name = "Mostrador"
		}
		if len(name) > 26 {
			name = name[:25] + "…"
		}
		pdf.CellFormat(col1, 5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, string(sale.OrderType), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, string(sale.Status), "", 0, "C", false, 0, "")
		pdf.CellFormat(col4, 5, "Bs "+sale.FinalTotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "Generado el "+time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
