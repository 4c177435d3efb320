package services

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"kaidan-backend/internal/models"
	"kaidan-backend/internal/numeric"
	"kaidan-backend/internal/reconcile"
)

// ExportService renders the slip PDF and the statistics workbooks.
type ExportService struct {
	fontPath string
	fontName string
	settings *SettingService
	log      zerolog.Logger
}

func NewExportService(fontPath, fontName string, settings *SettingService, log zerolog.Logger) *ExportService {
	return &ExportService{
		fontPath: fontPath,
		fontName: fontName,
		settings: settings,
		log:      log,
	}
}

// newPDF returns an A4 portrait document with the CJK font registered.
// Slip text is Chinese; the built-in core fonts cannot render it.
func (s *ExportService) newPDF() (*gofpdf.Fpdf, error) {
	if _, err := os.Stat(s.fontPath); err != nil {
		return nil, fmt.Errorf("slip font not found at %s: %w", s.fontPath, err)
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8Font(s.fontName, "", s.fontPath)
	pdf.SetMargins(15, 15, 15)
	return pdf, nil
}

// SlipPDF renders one finalized invoice as the printable sales slip.
func (s *ExportService) SlipPDF(ctx context.Context, inv *models.InvoiceWithItems, summary string) ([]byte, error) {
	pdf, err := s.newPDF()
	if err != nil {
		return nil, err
	}
	pdf.AddPage()

	title := s.settings.GetValue(ctx, models.SettingCompanyTitle, "")
	if title == "" {
		title = "销售单"
	}
	pdf.SetFont(s.fontName, "", 18)
	pdf.CellFormat(180, 12, title, "", 1, "C", false, 0, "")

	pdf.SetFont(s.fontName, "", 11)
	pdf.CellFormat(90, 8, fmt.Sprintf("单号：%d", inv.InvoiceNo), "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 8, fmt.Sprintf("日期：%s", inv.Date), "", 1, "R", false, 0, "")
	pdf.CellFormat(90, 8, fmt.Sprintf("客户：%s", inv.Customer), "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 8, fmt.Sprintf("到站：%s", inv.Location), "", 1, "R", false, 0, "")
	pdf.Ln(3)

	// Item table
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(50, 8, "产品", "1", 0, "C", true, 0, "")
	pdf.CellFormat(24, 8, "规格(斤)", "1", 0, "C", true, 0, "")
	pdf.CellFormat(24, 8, "件数", "1", 0, "C", true, 0, "")
	pdf.CellFormat(28, 8, "吨位", "1", 0, "C", true, 0, "")
	pdf.CellFormat(26, 8, "单价", "1", 0, "C", true, 0, "")
	pdf.CellFormat(28, 8, "金额", "1", 1, "C", true, 0, "")

	pdf.SetFont(s.fontName, "", 10)
	for _, it := range inv.Items {
		pdf.CellFormat(50, 8, it.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(24, 8, fmtOpt(it.SpecJin), "1", 0, "C", false, 0, "")
		pdf.CellFormat(24, 8, fmtOpt(it.Qty), "1", 0, "C", false, 0, "")
		pdf.CellFormat(28, 8, fmtOpt3(it.Weight), "1", 0, "C", false, 0, "")
		pdf.CellFormat(26, 8, fmtOpt(it.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 8, fmtOpt(it.Amount), "1", 1, "R", false, 0, "")
	}

	totals := reconcile.Totals{Qty: inv.TotalQty, Weight: inv.TotalWeight, Amount: inv.TotalAmount}
	pdf.SetFont(s.fontName, "", 11)
	pdf.CellFormat(180, 9, totals.Line(), "1", 1, "L", false, 0, "")
	pdf.Ln(3)

	if summary == "" {
		summary = totals.DefaultSummary()
	}
	pdf.CellFormat(180, 8, summary, "", 1, "L", false, 0, "")

	if account := s.settings.GetValue(ctx, models.SettingAccountText, ""); account != "" {
		pdf.Ln(3)
		pdf.SetFont(s.fontName, "", 10)
		pdf.MultiCell(180, 6, account, "", "L", false)
	}

	return renderPDF(pdf)
}

func renderPDF(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// InvoiceStatsXLSX renders the by-invoice report as a workbook.
func (s *ExportService) InvoiceStatsXLSX(report *InvoiceReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"单号", "日期", "客户", "到站", "类别", "件数", "吨位", "金额"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for r, inv := range report.Rows {
		values := []interface{}{
			inv.InvoiceNo, inv.Date, inv.Customer, inv.Location, inv.Category,
			inv.TotalQty, inv.TotalWeight, inv.TotalAmount,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	row := len(report.Rows) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "合计")
	f.SetCellValue(sheet, fmt.Sprintf("F%d", row), report.Sums.Qty)
	f.SetCellValue(sheet, fmt.Sprintf("G%d", row), report.Sums.Weight)
	f.SetCellValue(sheet, fmt.Sprintf("H%d", row), report.Sums.Amount)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row+1), "金额（万元显示）")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row+1), numeric.FormatAmountCN(report.Sums.Amount))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CustomerStatsXLSX renders the by-customer report as a workbook.
// Percentages carry no decimals, matching the on-screen report.
func (s *ExportService) CustomerStatsXLSX(report *CustomerReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"客户", "件数", "吨位", "金额", "单数", "件数占比", "吨位占比", "金额占比"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for r, row := range report.Rows {
		values := []interface{}{
			row.Customer, row.Qty, row.Weight, row.Amount, row.InvoiceCount,
			fmt.Sprintf("%.0f%%", row.PctQty),
			fmt.Sprintf("%.0f%%", row.PctWeight),
			fmt.Sprintf("%.0f%%", row.PctAmount),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	row := len(report.Rows) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "合计")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), report.Sums.Qty)
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), report.Sums.Weight)
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), report.Sums.Amount)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RegionStatsXLSX renders the by-region report. Percentages carry two
// decimals in this view.
func (s *ExportService) RegionStatsXLSX(report *RegionReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	label := "城市"
	if report.ByProvince {
		label = "省份"
	}
	f.SetCellValue(sheet, "A1", label)
	f.SetCellValue(sheet, "B1", "金额")
	f.SetCellValue(sheet, "C1", "占比")

	for r, row := range report.Rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r+2), row.Region)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", r+2), row.Amount)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", r+2), fmt.Sprintf("%.2f%%", row.Pct))
	}

	row := len(report.Rows) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "合计")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), report.TotalAmount)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fmtOpt(f *float64) string {
	if f == nil {
		return ""
	}
	return numeric.FormatDecimal(*f)
}

func fmtOpt3(f *float64) string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%.3f", *f)
}
