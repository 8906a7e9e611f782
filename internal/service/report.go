package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"easypark/internal/domain"
)

// ReportService renders printable artifacts from the ledger: the
// per-settlement customer ticket and the accounting export.
type ReportService struct {
	accountingService *AccountingService
	settingsService   *SettingsService
}

// NewReportService creates a new ReportService.
func NewReportService(accountingService *AccountingService, settingsService *SettingsService) *ReportService {
	return &ReportService{
		accountingService: accountingService,
		settingsService:   settingsService,
	}
}

// SettlementTicketPDF renders the customer ticket for a settlement
// record.
func (s *ReportService) SettlementTicketPDF(ctx context.Context, businessID, recordID string) ([]byte, error) {
	record, err := s.accountingService.GetRecord(ctx, businessID, recordID)
	if err != nil {
		return nil, err
	}

	symbol := domain.CurrencySymbol(record.Currency)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, "Parking Ticket")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Ticket: %s", record.ID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", record.OperationDate))
	pdf.Ln(5)

	if record.Kind == domain.AccountingSettlement {
		pdf.Cell(0, 6, fmt.Sprintf("Plate: %s", record.Plate))
		pdf.Ln(5)
		pdf.Cell(0, 6, fmt.Sprintf("Category: %s", record.Category))
		pdf.Ln(5)
		pdf.Cell(0, 6, fmt.Sprintf("Entry: %s", record.EntryAt.Format(time.RFC3339)))
		pdf.Ln(5)
		pdf.Cell(0, 6, fmt.Sprintf("Exit: %s", record.ExitAt.Format(time.RFC3339)))
		pdf.Ln(5)
		pdf.Cell(0, 6, fmt.Sprintf("Time parked: %s", FormatElapsed(record.HoursParked)))
		pdf.Ln(5)
		pdf.Cell(0, 6, fmt.Sprintf("Hours charged: %d x %s%.2f", record.HoursToPay, symbol, record.RatePerHour))
		pdf.Ln(5)
		if record.NightCharge > 0 {
			pdf.Cell(0, 6, fmt.Sprintf("Night surcharge: %s%.2f", symbol, record.NightCharge))
			pdf.Ln(5)
		}
	} else if record.Description != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Description: %s", record.Description))
		pdf.Ln(5)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %s%.2f %s", symbol, record.Amount, record.Currency))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AccountingXLSX renders the ledger for a date range as a spreadsheet
// with a summary sheet and a records sheet.
func (s *ReportService) AccountingXLSX(ctx context.Context, businessID, from, to string) ([]byte, error) {
	records, err := s.accountingService.ListRecords(ctx, businessID, ListFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsService.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, r := range records {
		total += r.Amount
	}

	f := excelize.NewFile()
	summarySheet := "summary"
	recordsSheet := "records"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(recordsSheet)

	_ = f.SetCellValue(summarySheet, "A1", "Accounting Report")
	_ = f.SetCellValue(summarySheet, "A3", "From")
	_ = f.SetCellValue(summarySheet, "B3", from)
	_ = f.SetCellValue(summarySheet, "A4", "To")
	_ = f.SetCellValue(summarySheet, "B4", to)
	_ = f.SetCellValue(summarySheet, "A5", "Records")
	_ = f.SetCellValue(summarySheet, "B5", len(records))
	_ = f.SetCellValue(summarySheet, "A6", "Total")
	_ = f.SetCellValue(summarySheet, "B6", total)
	_ = f.SetCellValue(summarySheet, "A7", "Currency")
	_ = f.SetCellValue(summarySheet, "B7", settings.Currency)

	headers := []string{"Date", "Kind", "Plate", "Category", "Entry", "Exit", "Hours", "Rate", "Night charge", "Amount", "Description"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(recordsSheet, cell, h)
	}
	for i, r := range records {
		row := i + 2
		var entry, exit string
		if !r.EntryAt.IsZero() {
			entry = r.EntryAt.Format(time.RFC3339)
		}
		if !r.ExitAt.IsZero() {
			exit = r.ExitAt.Format(time.RFC3339)
		}
		values := []any{
			r.OperationDate,
			string(r.Kind),
			r.Plate,
			string(r.Category),
			entry,
			exit,
			r.HoursToPay,
			r.RatePerHour,
			r.NightCharge,
			r.Amount,
			r.Description,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			_ = f.SetCellValue(recordsSheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
