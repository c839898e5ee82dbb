// internal/services/export_service.go
package services

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/luminahq/lumina-inventory/internal/config"
	"github.com/luminahq/lumina-inventory/internal/models"
)

var ErrNoRecords = errors.New("no records to export")

// utf8BOM lets spreadsheet tools detect the encoding.
const utf8BOM = "\xEF\xBB\xBF"

var exportColumns = []string{
	"Batch ID",
	"Product Name",
	"Category",
	"Description",
	"Price",
	"Cost",
	"Stock",
	"Min Stock",
	"Status",
	"Expiry Date",
	"Barcode",
	"Last Updated",
}

// ExportService serializes product records to flat files. Output is
// deterministic for identical input and evaluation instant.
type ExportService struct {
	currencySymbol string
	filenamePrefix string
	now            func() time.Time
}

func NewExportService(cfg *config.Config) *ExportService {
	return &ExportService{
		currencySymbol: cfg.Export.CurrencySymbol,
		filenamePrefix: cfg.Export.FilenamePrefix,
		now:            time.Now,
	}
}

// CSVFilename returns the download name for a CSV export, patterned
// <prefix>_<ISO-date>.csv.
func (s *ExportService) CSVFilename() string {
	return fmt.Sprintf("%s_%s.csv", s.filenamePrefix, s.now().Format("2006-01-02"))
}

// XLSXFilename is the spreadsheet counterpart of CSVFilename.
func (s *ExportService) XLSXFilename() string {
	return fmt.Sprintf("%s_%s.xlsx", s.filenamePrefix, s.now().Format("2006-01-02"))
}

// WriteCSV writes the records as UTF-8 CSV with a byte-order marker, CRLF
// row separators and every data field quoted (internal quotes doubled).
// Zero records fail with ErrNoRecords; callers must not emit a header-only
// file.
func (s *ExportService) WriteCSV(w io.Writer, records []models.Product) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	buf := bufio.NewWriter(w)
	if _, err := buf.WriteString(utf8BOM); err != nil {
		return err
	}
	if _, err := buf.WriteString(strings.Join(exportColumns, ",") + "\r\n"); err != nil {
		return err
	}
	for i := range records {
		row := s.exportRow(&records[i])
		for j, field := range row {
			row[j] = quoteField(field)
		}
		if _, err := buf.WriteString(strings.Join(row, ",") + "\r\n"); err != nil {
			return err
		}
	}
	return buf.Flush()
}

// WriteXLSX writes the same column set as a spreadsheet workbook.
func (s *ExportService) WriteXLSX(w io.Writer, records []models.Product) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for col, name := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	for i := range records {
		row := s.exportRow(&records[i])
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}

func (s *ExportService) exportRow(p *models.Product) []string {
	return []string{
		batchID(p),
		p.Name,
		p.Category,
		stringOrEmpty(p.Description),
		s.currencySymbol + p.Price.StringFixed(2),
		s.currencySymbol + p.Cost.StringFixed(2),
		strconv.Itoa(p.Stock),
		strconv.Itoa(p.MinStock),
		p.StockStatus().Label(),
		expiryOrPlaceholder(p.ExpiryDate),
		stringOrEmpty(p.Barcode),
		p.UpdatedAt.Format("2006-01-02"),
	}
}

// batchID prefers the stored batch number; otherwise it derives one from the
// record id: last three digits, zero-padded, prefixed with "B".
func batchID(p *models.Product) string {
	if p.BatchNumber != nil && *p.BatchNumber != "" {
		return *p.BatchNumber
	}
	return fmt.Sprintf("B%03d", p.ID%1000)
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func expiryOrPlaceholder(d *time.Time) string {
	if d == nil {
		return "N/A"
	}
	return d.Format("2006-01-02")
}
