// Package export renders a document's extracted fields as an Excel workbook
// for download.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/docuextract/internal/classify"
	"github.com/joseph-ayodele/docuextract/internal/entity"
)

const sheetName = "Extracted Data"

// BuildWorkbook produces an xlsx file with one row per extracted field,
// in position order, with values formatted for display.
func BuildWorkbook(fields []entity.ExtractedField) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("remove default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	headers := []string{"Field", "Value", "Type"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}
	if err := f.SetCellStyle(sheetName, "A1", "C1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, field := range fields {
		row := i + 2
		values := []any{
			humanizeKey(field.Key),
			classify.FormatValue(field.Value, field.DataType),
			string(field.DataType),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 30); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 50); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(sheetName, "C", "C", 12); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}
	if len(fields) > 0 {
		last := fmt.Sprintf("C%d", len(fields)+1)
		if err := f.AutoFilter(sheetName, "A1:"+last, nil); err != nil {
			return nil, fmt.Errorf("set auto filter: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// DownloadFilename builds the suggested attachment name for an export,
// e.g. "invoice_march_data_20240115T120000.xlsx".
func DownloadFilename(doc *entity.Document, now time.Time) string {
	name := sanitizeName(doc.Name)
	if name == "" {
		name = "document"
	}
	return fmt.Sprintf("%s_data_%s.xlsx", name, now.UTC().Format("20060102T150405"))
}

// humanizeKey turns snake_case or kebab-case keys into title-ish labels.
// Keys that already contain spaces or mixed case pass through unchanged.
func humanizeKey(key string) string {
	if strings.ContainsAny(key, " ") || key != strings.ToLower(key) {
		return key
	}
	parts := strings.FieldsFunc(key, func(r rune) bool { return r == '_' || r == '-' })
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '.':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
