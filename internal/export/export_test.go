package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/docuextract/constants"
	"github.com/joseph-ayodele/docuextract/internal/entity"
)

func TestBuildWorkbook(t *testing.T) {
	fields := []entity.ExtractedField{
		{Key: "Invoice No", Value: "INV-001", DataType: constants.TypeText, Position: 0},
		{Key: "invoice_date", Value: "01/15/2024", DataType: constants.TypeDate, Position: 1},
		{Key: "Total", Value: "1250.00", DataType: constants.TypeNumber, Position: 2},
	}
	content, err := BuildWorkbook(fields)
	if err != nil {
		t.Fatalf("BuildWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	want := [][]string{
		{"Field", "Value", "Type"},
		{"Invoice No", "INV-001", "text"},
		{"Invoice Date", "January 15, 2024", "date"},
		{"Total", "1250", "number"},
	}
	if len(rows) != len(want) {
		t.Fatalf("rows = %v, want %v", rows, want)
	}
	for i := range want {
		for j := range want[i] {
			if rows[i][j] != want[i][j] {
				t.Errorf("cell [%d][%d] = %q, want %q", i, j, rows[i][j], want[i][j])
			}
		}
	}
}

func TestBuildWorkbookEmpty(t *testing.T) {
	content, err := BuildWorkbook(nil)
	if err != nil {
		t.Fatalf("BuildWorkbook: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %v, want header only", rows)
	}
}

func TestDownloadFilename(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		docName string
		want    string
	}{
		{"Invoice March", "invoice_march_data_20240115T120000.xlsx"},
		{"  Receipt #42!  ", "receipt_42_data_20240115T120000.xlsx"},
		{"///", "document_data_20240115T120000.xlsx"},
	}
	for _, tt := range tests {
		doc := &entity.Document{Name: tt.docName}
		if got := DownloadFilename(doc, now); got != tt.want {
			t.Errorf("DownloadFilename(%q) = %q, want %q", tt.docName, got, tt.want)
		}
	}
}

func TestHumanizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"invoice_number", "Invoice Number"},
		{"due-date", "Due Date"},
		{"Invoice No", "Invoice No"},
		{"Total", "Total"},
		{"total", "Total"},
	}
	for _, tt := range tests {
		if got := humanizeKey(tt.in); got != tt.want {
			t.Errorf("humanizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDownloadFilenameExtension(t *testing.T) {
	doc := &entity.Document{Name: "x"}
	if got := DownloadFilename(doc, time.Now()); !strings.HasSuffix(got, ".xlsx") {
		t.Fatalf("filename %q lacks .xlsx suffix", got)
	}
}
