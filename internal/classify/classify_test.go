package classify

import (
	"testing"

	"github.com/joseph-ayodele/docuextract/constants"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		value string
		want  constants.FieldType
	}{
		{"1250.00", constants.TypeNumber},
		{"42", constants.TypeNumber},
		{"0.5", constants.TypeNumber},
		{"01/15/2024", constants.TypeDate},
		{"1-15-2024", constants.TypeDate},
		{"2024-01-15", constants.TypeDate},
		{"January 15, 2024", constants.TypeDate},
		{"Due 01/15/2024", constants.TypeDate},
		{"John Doe", constants.TypeText},
		{"INV-001", constants.TypeText},
		{"$1,250.00", constants.TypeText},
		{"1250.00 USD", constants.TypeText},
		{"", constants.TypeText},
	}
	for _, tt := range tests {
		if got := Classify(tt.value); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestClassifyNumberBeatsDate(t *testing.T) {
	// A bare number never reads as a date even if a date pattern could
	// overlap; number is checked first.
	if got := Classify("20240115"); got != constants.TypeNumber {
		t.Fatalf("Classify(20240115) = %v, want number", got)
	}
}

func TestFormatValueDates(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"01/15/2024", "January 15, 2024"},
		{"1/5/2024", "January 5, 2024"},
		{"1-15-2024", "January 15, 2024"},
		{"2024-01-15", "January 15, 2024"},
		{"January 15, 2024", "January 15, 2024"},
		{"Jan 15, 2024", "January 15, 2024"},
		{"Due 01/15/2024", "Due 01/15/2024"}, // unparseable as a whole, returned verbatim
	}
	for _, tt := range tests {
		if got := FormatValue(tt.value, constants.TypeDate); got != tt.want {
			t.Errorf("FormatValue(%q, date) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatValueNumbers(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"42", "42"},
		{"42.0", "42"},
		{"1250.50", "1250.5"},
		{"0.125", "0.125"},
		{"not-a-number", "not-a-number"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.value, constants.TypeNumber); got != tt.want {
			t.Errorf("FormatValue(%q, number) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatValueText(t *testing.T) {
	if got := FormatValue("John Doe", constants.TypeText); got != "John Doe" {
		t.Fatalf("FormatValue(text) = %q, want verbatim", got)
	}
}
