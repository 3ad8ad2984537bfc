package normalize

import (
	"reflect"
	"testing"
)

func newTestNormalizer() *Normalizer {
	return New(DefaultDenyList(), nil)
}

func TestNormalizeFencedResponse(t *testing.T) {
	raw := "```json\n{\"Invoice No\": \"INV-001\", \"Total\": \"1250.00\"}\n```"
	got := newTestNormalizer().Normalize(raw)
	want := []Field{
		{Key: "Invoice No", Value: "INV-001"},
		{Key: "Total", Value: "1250.00"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalizeSurroundingProse(t *testing.T) {
	raw := "Here is the extracted data:\n{\"Name\": \"John Doe\"}\nLet me know if you need more."
	got := newTestNormalizer().Normalize(raw)
	want := []Field{{Key: "Name", Value: "John Doe"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalizeMalformedYieldsEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"no object", "I could not read this document."},
		{"truncated json", `{"Name": "John`},
		{"array root", `["a", "b"]`},
		{"bare braces garbage", "{{{"},
	}
	n := newTestNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.raw); len(got) != 0 {
				t.Fatalf("Normalize(%q) = %v, want empty", tt.raw, got)
			}
		})
	}
}

func TestNormalizePreservesKeyOrder(t *testing.T) {
	raw := `{"Zebra": "1", "Apple": "2", "Mango": "3", "Banana": "4"}`
	got := newTestNormalizer().Normalize(raw)
	keys := make([]string, len(got))
	for i, f := range got {
		keys[i] = f.Key
	}
	want := []string{"Zebra", "Apple", "Mango", "Banana"}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("key order = %v, want %v", keys, want)
	}
}

func TestNormalizeValueCoercion(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"number", `{"K": 42}`, "42"},
		{"decimal keeps precision", `{"K": 1250.50}`, "1250.50"},
		{"bool", `{"K": true}`, "true"},
		{"list joined", `{"K": ["Widget A", "Widget B"]}`, "Widget A, Widget B"},
		{"list drops empties", `{"K": ["A", "", "  ", "B"]}`, "A, B"},
		{"mixed list", `{"K": ["A", 2]}`, "A, 2"},
		{"quote artifacts stripped", `{"K": "\"INV-001\""}`, "INV-001"},
		{"bracket artifacts stripped", `{"K": "[pending]"}`, "pending"},
		{"parenthetical preserved", `{"K": "1432 (illegible)"}`, "1432 (illegible)"},
		{"nested object compacted", `{"K": {"a": 1, "b": "x"}}`, `{"a":1,"b":"x"}`},
	}
	n := newTestNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.raw)
			if len(got) != 1 {
				t.Fatalf("Normalize(%q) = %v, want one field", tt.raw, got)
			}
			if got[0].Value != tt.want {
				t.Fatalf("value = %q, want %q", got[0].Value, tt.want)
			}
		})
	}
}

func TestNormalizeDropsEmptyPairs(t *testing.T) {
	raw := `{"Name": "John", "Empty": "", "Null": null, "Blank": "   ", "": "orphan", "OnlyQuotes": "\"\""}`
	got := newTestNormalizer().Normalize(raw)
	want := []Field{{Key: "Name", Value: "John"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalizeAppliesDenyList(t *testing.T) {
	n := New(NewDenyList([]string{"website", "thank you"}), nil)
	raw := `{"Invoice No": "INV-001", "Website": "example.com", "Note": "Thank You for your business"}`
	got := n.Normalize(raw)
	want := []Field{{Key: "Invoice No", Value: "INV-001"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalizeIdempotentOnCleanInput(t *testing.T) {
	raw := `{"Invoice No": "INV-001", "Items": "Widget A, Widget B"}`
	n := newTestNormalizer()
	first := n.Normalize(raw)
	second := n.Normalize(raw)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated Normalize diverged: %v vs %v", first, second)
	}
}

func TestNormalizeEndToEnd(t *testing.T) {
	raw := "```json\n" +
		`{"Invoice No": "INV-001", "Date": "01/15/2024", "Total": "1250.00", "Items": ["Widget A", "Widget B"], "Website": "www.example.com"}` +
		"\n```"
	got := newTestNormalizer().Normalize(raw)
	want := []Field{
		{Key: "Invoice No", Value: "INV-001"},
		{Key: "Date", Value: "01/15/2024"},
		{Key: "Total", Value: "1250.00"},
		{Key: "Items", Value: "Widget A, Widget B"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize() = %v, want %v", got, want)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n{}\n```", "{}"},
		{"```\n{}\n```", "{}"},
		{"{}", "{}"},
		{"  {}  ", "{}"},
	}
	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
