package normalize

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDenyListMatches(t *testing.T) {
	deny := NewDenyList([]string{"website", "thank you"})
	tests := []struct {
		key, value string
		want       bool
	}{
		{"Website", "example.com", true},
		{"Company Website", "example.com", true},
		{"Note", "THANK YOU for shopping", true},
		{"Invoice No", "INV-001", false},
		{"Total", "1250.00", false},
	}
	for _, tt := range tests {
		if got := deny.Matches(tt.key, tt.value); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.key, tt.value, got, tt.want)
		}
	}
}

func TestNewDenyListNormalizesTerms(t *testing.T) {
	got := NewDenyList([]string{"  Website ", "", "THANK YOU", "   "})
	want := DenyList{"website", "thank you"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NewDenyList() = %v, want %v", got, want)
	}
}

func TestParseDenyList(t *testing.T) {
	deny, err := ParseDenyList([]byte(`{"terms": ["Website", "toll free"]}`))
	if err != nil {
		t.Fatalf("ParseDenyList: %v", err)
	}
	want := DenyList{"website", "toll free"}
	if !reflect.DeepEqual(deny, want) {
		t.Fatalf("ParseDenyList() = %v, want %v", deny, want)
	}
}

func TestParseDenyListRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "nope"},
		{"missing terms", `{}`},
		{"wrong type", `{"terms": "website"}`},
		{"empty term", `{"terms": [""]}`},
		{"extra property", `{"terms": [], "extra": true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDenyList([]byte(tt.data)); err == nil {
				t.Fatalf("ParseDenyList(%q) succeeded, want error", tt.data)
			}
		})
	}
}

func TestLoadDenyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deny.json")
	if err := os.WriteFile(path, []byte(`{"terms": ["disclaimer"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	deny, err := LoadDenyList(path)
	if err != nil {
		t.Fatalf("LoadDenyList: %v", err)
	}
	if !deny.Matches("Disclaimer", "") {
		t.Fatal("loaded list did not match expected term")
	}

	if _, err := LoadDenyList(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("LoadDenyList with missing file succeeded, want error")
	}
}
