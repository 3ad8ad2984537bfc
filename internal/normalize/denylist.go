package normalize

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// DenyList filters non-informational boilerplate (branding, contact details,
// legal text) out of extraction results by case-insensitive substring match
// against both key and value. It is a heuristic: false negatives (boilerplate
// slipping through) and false positives (real data containing a listed
// substring) are accepted trade-offs.
type DenyList []string

// NewDenyList lowercases and trims the terms, dropping empties.
func NewDenyList(terms []string) DenyList {
	out := make(DenyList, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Matches reports whether key or value contains any deny-listed term.
func (d DenyList) Matches(key, value string) bool {
	k := strings.ToLower(key)
	v := strings.ToLower(value)
	for _, term := range d {
		if strings.Contains(k, term) || strings.Contains(v, term) {
			return true
		}
	}
	return false
}

// DefaultDenyList covers the boilerplate the extraction prompt already asks
// providers to leave out, for the cases where they include it anyway.
func DefaultDenyList() DenyList {
	return NewDenyList([]string{
		"www.",
		"http://",
		"https://",
		"website",
		"thank you",
		"terms and conditions",
		"terms & conditions",
		"disclaimer",
		"all rights reserved",
		"registered office",
		"customer copy",
		"follow us",
		"toll free",
	})
}

// denyListSchema validates externally supplied deny-list files before use.
const denyListSchema = `{
	"type": "object",
	"required": ["terms"],
	"additionalProperties": false,
	"properties": {
		"terms": {
			"type": "array",
			"items": {"type": "string", "minLength": 1}
		}
	}
}`

// LoadDenyList reads a JSON deny-list file ({"terms": ["www.", ...]}),
// validates it against denyListSchema, and returns the resulting list.
func LoadDenyList(path string) (DenyList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deny-list: %w", err)
	}
	return ParseDenyList(data)
}

// ParseDenyList validates and builds a DenyList from raw JSON bytes.
func ParseDenyList(data []byte) (DenyList, error) {
	schema, err := jsonschema.CompileString("denylist.schema.json", denyListSchema)
	if err != nil {
		return nil, fmt.Errorf("compile deny-list schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode deny-list: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate deny-list: %w", err)
	}

	var parsed struct {
		Terms []string `json:"terms"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("decode deny-list terms: %w", err)
	}
	return NewDenyList(parsed.Terms), nil
}
