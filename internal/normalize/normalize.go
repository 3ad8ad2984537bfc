// Package normalize turns raw OCR provider text into a clean, ordered list of
// key/value fields. It is deliberately lenient: malformed or empty responses
// produce an empty result, never an error. A bad model response is a
// data-quality issue, not a system fault.
package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Field is one cleaned key/value pair. Order in the slice reflects the order
// keys appeared in the provider response.
type Field struct {
	Key   string
	Value string
}

type Normalizer struct {
	deny   DenyList
	logger *slog.Logger
}

func New(deny DenyList, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{deny: deny, logger: logger}
}

// Normalize extracts the JSON object embedded in raw provider text and
// returns its surviving key/value pairs in insertion order. Pairs with an
// empty key or value after cleaning are dropped, as are pairs matching the
// deny-list.
func (n *Normalizer) Normalize(raw string) []Field {
	body := sliceObject(stripFences(raw))
	if body == "" {
		return nil
	}

	pairs, err := decodeOrdered(body)
	if err != nil {
		// Not escalated: an unparseable response yields zero fields.
		n.logger.Warn("normalize.parse_failed", "error", err, "raw_chars", len(raw))
		return nil
	}

	fields := make([]Field, 0, len(pairs))
	for _, p := range pairs {
		key := strings.TrimSpace(p.key)
		value := strings.TrimSpace(coerceValue(p.raw))
		if key == "" || value == "" {
			continue
		}
		if n.deny.Matches(key, value) {
			n.logger.Debug("normalize.denylist_drop", "key", key)
			continue
		}
		fields = append(fields, Field{Key: key, Value: value})
	}
	return fields
}

// stripFences removes a leading markdown fence line (``` or ```json) and a
// trailing ``` if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// sliceObject cuts the text between the first '{' and the last '}' inclusive.
// Returns "" when no object is present.
func sliceObject(s string) string {
	i := strings.IndexByte(s, '{')
	j := strings.LastIndexByte(s, '}')
	if i < 0 || j < i {
		return ""
	}
	return s[i : j+1]
}

type rawPair struct {
	key string
	raw json.RawMessage
}

// decodeOrdered walks the object token by token so key order is preserved;
// encoding/json maps would lose it.
func decodeOrdered(s string) ([]rawPair, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("not a JSON object")
	}

	var pairs []rawPair
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("non-string key %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		pairs = append(pairs, rawPair{key: key, raw: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// coerceValue renders a JSON value as a display string. Lists become the
// comma-joined, quote-stripped, empty-filtered stringification of their
// elements; nested objects are kept as compact JSON. Parenthetical
// annotations inside values (e.g. " (illegible)") are preserved; they carry
// information about uncertain transcriptions.
func coerceValue(raw json.RawMessage) string {
	v, err := decodeAny(raw)
	if err != nil {
		return ""
	}
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return stripArtifacts(t)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, el := range t {
			s := strings.TrimSpace(scalarString(el))
			if s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		// nested object: keep it compact rather than losing it
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return ""
		}
		return buf.String()
	}
}

func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return stripArtifacts(t)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func decodeAny(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// stripArtifacts trims whitespace plus stray quote/bracket characters that
// models occasionally leave around values. Heuristic: a legitimate value
// wrapped in brackets loses them, which we accept.
func stripArtifacts(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "\"'[]"))
}
