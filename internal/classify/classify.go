// Package classify assigns a best-effort semantic type to extracted values
// for downstream display formatting. It never rejects a value; everything
// that is not a number or a date is text.
package classify

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joseph-ayodele/docuextract/constants"
)

var reNumber = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Date shapes are matched anywhere in the value: a value like
// "Due 01/15/2024" still reads as a date for formatting purposes.
var reDates = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),       // M/D/YYYY
	regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{4}`),       // M-D-YYYY
	regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`),       // YYYY-M-D
	regexp.MustCompile(`[A-Za-z]+ \d{1,2}, \d{4}`),    // Month D, YYYY
}

// Classify returns the inferred type of a cleaned value. First match wins:
// number, then date, then text.
func Classify(value string) constants.FieldType {
	if reNumber.MatchString(value) {
		return constants.TypeNumber
	}
	for _, re := range reDates {
		if re.MatchString(value) {
			return constants.TypeDate
		}
	}
	return constants.TypeText
}

var dateLayouts = []string{
	"1/2/2006",
	"1-2-2006",
	"2006-1-2",
	"January 2, 2006",
	"Jan 2, 2006",
}

// FormatValue renders a value for human display according to its inferred
// type: dates as "January 2, 2006", numbers with trailing zeros trimmed,
// text verbatim. Unparseable values come back unchanged.
func FormatValue(value string, t constants.FieldType) string {
	switch t {
	case constants.TypeDate:
		s := strings.TrimSpace(value)
		for _, layout := range dateLayouts {
			if d, err := time.Parse(layout, s); err == nil {
				return d.Format("January 2, 2006")
			}
		}
		return value
	case constants.TypeNumber:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return value
		}
		if f == float64(int64(f)) {
			return strconv.FormatInt(int64(f), 10)
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return value
	}
}
