package ingestion

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Record is one normalized upload row. Keys are canonical field names,
// values are float64 for numbers and string for text and dates (dates in
// YYYY-MM-DD form). Fields that failed coercion on an omit-invalid column
// are simply absent.
type Record map[string]any

// Has reports whether the field survived normalization.
func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Number returns the field's numeric value, zero when absent.
func (r Record) Number(name string) float64 {
	v, _ := r.NumberOK(name)
	return v
}

// NumberOK returns the numeric value and whether the field is present.
func (r Record) NumberOK(name string) (float64, bool) {
	v, ok := r[name].(float64)
	return v, ok
}

// Text returns the field's string value, empty when absent.
func (r Record) Text(name string) string {
	v, _ := r[name].(string)
	return v
}

// excelEpoch anchors the 1900 date system at 1899-12-30, absorbing the
// phantom 1900-02-29 so modern serials land on the right day.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"02-Jan-2006",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2006-01",
}

// NormalizeRow maps one raw row onto the schema's canonical fields. Columns
// that resolve to no field are dropped. When several columns resolve to the
// same field the first one in header order wins.
func NormalizeRow(row map[string]any, s *Schema) Record {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := Record{}
	for _, k := range keys {
		f, ok := s.Resolve(k)
		if !ok || out.Has(f.Name) {
			continue
		}
		switch f.Kind {
		case KindNumber:
			n, ok := coerceNumber(row[k])
			if !ok {
				if f.OmitInvalid {
					continue
				}
				n = 0
			}
			out[f.Name] = n
		case KindDate:
			d, ok := coerceDate(row[k])
			if !ok {
				continue
			}
			out[f.Name] = d
		case KindText:
			t := strings.TrimSpace(fmt.Sprint(row[k]))
			if t == "" || row[k] == nil {
				continue
			}
			out[f.Name] = t
		}
	}
	return out
}

// NormalizeRows normalizes a decoded upload against a schema and enforces
// the upload-level guarantees: at least one row, at least one recognizable
// column, and for schemas with required fields at least one row carrying
// them all. Rows missing a required field are dropped, not failed.
func NormalizeRows(rows []map[string]any, s *Schema) ([]Record, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyUpload
	}

	required := s.RequiredFields()
	matchedAny := false
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		for k := range row {
			if _, ok := s.Resolve(k); ok {
				matchedAny = true
				break
			}
		}
		rec := NormalizeRow(row, s)
		if len(rec) == 0 {
			continue
		}
		keep := true
		for _, f := range required {
			if !rec.Has(f.Name) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, rec)
		}
	}

	if !matchedAny {
		return nil, ErrMalformedSchema
	}
	if len(out) == 0 {
		return nil, ErrNoValidRows
	}
	return out, nil
}

func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func coerceDate(v any) (string, bool) {
	switch d := v.(type) {
	case float64:
		return serialDate(d)
	case int:
		return serialDate(float64(d))
	case int64:
		return serialDate(float64(d))
	case string:
		raw := strings.TrimSpace(d)
		if raw == "" {
			return "", false
		}
		// Spreadsheet decoders hand serial dates over as digit strings.
		if serial, err := strconv.ParseFloat(raw, 64); err == nil {
			if len(raw) == 4 {
				// A bare 4-digit cell is a year, not a serial.
				return "", false
			}
			return serialDate(serial)
		}
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
				return t.Format("2006-01-02"), true
			}
		}
		return "", false
	default:
		return "", false
	}
}

func serialDate(serial float64) (string, bool) {
	if serial <= 0 || serial > 200000 {
		return "", false
	}
	t := excelEpoch.AddDate(0, 0, int(serial))
	return t.Format("2006-01-02"), true
}
