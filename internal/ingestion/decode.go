package ingestion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

const maxSheetRows = 100000

// DecodeUpload reads an uploaded file into raw rows keyed by their original
// headers. The format is picked from the filename extension: .xls and .xlsx
// workbooks and .json documents are accepted, anything else falls back to a
// JSON parse. Cells stay untyped here; NormalizeRows does the coercion.
func DecodeUpload(reader io.Reader, filename string) ([]map[string]any, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		return decodeXLS(data)
	case ".xlsx", ".xlsm":
		return decodeXLSX(data)
	default:
		return DecodeJSONRows(data)
	}
}

// DecodeJSONRows accepts either a bare JSON array of row objects or an
// envelope object with a "rows" array.
func DecodeJSONRows(data []byte) ([]map[string]any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyUpload
	}

	var rows []map[string]any
	if trimmed[0] == '{' {
		var envelope struct {
			Rows []map[string]any `json:"rows"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("decode json upload: %w", err)
		}
		rows = envelope.Rows
	} else {
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, fmt.Errorf("decode json upload: %w", err)
		}
	}
	if len(rows) == 0 {
		return nil, ErrEmptyUpload
	}
	return rows, nil
}

func decodeXLS(data []byte) ([]map[string]any, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls workbook: %w", err)
	}
	if workbook.NumSheets() == 0 {
		return nil, ErrEmptyUpload
	}
	return rowsToMaps(workbook.ReadAllCells(maxSheetRows))
}

func decodeXLSX(data []byte) ([]map[string]any, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrEmptyUpload
	}
	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", sheetName, err)
	}
	return rowsToMaps(rows)
}

// rowsToMaps treats the first non-empty row as the header row and keys every
// following row by it. Fully empty rows are skipped.
func rowsToMaps(rows [][]string) ([]map[string]any, error) {
	start := 0
	for start < len(rows) && emptyRow(rows[start]) {
		start++
	}
	if start >= len(rows) {
		return nil, ErrEmptyUpload
	}

	headers := rows[start]
	var out []map[string]any
	for _, row := range rows[start+1:] {
		if emptyRow(row) {
			continue
		}
		m := make(map[string]any, len(headers))
		for i, header := range headers {
			if strings.TrimSpace(header) == "" || i >= len(row) {
				continue
			}
			m[header] = row[i]
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil, ErrEmptyUpload
	}
	return out, nil
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
