package ingestion

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestDecodeJSONRows(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		rows, err := DecodeJSONRows([]byte(`[{"Date":"2025-01-01","LV Production Value":12}]`))
		if err != nil {
			t.Fatalf("DecodeJSONRows: %v", err)
		}
		if len(rows) != 1 || rows[0]["Date"] != "2025-01-01" {
			t.Fatalf("unexpected rows: %v", rows)
		}
	})

	t.Run("rows envelope", func(t *testing.T) {
		rows, err := DecodeJSONRows([]byte(`{"rows":[{"Customer Name":"Acme"},{"Customer Name":"Globex"}]}`))
		if err != nil {
			t.Fatalf("DecodeJSONRows: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(rows))
		}
	})

	t.Run("empty payloads", func(t *testing.T) {
		for _, raw := range []string{"", "[]", `{"rows":[]}`} {
			if _, err := DecodeJSONRows([]byte(raw)); !errors.Is(err, ErrEmptyUpload) {
				t.Fatalf("DecodeJSONRows(%q) err = %v, want ErrEmptyUpload", raw, err)
			}
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if _, err := DecodeJSONRows([]byte(`{"rows":`)); err == nil {
			t.Fatal("expected a decode error")
		}
	})
}

func TestDecodeUploadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := [][]any{
		{"Customer Name", "Overall Output", "Percentage Input"},
		{"Acme Wiring", 5000, 42.5},
		{"", "", ""},
		{"Globex", 3000, "bad"},
	}
	for i, row := range cells {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	rows, err := DecodeUpload(&buf, "customers.xlsx")
	if err != nil {
		t.Fatalf("DecodeUpload: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (blank row skipped)", len(rows))
	}
	if rows[0]["Customer Name"] != "Acme Wiring" {
		t.Fatalf("row 0 name = %v", rows[0]["Customer Name"])
	}

	recs, err := NormalizeRows(rows, CustomerSchema())
	if err != nil {
		t.Fatalf("NormalizeRows: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("normalized %d rows, want 2", len(recs))
	}
	if recs[1].Has("percentage_input") {
		t.Fatal("bad percentage cell should be dropped from record")
	}
}

func TestRowsToMaps(t *testing.T) {
	rows := [][]string{
		{"", ""},
		{"Date", "LV Production Value", ""},
		{"2025-02-01", "120", "stray"},
		{"2025-03-01"},
	}
	out, err := rowsToMaps(rows)
	if err != nil {
		t.Fatalf("rowsToMaps: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d rows, want 2", len(out))
	}
	if out[0]["Date"] != "2025-02-01" || out[0]["LV Production Value"] != "120" {
		t.Fatalf("unexpected first row: %v", out[0])
	}
	if _, ok := out[0][""]; ok {
		t.Fatal("blank header column should be dropped")
	}
	if _, ok := out[1]["LV Production Value"]; ok {
		t.Fatal("short row should not invent cells")
	}

	if _, err := rowsToMaps([][]string{{"", ""}}); !errors.Is(err, ErrEmptyUpload) {
		t.Fatalf("header-only sheet err = %v, want ErrEmptyUpload", err)
	}
}
