package ingestion

import (
	"errors"
	"testing"
)

func TestCanonicalKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"LV Production Value", "lv production value"},
		{"MSF_P2_(Monthly_Total)", "msf p2 (monthly total)"},
		{"  Schedule   Average  ", "schedule average"},
		{"auto_crimp_avg", "auto crimp avg"},
	}
	for _, tc := range cases {
		if got := CanonicalKey(tc.in); got != tc.want {
			t.Fatalf("CanonicalKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSeriesSchemaHeaderAliases(t *testing.T) {
	s := SeriesSchema()
	cases := []struct {
		header string
		want   string
	}{
		{"msf p2 (monthly total)", "msf_p2"},
		{"MSF_P2_(Monthly_Total)", "msf_p2"},
		{"Month", "date"},
		{"PERIOD", "date"},
		{"mth", "date"},
		{"Soldering Avg", "soldering_avg"},
	}
	for _, tc := range cases {
		f, ok := s.Resolve(tc.header)
		if !ok {
			t.Fatalf("Resolve(%q): no match", tc.header)
		}
		if f.Name != tc.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tc.header, f.Name, tc.want)
		}
	}
	if _, ok := s.Resolve("operator name"); ok {
		t.Fatal("Resolve matched an unknown header")
	}
}

func TestNormalizeRowDailyVariants(t *testing.T) {
	// Spaced, underscored, and shorthand headers all land on the same
	// canonical fields.
	row := map[string]any{
		"LV Production Value": "1250.5",
		"Auto_Crimp_A":        7000,
		"soldering c":         "900",
		"MSF P2 Daily":        2.5,
		"Operator":            "ignored",
	}
	rec := NormalizeRow(row, DailySchema())

	if got := rec.Number("lv_production_value"); got != 1250.5 {
		t.Fatalf("lv_production_value = %v, want 1250.5", got)
	}
	if got := rec.Number("auto_crimp_shift_a"); got != 7000 {
		t.Fatalf("auto_crimp_shift_a = %v, want 7000", got)
	}
	if got := rec.Number("soldering_shift_c"); got != 900 {
		t.Fatalf("soldering_shift_c = %v, want 900", got)
	}
	if got := rec.Number("msf_plant_2"); got != 2.5 {
		t.Fatalf("msf_plant_2 = %v, want 2.5", got)
	}
	if rec.Has("operator") {
		t.Fatal("unknown column leaked into the record")
	}
}

func TestNormalizeRowNumericCoercion(t *testing.T) {
	row := map[string]any{
		"Productivity Value": "n/a",
		"Schedule Average":   "",
	}
	rec := NormalizeRow(row, DailySchema())

	// Unparseable numerics default to zero rather than failing the row.
	if got, ok := rec.NumberOK("productivity_value"); !ok || got != 0 {
		t.Fatalf("productivity_value = %v (present=%v), want 0 present", got, ok)
	}
	if got, ok := rec.NumberOK("schedule_average"); !ok || got != 0 {
		t.Fatalf("schedule_average = %v (present=%v), want 0 present", got, ok)
	}
}

func TestNormalizeRowOmitInvalidPercentage(t *testing.T) {
	row := map[string]any{
		"Customer Name":    "  Acme Wiring  ",
		"Overall Output":   "5000",
		"Percentage Input": "bad",
	}
	rec := NormalizeRow(row, CustomerSchema())

	if got := rec.Text("customer_name"); got != "Acme Wiring" {
		t.Fatalf("customer_name = %q, want trimmed name", got)
	}
	if got := rec.Number("overall_output"); got != 5000 {
		t.Fatalf("overall_output = %v, want 5000", got)
	}
	if rec.Has("percentage_input") {
		t.Fatal("unparseable percentage_input should be absent, not zero")
	}
}

func TestNormalizeRowDates(t *testing.T) {
	cases := []struct {
		name string
		cell any
		want string
		ok   bool
	}{
		{"iso", "2025-06-01", "2025-06-01", true},
		{"slash us", "06/01/2025", "2025-06-01", true},
		{"month only", "2025-06", "2025-06-01", true},
		{"excel serial", 45292.0, "2024-01-01", true},
		{"excel serial string", "45292", "2024-01-01", true},
		{"garbage", "next tuesday", "", false},
		{"empty", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := NormalizeRow(map[string]any{"Date": tc.cell}, SeriesSchema())
			if tc.ok != rec.Has("date") {
				t.Fatalf("date present = %v, want %v", rec.Has("date"), tc.ok)
			}
			if tc.ok && rec.Text("date") != tc.want {
				t.Fatalf("date = %q, want %q", rec.Text("date"), tc.want)
			}
		})
	}
}

func TestNormalizeRows(t *testing.T) {
	t.Run("empty upload", func(t *testing.T) {
		if _, err := NormalizeRows(nil, SeriesSchema()); !errors.Is(err, ErrEmptyUpload) {
			t.Fatalf("err = %v, want ErrEmptyUpload", err)
		}
	})

	t.Run("no recognizable columns", func(t *testing.T) {
		rows := []map[string]any{{"Widget": 1, "Gadget": 2}}
		if _, err := NormalizeRows(rows, SeriesSchema()); !errors.Is(err, ErrMalformedSchema) {
			t.Fatalf("err = %v, want ErrMalformedSchema", err)
		}
	})

	t.Run("all rows fail validation", func(t *testing.T) {
		rows := []map[string]any{
			{"Date": "not a date", "LV Production Value": 100},
			{"Date": "", "LV Production Value": 200},
		}
		if _, err := NormalizeRows(rows, SeriesSchema()); !errors.Is(err, ErrNoValidRows) {
			t.Fatalf("err = %v, want ErrNoValidRows", err)
		}
	})

	t.Run("invalid rows dropped, valid kept", func(t *testing.T) {
		rows := []map[string]any{
			{"Date": "2025-03-01", "LV Production Value": 100},
			{"Date": "???", "LV Production Value": 200},
			{"Month": "2025-04-01", "LV Production Value": 300},
		}
		recs, err := NormalizeRows(rows, SeriesSchema())
		if err != nil {
			t.Fatalf("NormalizeRows: %v", err)
		}
		if len(recs) != 2 {
			t.Fatalf("kept %d rows, want 2", len(recs))
		}
		if recs[0].Text("date") != "2025-03-01" || recs[1].Text("date") != "2025-04-01" {
			t.Fatalf("unexpected dates: %q, %q", recs[0].Text("date"), recs[1].Text("date"))
		}
	})
}
