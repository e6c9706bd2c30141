package dashboard

import (
	"testing"

	"github.com/lineboard/lineboard-backend/internal/domain"
	"github.com/lineboard/lineboard-backend/internal/ingestion"
)

func TestPointFromDaily(t *testing.T) {
	rec := &domain.DailyRecord{
		PeriodKey: "2025-06-01",
		Values:    domain.DailyValues{LVProductionValue: 1250, ProductivityValue: 88, ScheduleAverage: 40},
		Cuts:      domain.CutsAverages{AutoCrimpAverage: 6500, SemiCrimpAverage: 3500, SolderingAverage: 1700},
		Downtime: domain.BreakdownTime{
			MSFPlant2:            2.5,
			MonthTotalMSFP2:      125,
			MonthTotalMSFP7:      120,
			MonthTotalAssemblyP2: 1600,
			MonthTotalAssemblyP7: 1550,
		},
	}
	p := PointFromDaily(rec)

	if p.Date != "2025-06-01" {
		t.Fatalf("Date = %s", p.Date)
	}
	// The chart carries month-to-date downtime, not the per-day figure.
	if p.MSFP2 != 125 || p.MSFP7 != 120 || p.AssemblyP2 != 1600 || p.AssemblyP7 != 1550 {
		t.Fatalf("downtime columns wrong: %+v", p)
	}
	if p.AutoCrimpAvg != 6500 || p.ProductivityValue != 88 || p.ScheduleAverage != 40 {
		t.Fatalf("value columns wrong: %+v", p)
	}
}

func TestDeriveOnFirstOfMonth(t *testing.T) {
	cases := []struct {
		dayKey string
		exists bool
		want   bool
	}{
		{"2025-06-01", false, true},
		{"2025-06-15", false, false},
		{"2025-06-15", true, true},
		{"2025-06-01", true, true},
	}
	for _, tc := range cases {
		if got := DeriveOnFirstOfMonth(tc.dayKey, tc.exists); got != tc.want {
			t.Fatalf("DeriveOnFirstOfMonth(%s, %v) = %v, want %v", tc.dayKey, tc.exists, got, tc.want)
		}
	}
}

func TestSeriesFromRecords(t *testing.T) {
	recs := []ingestion.Record{
		{"date": "2025-03-01", "lv_production_value": 300.0},
		{"date": "2025-01-01", "lv_production_value": 100.0},
		{"date": "2025-03-01", "lv_production_value": 350.0},
		{"date": "2025-02-01", "lv_production_value": 200.0},
	}
	points := SeriesFromRecords(recs)

	if len(points) != 3 {
		t.Fatalf("len = %d, want 3 after dedupe", len(points))
	}
	for i, want := range []string{"2025-01-01", "2025-02-01", "2025-03-01"} {
		if points[i].Date != want {
			t.Fatalf("points[%d].Date = %s, want %s", i, points[i].Date, want)
		}
	}
	// Last duplicate wins.
	if points[2].LVProductionValue != 350 {
		t.Fatalf("duplicate resolution: got %v, want 350", points[2].LVProductionValue)
	}

	if got := SeriesFromRecords(nil); len(got) != 0 {
		t.Fatalf("empty input should yield empty series, got %d", len(got))
	}
}

func TestCustomerEntriesFromRecords(t *testing.T) {
	recs := []ingestion.Record{
		{"customer_name": "Acme Wiring", "overall_output": 5000.0, "percentage_input": 95.0},
		{"customer_name": "Globex", "overall_output": 3000.0},
		{"customer_name": "ACME WIRING", "overall_output": 1.0, "percentage_input": 1.0},
	}
	entries := CustomerEntriesFromRecords("2025-06", recs)

	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2 after case-insensitive dedupe", len(entries))
	}
	if entries[0].CustomerName != "Acme Wiring" || entries[0].Position != 0 {
		t.Fatalf("first entry: %+v", entries[0])
	}
	if entries[0].PercentageInput == nil || *entries[0].PercentageInput != 95 {
		t.Fatalf("percentage not carried: %+v", entries[0].PercentageInput)
	}
	// No percentage column in the row means nil, not zero.
	if entries[1].PercentageInput != nil {
		t.Fatalf("absent percentage should be nil: %+v", entries[1].PercentageInput)
	}
	if entries[1].MonthKey != "2025-06" || entries[1].Position != 1 {
		t.Fatalf("second entry: %+v", entries[1])
	}
}
