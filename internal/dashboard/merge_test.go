package dashboard

import (
	"testing"

	"github.com/lineboard/lineboard-backend/internal/domain"
	"github.com/lineboard/lineboard-backend/internal/ingestion"
)

func TestMergeDaily(t *testing.T) {
	existing := &domain.DailyRecord{
		PeriodKey: "2025-06-15",
		Values:    domain.DailyValues{LVProductionValue: 1000, ProductivityValue: 80, ScheduleAverage: 35},
		Totals:    domain.MonthlyTotals{AutoCrimpOutput: 50000, SemiCrimpOutput: 30000, SolderingOutput: 20000},
	}

	rec := ingestion.Record{
		"lv_production_value": 1250.5,
		"auto_crimp_output":   55000.0,
		"schedule_average":    0.0,
	}
	merged := MergeDaily(existing, rec)

	if merged.Values.LVProductionValue != 1250.5 {
		t.Fatalf("LVProductionValue = %v, want 1250.5", merged.Values.LVProductionValue)
	}
	if merged.Totals.AutoCrimpOutput != 55000 {
		t.Fatalf("AutoCrimpOutput = %v, want 55000", merged.Totals.AutoCrimpOutput)
	}
	// Explicit zero in the upload overwrites.
	if merged.Values.ScheduleAverage != 0 {
		t.Fatalf("ScheduleAverage = %v, want 0", merged.Values.ScheduleAverage)
	}
	// Untouched fields keep their stored values.
	if merged.Values.ProductivityValue != 80 {
		t.Fatalf("ProductivityValue = %v, want 80", merged.Values.ProductivityValue)
	}
	if merged.Totals.SemiCrimpOutput != 30000 {
		t.Fatalf("SemiCrimpOutput = %v, want 30000", merged.Totals.SemiCrimpOutput)
	}

	// Merging the same record twice is a no-op the second time.
	again := MergeDaily(&merged, rec)
	if again != merged {
		t.Fatalf("second merge changed the record: %+v vs %+v", again, merged)
	}
}

func TestMergeDailyFromEmpty(t *testing.T) {
	rec := ingestion.Record{"soldering_shift_b": 1800.0}
	merged := MergeDaily(nil, rec)
	if merged.Shifts.Soldering.ShiftB != 1800 {
		t.Fatalf("Soldering.ShiftB = %v, want 1800", merged.Shifts.Soldering.ShiftB)
	}
	if merged.Values != (domain.DailyValues{}) {
		t.Fatalf("values section should stay zero: %+v", merged.Values)
	}
}

func TestMergeSections(t *testing.T) {
	existing := &domain.DailyRecord{
		Values: domain.DailyValues{LVProductionValue: 1000},
		Cuts:   domain.CutsAverages{AutoCrimpAverage: 6500},
	}
	patch := SectionPatch{
		Values: &domain.DailyValues{LVProductionValue: 2000, ProductivityValue: 90},
	}
	merged := MergeSections(existing, patch)

	if merged.Values.LVProductionValue != 2000 || merged.Values.ProductivityValue != 90 {
		t.Fatalf("values not replaced: %+v", merged.Values)
	}
	if merged.Cuts.AutoCrimpAverage != 6500 {
		t.Fatalf("nil section should keep stored values: %+v", merged.Cuts)
	}
}
