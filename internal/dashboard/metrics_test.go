package dashboard

import (
	"testing"

	"github.com/lineboard/lineboard-backend/internal/domain"
)

func TestMachineAverage(t *testing.T) {
	cases := []struct {
		name   string
		shifts domain.ShiftOutputs
		want   float64
	}{
		{"three shifts", domain.ShiftOutputs{ShiftA: 20000, ShiftB: 15000, ShiftC: 15000}, 16666.67},
		{"idle shift counts as zero", domain.ShiftOutputs{ShiftA: 3000, ShiftB: 3000}, 2000},
		{"all idle", domain.ShiftOutputs{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MachineAverage(tc.shifts); got != tc.want {
				t.Fatalf("MachineAverage = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScheduleMeter(t *testing.T) {
	pct := func(v float64) *float64 { return &v }
	entry := func(p *float64) *domain.CustomerTrendEntry {
		return &domain.CustomerTrendEntry{PercentageInput: p}
	}

	cases := []struct {
		name    string
		entries []*domain.CustomerTrendEntry
		want    float64
	}{
		{"plain mean", []*domain.CustomerTrendEntry{entry(pct(30)), entry(pct(50))}, 40},
		{"nil percentages excluded", []*domain.CustomerTrendEntry{entry(pct(30)), entry(nil), entry(pct(50))}, 40},
		{"negative excluded", []*domain.CustomerTrendEntry{entry(pct(30)), entry(pct(-10)), entry(pct(50))}, 40},
		{"zero counts", []*domain.CustomerTrendEntry{entry(pct(0)), entry(pct(50))}, 25},
		{"nothing usable", []*domain.CustomerTrendEntry{entry(nil)}, 0},
		{"empty", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScheduleMeter(tc.entries); got != tc.want {
				t.Fatalf("ScheduleMeter = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestComputeDerived(t *testing.T) {
	rec := &domain.DailyRecord{
		Shifts: domain.ShiftBreakdown{
			AutoCrimp: domain.ShiftOutputs{ShiftA: 20000, ShiftB: 15000, ShiftC: 15000},
			SemiCrimp: domain.ShiftOutputs{ShiftA: 3000, ShiftB: 3000, ShiftC: 3000},
		},
	}
	pct := 40.0
	d := ComputeDerived(rec, []*domain.CustomerTrendEntry{{PercentageInput: &pct}})

	if d.MachineAverages.AutoCrimp != 16666.67 {
		t.Fatalf("AutoCrimp avg = %v, want 16666.67", d.MachineAverages.AutoCrimp)
	}
	if d.MachineAverages.SemiCrimp != 3000 {
		t.Fatalf("SemiCrimp avg = %v, want 3000", d.MachineAverages.SemiCrimp)
	}
	if d.MachineAverages.Soldering != 0 {
		t.Fatalf("Soldering avg = %v, want 0", d.MachineAverages.Soldering)
	}
	if d.ScheduleMeter != 40 {
		t.Fatalf("ScheduleMeter = %v, want 40", d.ScheduleMeter)
	}

	// A missing record still yields a usable derived block.
	d = ComputeDerived(nil, nil)
	if d.MachineAverages != (MachineAverages{}) || d.ScheduleMeter != 0 {
		t.Fatalf("derived for missing record should be zero: %+v", d)
	}
}
