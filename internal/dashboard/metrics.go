package dashboard

import (
	"math"

	"github.com/lineboard/lineboard-backend/internal/domain"
)

// MachineAverages is the derived per-machine block shown on the dashboard.
// It is computed from shift outputs on every read and never stored.
type MachineAverages struct {
	AutoCrimp float64 `json:"auto_crimp"`
	SemiCrimp float64 `json:"semi_crimp"`
	Soldering float64 `json:"soldering"`
}

// Derived is the block of recomputed figures attached to a record on read.
type Derived struct {
	MachineAverages MachineAverages `json:"machine_averages"`
	ScheduleMeter   float64         `json:"schedule_meter"`
}

// MachineAverage is the flat per-machine shift average: the three shift
// outputs divided by three, whether or not a shift ran. An idle shift
// reads as zero output, which is what the plant wants the meter to show.
func MachineAverage(s domain.ShiftOutputs) float64 {
	return round2((s.ShiftA + s.ShiftB + s.ShiftC) / 3)
}

// ScheduleMeter averages the customer percentage inputs for a month.
// Entries with no parseable percentage and negative percentages are left
// out of both the sum and the count; with nothing usable it reads zero.
func ScheduleMeter(entries []*domain.CustomerTrendEntry) float64 {
	var sum float64
	var n int
	for _, e := range entries {
		if e.PercentageInput == nil || *e.PercentageInput < 0 {
			continue
		}
		sum += *e.PercentageInput
		n++
	}
	if n == 0 {
		return 0
	}
	return round2(sum / float64(n))
}

// ComputeDerived builds the full derived block for a record and its month's
// customer entries.
func ComputeDerived(rec *domain.DailyRecord, entries []*domain.CustomerTrendEntry) Derived {
	d := Derived{ScheduleMeter: ScheduleMeter(entries)}
	if rec != nil {
		d.MachineAverages = MachineAverages{
			AutoCrimp: MachineAverage(rec.Shifts.AutoCrimp),
			SemiCrimp: MachineAverage(rec.Shifts.SemiCrimp),
			Soldering: MachineAverage(rec.Shifts.Soldering),
		}
	}
	return d
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
