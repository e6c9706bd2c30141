// Package dashboard holds the reconciliation core: merging normalized
// uploads into stored records, recomputing derived figures, and maintaining
// the monthly trend series. Everything here is pure; persistence stays in
// the repos.
package dashboard

import (
	"github.com/lineboard/lineboard-backend/internal/domain"
	"github.com/lineboard/lineboard-backend/internal/ingestion"
)

// MergeDaily folds a normalized daily upload into the existing record's
// sections. Fields present in the upload overwrite, including explicit
// zeros; fields the upload never mentioned keep their stored value, so a
// partial spreadsheet cannot blank out the rest of the day.
func MergeDaily(existing *domain.DailyRecord, rec ingestion.Record) domain.DailyRecord {
	out := domain.DailyRecord{}
	if existing != nil {
		out = *existing
	}

	setNum := func(dst *float64, field string) {
		if v, ok := rec.NumberOK(field); ok {
			*dst = v
		}
	}

	setNum(&out.Values.LVProductionValue, "lv_production_value")
	setNum(&out.Values.ProductivityValue, "productivity_value")
	setNum(&out.Values.ScheduleAverage, "schedule_average")

	setNum(&out.Totals.AutoCrimpOutput, "auto_crimp_output")
	setNum(&out.Totals.SemiCrimpOutput, "semi_crimp_output")
	setNum(&out.Totals.SolderingOutput, "soldering_output")

	setNum(&out.Shifts.AutoCrimp.ShiftA, "auto_crimp_shift_a")
	setNum(&out.Shifts.AutoCrimp.ShiftB, "auto_crimp_shift_b")
	setNum(&out.Shifts.AutoCrimp.ShiftC, "auto_crimp_shift_c")
	setNum(&out.Shifts.SemiCrimp.ShiftA, "semi_crimp_shift_a")
	setNum(&out.Shifts.SemiCrimp.ShiftB, "semi_crimp_shift_b")
	setNum(&out.Shifts.SemiCrimp.ShiftC, "semi_crimp_shift_c")
	setNum(&out.Shifts.Soldering.ShiftA, "soldering_shift_a")
	setNum(&out.Shifts.Soldering.ShiftB, "soldering_shift_b")
	setNum(&out.Shifts.Soldering.ShiftC, "soldering_shift_c")

	setNum(&out.Cuts.AutoCrimpAverage, "auto_crimp_average")
	setNum(&out.Cuts.SemiCrimpAverage, "semi_crimp_average")
	setNum(&out.Cuts.SolderingAverage, "soldering_average")

	setNum(&out.Downtime.MSFPlant2, "msf_plant_2")
	setNum(&out.Downtime.MSFPlant7, "msf_plant_7")
	setNum(&out.Downtime.AssemblyPlant2, "assembly_plant_2")
	setNum(&out.Downtime.AssemblyPlant7, "assembly_plant_7")
	setNum(&out.Downtime.MonthTotalMSFP2, "m_total_msf_p2")
	setNum(&out.Downtime.MonthTotalMSFP7, "m_total_msf_p7")
	setNum(&out.Downtime.MonthTotalAssemblyP2, "m_total_assembly_p2")
	setNum(&out.Downtime.MonthTotalAssemblyP7, "m_total_assembly_p7")

	return out
}

// MergeSections folds an explicit section payload over the stored record.
// Sections present in the patch replace wholesale; nil sections keep the
// stored values. Used by the structured PUT path where the client sends
// whole sections rather than spreadsheet columns.
type SectionPatch struct {
	Values   *domain.DailyValues    `json:"daily_values"`
	Totals   *domain.MonthlyTotals  `json:"monthly_totals"`
	Shifts   *domain.ShiftBreakdown `json:"shift_breakdown"`
	Cuts     *domain.CutsAverages   `json:"cuts_averages"`
	Downtime *domain.BreakdownTime  `json:"breakdown_time"`
}

func MergeSections(existing *domain.DailyRecord, patch SectionPatch) domain.DailyRecord {
	out := domain.DailyRecord{}
	if existing != nil {
		out = *existing
	}
	if patch.Values != nil {
		out.Values = *patch.Values
	}
	if patch.Totals != nil {
		out.Totals = *patch.Totals
	}
	if patch.Shifts != nil {
		out.Shifts = *patch.Shifts
	}
	if patch.Cuts != nil {
		out.Cuts = *patch.Cuts
	}
	if patch.Downtime != nil {
		out.Downtime = *patch.Downtime
	}
	return out
}
