package dashboard

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/lineboard/lineboard-backend/internal/domain"
	"github.com/lineboard/lineboard-backend/internal/ingestion"
)

// PointFromDaily projects a saved daily record onto its chart point. The
// chart plots month-to-date downtime totals, so the m_total fields feed the
// plant columns, not the per-day downtime.
func PointFromDaily(rec *domain.DailyRecord) *domain.TrendPoint {
	return &domain.TrendPoint{
		ID:                uuid.New(),
		Date:              rec.PeriodKey,
		LVProductionValue: rec.Values.LVProductionValue,
		MSFP2:             rec.Downtime.MonthTotalMSFP2,
		MSFP7:             rec.Downtime.MonthTotalMSFP7,
		AssemblyP2:        rec.Downtime.MonthTotalAssemblyP2,
		AssemblyP7:        rec.Downtime.MonthTotalAssemblyP7,
		AutoCrimpAvg:      rec.Cuts.AutoCrimpAverage,
		SemiCrimpAvg:      rec.Cuts.SemiCrimpAverage,
		SolderingAvg:      rec.Cuts.SolderingAverage,
		ProductivityValue: rec.Values.ProductivityValue,
		ScheduleAverage:   rec.Values.ScheduleAverage,
	}
}

// DeriveOnFirstOfMonth decides whether a daily save should write its chart
// point. A point already on the chart for that date is always refreshed;
// a new point is only added when the day is the first of its month, which
// keeps the series monthly.
func DeriveOnFirstOfMonth(dayKey string, exists bool) bool {
	return exists || domain.IsFirstOfMonth(dayKey)
}

// PointFromRecord maps a normalized series upload row onto a chart point.
// The row is assumed to have passed NormalizeRows, so date is present.
func PointFromRecord(rec ingestion.Record) *domain.TrendPoint {
	return &domain.TrendPoint{
		ID:                uuid.New(),
		Date:              rec.Text("date"),
		LVProductionValue: rec.Number("lv_production_value"),
		MSFP2:             rec.Number("msf_p2"),
		MSFP7:             rec.Number("msf_p7"),
		AssemblyP2:        rec.Number("assembly_p2"),
		AssemblyP7:        rec.Number("assembly_p7"),
		AutoCrimpAvg:      rec.Number("auto_crimp_avg"),
		SemiCrimpAvg:      rec.Number("semi_crimp_avg"),
		SolderingAvg:      rec.Number("soldering_avg"),
		ProductivityValue: rec.Number("productivity_value"),
		ScheduleAverage:   rec.Number("schedule_average"),
	}
}

// SeriesFromRecords builds a full replacement series from normalized rows:
// one point per date with the last row for a date winning, sorted ascending.
func SeriesFromRecords(recs []ingestion.Record) []*domain.TrendPoint {
	byDate := make(map[string]*domain.TrendPoint, len(recs))
	for _, rec := range recs {
		p := PointFromRecord(rec)
		byDate[p.Date] = p
	}
	out := make([]*domain.TrendPoint, 0, len(byDate))
	for _, p := range byDate {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// CustomerEntriesFromRecords builds a month's customer breakdown from
// normalized rows. Names are unique case-insensitively with the first
// occurrence winning, and Position preserves upload order.
func CustomerEntriesFromRecords(monthKey string, recs []ingestion.Record) []*domain.CustomerTrendEntry {
	seen := make(map[string]bool, len(recs))
	out := make([]*domain.CustomerTrendEntry, 0, len(recs))
	for _, rec := range recs {
		name := rec.Text("customer_name")
		if name == "" {
			continue
		}
		fold := strings.ToLower(name)
		if seen[fold] {
			continue
		}
		seen[fold] = true

		entry := &domain.CustomerTrendEntry{
			ID:            uuid.New(),
			MonthKey:      monthKey,
			CustomerName:  name,
			OverallOutput: rec.Number("overall_output"),
			Position:      len(out),
		}
		if pct, ok := rec.NumberOK("percentage_input"); ok {
			entry.PercentageInput = &pct
		}
		out = append(out, entry)
	}
	return out
}
