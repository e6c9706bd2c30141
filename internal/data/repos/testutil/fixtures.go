package testutil

import (
	"github.com/google/uuid"

	"github.com/lineboard/lineboard-backend/internal/domain"
)

func NewDailyRecord(periodKey string) *domain.DailyRecord {
	return &domain.DailyRecord{
		ID:        uuid.New(),
		PeriodKey: periodKey,
		Values: domain.DailyValues{
			LVProductionValue: 1250.5,
			ProductivityValue: 88,
			ScheduleAverage:   40,
		},
		Totals: domain.MonthlyTotals{
			AutoCrimpOutput: 50000,
			SemiCrimpOutput: 30000,
			SolderingOutput: 20000,
		},
		Shifts: domain.ShiftBreakdown{
			AutoCrimp: domain.ShiftOutputs{ShiftA: 7000, ShiftB: 6500, ShiftC: 6000},
			SemiCrimp: domain.ShiftOutputs{ShiftA: 4000, ShiftB: 3500, ShiftC: 3000},
			Soldering: domain.ShiftOutputs{ShiftA: 2000, ShiftB: 1800, ShiftC: 1500},
		},
		Cuts: domain.CutsAverages{
			AutoCrimpAverage: 6500,
			SemiCrimpAverage: 3500,
			SolderingAverage: 1700,
		},
		Downtime: domain.BreakdownTime{
			MSFPlant2:      2.5,
			MSFPlant7:      1.0,
			AssemblyPlant2: 0.5,
			AssemblyPlant7: 0.25,
		},
	}
}

func NewTrendPoint(date string) *domain.TrendPoint {
	return &domain.TrendPoint{
		ID:                uuid.New(),
		Date:              date,
		LVProductionValue: 1200,
		MSFP2:             75,
		MSFP7:             60,
		AssemblyP2:        40,
		AssemblyP7:        30,
		AutoCrimpAvg:      6400,
		SemiCrimpAvg:      3400,
		SolderingAvg:      1600,
		ProductivityValue: 85,
		ScheduleAverage:   38,
	}
}

func NewCustomerEntry(monthKey, name string, position int) *domain.CustomerTrendEntry {
	pct := 42.5
	return &domain.CustomerTrendEntry{
		ID:              uuid.New(),
		MonthKey:        monthKey,
		CustomerName:    name,
		OverallOutput:   5000,
		PercentageInput: &pct,
		Position:        position,
	}
}

func NewNote(monthKey, text string) *domain.Note {
	return &domain.Note{
		ID:       uuid.New(),
		MonthKey: monthKey,
		Text:     text,
	}
}
