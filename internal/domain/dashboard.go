package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyValues holds the headline figures shown at the top of the dashboard.
type DailyValues struct {
	LVProductionValue float64 `json:"lv_production_value"`
	ProductivityValue float64 `json:"productivity_value"`
	ScheduleAverage   float64 `json:"schedule_average"`
}

// MonthlyTotals holds month-to-date output per machine type.
type MonthlyTotals struct {
	AutoCrimpOutput float64 `json:"auto_crimp_output"`
	SemiCrimpOutput float64 `json:"semi_crimp_output"`
	SolderingOutput float64 `json:"soldering_output"`
}

// ShiftOutputs holds one machine type's output per shift letter.
type ShiftOutputs struct {
	ShiftA float64 `json:"shift_a"`
	ShiftB float64 `json:"shift_b"`
	ShiftC float64 `json:"shift_c"`
}

type ShiftBreakdown struct {
	AutoCrimp ShiftOutputs `json:"auto_crimp"`
	SemiCrimp ShiftOutputs `json:"semi_crimp"`
	Soldering ShiftOutputs `json:"soldering"`
}

// CutsAverages holds the per-machine average cut rates as reported by the
// plant. Display-side averages are recomputed from ShiftBreakdown instead of
// read from here; these stay raw inputs.
type CutsAverages struct {
	AutoCrimpAverage float64 `json:"auto_crimp_average"`
	SemiCrimpAverage float64 `json:"semi_crimp_average"`
	SolderingAverage float64 `json:"soldering_average"`
}

// BreakdownTime holds downtime hours per plant, daily and month-to-date.
type BreakdownTime struct {
	MSFPlant2      float64 `json:"msf_plant_2"`
	MSFPlant7      float64 `json:"msf_plant_7"`
	AssemblyPlant2 float64 `json:"assembly_plant_2"`
	AssemblyPlant7 float64 `json:"assembly_plant_7"`

	MonthTotalMSFP2      float64 `json:"m_total_msf_p2"`
	MonthTotalMSFP7      float64 `json:"m_total_msf_p7"`
	MonthTotalAssemblyP2 float64 `json:"m_total_assembly_p2"`
	MonthTotalAssemblyP7 float64 `json:"m_total_assembly_p7"`
}

// DailyRecord is the stored per-day production snapshot, addressed by its
// day PeriodKey. Sections are stored as JSONB; only raw inputs are
// persisted, derived figures are recomputed on read.
type DailyRecord struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PeriodKey string         `gorm:"size:10;not null;uniqueIndex" json:"period_key"`
	Values    DailyValues    `gorm:"type:jsonb;serializer:json;column:daily_values" json:"daily_values"`
	Totals    MonthlyTotals  `gorm:"type:jsonb;serializer:json;column:monthly_totals" json:"monthly_totals"`
	Shifts    ShiftBreakdown `gorm:"type:jsonb;serializer:json;column:shift_breakdown" json:"shift_breakdown"`
	Cuts      CutsAverages   `gorm:"type:jsonb;serializer:json;column:cuts_averages" json:"cuts_averages"`
	Downtime  BreakdownTime  `gorm:"type:jsonb;serializer:json;column:breakdown_time" json:"breakdown_time"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
}

func (DailyRecord) TableName() string { return "daily_record" }
