package domain

import (
	"time"

	"github.com/google/uuid"
)

// TrendPoint is one monthly entry in the long-range chart series. Date is a
// first-of-month day key; the series is unique and ascending by date.
type TrendPoint struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date string    `gorm:"size:10;not null;uniqueIndex" json:"date"`

	LVProductionValue float64 `json:"lv_production_value"`

	MSFP2      float64 `gorm:"column:msf_p2" json:"msf_p2"`
	MSFP7      float64 `gorm:"column:msf_p7" json:"msf_p7"`
	AssemblyP2 float64 `gorm:"column:assembly_p2" json:"assembly_p2"`
	AssemblyP7 float64 `gorm:"column:assembly_p7" json:"assembly_p7"`

	AutoCrimpAvg float64 `json:"auto_crimp_avg"`
	SemiCrimpAvg float64 `json:"semi_crimp_avg"`
	SolderingAvg float64 `json:"soldering_avg"`

	ProductivityValue float64 `json:"productivity_value"`
	ScheduleAverage   float64 `json:"schedule_average"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (TrendPoint) TableName() string { return "trend_point" }

// CustomerTrendEntry is one customer's share of a month's production.
// CustomerName is unique within a month (matched case-insensitively on
// replace). PercentageInput is nil when the upload carried no parseable
// percentage for the row; nil entries are excluded from the schedule meter.
type CustomerTrendEntry struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MonthKey        string    `gorm:"size:7;not null;index:idx_customer_trend_month_name,unique" json:"month_key"`
	CustomerName    string    `gorm:"size:255;not null;index:idx_customer_trend_month_name,unique" json:"customer_name"`
	OverallOutput   float64   `json:"overall_output"`
	PercentageInput *float64  `json:"percentage_input"`
	Position        int       `gorm:"not null;default:0" json:"position"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

func (CustomerTrendEntry) TableName() string { return "customer_trend_entry" }
