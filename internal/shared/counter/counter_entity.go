package counter

import "time"

// Counter backs the auto-generated employee IDs (EMP-000001, ...). One row
// per counter type, bumped atomically by GetNextValue.
type Counter struct {
	CounterType string    `gorm:"column:counter_type;type:varchar(50);primaryKey"`
	LastValue   int64     `gorm:"column:last_value;type:bigint;not null;default:0"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Counter) TableName() string {
	return "counters"
}
