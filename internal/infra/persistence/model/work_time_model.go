package model

import "time"

// WorkTimeModel is the GORM-specific struct for the 'executor_work_times' table.
type WorkTimeModel struct {
	ID          int       `gorm:"primaryKey;autoIncrement"`
	ExecID      int       `gorm:"not null;uniqueIndex:uq_work_times_exec_date"`
	WorkDate    time.Time `gorm:"type:date;not null;uniqueIndex:uq_work_times_exec_date"`
	WorkMinutes int       `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkTimeModel) TableName() string {
	return "executor_work_times"
}

// WorkTimeRow is a work time record joined with its executor.
type WorkTimeRow struct {
	WorkTimeModel
	Surname string
	Name    *string
}
