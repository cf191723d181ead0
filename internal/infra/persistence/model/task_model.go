package model

import "time"

// TaskModel is the GORM-specific struct for the 'tasks' table.
type TaskModel struct {
	TaskID           int       `gorm:"primaryKey;autoIncrement"`
	AddressRaw       string    `gorm:"type:text;not null"`
	Lat              float64   `gorm:"column:lat;type:double precision"`
	Lon              float64   `gorm:"column:lon;type:double precision"`
	ServiceMinutes   int       `gorm:"not null;default:0"`
	PlannedStart     time.Time `gorm:"not null;index"`
	DueDatetime      time.Time `gorm:"not null"`
	Movable          bool      `gorm:"not null;default:true"`
	Priority         string    `gorm:"type:varchar(1);not null"`
	Type             string    `gorm:"type:varchar(16);not null"`
	Status           string    `gorm:"type:varchar(16);not null;default:scheduled"`
	Notes            *string   `gorm:"type:text"`
	ContractNumber   *string   `gorm:"type:varchar(64)"`
	ActualStart      *time.Time
	ActualEnd        *time.Time
	DetectedStart    *time.Time
	DetectedEnd      *time.Time
	DetectConfidence *int
	LastModifiedBy   *int
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Subscriber *SubscriberModel `gorm:"foreignKey:ContractNumber;references:ContractNumber;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Modifier   *ExecutorModel   `gorm:"foreignKey:LastModifiedBy;references:ExecID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}

// TaskExecutorModel links a task to a currently assigned executor.
type TaskExecutorModel struct {
	TaskID     int       `gorm:"primaryKey"`
	ExecID     int       `gorm:"primaryKey"`
	AssignedAt time.Time `gorm:"not null"`

	Task     *TaskModel     `gorm:"foreignKey:TaskID;references:TaskID;constraint:OnDelete:CASCADE"`
	Executor *ExecutorModel `gorm:"foreignKey:ExecID;references:ExecID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (TaskExecutorModel) TableName() string {
	return "task_executors"
}

// TaskExecutorHistoryModel is an archived task/executor link.
type TaskExecutorHistoryModel struct {
	ID         int       `gorm:"primaryKey;autoIncrement"`
	TaskID     int       `gorm:"not null;index"`
	ExecID     int       `gorm:"not null"`
	AssignedAt time.Time `gorm:"not null"`
	RemovedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (TaskExecutorHistoryModel) TableName() string {
	return "task_executor_history"
}
