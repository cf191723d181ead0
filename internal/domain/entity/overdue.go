// Package entity contains the core business objects of the project.
package entity

// ExecutorOverdue is the part of a task's overdue time during which an executor was assigned.
type ExecutorOverdue struct {
	ExecID                 int     `json:"exec_id"`
	Surname                *string `json:"surname"`
	OverdueAssignedSeconds float64 `json:"overdue_assigned_seconds"`
}

// TaskOverdue summarizes how late a task finished (or still is).
type TaskOverdue struct {
	TaskID              int               `json:"task_id"`
	AddressRaw          string            `json:"address_raw"`
	TotalOverdueSeconds float64           `json:"total_overdue_seconds"`
	Executors           []ExecutorOverdue `json:"executors"`
}
