// Package entity contains the core business objects of the project.
package entity

import "time"

// TaskPriority orders tasks for dispatch: A is the most urgent.
type TaskPriority string

const (
	PriorityA TaskPriority = "A"
	PriorityB TaskPriority = "B"
	PriorityC TaskPriority = "C"
)

// IsValid checks if the priority is a known value.
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityA, PriorityB, PriorityC:
		return true
	default:
		return false
	}
}

// TaskType is the kind of field work a task represents.
type TaskType string

const (
	TaskTypeConnection TaskType = "connection"
	TaskTypeService    TaskType = "service"
	TaskTypeIncident   TaskType = "incident"
)

// IsValid checks if the task type is a known value.
func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeConnection, TaskTypeService, TaskTypeIncident:
		return true
	default:
		return false
	}
}

// TaskStatus tracks a task from planning to completion.
type TaskStatus string

const (
	TaskScheduled  TaskStatus = "scheduled"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
	TaskCancelled  TaskStatus = "cancelled"
)

// IsValid checks if the status is a known value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskScheduled, TaskInProgress, TaskDone, TaskCancelled:
		return true
	default:
		return false
	}
}

// Task is a unit of field work at an address, assigned to zero or more executors.
type Task struct {
	TaskID           int          `json:"task_id"`
	AddressRaw       string       `json:"address_raw"`
	Latitude         float64      `json:"latitude"`
	Longitude        float64      `json:"longitude"`
	ServiceMinutes   int          `json:"service_minutes"`
	PlannedStart     time.Time    `json:"planned_start"`
	DueDatetime      time.Time    `json:"due_datetime"`
	Movable          bool         `json:"movable"`
	Priority         TaskPriority `json:"priority"`
	Type             TaskType     `json:"type"`
	Status           TaskStatus   `json:"status"`
	Notes            *string      `json:"notes"`
	ContractNumber   *string      `json:"contract_number"`
	ActualStart      *time.Time   `json:"actual_start"`
	ActualEnd        *time.Time   `json:"actual_end"`
	DetectedStart    *time.Time   `json:"detected_start"`
	DetectedEnd      *time.Time   `json:"detected_end"`
	DetectConfidence *int         `json:"detect_confidence"`
	LastModifiedBy   *int         `json:"last_modified_by"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
	Executors        []Executor   `json:"executors"`
}

// ExecutorIDs returns the ids of the assigned executors in assignment order.
func (t *Task) ExecutorIDs() []int {
	ids := make([]int, 0, len(t.Executors))
	for _, e := range t.Executors {
		ids = append(ids, e.ExecID)
	}

	return ids
}

// TaskAssignment is a current link between a task and an executor.
type TaskAssignment struct {
	TaskID     int       `json:"task_id"`
	ExecID     int       `json:"exec_id"`
	AssignedAt time.Time `json:"assigned_at"`
}

// TaskAssignmentHistory is an archived assignment that was removed at RemovedAt.
type TaskAssignmentHistory struct {
	HistoryID  int       `json:"history_id"`
	TaskID     int       `json:"task_id"`
	ExecID     int       `json:"exec_id"`
	AssignedAt time.Time `json:"assigned_at"`
	RemovedAt  time.Time `json:"removed_at"`
}
