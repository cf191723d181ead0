package service

import (
	"context"
	"time"
)

// TaskEventType names what happened to a task.
type TaskEventType string

const (
	TaskEventCreated          TaskEventType = "task.created"
	TaskEventUpdated          TaskEventType = "task.updated"
	TaskEventDeleted          TaskEventType = "task.deleted"
	TaskEventExecutorAssigned TaskEventType = "task.executor_assigned"
	TaskEventExecutorRemoved  TaskEventType = "task.executor_removed"
)

// TaskEvent is emitted after a task mutation is committed.
type TaskEvent struct {
	EventID     string        `json:"event_id"`
	Type        TaskEventType `json:"type"`
	TaskID      int           `json:"task_id"`
	ExecutorIDs []int         `json:"executor_ids,omitempty"`
	ActorID     int           `json:"actor_id,omitempty"`
	RequestID   string        `json:"request_id,omitempty"` // For distributed tracing
	OccurredAt  time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTaskEvent publishes a task event for downstream consumers
	PublishTaskEvent(ctx context.Context, event *TaskEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
