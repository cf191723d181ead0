package service

import (
	"io"
	"time"

	"dispatch/internal/domain/entity"
)

// TimesheetExporter renders a month of work time records as a spreadsheet.
type TimesheetExporter interface {
	ExportMonth(w io.Writer, month time.Time, executors []entity.Executor, records []entity.WorkTime) error
}

// SubscriberImporter reads subscribers from a spreadsheet. Rows that cannot be
// parsed are reported by their 1-based row number.
type SubscriberImporter interface {
	ParseSubscribers(r io.Reader) (subscribers []entity.Subscriber, rejected []ImportRowError, err error)
}

// ImportRowError describes a spreadsheet row that was skipped.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}
