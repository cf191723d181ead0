// Package entity contains the core business objects of the project.
package entity

import "time"

// WorkTime is the number of minutes an executor worked on a calendar date.
// Surname and Name are denormalized from the executor for timesheet views.
type WorkTime struct {
	ID          int       `json:"id"`
	ExecID      int       `json:"exec_id"`
	Surname     string    `json:"surname"`
	Name        *string   `json:"name"`
	WorkDate    time.Time `json:"work_date"`
	WorkMinutes int       `json:"work_minutes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
