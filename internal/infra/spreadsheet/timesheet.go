// Package spreadsheet reads and writes the xlsx files exchanged with the office.
package spreadsheet

import (
	"io"
	"time"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	timesheetSheet       = "Табель"
	timesheetNameHeader  = "Исполнитель"
	timesheetTotalHeader = "Итого, мин"
)

type timesheetExporter struct{}

// NewTimesheetExporter creates an xlsx timesheet exporter.
func NewTimesheetExporter() service.TimesheetExporter {
	return &timesheetExporter{}
}

// ExportMonth writes one row per executor with a column per day of month and
// a total column. Cells hold worked minutes; days without a record stay empty.
// Executors that only appear in records are appended after the given ones.
func (e *timesheetExporter) ExportMonth(w io.Writer, month time.Time, executors []entity.Executor, records []entity.WorkTime) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), timesheetSheet); err != nil {
		return errors.WithStack(err)
	}

	year, mon, _ := month.Date()
	days := time.Date(year, mon+1, 0, 0, 0, 0, 0, time.UTC).Day()

	header := make([]any, 0, days+2)
	header = append(header, timesheetNameHeader)
	for day := 1; day <= days; day++ {
		header = append(header, day)
	}
	header = append(header, timesheetTotalHeader)
	if err := f.SetSheetRow(timesheetSheet, "A1", &header); err != nil {
		return errors.WithStack(err)
	}

	type sheetRow struct {
		name    string
		minutes []int
		total   int
	}

	order := make([]int, 0, len(executors))
	rows := make(map[int]*sheetRow, len(executors))
	for i := range executors {
		id := executors[i].ExecID
		if _, ok := rows[id]; ok {
			continue
		}
		order = append(order, id)
		rows[id] = &sheetRow{name: executors[i].DisplayName(), minutes: make([]int, days)}
	}

	for _, rec := range records {
		ry, rm, rd := rec.WorkDate.Date()
		if ry != year || rm != mon {
			continue
		}
		row, ok := rows[rec.ExecID]
		if !ok {
			name := rec.Surname
			if rec.Name != nil {
				name = entity.JoinNonEmpty(" ", rec.Surname, *rec.Name)
			}
			row = &sheetRow{name: name, minutes: make([]int, days)}
			rows[rec.ExecID] = row
			order = append(order, rec.ExecID)
		}
		row.minutes[rd-1] += rec.WorkMinutes
		row.total += rec.WorkMinutes
	}

	for i, id := range order {
		row := rows[id]
		values := make([]any, 0, days+2)
		values = append(values, row.name)
		for _, m := range row.minutes {
			if m == 0 {
				values = append(values, nil)

				continue
			}
			values = append(values, m)
		}
		values = append(values, row.total)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := f.SetSheetRow(timesheetSheet, cell, &values); err != nil {
			return errors.WithStack(err)
		}
	}

	if err := styleHeader(f, timesheetSheet, days+2); err != nil {
		return err
	}
	if err := f.SetColWidth(timesheetSheet, "A", "A", 28); err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(f.Write(w), "failed to write timesheet")
}

func styleHeader(f *excelize.File, sheet string, columns int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.WithStack(err)
	}

	last, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(f.SetCellStyle(sheet, "A1", last, style))
}
