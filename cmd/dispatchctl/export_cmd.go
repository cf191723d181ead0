package main

import (
	"fmt"
	"os"
	"time"

	"dispatch/internal/usecase"
	"dispatch/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newExportTimesheetCmd() *cobra.Command {
	var (
		month string
		out   string
	)

	cmd := &cobra.Command{
		Use:   "export-timesheet",
		Short: "Write the monthly timesheet as xlsx",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := time.Parse("2006-01", month)
			if err != nil {
				return errors.Errorf("invalid --month %q, want YYYY-MM", month)
			}
			if out == "" {
				out = fmt.Sprintf("timesheet-%s.xlsx", m.Format("2006-01"))
			}

			var workTimeUC usecase.WorkTimeUsecase

			return runWith(cmd.Context(), func() error {
				f, err := os.Create(out)
				if err != nil {
					return errors.Wrap(err, "failed to create output file")
				}
				defer f.Close()

				if err := workTimeUC.ExportMonth(cmd.Context(), m, f); err != nil {
					return err
				}

				info, err := f.Stat()
				if err != nil {
					return errors.Wrap(err, "failed to stat output file")
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", out, util.FormatBytes(info.Size()))

				return err
			}, &workTimeUC)
		},
	}

	cmd.Flags().StringVar(&month, "month", time.Now().Format("2006-01"), "Month to export (YYYY-MM)")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default timesheet-<month>.xlsx)")

	return cmd
}
