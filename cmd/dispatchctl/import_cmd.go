package main

import (
	"bytes"
	"log/slog"
	"time"

	"dispatch/internal/domain/service"
	"dispatch/internal/usecase"
	"dispatch/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type importOutput struct {
	File       string `json:"file"`
	Checksum   string `json:"checksum"`
	Parsed     int    `json:"parsed"`
	DryRun     bool   `json:"dry_run"`
	DurationMS int64  `json:"duration_ms"`
	usecase.ImportResult
}

func newImportSubscribersCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import-subscribers <file.xlsx>",
		Short: "Upsert subscribers from a spreadsheet",
		Long: "Reads the first sheet. The header row names the columns: contract, surname, name, " +
			"patronymic, city, district, street, house, latitude, longitude, address, status.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := util.ReadFileSummary(args[0])
			if err != nil {
				return err
			}

			var (
				importer     service.SubscriberImporter
				subscriberUC usecase.SubscriberUsecase
				logger       *slog.Logger
			)

			return runWith(cmd.Context(), func() error {
				start := time.Now()
				logger.Info("Importing subscribers", slog.String("file", file.String()))

				subscribers, rejected, err := importer.ParseSubscribers(bytes.NewReader(file.Data))
				if err != nil {
					return errors.Wrap(err, "failed to parse spreadsheet")
				}

				out := importOutput{
					File:         file.Path,
					Checksum:     file.Checksum,
					Parsed:       len(subscribers),
					DryRun:       dryRun,
					ImportResult: usecase.ImportResult{Rejected: rejected},
				}

				if !dryRun && len(subscribers) > 0 {
					written, err := subscriberUC.Import(cmd.Context(), subscribers)
					if err != nil {
						return err
					}
					out.Written = written
				}

				out.DurationMS = time.Since(start).Milliseconds()
				logger.Info("Import finished",
					slog.Int("parsed", out.Parsed),
					slog.Int("written", out.Written),
					slog.Int("rejected", len(rejected)),
					slog.String("took", util.FormatDuration(time.Since(start))),
				)

				return writeJSON(out)
			}, &importer, &subscriberUC, &logger)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and validate only, do not write")

	return cmd
}
