package main

import (
	"context"
	"encoding/json"
	"os"

	"dispatch/config"
	"dispatch/internal/domain/service"
	"dispatch/internal/infra/cache"
	"dispatch/internal/infra/geocode"
	logs "dispatch/internal/infra/log"
	"dispatch/internal/infra/metrics"
	"dispatch/internal/infra/persistence/postgres"
	"dispatch/internal/infra/qrcode"
	"dispatch/internal/infra/spreadsheet"
	"dispatch/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "dispatchctl",
		Short:        "Dispatch administration tools",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newMigrateCmd(),
		newImportSubscribersCmd(),
		newExportTimesheetCmd(),
	)

	return cmd
}

// runWith starts a trimmed application graph, fills targets and runs fn.
// The graph shares constructors with the server so both see the same config.
func runWith(ctx context.Context, fn func() error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			cache.NewRedisClient,
			metrics.New,
			func(m *metrics.Metrics) service.MetricsRecorder { return m },

			postgres.NewTransactionManager,
			postgres.NewSubscriberRepository,
			postgres.NewExecutorRepository,
			postgres.NewWorkTimeRepository,

			geocode.NewGeocoder,
			spreadsheet.NewTimesheetExporter,
			spreadsheet.NewSubscriberImporter,
			func(cfg *config.Config) service.QRCodeService {
				if cfg.QRCode == nil {
					return qrcode.NewQRCodeService(256, "M")
				}

				return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
			},

			impl.NewSubscriberService,
			impl.NewWorkTimeService,
		),
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer func() { _ = app.Stop(context.WithoutCancel(ctx)) }()

	return fn()
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
