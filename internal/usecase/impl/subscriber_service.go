package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"dispatch/config"
	"dispatch/internal/addrindex"
	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	"dispatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// indexSnapshot is an immutable index tagged with the rebuild that produced it
// and the mutation count observed before its subscribers were loaded.
type indexSnapshot struct {
	index      *addrindex.Index
	generation uint64
	mutation   uint64
}

// subscriberService implements the SubscriberUsecase interface.
type subscriberService struct {
	txManager      repository.TransactionManager
	subscriberRepo repository.SubscriberRepository
	geocoder       service.Geocoder
	qrService      service.QRCodeService
	metrics        service.MetricsRecorder
	indexOptions   []addrindex.Option
	logger         *slog.Logger

	snapshot   atomic.Pointer[indexSnapshot]
	generation atomic.Uint64
	mutations  atomic.Uint64
}

// SubscriberServiceParams holds dependencies for SubscriberService, injected by Fx.
type SubscriberServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	SubscriberRepo repository.SubscriberRepository
	Geocoder       service.Geocoder
	QRService      service.QRCodeService
	Metrics        service.MetricsRecorder
	Config         *config.Config
	Logger         *slog.Logger
}

// NewSubscriberService is the constructor for subscriberService.
func NewSubscriberService(params SubscriberServiceParams) usecase.SubscriberUsecase {
	limit := addrindex.DefaultSuggestionLimit
	if params.Config != nil && params.Config.Search != nil {
		limit = params.Config.Search.SuggestionLimit
	}

	return &subscriberService{
		txManager:      params.TxManager,
		subscriberRepo: params.SubscriberRepo,
		geocoder:       params.Geocoder,
		qrService:      params.QRService,
		metrics:        params.Metrics,
		indexOptions:   []addrindex.Option{addrindex.WithSuggestionLimit(limit)},
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *subscriberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Rebuild reloads every subscriber and publishes a new snapshot unless a
// later rebuild already published one.
func (srv *subscriberService) Rebuild(ctx context.Context) error {
	generation := srv.generation.Add(1)
	mutation := srv.mutations.Load()
	start := time.Now()

	subscribers, err := srv.subscriberRepo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load subscribers for index")
	}

	next := &indexSnapshot{
		index:      addrindex.Build(subscribers, srv.indexOptions...),
		generation: generation,
		mutation:   mutation,
	}

	for {
		current := srv.snapshot.Load()
		if current != nil && current.generation > generation {
			srv.log(ctx).Debug("Discarding outdated index rebuild",
				slog.Uint64("generation", generation),
				slog.Uint64("current", current.generation),
			)

			return nil
		}
		if srv.snapshot.CompareAndSwap(current, next) {
			break
		}
	}

	took := time.Since(start)
	srv.metrics.IndexRebuilt(next.index.Len(), took)
	srv.log(ctx).Debug("Address index rebuilt",
		slog.Int("subscribers", next.index.Len()),
		slog.Uint64("generation", generation),
		slog.Duration("took", took),
	)

	return nil
}

// stale reports whether a mutation committed after the current snapshot
// started loading, or no snapshot exists yet.
func (srv *subscriberService) stale() bool {
	current := srv.snapshot.Load()

	return current == nil || current.mutation < srv.mutations.Load()
}

// index returns the current snapshot, rebuilding it when missing or stale.
func (srv *subscriberService) index(ctx context.Context) (*addrindex.Index, error) {
	if !srv.stale() {
		return srv.snapshot.Load().index, nil
	}

	if err := srv.Rebuild(ctx); err != nil {
		if current := srv.snapshot.Load(); current != nil {
			srv.log(ctx).Warn("Serving stale address index", slog.Any("error", err))

			return current.index, nil
		}

		return nil, err
	}

	return srv.snapshot.Load().index, nil
}

// refresh rebuilds after a committed mutation. A failure leaves the snapshot
// stale so the next read retries.
func (srv *subscriberService) refresh(ctx context.Context) {
	srv.mutations.Add(1)
	if err := srv.Rebuild(context.WithoutCancel(ctx)); err != nil {
		srv.log(ctx).Error("Failed to rebuild address index", slog.Any("error", err))
	}
}

// List returns all subscribers in index order.
func (srv *subscriberService) List(ctx context.Context) ([]entity.Subscriber, error) {
	idx, err := srv.index(ctx)
	if err != nil {
		return nil, err
	}

	return slices.Clone(idx.Subscribers()), nil
}

// Get returns a subscriber by contract number.
func (srv *subscriberService) Get(ctx context.Context, contract string) (*entity.Subscriber, error) {
	subscriber, err := srv.subscriberRepo.FindByContract(ctx, strings.TrimSpace(contract))
	if err != nil {
		return nil, translateError(err, "failed to find subscriber")
	}

	return subscriber, nil
}

// Create registers a subscriber, geocoding its address when coordinates are absent.
func (srv *subscriberService) Create(ctx context.Context, input *usecase.CreateSubscriberInput) (*entity.Subscriber, error) {
	subscriber := &entity.Subscriber{
		ContractNumber: strings.TrimSpace(input.ContractNumber),
		Surname:        strings.TrimSpace(input.Surname),
		Name:           strings.TrimSpace(input.Name),
		Patronymic:     strings.TrimSpace(input.Patronymic),
		City:           strings.TrimSpace(input.City),
		District:       strings.TrimSpace(input.District),
		Street:         strings.TrimSpace(input.Street),
		House:          strings.TrimSpace(input.House),
		Status:         input.Status,
	}
	if subscriber.Status == "" {
		subscriber.Status = entity.SubscriberActive
	}
	if input.GeocodedAddress != nil {
		subscriber.GeocodedAddress = strings.TrimSpace(*input.GeocodedAddress)
	}

	if err := validateSubscriber(subscriber); err != nil {
		return nil, err
	}

	if input.Latitude != nil && input.Longitude != nil {
		subscriber.Latitude = *input.Latitude
		subscriber.Longitude = *input.Longitude
	} else if err := srv.applyGeocode(ctx, subscriber, input.GeocodedAddress == nil); err != nil {
		return nil, err
	}

	if err := srv.subscriberRepo.Create(ctx, subscriber); err != nil {
		return nil, translateError(err, "failed to create subscriber")
	}

	srv.log(ctx).Info("Subscriber created", slog.String("contract", subscriber.ContractNumber))
	srv.refresh(ctx)

	return subscriber, nil
}

// Update applies a partial update inside a transaction.
func (srv *subscriberService) Update(ctx context.Context, contract string, input *usecase.UpdateSubscriberInput) (*entity.Subscriber, error) {
	var updated *entity.Subscriber
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subscriberRepo := repoFactory.SubscriberRepo()

		subscriber, err := subscriberRepo.FindByContract(ctx, strings.TrimSpace(contract))
		if err != nil {
			return err
		}

		addressChanged := applySubscriberUpdate(subscriber, input)
		if err := validateSubscriber(subscriber); err != nil {
			return err
		}

		if input.Latitude != nil && input.Longitude != nil {
			subscriber.Latitude = *input.Latitude
			subscriber.Longitude = *input.Longitude
		} else if addressChanged {
			if err := srv.applyGeocode(ctx, subscriber, input.GeocodedAddress == nil); err != nil {
				return err
			}
		}

		if err := subscriberRepo.Update(ctx, subscriber); err != nil {
			return err
		}
		updated = subscriber

		return nil
	})
	if err != nil {
		return nil, translateError(err, "failed to update subscriber")
	}

	srv.log(ctx).Info("Subscriber updated", slog.String("contract", updated.ContractNumber))
	srv.refresh(ctx)

	return updated, nil
}

// applySubscriberUpdate copies the non-nil fields and reports whether an address component changed.
func applySubscriberUpdate(s *entity.Subscriber, input *usecase.UpdateSubscriberInput) bool {
	addressChanged := false
	setAddress := func(dst *string, src *string) {
		if src == nil {
			return
		}
		if v := strings.TrimSpace(*src); v != *dst {
			*dst = v
			addressChanged = true
		}
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}

	set(&s.Surname, input.Surname)
	set(&s.Name, input.Name)
	set(&s.Patronymic, input.Patronymic)
	setAddress(&s.City, input.City)
	setAddress(&s.District, input.District)
	setAddress(&s.Street, input.Street)
	setAddress(&s.House, input.House)
	set(&s.GeocodedAddress, input.GeocodedAddress)
	if input.Status != nil {
		s.Status = *input.Status
	}

	return addressChanged
}

func validateSubscriber(s *entity.Subscriber) error {
	switch {
	case s.ContractNumber == "":
		return domainerrors.ErrValidationFailed.WithDetails("contract_number is required")
	case s.City == "" || s.House == "":
		return domainerrors.ErrSubscriberAddressIncomplete.WithDetails("city and house are required")
	case !s.HasStreetLevelAddress():
		return domainerrors.ErrSubscriberAddressIncomplete
	case !s.Status.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("unknown status")
	}

	return nil
}

// applyGeocode fills coordinates, and the geocoded address when overwriteAddress is set.
func (srv *subscriberService) applyGeocode(ctx context.Context, s *entity.Subscriber, overwriteAddress bool) error {
	result, err := srv.geocoder.Geocode(ctx, s.GeocodeQuery())
	if err != nil {
		srv.log(ctx).Warn("Geocoding failed",
			slog.String("contract", s.ContractNumber),
			slog.String("query", s.GeocodeQuery()),
			slog.Any("error", err),
		)

		return domainerrors.ErrGeocodingFailed
	}

	s.Latitude = result.Latitude
	s.Longitude = result.Longitude
	if overwriteAddress {
		s.GeocodedAddress = result.Address
	}

	return nil
}

// SuggestAddresses returns address suggestions from the current snapshot.
func (srv *subscriberService) SuggestAddresses(ctx context.Context, query string) ([]addrindex.Address, error) {
	idx, err := srv.index(ctx)
	if err != nil {
		return nil, err
	}

	return idx.SuggestAddresses(query), nil
}

// SuggestHouses returns house suggestions from the current snapshot.
func (srv *subscriberService) SuggestHouses(ctx context.Context, addressText, lockedKey, houseText string) ([]addrindex.HouseEntry, error) {
	idx, err := srv.index(ctx)
	if err != nil {
		return nil, err
	}

	return idx.SuggestHouses(addressText, lockedKey, houseText), nil
}

// Search filters the current snapshot.
func (srv *subscriberService) Search(ctx context.Context, addressQuery, houseQuery string) ([]entity.Subscriber, error) {
	idx, err := srv.index(ctx)
	if err != nil {
		return nil, err
	}

	return idx.Filter(addressQuery, houseQuery), nil
}

// ContractQR renders the contract card QR code.
func (srv *subscriberService) ContractQR(ctx context.Context, contract string) ([]byte, error) {
	subscriber, err := srv.Get(ctx, contract)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateContractQR(subscriber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate contract QR")
	}

	return png, nil
}

// Geocode resolves a free-form address.
func (srv *subscriberService) Geocode(ctx context.Context, address string) (service.GeocodeResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return service.GeocodeResult{}, domainerrors.ErrValidationFailed.WithDetails("address is required")
	}

	result, err := srv.geocoder.Geocode(ctx, address)
	if err != nil {
		srv.log(ctx).Warn("Geocoding failed", slog.String("query", address), slog.Any("error", err))

		return service.GeocodeResult{}, domainerrors.ErrGeocodingFailed
	}

	return result, nil
}

// Import upserts subscribers and rebuilds the index once.
func (srv *subscriberService) Import(ctx context.Context, subscribers []entity.Subscriber) (int, error) {
	var written int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		written, err = repoFactory.SubscriberRepo().Upsert(ctx, latestByContract(subscribers))

		return err
	})
	if err != nil {
		return 0, translateError(err, "failed to import subscribers")
	}

	srv.log(ctx).Info("Subscribers imported", slog.Int("written", written))
	srv.refresh(ctx)

	return written, nil
}

// latestByContract keeps the last entry for every contract number at the
// position of its first occurrence. A single upsert statement cannot touch
// the same row twice.
func latestByContract(subscribers []entity.Subscriber) []entity.Subscriber {
	positions := make(map[string]int, len(subscribers))
	out := make([]entity.Subscriber, 0, len(subscribers))
	for _, sub := range subscribers {
		if pos, ok := positions[sub.ContractNumber]; ok {
			out[pos] = sub

			continue
		}
		positions[sub.ContractNumber] = len(out)
		out = append(out, sub)
	}

	return out
}
