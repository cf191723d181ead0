package impl

import (
	"context"
	"errors"
	"testing"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	mockRepo "dispatch/internal/mocks/repository"
	mockService "dispatch/internal/mocks/service"
	"dispatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriberServiceMocks struct {
	txManager      *mockRepo.MockTransactionManager
	subscriberRepo *mockRepo.MockSubscriberRepository
	geocoder       *mockService.MockGeocoder
	qrService      *mockService.MockQRCodeService
}

func newTestSubscriberService(t *testing.T) (*subscriberService, subscriberServiceMocks) {
	t.Helper()

	m := subscriberServiceMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		subscriberRepo: mockRepo.NewMockSubscriberRepository(t),
		geocoder:       mockService.NewMockGeocoder(t),
		qrService:      mockService.NewMockQRCodeService(t),
	}

	srv := NewSubscriberService(SubscriberServiceParams{
		TxManager:      m.txManager,
		SubscriberRepo: m.subscriberRepo,
		Geocoder:       m.geocoder,
		QRService:      m.qrService,
		Metrics:        newLenientMetrics(t),
		Config:         newTestConfig(),
		Logger:         newTestLogger(),
	})

	return srv.(*subscriberService), m
}

func testSubscribers() []entity.Subscriber {
	return []entity.Subscriber{
		{ContractNumber: "100", City: "Тула", Street: "Ленина", House: "10", Status: entity.SubscriberActive},
		{ContractNumber: "101", City: "Тула", Street: "Ленина", House: "2", Status: entity.SubscriberActive},
		{ContractNumber: "102", City: "Тула", District: "Заречье", House: "7а", Status: entity.SubscriberInactive},
	}
}

func TestSubscriberService_ListBuildsIndexOnce(t *testing.T) {
	srv, m := newTestSubscriberService(t)
	ctx := context.Background()

	m.subscriberRepo.EXPECT().List(ctx).Return(testSubscribers(), nil).Once()

	first, err := srv.List(ctx)
	require.NoError(t, err)
	second, err := srv.List(ctx)
	require.NoError(t, err)

	require.Len(t, first, 3)
	assert.Equal(t, first, second)
	// Empty district sorts first and houses compare numerically.
	assert.Equal(t, "101", first[0].ContractNumber)
	assert.Equal(t, "100", first[1].ContractNumber)
	assert.Equal(t, "102", first[2].ContractNumber)
}

func TestSubscriberService_ListLoadError(t *testing.T) {
	srv, m := newTestSubscriberService(t)
	ctx := context.Background()

	m.subscriberRepo.EXPECT().List(ctx).Return(nil, errors.New("db down"))

	list, err := srv.List(ctx)
	require.Error(t, err)
	assert.Nil(t, list)
}

func TestSubscriberService_SearchAndSuggest(t *testing.T) {
	srv, m := newTestSubscriberService(t)
	ctx := context.Background()

	m.subscriberRepo.EXPECT().List(ctx).Return(testSubscribers(), nil).Once()
	require.NoError(t, srv.Rebuild(ctx))

	found, err := srv.Search(ctx, "ленина", "1-5")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "101", found[0].ContractNumber)

	addresses, err := srv.SuggestAddresses(ctx, "зар")
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, "Тула Заречье", addresses[0].Display)

	houses, err := srv.SuggestHouses(ctx, "ленина", "", "")
	require.NoError(t, err)
	assert.Len(t, houses, 2)
}

func TestSubscriberService_RebuildDiscardsOutdatedSnapshot(t *testing.T) {
	srv, m := newTestSubscriberService(t)
	ctx := context.Background()

	older := testSubscribers()[:1]
	newer := testSubscribers()

	// The first load is overtaken by a second rebuild that publishes first.
	m.subscriberRepo.EXPECT().List(ctx).RunAndReturn(func(ctx context.Context) ([]entity.Subscriber, error) {
		require.NoError(t, srv.Rebuild(ctx))

		return older, nil
	}).Once()
	m.subscriberRepo.EXPECT().List(ctx).Return(newer, nil).Once()

	require.NoError(t, srv.Rebuild(ctx))

	list, err := srv.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, len(newer))
	assert.Equal(t, uint64(2), srv.snapshot.Load().generation)
}

func TestSubscriberService_StaleSnapshotServedOnRebuildFailure(t *testing.T) {
	srv, m := newTestSubscriberService(t)
	ctx := context.Background()

	m.subscriberRepo.EXPECT().List(ctx).Return(testSubscribers(), nil).Once()
	require.NoError(t, srv.Rebuild(ctx))

	txRepo := mockRepo.NewMockSubscriberRepository(t)
	expectSubscriberTx(m, txRepo, mockRepo.NewMockRepositoryFactory(t))
	txRepo.EXPECT().Upsert(ctx, mock.Anything).Return(1, nil)
	m.subscriberRepo.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))

	written, err := srv.Import(ctx, testSubscribers()[:1])
	require.NoError(t, err)
	assert.Equal(t, 1, written)
	assert.True(t, srv.stale())

	list, err := srv.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestSubscriberService_MutationDuringRebuildKeepsSnapshotStale(t *testing.T) {
	srv, m := newTestSubscriberService(t)
	ctx := context.Background()

	// A write commits while a read-triggered rebuild is loading. Its own
	// refresh rebuild then fails.
	m.subscriberRepo.EXPECT().List(ctx).RunAndReturn(func(ctx context.Context) ([]entity.Subscriber, error) {
		srv.refresh(ctx)

		return testSubscribers()[:1], nil
	}).Once()
	m.subscriberRepo.EXPECT().List(mock.Anything).Return(nil, errors.New("db down")).Once()

	require.NoError(t, srv.Rebuild(ctx))
	assert.True(t, srv.stale())

	m.subscriberRepo.EXPECT().List(ctx).Return(testSubscribers(), nil).Once()

	list, err := srv.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
	assert.False(t, srv.stale())
}

func TestSubscriberService_ImportKeepsLastRowPerContract(t *testing.T) {
	srv, m := newTestSubscriberService(t)
	ctx := context.Background()
	txRepo := mockRepo.NewMockSubscriberRepository(t)
	expectSubscriberTx(m, txRepo, mockRepo.NewMockRepositoryFactory(t))

	rows := testSubscribers()
	replacement := rows[0]
	replacement.House = "12"
	rows = append(rows, replacement)

	txRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(subs []entity.Subscriber) bool {
		return len(subs) == 3 && subs[0].ContractNumber == "100" && subs[0].House == "12"
	})).Return(3, nil)
	m.subscriberRepo.EXPECT().List(mock.Anything).Return(testSubscribers(), nil)

	written, err := srv.Import(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 3, written)
}

func TestSubscriberService_ImportFailureRollsBack(t *testing.T) {
	srv, m := newTestSubscriberService(t)
	ctx := context.Background()
	txRepo := mockRepo.NewMockSubscriberRepository(t)
	expectSubscriberTx(m, txRepo, mockRepo.NewMockRepositoryFactory(t))

	txRepo.EXPECT().Upsert(ctx, mock.Anything).Return(0, errors.New("deadlock"))

	written, err := srv.Import(ctx, testSubscribers())
	require.Error(t, err)
	assert.Zero(t, written)
	m.subscriberRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestSubscriberService_Get(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "found"},
		{name: "not found", repoErr: repository.ErrSubscriberNotFound, wantErr: domainerrors.ErrSubscriberNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestSubscriberService(t)
			ctx := context.Background()

			var found *entity.Subscriber
			if tt.repoErr == nil {
				found = &testSubscribers()[0]
			}
			m.subscriberRepo.EXPECT().FindByContract(ctx, "100").Return(found, tt.repoErr)

			got, err := srv.Get(ctx, " 100 ")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "100", got.ContractNumber)
		})
	}
}

func TestSubscriberService_CreateGeocodes(t *testing.T) {
	srv, m := newTestSubscriberService(t)
	ctx := context.Background()

	m.geocoder.EXPECT().Geocode(ctx, "Тула, Советская, 5").Return(service.GeocodeResult{
		Latitude:  54.19,
		Longitude: 37.61,
		Address:   "Россия, Тула, Советская улица, 5",
	}, nil)
	m.subscriberRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Subscriber")).Return(nil)
	m.subscriberRepo.EXPECT().List(mock.Anything).Return(testSubscribers(), nil)

	created, err := srv.Create(ctx, &usecase.CreateSubscriberInput{
		ContractNumber: "200",
		City:           "Тула",
		Street:         "Советская",
		House:          "5",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriberActive, created.Status)
	assert.InDelta(t, 54.19, created.Latitude, 1e-9)
	assert.Equal(t, "Россия, Тула, Советская улица, 5", created.GeocodedAddress)
	assert.False(t, srv.stale())
}

func TestSubscriberService_CreateWithCoordinatesSkipsGeocoder(t *testing.T) {
	srv, m := newTestSubscriberService(t)
	ctx := context.Background()

	m.subscriberRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Subscriber")).Return(nil)
	m.subscriberRepo.EXPECT().List(mock.Anything).Return(nil, nil)

	created, err := srv.Create(ctx, &usecase.CreateSubscriberInput{
		ContractNumber:  "201",
		City:            "Тула",
		District:        "Заречье",
		House:           "1",
		Latitude:        ptr(54.2),
		Longitude:       ptr(37.6),
		GeocodedAddress: ptr("Тула, Заречье, 1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Тула, Заречье, 1", created.GeocodedAddress)
	m.geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
}

func TestSubscriberService_CreateErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.CreateSubscriberInput
		setup   func(m subscriberServiceMocks)
		wantErr error
	}{
		{
			name:    "no district and no street",
			input:   usecase.CreateSubscriberInput{ContractNumber: "1", City: "Тула", House: "1"},
			wantErr: domainerrors.ErrSubscriberAddressIncomplete,
		},
		{
			name:    "unknown status",
			input:   usecase.CreateSubscriberInput{ContractNumber: "1", City: "Тула", Street: "Мира", House: "1", Status: "closed"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:  "geocoder failure",
			input: usecase.CreateSubscriberInput{ContractNumber: "1", City: "Тула", Street: "Мира", House: "1"},
			setup: func(m subscriberServiceMocks) {
				m.geocoder.EXPECT().Geocode(mock.Anything, mock.Anything).Return(service.GeocodeResult{}, errors.New("timeout"))
			},
			wantErr: domainerrors.ErrGeocodingFailed,
		},
		{
			name: "duplicate contract",
			input: usecase.CreateSubscriberInput{
				ContractNumber: "1", City: "Тула", Street: "Мира", House: "1",
				Latitude: ptr(1.0), Longitude: ptr(2.0),
			},
			setup: func(m subscriberServiceMocks) {
				m.subscriberRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateSubscriber)
			},
			wantErr: domainerrors.ErrSubscriberAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestSubscriberService(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			created, err := srv.Create(context.Background(), &tt.input)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, created)
		})
	}
}

func expectSubscriberTx(m subscriberServiceMocks, txRepo *mockRepo.MockSubscriberRepository, factory *mockRepo.MockRepositoryFactory) {
	m.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().SubscriberRepo().Return(txRepo)
}

func TestSubscriberService_UpdateRegeocodesChangedAddress(t *testing.T) {
	srv, m := newTestSubscriberService(t)
	ctx := context.Background()
	txRepo := mockRepo.NewMockSubscriberRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	expectSubscriberTx(m, txRepo, factory)

	existing := testSubscribers()[0]
	txRepo.EXPECT().FindByContract(ctx, "100").Return(&existing, nil)
	m.geocoder.EXPECT().Geocode(ctx, "Тула, Ленина, 12").Return(service.GeocodeResult{
		Latitude: 1, Longitude: 2, Address: "Тула, улица Ленина, 12",
	}, nil)
	txRepo.EXPECT().Update(ctx, mock.MatchedBy(func(s *entity.Subscriber) bool {
		return s.House == "12" && s.GeocodedAddress == "Тула, улица Ленина, 12"
	})).Return(nil)
	m.subscriberRepo.EXPECT().List(mock.Anything).Return(testSubscribers(), nil)

	updated, err := srv.Update(ctx, "100", &usecase.UpdateSubscriberInput{House: ptr("12")})
	require.NoError(t, err)
	assert.Equal(t, "12", updated.House)
}

func TestSubscriberService_UpdateNameKeepsCoordinates(t *testing.T) {
	srv, m := newTestSubscriberService(t)
	ctx := context.Background()
	txRepo := mockRepo.NewMockSubscriberRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	expectSubscriberTx(m, txRepo, factory)

	existing := testSubscribers()[0]
	existing.Latitude = 54.1
	txRepo.EXPECT().FindByContract(ctx, "100").Return(&existing, nil)
	txRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	m.subscriberRepo.EXPECT().List(mock.Anything).Return(testSubscribers(), nil)

	updated, err := srv.Update(ctx, "100", &usecase.UpdateSubscriberInput{Surname: ptr("Иванов")})
	require.NoError(t, err)
	assert.Equal(t, "Иванов", updated.Surname)
	assert.InDelta(t, 54.1, updated.Latitude, 1e-9)
}

func TestSubscriberService_UpdateRejectsClearingStreetLevel(t *testing.T) {
	srv, m := newTestSubscriberService(t)
	ctx := context.Background()
	txRepo := mockRepo.NewMockSubscriberRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	expectSubscriberTx(m, txRepo, factory)

	existing := testSubscribers()[0]
	txRepo.EXPECT().FindByContract(ctx, "100").Return(&existing, nil)

	updated, err := srv.Update(ctx, "100", &usecase.UpdateSubscriberInput{Street: ptr("")})
	require.ErrorIs(t, err, domainerrors.ErrSubscriberAddressIncomplete)
	assert.Nil(t, updated)
}

func TestSubscriberService_ContractQR(t *testing.T) {
	srv, m := newTestSubscriberService(t)
	ctx := context.Background()

	subscriber := testSubscribers()[0]
	m.subscriberRepo.EXPECT().FindByContract(ctx, "100").Return(&subscriber, nil)
	m.qrService.EXPECT().GenerateContractQR(&subscriber).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := srv.ContractQR(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestSubscriberService_Geocode(t *testing.T) {
	srv, m := newTestSubscriberService(t)
	ctx := context.Background()

	_, err := srv.Geocode(ctx, "  ")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	m.geocoder.EXPECT().Geocode(ctx, "Тула").Return(service.GeocodeResult{Latitude: 54.2, Longitude: 37.6, Address: "Россия, Тула"}, nil)
	result, err := srv.Geocode(ctx, "Тула")
	require.NoError(t, err)
	assert.Equal(t, "Россия, Тула", result.Address)
}
