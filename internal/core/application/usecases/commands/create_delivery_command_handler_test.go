package commands_test

import (
	"context"
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) GetByOrderID(_ context.Context, _ kernel.UUID) (*delivery.Delivery, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDeliveryRepository) GetAllPending(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

type MockZoneTierRepository struct{ mock.Mock }

func (m *MockZoneTierRepository) GetAllActive(ctx context.Context) ([]pricing.ZoneTier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pricing.ZoneTier), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n delivery.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotifier) Broadcast(ctx context.Context, n delivery.Notification, exclude []kernel.UUID) error {
	args := m.Called(ctx, n, exclude)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}
func (m *MockUoW) ZoneTierRepository() ports.ZoneTierRepository {
	args := m.Called()
	return args.Get(0).(ports.ZoneTierRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func testSchedule(t *testing.T) []pricing.ZoneTier {
	t.Helper()
	inner, err := pricing.NewZoneTier("Inner City", 0, 5,
		decimal.NewFromInt(30), decimal.NewFromInt(5), true)
	require.NoError(t, err)
	suburban, err := pricing.NewZoneTier("Suburban", 5.01, 15,
		decimal.NewFromInt(50), decimal.NewFromInt(8), true)
	require.NoError(t, err)
	return []pricing.ZoneTier{inner, suburban}
}

func validCreateCommand(t *testing.T) commands.CreateDeliveryCommand {
	t.Helper()
	pickup, dropoff := validCoordinates(t)
	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Siraha Bazaar", "Lahan Main Road", pickup, dropoff)
	require.NoError(t, err)
	return cmd
}

func TestCreateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateCommand(t)

	deliveryRepo := new(MockDeliveryRepository)
	zoneRepo := new(MockZoneTierRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ZoneTierRepository").Return(zoneRepo).Once(),
		zoneRepo.On("GetAllActive", mock.Anything).Return(testSchedule(t), nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Broadcast", mock.Anything,
			mock.MatchedBy(func(n delivery.Notification) bool {
				return n.TemplateKey == delivery.TemplateDeliveryAvailable
			}),
			mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	deliveryRepo.AssertExpectations(t)
	zoneRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_QuotesBeforePersisting(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateCommand(t)

	var persisted *delivery.Delivery
	deliveryRepo := new(MockDeliveryRepository)
	zoneRepo := new(MockZoneTierRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ZoneTierRepository").Return(zoneRepo).Once()
	zoneRepo.On("GetAllActive", mock.Anything).Return(testSchedule(t), nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*delivery.Delivery)
		}).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	notifier.On("Broadcast", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	// ~12.9 km: Suburban tier, 50 + 8/km.
	require.NotNil(t, persisted)
	require.Equal(t, delivery.Pending, persisted.Status())
	require.InDelta(t, 12.9, persisted.EstimatedDistanceKm(), 0.5)
	expectedFee := decimal.NewFromInt(50).
		Add(decimal.NewFromFloat(persisted.EstimatedDistanceKm()).Mul(decimal.NewFromInt(8)).Round(2)).
		Round(2)
	require.True(t, expectedFee.Equal(persisted.DeliveryFee()),
		"expected %s, got %s", expectedFee, persisted.DeliveryFee())
	require.Equal(t, pricing.EstimateMinutes(persisted.EstimatedDistanceKm()), persisted.EstimatedMinutes())
}

func TestCreateDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateDeliveryCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewCreateDeliveryCommandHandler(factory, new(MockNotifier))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateDeliveryCommandHandler_Handle_ScheduleError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateCommand(t)

	zoneRepo := new(MockZoneTierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ZoneTierRepository").Return(zoneRepo).Once(),
		zoneRepo.On("GetAllActive", mock.Anything).Return(nil, errors.New("schedule error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, new(MockNotifier))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateCommand(t)

	deliveryRepo := new(MockDeliveryRepository)
	zoneRepo := new(MockZoneTierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ZoneTierRepository").Return(zoneRepo).Once(),
		zoneRepo.On("GetAllActive", mock.Anything).Return(testSchedule(t), nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	h := commands.NewCreateDeliveryCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	notifier.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
