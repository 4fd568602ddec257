package commands_test

import (
	"context"
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAssignDeliveryRepository struct{ mock.Mock }

func (m *MockAssignDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockAssignDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockAssignDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockAssignDeliveryRepository) GetAllByOwner(
	ctx context.Context, ownerID kernel.UUID,
) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockAssignDeliveryRepository) GetAllByDriver(
	ctx context.Context, driverID kernel.UUID,
) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockAssignDeliveryRepository) GetAllPendingUnassigned(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

type MockAssignUserRepository struct{ mock.Mock }

func (m *MockAssignUserRepository) Add(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockAssignUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

type MockAssignStatusChangeRepository struct{ mock.Mock }

func (m *MockAssignStatusChangeRepository) Add(ctx context.Context, entry *delivery.StatusChange) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAssignStatusChangeRepository) GetAllForDelivery(
	ctx context.Context, deliveryID kernel.UUID,
) ([]*delivery.StatusChange, error) {
	args := m.Called(ctx, deliveryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.StatusChange), args.Error(1)
}

type MockAssignUoW struct{ mock.Mock }

func (m *MockAssignUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockAssignUoW) StatusChangeRepository() ports.StatusChangeRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusChangeRepository)
}

func (m *MockAssignUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockAssignUoWFactory struct{ mock.Mock }

func (m *MockAssignUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func newStoredDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(),
		"1 Warehouse Way", "2 Customer Close",
		"Casey Customer", "+1-555-0100",
		decimal.NewFromInt(5), delivery.Medium, "",
		decimal.RequireFromString("120.00"),
	)
	require.NoError(t, err)
	return d
}

func newAdminActor(t *testing.T) account.Actor {
	t.Helper()

	actor, err := account.NewActor(kernel.NewUUID(), account.Admin)
	require.NoError(t, err)
	return actor
}

func TestAssignDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testDelivery := newStoredDelivery(t)
	driver, err := account.NewUser(kernel.NewUUID(), "driver@example.com", "Drew Driver", account.Driver)
	require.NoError(t, err)

	cmd, err := commands.NewAssignDriverCommand(testDelivery.ID(), driver.ID(), newAdminActor(t))
	require.NoError(t, err)

	deliveryRepo := new(MockAssignDeliveryRepository)
	userRepo := new(MockAssignUserRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		userRepo.On("Get", ctx, driver.ID()).Return(driver, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.DriverID())
	assert.True(t, updated.DriverID().IsEqual(driver.ID()))
	assert.Equal(t, delivery.Pending, updated.Status())

	deliveryRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignDriverCommand{} // not constructed properly

	factory := new(MockAssignUoWFactory)
	handler := commands.NewAssignDriverCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignDriverCommandIsNotConstructed)
	assert.Nil(t, updated)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignDriverCommandHandler_Handle_NonAdminActor(t *testing.T) {
	ctx := t.Context()

	for _, role := range []account.Role{account.BusinessUser, account.Driver} {
		actor, err := account.NewActor(kernel.NewUUID(), role)
		require.NoError(t, err)

		cmd, err := commands.NewAssignDriverCommand(kernel.NewUUID(), kernel.NewUUID(), actor)
		require.NoError(t, err)

		factory := new(MockAssignUoWFactory)
		handler := commands.NewAssignDriverCommandHandler(factory)
		updated, err := handler.Handle(ctx, cmd)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrActionNotAllowed)
		assert.Nil(t, updated)
		factory.AssertNotCalled(t, "Create")
	}
}

func TestAssignDriverCommandHandler_Handle_DeliveryNotFound(t *testing.T) {
	ctx := t.Context()

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewAssignDriverCommand(deliveryID, kernel.NewUUID(), newAdminActor(t))
	require.NoError(t, err)

	deliveryRepo := new(MockAssignDeliveryRepository)
	userRepo := new(MockAssignUserRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		deliveryRepo.On("Get", ctx, deliveryID).
			Return(nil, errs.NewObjectNotFoundError("deliveryId", deliveryID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, updated)
}

func TestAssignDriverCommandHandler_Handle_DriverNotFound(t *testing.T) {
	ctx := t.Context()

	testDelivery := newStoredDelivery(t)
	driverID := kernel.NewUUID()
	cmd, err := commands.NewAssignDriverCommand(testDelivery.ID(), driverID, newAdminActor(t))
	require.NoError(t, err)

	deliveryRepo := new(MockAssignDeliveryRepository)
	userRepo := new(MockAssignUserRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		userRepo.On("Get", ctx, driverID).
			Return(nil, errs.NewObjectNotFoundError("driverId", driverID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, updated)
}

func TestAssignDriverCommandHandler_Handle_CandidateNotADriver(t *testing.T) {
	ctx := t.Context()

	testDelivery := newStoredDelivery(t)
	notADriver, err := account.NewUser(kernel.NewUUID(), "user@example.com", "Blair Business", account.BusinessUser)
	require.NoError(t, err)

	cmd, err := commands.NewAssignDriverCommand(testDelivery.ID(), notADriver.ID(), newAdminActor(t))
	require.NoError(t, err)

	deliveryRepo := new(MockAssignDeliveryRepository)
	userRepo := new(MockAssignUserRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		userRepo.On("Get", ctx, notADriver.ID()).Return(notADriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidRole)
	assert.Nil(t, updated)
	assert.Nil(t, testDelivery.DriverID())
	deliveryRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()

	testDelivery := newStoredDelivery(t)
	driver, err := account.NewUser(kernel.NewUUID(), "driver@example.com", "Drew Driver", account.Driver)
	require.NoError(t, err)

	cmd, err := commands.NewAssignDriverCommand(testDelivery.ID(), driver.ID(), newAdminActor(t))
	require.NoError(t, err)

	deliveryRepo := new(MockAssignDeliveryRepository)
	userRepo := new(MockAssignUserRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		userRepo.On("Get", ctx, driver.ID()).Return(driver, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).
			Return(errors.New("update error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "update error")
	assert.Nil(t, updated)
	uow.AssertNotCalled(t, "Commit", ctx)
}
