package commands_test

import (
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/model/movement"
	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedID(t *testing.T, s string) kernel.UUID {
	t.Helper()
	id, err := kernel.UUIDFromString(s)
	require.NoError(t, err)
	return id
}

func (s site) binWithID(t *testing.T, id kernel.UUID, code string, x float64) *location.Location {
	t.Helper()
	b, err := location.NewBin(id, s.shelf, "bin "+code, code,
		pos(t, x, 0, 0), dims(t, 1, 1, 1), capacity(t, 100))
	require.NoError(t, err)
	return b
}

func movementFactory(uow *MockUoW) *MockMovementUoWFactory {
	factory := new(MockMovementUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory
}

func TestNewRecordMovementCommand_DefaultsOccurredAt(t *testing.T) {
	before := time.Now()

	cmd, err := commands.NewRecordMovementCommand(kernel.NewUUID(), decimal.NewFromInt(2), nil,
		kernel.NewUUID(), movement.Putaway, time.Time{}, nil)

	require.NoError(t, err)
	assert.False(t, cmd.OccurredAt().Before(before))
	assert.Nil(t, cmd.SourceBinID())
}

func TestNewRecordMovementCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewRecordMovementCommand(kernel.NewUUID(), decimal.Zero, nil,
		kernel.NewUUID(), movement.Type("teleport"), time.Time{}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRecordMovementCommandHandler_Handle_Pick(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	source := s.binWithID(t, fixedID(t, "00000000-0000-4000-8000-000000000001"), "A-S1-01", 0)
	dest := s.binWithID(t, fixedID(t, "00000000-0000-4000-8000-000000000002"), "A-S1-04", 3)
	sourceID := source.ID()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewRecordMovementCommand(kernel.NewUUID(), decimal.NewFromInt(4), &sourceID,
		dest.ID(), movement.Pick, computedAt, &orderID)
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	movements := new(MockMovementRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("GetForUpdate", ctx, sourceID).Return(source, nil).Once(),
		locations.On("GetForUpdate", ctx, dest.ID()).Return(dest, nil).Once(),
		uow.On("MovementRepository").Return(movements).Once(),
		movements.On("Add", ctx, mock.MatchedBy(func(m *movement.BinMovement) bool {
			return m.ID() == cmd.MovementID() &&
				m.Type() == movement.Pick &&
				m.SourceBinID().IsEqual(sourceID) &&
				m.DestinationBinID() == dest.ID() &&
				m.OrderRef().IsEqual(orderID) &&
				m.Distance() == 3
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewRecordMovementCommandHandler(movementFactory(uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	locations.AssertExpectations(t)
	movements.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordMovementCommandHandler_Handle_PutawayWithoutSource(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	dest := s.bin(t, "A-S1-01", 0)
	cmd, err := commands.NewRecordMovementCommand(kernel.NewUUID(), decimal.NewFromInt(10), nil,
		dest.ID(), movement.Putaway, computedAt, nil)
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	movements := new(MockMovementRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("GetForUpdate", ctx, dest.ID()).Return(dest, nil).Once(),
		uow.On("MovementRepository").Return(movements).Once(),
		movements.On("Add", ctx, mock.MatchedBy(func(m *movement.BinMovement) bool {
			return m.SourceBinID() == nil && m.Distance() == 0
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewRecordMovementCommandHandler(movementFactory(uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	movements.AssertExpectations(t)
}

func TestRecordMovementCommandHandler_Handle_PickWithoutSource(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	dest := s.bin(t, "A-S1-01", 0)
	cmd, err := commands.NewRecordMovementCommand(kernel.NewUUID(), decimal.NewFromInt(1), nil,
		dest.ID(), movement.Pick, computedAt, nil)
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("GetForUpdate", ctx, dest.ID()).Return(dest, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewRecordMovementCommandHandler(movementFactory(uow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	uow.AssertNotCalled(t, "MovementRepository")
}

func TestRecordMovementCommandHandler_Handle_DestinationIsShelf(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	cmd, err := commands.NewRecordMovementCommand(kernel.NewUUID(), decimal.NewFromInt(1), nil,
		s.shelf.ID(), movement.Putaway, computedAt, nil)
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("GetForUpdate", ctx, s.shelf.ID()).Return(s.shelf, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewRecordMovementCommandHandler(movementFactory(uow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, location.ErrInvalidHierarchy)
}

func TestRecordMovementCommandHandler_Handle_UnknownSource(t *testing.T) {
	ctx := t.Context()
	sourceID := fixedID(t, "00000000-0000-4000-8000-000000000001")
	cmd, err := commands.NewRecordMovementCommand(kernel.NewUUID(), decimal.NewFromInt(1), &sourceID,
		fixedID(t, "00000000-0000-4000-8000-000000000002"), movement.Transfer, computedAt, nil)
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("GetForUpdate", ctx, sourceID).Return(nil, errs.NewObjectNotFoundError("location", sourceID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewRecordMovementCommandHandler(movementFactory(uow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, location.ErrInvalidHierarchy)
}

func TestRecordMovementCommandHandler_Handle_LocksBinsInIDOrder(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	low := s.binWithID(t, fixedID(t, "00000000-0000-4000-8000-00000000000a"), "A-S1-01", 0)
	high := s.binWithID(t, fixedID(t, "00000000-0000-4000-8000-00000000000b"), "A-S1-04", 3)

	// Opposing transfers must take the locks in the same order.
	for _, tc := range []struct {
		name         string
		source, dest *location.Location
	}{
		{name: "low to high", source: low, dest: high},
		{name: "high to low", source: high, dest: low},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sourceID := tc.source.ID()
			cmd, err := commands.NewRecordMovementCommand(kernel.NewUUID(), decimal.NewFromInt(1), &sourceID,
				tc.dest.ID(), movement.Transfer, computedAt, nil)
			require.NoError(t, err)

			locations := new(MockLocationRepository)
			movements := new(MockMovementRepository)
			uow := new(MockUoW)

			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("LocationRepository").Return(locations).Once(),
				locations.On("GetForUpdate", ctx, low.ID()).Return(low, nil).Once(),
				locations.On("GetForUpdate", ctx, high.ID()).Return(high, nil).Once(),
				uow.On("MovementRepository").Return(movements).Once(),
				movements.On("Add", ctx, mock.MatchedBy(func(m *movement.BinMovement) bool {
					return m.SourceBinID().IsEqual(tc.source.ID()) && m.DestinationBinID() == tc.dest.ID()
				})).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			err = commands.NewRecordMovementCommandHandler(movementFactory(uow)).Handle(ctx, cmd)

			require.NoError(t, err)
			locations.AssertExpectations(t)
			movements.AssertExpectations(t)
		})
	}
}
