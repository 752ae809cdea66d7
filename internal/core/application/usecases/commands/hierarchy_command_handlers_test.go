package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func noStock() map[kernel.UUID]stock.Stock { return map[kernel.UUID]stock.Stock{} }

func hierarchyFactory(uow *MockUoW) *MockHierarchyUoWFactory {
	factory := new(MockHierarchyUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory
}

func TestCreateShelfCommandHandler_Handle_GeneratesGrid(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	grid, err := location.NewGrid(2, 3, 1)
	require.NoError(t, err)
	cmd, err := commands.NewCreateShelfCommand(s.area.ID(), "Shelf 3", "A-S3",
		pos(t, 0, 10, 0), dims(t, 6, 2, 2), &grid, capacity(t, 50))
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("Get", ctx, s.area.ID()).Return(s.area, nil).Once(),
		locations.On("Add", ctx, mock.MatchedBy(func(l *location.Location) bool {
			return l.ID() == cmd.ShelfID() && l.Kind() == location.Shelf
		})).Return(nil).Once(),
		locations.On("AddMany", ctx, mock.MatchedBy(func(bins []*location.Location) bool {
			return len(bins) == 6
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	binIDs, err := commands.NewCreateShelfCommandHandler(hierarchyFactory(uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Len(t, binIDs, 6)
	locations.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateShelfCommandHandler_Handle_WithoutGrid(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	cmd, err := commands.NewCreateShelfCommand(s.area.ID(), "Shelf 3", "A-S3",
		pos(t, 0, 10, 0), dims(t, 6, 2, 2), nil, location.Capacity{})
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("Get", ctx, s.area.ID()).Return(s.area, nil).Once(),
		locations.On("Add", ctx, mock.AnythingOfType("*location.Location")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	binIDs, err := commands.NewCreateShelfCommandHandler(hierarchyFactory(uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, binIDs)
	locations.AssertNotCalled(t, "AddMany", mock.Anything, mock.Anything)
}

func TestCreateShelfCommandHandler_Handle_ShelfOutsideArea(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	cmd, err := commands.NewCreateShelfCommand(s.area.ID(), "Shelf 3", "A-S3",
		pos(t, 18, 0, 0), dims(t, 6, 2, 2), nil, location.Capacity{})
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("Get", ctx, s.area.ID()).Return(s.area, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err = commands.NewCreateShelfCommandHandler(hierarchyFactory(uow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, location.ErrOutOfBounds)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewCreateShelfCommand_InvalidGrid(t *testing.T) {
	s := newSite(t)
	grid := location.Grid{Rows: 0, Cols: 101, Levels: 1}

	_, err := commands.NewCreateShelfCommand(s.area.ID(), "Shelf", "S", pos(t, 0, 0, 0), dims(t, 1, 1, 1), &grid, location.Capacity{})

	require.Error(t, err)
}

func TestCreateBinCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	cmd, err := commands.NewCreateBinCommand(s.shelf.ID(), "Bin 1", "A-S1-01",
		pos(t, 2, 0, 0), dims(t, 1, 1, 1), capacity(t, 100))
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("Get", ctx, s.shelf.ID()).Return(s.shelf, nil).Once(),
		locations.On("Add", ctx, mock.MatchedBy(func(l *location.Location) bool {
			return l.ID() == cmd.BinID() && l.IsBin() && l.ParentID().IsEqual(s.shelf.ID())
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewCreateBinCommandHandler(hierarchyFactory(uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	locations.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateBinCommandHandler_Handle_MissingShelf(t *testing.T) {
	ctx := t.Context()
	shelfID := kernel.NewUUID()
	cmd, err := commands.NewCreateBinCommand(shelfID, "Bin 1", "B1", pos(t, 0, 0, 0), dims(t, 1, 1, 1), location.Capacity{})
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("Get", ctx, shelfID).Return(nil, errs.NewObjectNotFoundError("location", shelfID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewCreateBinCommandHandler(hierarchyFactory(uow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, location.ErrInvalidHierarchy)
}

func TestCreateBinCommandHandler_Handle_ParentIsArea(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	cmd, err := commands.NewCreateBinCommand(s.area.ID(), "Bin 1", "B1", pos(t, 0, 0, 0), dims(t, 1, 1, 1), location.Capacity{})
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("Get", ctx, s.area.ID()).Return(s.area, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewCreateBinCommandHandler(hierarchyFactory(uow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, location.ErrInvalidHierarchy)
}

func TestRelocateBinCommandHandler_Handle_MovesEmptyBin(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	bin := s.bin(t, "A-S1-01", 0)
	target := s.otherShelf(t)
	targetID := target.ID()
	cmd, err := commands.NewRelocateBinCommand(bin.ID(), &targetID, pos(t, 3, 5, 0), dims(t, 1, 1, 1))
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	ledger := new(MockStockLedger)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("GetForUpdate", ctx, bin.ID()).Return(bin, nil).Once(),
		locations.On("Get", ctx, s.shelf.ID()).Return(s.shelf, nil).Once(),
		locations.On("Get", ctx, targetID).Return(target, nil).Once(),
		uow.On("StockLedger").Return(ledger).Once(),
		ledger.On("GetStock", ctx, []kernel.UUID{bin.ID()}).Return(noStock(), nil).Once(),
		locations.On("Update", ctx, bin).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewRelocateBinCommandHandler(hierarchyFactory(uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, bin.ParentID().IsEqual(targetID))
	assert.True(t, bin.Position().IsEqual(pos(t, 3, 5, 0)))
	locations.AssertExpectations(t)
	ledger.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRelocateBinCommandHandler_Handle_LockedBin(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	bin := s.bin(t, "A-S1-01", 0)
	cmd, err := commands.NewRelocateBinCommand(bin.ID(), nil, pos(t, 4, 0, 0), dims(t, 1, 1, 1))
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	ledger := new(MockStockLedger)
	uow := new(MockUoW)

	content := map[kernel.UUID]stock.Stock{bin.ID(): holding(t, bin.ID(), 5, nil)}

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("GetForUpdate", ctx, bin.ID()).Return(bin, nil).Once(),
		locations.On("Get", ctx, s.shelf.ID()).Return(s.shelf, nil).Once(),
		uow.On("StockLedger").Return(ledger).Once(),
		ledger.On("GetStock", ctx, []kernel.UUID{bin.ID()}).Return(content, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewRelocateBinCommandHandler(hierarchyFactory(uow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, location.ErrBinLocked)
	assert.True(t, bin.Position().IsEqual(pos(t, 0, 0, 0)))
	locations.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRelocateBinCommandHandler_Handle_MissingTargetShelf(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	bin := s.bin(t, "A-S1-01", 0)
	targetID := kernel.NewUUID()
	cmd, err := commands.NewRelocateBinCommand(bin.ID(), &targetID, pos(t, 0, 0, 0), dims(t, 1, 1, 1))
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("GetForUpdate", ctx, bin.ID()).Return(bin, nil).Once(),
		locations.On("Get", ctx, s.shelf.ID()).Return(s.shelf, nil).Once(),
		locations.On("Get", ctx, targetID).Return(nil, errs.NewObjectNotFoundError("location", targetID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewRelocateBinCommandHandler(hierarchyFactory(uow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, location.ErrInvalidHierarchy)
}

func TestSetBinBlockedCommandHandler_Handle_LockedBinCanBeBlocked(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	bin := s.bin(t, "A-S1-01", 0)
	cmd, err := commands.NewSetBinBlockedCommand(bin.ID(), true, "damaged rack")
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("GetForUpdate", ctx, bin.ID()).Return(bin, nil).Once(),
		locations.On("Update", ctx, bin).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewSetBinBlockedCommandHandler(hierarchyFactory(uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, bin.IsBlocked())
	assert.Equal(t, "damaged rack", bin.BlockReason())
	uow.AssertExpectations(t)
}

func TestNewSetBinBlockedCommand_RequiresReason(t *testing.T) {
	_, err := commands.NewSetBinBlockedCommand(kernel.NewUUID(), true, " ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewSetBinBlockedCommand(kernel.NewUUID(), false, "")
	require.NoError(t, err)
	assert.False(t, cmd.Blocked())
}

func TestResizeShelfCommandHandler_Handle_RegeneratesBins(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	b1, b2 := s.bin(t, "A-S1-01", 0), s.bin(t, "A-S1-02", 1)
	grid, err := location.NewGrid(1, 4, 2)
	require.NoError(t, err)
	cmd, err := commands.NewResizeShelfCommand(s.shelf.ID(), dims(t, 12, 2, 2), grid, capacity(t, 25))
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	ledger := new(MockStockLedger)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("GetForUpdate", ctx, s.shelf.ID()).Return(s.shelf, nil).Once(),
		locations.On("Get", ctx, s.area.ID()).Return(s.area, nil).Once(),
		locations.On("GetDescendants", ctx, s.shelf.ID()).Return([]*location.Location{b1, b2}, nil).Once(),
		uow.On("StockLedger").Return(ledger).Once(),
		ledger.On("GetStock", ctx, []kernel.UUID{b1.ID(), b2.ID()}).Return(noStock(), nil).Once(),
		locations.On("Update", ctx, s.shelf).Return(nil).Once(),
		locations.On("Delete", ctx, []kernel.UUID{b1.ID(), b2.ID()}).Return(nil).Once(),
		locations.On("AddMany", ctx, mock.MatchedBy(func(bins []*location.Location) bool {
			return len(bins) == 8
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	binIDs, err := commands.NewResizeShelfCommandHandler(hierarchyFactory(uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Len(t, binIDs, 8)
	assert.InDelta(t, 12.0, s.shelf.Dimensions().Width(), 1e-9)
	locations.AssertExpectations(t)
	ledger.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestResizeShelfCommandHandler_Handle_LockedBin(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	b1, b2 := s.bin(t, "A-S1-01", 0), s.bin(t, "A-S1-02", 1)
	grid, err := location.NewGrid(1, 2, 1)
	require.NoError(t, err)
	cmd, err := commands.NewResizeShelfCommand(s.shelf.ID(), dims(t, 12, 2, 2), grid, location.Capacity{})
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	ledger := new(MockStockLedger)
	uow := new(MockUoW)
	content := map[kernel.UUID]stock.Stock{b2.ID(): holding(t, b2.ID(), 1, nil)}

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("GetForUpdate", ctx, s.shelf.ID()).Return(s.shelf, nil).Once(),
		locations.On("Get", ctx, s.area.ID()).Return(s.area, nil).Once(),
		locations.On("GetDescendants", ctx, s.shelf.ID()).Return([]*location.Location{b1, b2}, nil).Once(),
		uow.On("StockLedger").Return(ledger).Once(),
		ledger.On("GetStock", ctx, []kernel.UUID{b1.ID(), b2.ID()}).Return(content, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err = commands.NewResizeShelfCommandHandler(hierarchyFactory(uow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, location.ErrBinLocked)
	assert.InDelta(t, 10.0, s.shelf.Dimensions().Width(), 1e-9)
	locations.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestResizeShelfCommandHandler_Handle_TooLargeForArea(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	grid, err := location.NewGrid(1, 1, 1)
	require.NoError(t, err)
	cmd, err := commands.NewResizeShelfCommand(s.shelf.ID(), dims(t, 30, 2, 2), grid, location.Capacity{})
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("GetForUpdate", ctx, s.shelf.ID()).Return(s.shelf, nil).Once(),
		locations.On("Get", ctx, s.area.ID()).Return(s.area, nil).Once(),
		locations.On("GetDescendants", ctx, s.shelf.ID()).Return([]*location.Location{}, nil).Once(),
		uow.On("StockLedger").Return(new(MockStockLedger)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err = commands.NewResizeShelfCommandHandler(hierarchyFactory(uow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, location.ErrOutOfBounds)
}

func TestDeleteLocationCommandHandler_Handle_DeletesSubtree(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	b1, b2 := s.bin(t, "A-S1-01", 0), s.bin(t, "A-S1-02", 1)
	cmd, err := commands.NewDeleteLocationCommand(s.area.ID())
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	ledger := new(MockStockLedger)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("GetForUpdate", ctx, s.area.ID()).Return(s.area, nil).Once(),
		locations.On("GetDescendants", ctx, s.area.ID()).Return([]*location.Location{s.shelf, b1, b2}, nil).Once(),
		uow.On("StockLedger").Return(ledger).Once(),
		ledger.On("GetStock", ctx, []kernel.UUID{b1.ID(), b2.ID()}).Return(noStock(), nil).Once(),
		locations.On("Delete", ctx, []kernel.UUID{s.area.ID(), s.shelf.ID(), b1.ID(), b2.ID()}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewDeleteLocationCommandHandler(hierarchyFactory(uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	locations.AssertExpectations(t)
	ledger.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteLocationCommandHandler_Handle_NotEmpty(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	b1, b2 := s.bin(t, "A-S1-01", 0), s.bin(t, "A-S1-02", 1)
	cmd, err := commands.NewDeleteLocationCommand(s.shelf.ID())
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	ledger := new(MockStockLedger)
	uow := new(MockUoW)
	content := map[kernel.UUID]stock.Stock{b1.ID(): holding(t, b1.ID(), 3, nil)}

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("GetForUpdate", ctx, s.shelf.ID()).Return(s.shelf, nil).Once(),
		locations.On("GetDescendants", ctx, s.shelf.ID()).Return([]*location.Location{b1, b2}, nil).Once(),
		uow.On("StockLedger").Return(ledger).Once(),
		ledger.On("GetStock", ctx, []kernel.UUID{b1.ID(), b2.ID()}).Return(content, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewDeleteLocationCommandHandler(hierarchyFactory(uow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, location.ErrNotEmpty)
	locations.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestDeleteLocationCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteLocationCommand(id)
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("location", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewDeleteLocationCommandHandler(hierarchyFactory(uow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
