package location

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

const MaxGridCells = 100

// Grid is the rows × columns × levels partition of a shelf into bins.
// Rows run along the shelf depth (Y), columns along its width (X) and
// levels along its height (Z).
type Grid struct {
	Rows   int
	Cols   int
	Levels int
}

// NewGrid validates every axis against 1..MaxGridCells.
//
// Example:
//
//	grid, err := location.NewGrid(2, 3, 2) // 12 bins
//	if err != nil {
//	    return err
//	}
//	bins, err := location.GenerateGrid(shelf, grid, capacity)
func NewGrid(rows, cols, levels int) (Grid, error) {
	if err := errors.Join(
		checkGridAxis("rows", rows),
		checkGridAxis("cols", cols),
		checkGridAxis("levels", levels),
	); err != nil {
		return Grid{}, err
	}
	return Grid{Rows: rows, Cols: cols, Levels: levels}, nil
}

// Size is the number of bins the grid produces.
func (g Grid) Size() int {
	return g.Rows * g.Cols * g.Levels
}

// GenerateGrid partitions a shelf into g.Size() bins of equal size
// (width/cols × depth/rows × height/levels), ordered level, row, column.
// Bin codes encode the 1-based position: <shelf code>-L01-R02-C03.
func GenerateGrid(shelf *Location, g Grid, capacity Capacity) ([]*Location, error) {
	if err := checkParent(Bin, shelf); err != nil {
		return nil, err
	}
	if _, err := NewGrid(g.Rows, g.Cols, g.Levels); err != nil {
		return nil, err
	}

	dims := shelf.Dimensions()
	binDims, err := kernel.NewDimensions(
		dims.Width()/float64(g.Cols),
		dims.Depth()/float64(g.Rows),
		dims.Height()/float64(g.Levels),
	)
	if err != nil {
		return nil, err
	}

	origin := shelf.Position()
	bins := make([]*Location, 0, g.Size())
	for level := range g.Levels {
		for row := range g.Rows {
			for col := range g.Cols {
				pos, posErr := origin.Offset(
					float64(col)*binDims.Width(),
					float64(row)*binDims.Depth(),
					float64(level)*binDims.Height(),
				)
				if posErr != nil {
					return nil, posErr
				}

				code := fmt.Sprintf("%s-L%02d-R%02d-C%02d", shelf.Code(), level+1, row+1, col+1)
				name := fmt.Sprintf("%s L%d R%d C%d", shelf.Name(), level+1, row+1, col+1)

				bin, binErr := NewBin(kernel.NewUUID(), shelf, name, code, pos, binDims, capacity)
				if binErr != nil {
					return nil, binErr
				}
				bins = append(bins, bin)
			}
		}
	}

	return bins, nil
}

func checkGridAxis(name string, value int) error {
	if value < 1 || value > MaxGridCells {
		return errs.NewValueIsOutOfRangeError(name, value, 1, MaxGridCells)
	}
	return nil
}
